package rules

import (
	"strings"
	"testing"

	"pystyle/internal/diag"
)

func TestLineRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    func(string) (string, bool)
		line    string
		wantMsg string
		fires   bool
	}{
		{"too long", checkTooLong, strings.Repeat("x", 80), "Too long", true},
		{"exactly 79", checkTooLong, strings.Repeat("x", 79), "", false},
		{"long in runes only", checkTooLong, strings.Repeat("я", 79), "", false},

		{"indent 3", checkIndentation, "   x = 1", "Indentation is not a multiple of four", true},
		{"indent 4", checkIndentation, "    x = 1", "", false},
		{"indent 0", checkIndentation, "x = 1", "", false},
		{"tabs are not spaces", checkIndentation, "\tx = 1", "", false},

		{"semicolon", checkSemicolon, "x = 1;", "Unnecessary semicolon", true},
		{"semicolon before comment", checkSemicolon, "x = 1;  # note", "Unnecessary semicolon", true},
		{"semicolon in comment", checkSemicolon, "x = 1  # todo fix this;", "", false},
		{"semicolon trailing space", checkSemicolon, "x = 1;   ", "Unnecessary semicolon", true},

		{"one space before comment", checkCommentSpacing, "x = 1 # c", "At least two spaces required before inline comments", true},
		{"two spaces before comment", checkCommentSpacing, "x = 1  # c", "", false},
		{"full-line comment", checkCommentSpacing, "# c", "", false},
		{"indented comment", checkCommentSpacing, "    # c", "", false},

		{"todo", checkTodo, "x = 1  # TODO: later", "TODO found", true},
		{"todo mixed case", checkTodo, "# ToDo", "TODO found", true},
		{"todo outside comment", checkTodo, "todo = 1", "", false},

		{"class spaces", checkConstructionSpaces, "class  Foo:", "Too many spaces after 'class'", true},
		{"def spaces", checkConstructionSpaces, "    def  foo(self):", "Too many spaces after 'def'", true},
		{"top-level def spaces", checkConstructionSpaces, "def  foo():", "", false},
		{"single space", checkConstructionSpaces, "class Foo:", "", false},

		{"lowercase class", checkClassName, "class user:", "Class name 'user' should use CamelCase", true},
		{"camel class", checkClassName, "class User:", "", false},
		{"class with two spaces", checkClassName, "class  user:", "", false},

		{"camel function", checkFunctionName, "def myFunc():", "Function name myFunc should use snake_case", true},
		{"upper function", checkFunctionName, "def MyFunc():", "Function name MyFunc should use snake_case", true},
		{"method", checkFunctionName, "    def Method(self):", "Function name Method should use snake_case", true},
		{"snake function", checkFunctionName, "def my_func():", "", false},
		{"deeply indented", checkFunctionName, "        def MyFunc():", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.rule(tt.line)
			if ok != tt.fires {
				t.Fatalf("fired = %v, want %v", ok, tt.fires)
			}
			if msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestCheckLinesRuleMajor(t *testing.T) {
	lines := []string{
		"x = 1;",
		"   y = 2;",
	}
	got := CheckLines(lines)
	want := []struct {
		code diag.Code
		line uint32
	}{
		{diag.StyleIndentation, 2},
		{diag.StyleSemicolon, 1},
		{diag.StyleSemicolon, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d violations, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Code != w.code || got[i].Line != w.line {
			t.Errorf("violation %d = %s line %d, want %s line %d",
				i, got[i].Code.ID(), got[i].Line, w.code.ID(), w.line)
		}
	}
}

func TestTodoCommentLine(t *testing.T) {
	codes := func(line string) map[diag.Code]bool {
		out := map[diag.Code]bool{}
		for _, d := range CheckLines([]string{line}) {
			out[d.Code] = true
		}
		return out
	}

	got := codes("x = 1  # todo fix this;")
	if !got[diag.StyleTodo] || got[diag.StyleSemicolon] || got[diag.StyleCommentSpacing] {
		t.Errorf("unexpected codes for two-space comment: %v", got)
	}
	got = codes("x = 1 # todo fix this;")
	if !got[diag.StyleTodo] || !got[diag.StyleCommentSpacing] || got[diag.StyleSemicolon] {
		t.Errorf("unexpected codes for one-space comment: %v", got)
	}
}

func TestLongLineFiresOnce(t *testing.T) {
	line := strings.Repeat("a", 100)
	n := 0
	for _, d := range CheckLines([]string{line}) {
		if d.Code == diag.StyleTooLong {
			n++
		}
	}
	if n != 1 {
		t.Errorf("S001 fired %d times", n)
	}
}

package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pystyle/internal/diag"
)

// MaxLineLength - строка длиннее этого числа символов нарушает S001.
const MaxLineLength = 79

// LineRule inspects one newline-stripped line. Check returns the message of
// the violation, if any; each rule fires at most once per line.
type LineRule struct {
	Code  diag.Code
	Check func(line string) (string, bool)
}

// LineRules in the order they run.
var LineRules = []LineRule{
	{diag.StyleTooLong, checkTooLong},
	{diag.StyleIndentation, checkIndentation},
	{diag.StyleSemicolon, checkSemicolon},
	{diag.StyleCommentSpacing, checkCommentSpacing},
	{diag.StyleTodo, checkTodo},
	{diag.StyleConstructionSpaces, checkConstructionSpaces},
	{diag.StyleClassName, checkClassName},
	{diag.StyleFunctionName, checkFunctionName},
}

var (
	reClassSpaces = regexp.MustCompile(`^class\s{2,}`)
	reDefSpaces   = regexp.MustCompile(`^\s{4}def\s{2,}[\p{L}\p{N}_]*`)
	reClassName   = regexp.MustCompile(`^class\s([a-z][\p{L}\p{N}_]*)`)
	reFuncName    = regexp.MustCompile(`^\s{0,4}def\s([\p{L}_][\p{L}\p{N}_]*)`)

	// комментарии сравниваются без учёта регистра, в том числе для не-ASCII
	foldComment = cases.Lower(language.Und)
)

// CheckLines runs every line rule over lines: rule-major, line-minor.
// Line numbers are 1-based.
func CheckLines(lines []string) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, rule := range LineRules {
		for i, line := range lines {
			msg, ok := rule.Check(line)
			if !ok {
				continue
			}
			out = append(out, diag.Style(rule.Code, lineNumber(i), msg))
		}
	}
	return out
}

func checkTooLong(line string) (string, bool) {
	if utf8.RuneCountInString(line) > MaxLineLength {
		return "Too long", true
	}
	return "", false
}

func checkIndentation(line string) (string, bool) {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent%4 != 0 {
		return "Indentation is not a multiple of four", true
	}
	return "", false
}

// codePart - текст до первого '#', либо вся строка.
func codePart(line string) string {
	code, _, _ := strings.Cut(line, "#")
	return code
}

func checkSemicolon(line string) (string, bool) {
	if strings.HasSuffix(strings.TrimSpace(codePart(line)), ";") {
		return "Unnecessary semicolon", true
	}
	return "", false
}

func checkCommentSpacing(line string) (string, bool) {
	if strings.HasPrefix(line, "#") || !strings.Contains(line, "#") {
		return "", false
	}
	if !strings.HasSuffix(codePart(line), "  ") {
		return "At least two spaces required before inline comments", true
	}
	return "", false
}

func checkTodo(line string) (string, bool) {
	_, comment, found := strings.Cut(line, "#")
	if found && strings.Contains(foldComment.String(comment), "todo") {
		return "TODO found", true
	}
	return "", false
}

func checkConstructionSpaces(line string) (string, bool) {
	switch {
	case reClassSpaces.MatchString(line):
		return "Too many spaces after 'class'", true
	case reDefSpaces.MatchString(line):
		return "Too many spaces after 'def'", true
	}
	return "", false
}

func checkClassName(line string) (string, bool) {
	m := reClassName.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("Class name '%s' should use CamelCase", m[1]), true
}

// checkFunctionName: имя после def не в snake_case, т.е. содержит
// заглавную ASCII-букву (MyFunc, myFunc).
func checkFunctionName(line string) (string, bool) {
	m := reFuncName.FindStringSubmatch(line)
	if m == nil || !strings.ContainsFunc(m[1], isUpperASCII) {
		return "", false
	}
	return fmt.Sprintf("Function name %s should use snake_case", m[1]), true
}

func isUpperASCII(r rune) bool { return r >= 'A' && r <= 'Z' }

// lineNumber переводит 0-based индекс строки в номер строки.
func lineNumber(idx int) uint32 {
	n, err := safecast.Conv[uint32](idx + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return n
}

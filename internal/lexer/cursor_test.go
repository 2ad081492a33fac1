package lexer

import (
	"testing"

	"pystyle/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.py", []byte(content)))
}

func TestCursorBumpAndEOF(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	var got []byte
	for !cursor.EOF() {
		got = append(got, cursor.Bump())
	}
	if string(got) != "a\nb" {
		t.Fatalf("read %q", got)
	}
	// на EOF курсор стоит на месте
	if cursor.Peek() != 0 || cursor.Bump() != 0 || cursor.Off != 3 {
		t.Errorf("unexpected state at EOF: off=%d", cursor.Off)
	}
}

func TestCursorLookahead(t *testing.T) {
	cursor := NewCursor(createFile("'''"))

	if b0, b1, b2, ok := cursor.Peek3(); !ok || b0 != '\'' || b1 != '\'' || b2 != '\'' {
		t.Errorf("Peek3 = %q %q %q %v", b0, b1, b2, ok)
	}
	cursor.Bump()
	if _, _, _, ok := cursor.Peek3(); ok {
		t.Error("Peek3 must fail with two bytes left")
	}
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != '\'' || b1 != '\'' {
		t.Errorf("Peek2 = %q %q %v", b0, b1, ok)
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 must fail with one byte left")
	}
	if cursor.PeekAt(0) != '\'' || cursor.PeekAt(1) != 0 {
		t.Errorf("PeekAt past the end must return 0")
	}
}

func TestCursorIndent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		col   int
		next  byte
	}{
		{"none", "x", 0, 'x'},
		{"four spaces", "    x", 4, 'x'},
		{"tab", "\tx", 8, 'x'},
		{"spaces then tab", "   \tx", 8, 'x'},
		{"tab then spaces", "\t  x", 10, 'x'},
		{"form feed resets", "  \f x", 1, 'x'},
		{"blank line", "   \n", 3, '\n'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := NewCursor(createFile(tt.input))
			if col := cursor.Indent(8); col != tt.col {
				t.Errorf("Indent = %d, want %d", col, tt.col)
			}
			if cursor.Peek() != tt.next {
				t.Errorf("cursor stopped at %q, want %q", cursor.Peek(), tt.next)
			}
		})
	}
}

func TestCursorRunes(t *testing.T) {
	// 'й' занимает 2 байта, '€' - 3
	cursor := NewCursor(createFile("й€a"))

	want := []struct {
		r    rune
		size int
	}{{'й', 2}, {'€', 3}, {'a', 1}}
	for _, w := range want {
		r, size := cursor.PeekRune()
		if r != w.r || size != w.size {
			t.Fatalf("PeekRune = %q/%d, want %q/%d", r, size, w.r, w.size)
		}
		cursor.BumpRune()
	}
	if _, size := cursor.PeekRune(); size != 0 || !cursor.EOF() {
		t.Errorf("expected EOF after three runes, off=%d", cursor.Off)
	}

	bad := NewCursor(createFile("\xffx"))
	bad.BumpRune()
	if bad.Peek() != 'x' {
		t.Errorf("invalid UTF-8 must advance one byte, at %q", bad.Peek())
	}
}

func TestCursorMarks(t *testing.T) {
	file := createFile("rb'x'\nname")
	cursor := NewCursor(file)

	start := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	if got := cursor.TextFrom(start); got != "rb" {
		t.Errorf("TextFrom = %q", got)
	}
	if sp := cursor.SpanFrom(start); sp != (source.Span{File: file.ID, Start: 0, End: 2}) {
		t.Errorf("SpanFrom = %v", sp)
	}
	cursor.Reset(start)
	if cursor.Off != 0 || cursor.Peek() != 'r' {
		t.Errorf("Reset left cursor at %d", cursor.Off)
	}

	for cursor.Peek() != '\n' {
		cursor.Bump()
	}
	cursor.Bump()
	name := cursor.Mark()
	for !cursor.EOF() {
		cursor.Bump()
	}
	if pos := file.Position(cursor.SpanFrom(name).Start); pos != (source.LineCol{Line: 2, Col: 1}) {
		t.Errorf("name starts at %+v", pos)
	}
}

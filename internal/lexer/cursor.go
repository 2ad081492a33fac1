package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"pystyle/internal/source"
)

// Cursor - позиция чтения внутри одного файла. Содержимое уже нормализовано
// FileSet'ом: только '\n' в качестве перевода строки, без BOM.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.end
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.end {
		return 0
	}
	return c.File.Content[c.Off+n]
}

func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// Peek2 и Peek3 нужны для тройных кавычек и продолжения строки;
// ok=false, если до конца файла меньше байт.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.end {
		return 0, 0, false
	}
	return c.PeekAt(0), c.PeekAt(1), true
}

func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if c.Off+2 >= c.end {
		return 0, 0, 0, false
	}
	return c.PeekAt(0), c.PeekAt(1), c.PeekAt(2), true
}

// Bump advances one byte and returns it; at EOF it returns 0 and stays put.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// PeekRune decodes the rune at the cursor. size is 0 at EOF.
func (c *Cursor) PeekRune() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.Peek(); b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.end])
}

// BumpRune advances over one rune; invalid UTF-8 advances one byte.
func (c *Cursor) BumpRune() {
	_, sz := c.PeekRune()
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	c.Off += usz
}

// Indent consumes leading spaces, tabs and form feeds and returns the
// indentation column. A tab moves to the next multiple of tabSize, a form
// feed resets the column.
func (c *Cursor) Indent(tabSize int) int {
	col := 0
	for {
		switch c.Peek() {
		case ' ':
			col++
		case '\t':
			col = (col/tabSize + 1) * tabSize
		case '\f':
			col = 0
		default:
			return col
		}
		c.Off++
	}
}

type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom - span от метки до текущей позиции.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// TextFrom returns the source bytes between m and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[uint32(m):c.Off])
}

func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

package lexer

import (
	"unicode"
)

// Идентификаторы Python 3: ASCII проверяется побайтно, остальное через unicode.

func isIdentStartByte(b byte) bool {
	return b == '_' || (b|0x20 >= 'a' && b|0x20 <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// radixDigits возвращает предикат цифр для префикса 0x/0o/0b; nil для прочих байт.
func radixDigits(marker byte) func(byte) bool {
	switch marker | 0x20 {
	case 'x':
		return func(b byte) bool { return isDec(b) || (b|0x20 >= 'a' && b|0x20 <= 'f') }
	case 'o':
		return func(b byte) bool { return b >= '0' && b <= '7' }
	case 'b':
		return func(b byte) bool { return b == '0' || b == '1' }
	}
	return nil
}

// ".5" начинается с точки, но это число.
func (lx *Lexer) isNumberAfterDot() bool {
	return lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1))
}

// tryOp съедает op целиком, если он начинается в текущей позиции.
func (lx *Lexer) tryOp(op string) bool {
	for i := range len(op) {
		if lx.cursor.PeekAt(uint32(i)) != op[i] {
			return false
		}
	}
	for range len(op) {
		lx.cursor.Bump()
	}
	return true
}

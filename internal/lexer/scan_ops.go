package lexer

import (
	"pystyle/internal/diag"
	"pystyle/internal/token"
)

type opSpec struct {
	text string
	kind token.Kind
}

// Жадность: сначала 3-символьные, затем 2-символьные.
var longOps = []opSpec{
	{"**=", token.StarStarAssign},
	{"//=", token.SlashSlashAssign},
	{"<<=", token.ShlAssign},
	{">>=", token.ShrAssign},
	{"...", token.Ellipsis},

	{"**", token.StarStar},
	{"//", token.SlashSlash},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"==", token.EqEq},
	{"!=", token.NotEq},
	{"->", token.Arrow},
	{":=", token.ColonAssign},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"@=", token.AtAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
}

var singleOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'@': token.At,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'~': token.Tilde,
	'<': token.Lt,
	'>': token.Gt,
	'=': token.Assign,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	':': token.Colon,
	';': token.Semicolon,
	'.': token.Dot,
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	for _, op := range longOps {
		if lx.tryOp(op.text) {
			return emit(op.kind)
		}
	}

	ch := lx.cursor.Bump()
	if k, ok := singleOps[ch]; ok {
		return emit(k)
	}

	tok := emit(token.Invalid)
	lx.errLex(diag.LexUnknownChar, tok.Span, "invalid character '"+tok.Text+"'")
	return tok
}

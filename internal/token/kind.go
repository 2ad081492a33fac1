package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline ends a logical line.
	Newline
	// Indent opens a deeper block.
	Indent
	// Dedent closes a block.
	Dedent

	// Ident represents an identifier token.
	Ident
	// Number is any numeric literal (int, float, imaginary).
	Number
	// String is a string or bytes literal including its prefix and quotes.
	String

	KwFalse    // False
	KwNone     // None
	KwTrue     // True
	KwAnd      // and
	KwAs       // as
	KwAssert   // assert
	KwAsync    // async
	KwAwait    // await
	KwBreak    // break
	KwClass    // class
	KwContinue // continue
	KwDef      // def
	KwDel      // del
	KwElif     // elif
	KwElse     // else
	KwExcept   // except
	KwFinally  // finally
	KwFor      // for
	KwFrom     // from
	KwGlobal   // global
	KwIf       // if
	KwImport   // import
	KwIn       // in
	KwIs       // is
	KwLambda   // lambda
	KwNonlocal // nonlocal
	KwNot      // not
	KwOr       // or
	KwPass     // pass
	KwRaise    // raise
	KwReturn   // return
	KwTry      // try
	KwWhile    // while
	KwWith     // with
	KwYield    // yield

	Plus       // +
	Minus      // -
	Star       // *
	StarStar   // **
	Slash      // /
	SlashSlash // //
	Percent    // %
	At         // @
	Amp        // &
	Pipe       // |
	Caret      // ^
	Tilde      // ~
	Shl        // <<
	Shr        // >>
	Lt         // <
	Gt         // >
	LtEq       // <=
	GtEq       // >=
	EqEq       // ==
	NotEq      // !=

	Assign           // =
	ColonAssign      // :=
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	StarStarAssign   // **=
	SlashAssign      // /=
	SlashSlashAssign // //=
	PercentAssign    // %=
	AtAssign         // @=
	AmpAssign        // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	ShlAssign        // <<=
	ShrAssign        // >>=

	Arrow     // ->
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Dot       // .
	Ellipsis  // ...

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "Invalid", EOF: "EOF", Newline: "NEWLINE", Indent: "INDENT", Dedent: "DEDENT",
	Ident: "Ident", Number: "Number", String: "String",
	KwFalse: "False", KwNone: "None", KwTrue: "True", KwAnd: "and", KwAs: "as",
	KwAssert: "assert", KwAsync: "async", KwAwait: "await", KwBreak: "break",
	KwClass: "class", KwContinue: "continue", KwDef: "def", KwDel: "del",
	KwElif: "elif", KwElse: "else", KwExcept: "except", KwFinally: "finally",
	KwFor: "for", KwFrom: "from", KwGlobal: "global", KwIf: "if", KwImport: "import",
	KwIn: "in", KwIs: "is", KwLambda: "lambda", KwNonlocal: "nonlocal", KwNot: "not",
	KwOr: "or", KwPass: "pass", KwRaise: "raise", KwReturn: "return", KwTry: "try",
	KwWhile: "while", KwWith: "with", KwYield: "yield",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/", SlashSlash: "//",
	Percent: "%", At: "@", Amp: "&", Pipe: "|", Caret: "^", Tilde: "~",
	Shl: "<<", Shr: ">>", Lt: "<", Gt: ">", LtEq: "<=", GtEq: ">=", EqEq: "==", NotEq: "!=",
	Assign: "=", ColonAssign: ":=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	StarStarAssign: "**=", SlashAssign: "/=", SlashSlashAssign: "//=", PercentAssign: "%=",
	AtAssign: "@=", AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=",
	ShlAssign: "<<=", ShrAssign: ">>=",
	Arrow: "->", LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	LBrace: "{", RBrace: "}", Comma: ",", Colon: ":", Semicolon: ";", Dot: ".", Ellipsis: "...",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a hard keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwFalse && k <= KwYield
}

// IsAugAssign reports whether k is an augmented assignment operator (+=, <<=, ...).
func (k Kind) IsAugAssign() bool {
	return k >= PlusAssign && k <= ShrAssign
}

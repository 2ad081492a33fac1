package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Правила стиля, S001…S012
	StyleTooLong            Code = 1
	StyleIndentation        Code = 2
	StyleSemicolon          Code = 3
	StyleCommentSpacing     Code = 4
	StyleTodo               Code = 5
	StyleBlankLines         Code = 6
	StyleConstructionSpaces Code = 7
	StyleClassName          Code = 8
	StyleFunctionName       Code = 9
	StyleArgumentName       Code = 10
	StyleVariableName       Code = 11
	StyleMutableDefault     Code = 12

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexInconsistentDedent Code = 1004
	LexStrayContinuation  Code = 1005
	LexUnbalancedBracket  Code = 1006

	// Парсерные
	SynInfo                   Code = 2000
	SynUnexpectedToken        Code = 2001
	SynUnclosedDelimiter      Code = 2002
	SynExpectIndent           Code = 2003
	SynUnexpectedIndent       Code = 2004
	SynExpectExpression       Code = 2005
	SynExpectNewline          Code = 2006
	SynInvalidTarget          Code = 2007
	SynNonDefaultAfterDefault Code = 2008
	SynBareStar               Code = 2009
	SynDuplicateStarParam     Code = 2010
	SynExpectColon            Code = 2011
	SynUnexpectedEOF          Code = 2012
	SynMissingExcept          Code = 2013

	// Ввод-вывод
	IOInfo          Code = 4000
	IOReadFileError Code = 4001
	IOReadDirError  Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	StyleTooLong:            "Too long",
	StyleIndentation:        "Indentation is not a multiple of four",
	StyleSemicolon:          "Unnecessary semicolon",
	StyleCommentSpacing:     "At least two spaces required before inline comments",
	StyleTodo:               "TODO found",
	StyleBlankLines:         "More than two blank lines preceding a code line",
	StyleConstructionSpaces: "Too many spaces after construction name",
	StyleClassName:          "Class name should use CamelCase",
	StyleFunctionName:       "Function name should use snake_case",
	StyleArgumentName:       "Argument name should be written in snake_case",
	StyleVariableName:       "Variable in function should be snake_case",
	StyleMutableDefault:     "The default argument value is mutable.",

	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Bad number",
	LexInconsistentDedent: "Unindent does not match any outer indentation level",
	LexStrayContinuation:  "Unexpected character after line continuation",
	LexUnbalancedBracket:  "Unbalanced closing bracket",

	SynInfo:                   "Syntax information",
	SynUnexpectedToken:        "Unexpected token",
	SynUnclosedDelimiter:      "Unclosed delimiter",
	SynExpectIndent:           "Expected an indented block",
	SynUnexpectedIndent:       "Unexpected indent",
	SynExpectExpression:       "Expected expression",
	SynExpectNewline:          "Expected end of statement",
	SynInvalidTarget:          "Invalid assignment target",
	SynNonDefaultAfterDefault: "Parameter without a default follows parameter with a default",
	SynBareStar:               "Named arguments must follow bare *",
	SynDuplicateStarParam:     "Duplicate star parameter",
	SynExpectColon:            "Expected ':'",
	SynUnexpectedEOF:          "Unexpected end of file",
	SynMissingExcept:          "Expected 'except' or 'finally' block",

	IOInfo:          "I/O information",
	IOReadFileError: "Cannot read file",
	IOReadDirError:  "Cannot read directory",
}

// IsStyle reports whether c is one of the style rule codes.
func (c Code) IsStyle() bool {
	return c >= StyleTooLong && c <= StyleMutableDefault
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic > 0 && ic < 1000:
		return fmt.Sprintf("S%03d", ic)
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

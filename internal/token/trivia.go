package token

import "pystyle/internal/source"

type TriviaKind uint8

const (
	TriviaSpace        TriviaKind = iota // пробелы, табы, \f
	TriviaNewline                        // пустые строки и переводы строк внутри скобок
	TriviaComment                        // # ... до конца строки
	TriviaContinuation                   // \ + перевод строки
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	case TriviaContinuation:
		return "Continuation"
	}
	return "Unknown"
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

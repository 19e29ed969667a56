package stream

import (
	"fmt"

	"github.com/hnimtadd/ansiparse/terminal/sequence"
)

type TokenType int

const (
	// TokenTypeText is a run of literal text, possibly containing
	// introducers that did not start a recognized sequence.
	TokenTypeText TokenType = iota
	// TokenTypeEscape is one recognized escape sequence.
	TokenTypeEscape
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeText:
		return "Text"
	case TokenTypeEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// Token is one unit of tokenizer output.
//
// Text is the exact span of input the token covers and shares its memory.
// For escape tokens it may differ from the canonical rendering of Sequence,
// e.g. "\x1b[H" for CursorPos{Row: 1, Col: 1}. Sequence is set only for
// escape tokens.
type Token struct {
	Type     TokenType
	Text     string
	Sequence sequence.Sequence
}

// TextBlock returns a text token for s.
func TextBlock(s string) Token {
	return Token{Type: TokenTypeText, Text: s}
}

// Escape returns an escape token for seq whose text is the canonical
// rendering.
func Escape(seq sequence.Sequence) Token {
	return Token{Type: TokenTypeEscape, Text: seq.String(), Sequence: seq}
}

func (t Token) IsText() bool { return t.Type == TokenTypeText }
func (t Token) IsEscape() bool { return t.Type == TokenTypeEscape }

// String returns the input text the token covers.
func (t Token) String() string {
	if t.Text == "" && t.Type == TokenTypeEscape && t.Sequence != nil {
		return t.Sequence.String()
	}
	return t.Text
}

// Canonical returns the canonical rendering for escape tokens and the
// literal text otherwise.
func (t Token) Canonical() string {
	if t.Type == TokenTypeEscape && t.Sequence != nil {
		return t.Sequence.String()
	}
	return t.Text
}

// GoString is used by %#v and keeps test failures readable.
func (t Token) GoString() string {
	if t.Type == TokenTypeEscape {
		return fmt.Sprintf("Escape(%s)", sequence.Describe(t.Sequence))
	}
	return fmt.Sprintf("TextBlock(%q)", t.Text)
}

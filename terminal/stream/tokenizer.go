// Package stream splits text into literal runs and recognized escape
// sequences.
//
// A Tokenizer walks its input once, left to right, handing out one Token per
// call. Text that starts with an introducer but matches no grammar is kept
// as literal text, and every token keeps the span of input it covers, so
// rendering the tokens in order always reproduces the input exactly.
package stream

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hnimtadd/ansiparse/logger"
	"github.com/hnimtadd/ansiparse/terminal/ansi"
	"github.com/hnimtadd/ansiparse/terminal/parser"
	"github.com/hnimtadd/ansiparse/terminal/utils"
	"golang.org/x/text/encoding/unicode"
)

type Options struct {
	// Logger receives a debug record for every unrecognized sequence.
	// Defaults to logger.DefaultLogger.
	Logger logger.Logger
}

// Tokenizer is a single pass over one input. It is not safe for concurrent
// use and cannot be rewound; create a new one to tokenize again.
type Tokenizer struct {
	// The unconsumed suffix of the input.
	rest string

	logger logger.Logger
}

func NewTokenizer(input string, opts Options) *Tokenizer {
	return &Tokenizer{
		rest:   input,
		logger: logger.OrDefault(opts.Logger),
	}
}

// NewTokenizerBytes decodes input as UTF-8 and tokenizes the result.
// Ill-formed bytes are replaced by U+FFFD, so the decoded text, not input,
// is what the tokens reproduce.
func NewTokenizerBytes(input []byte, opts Options) (*Tokenizer, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(input)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return NewTokenizer(string(decoded), opts), nil
}

// Remaining returns the input not yet consumed.
func (t *Tokenizer) Remaining() string { return t.rest }

// Done reports whether the input is exhausted.
func (t *Tokenizer) Done() bool { return t.rest == "" }

// Next returns the next token. ok is false once the input is exhausted.
func (t *Tokenizer) Next() (tok Token, ok bool) {
	if t.rest == "" {
		return Token{}, false
	}
	before := len(t.rest)
	tok = t.next()
	utils.Assert(len(t.rest) < before, "tokenizer did not advance")
	return tok, true
}

func (t *Tokenizer) next() Token {
	loc := strings.IndexByte(t.rest, ansi.C0.ESC)
	switch {
	case loc < 0:
		return TextBlock(t.advance(len(t.rest)))
	case loc > 0:
		// The introducer itself is looked at on the next call.
		return TextBlock(t.advance(loc))
	}

	if seq, rest, ok := parser.Parse(t.rest); ok {
		return Token{
			Type:     TokenTypeEscape,
			Text:     t.advance(len(t.rest) - len(rest)),
			Sequence: seq,
		}
	}

	// Keep everything up to the next introducer as literal text. The
	// search starts past the current introducer so at least one byte is
	// always consumed.
	end := len(t.rest)
	if next := strings.IndexByte(t.rest[1:], ansi.C0.ESC); next >= 0 {
		end = next + 1
	}
	if len(t.rest) > 1 {
		t.logger.Debug("unrecognized escape sequence",
			"next", ansi.String(t.rest[1]),
			"length", end,
		)
	} else {
		t.logger.Debug("introducer at end of input")
	}
	return TextBlock(t.advance(end))
}

// advance consumes n bytes and returns them.
func (t *Tokenizer) advance(n int) string {
	out := t.rest[:n]
	t.rest = t.rest[n:]
	return out
}

// Iter returns an iter.Seq[Token] over the remaining tokens. Stopping early
// leaves the tokenizer positioned after the last yielded token.
func (t *Tokenizer) Iter() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Iter2 returns an iter.Seq2[int, Token] that yields tokens with their index.
func (t *Tokenizer) Iter2() iter.Seq2[int, Token] {
	return func(yield func(int, Token) bool) {
		idx := 0
		for tok := range t.Iter() {
			if !yield(idx, tok) {
				return
			}
			idx++
		}
	}
}

// Tokenize returns the tokens of input with default options.
func Tokenize(input string) iter.Seq[Token] {
	return NewTokenizer(input, Options{}).Iter()
}

// Render concatenates the input text of every token. For tokens produced
// by a Tokenizer the result is the tokenized input.
func Render(tokens iter.Seq[Token]) string {
	b := new(strings.Builder)
	for tok := range tokens {
		b.WriteString(tok.String())
	}
	return b.String()
}

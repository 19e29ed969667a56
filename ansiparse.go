// Package ansiparse splits text into literal runs and structured ANSI escape
// sequences.
//
// The tokens borrow from the input: text blocks are substrings of it, and
// every token keeps the exact span it was read from, so
//
//	Render(Collect(s)) == s
//
// holds for any s, including text with malformed or unknown sequences.
package ansiparse

import (
	"iter"
	"slices"

	"github.com/hnimtadd/ansiparse/logger"
	"github.com/hnimtadd/ansiparse/terminal/segment"
	"github.com/hnimtadd/ansiparse/terminal/stream"
)

type (
	Token   = stream.Token
	Segment = segment.Segment
)

type Options struct {
	// Logger receives diagnostics about unrecognized sequences. Defaults
	// to logger.DefaultLogger.
	Logger logger.Logger

	// EastAsian counts ambiguous-width characters as two cells when
	// measuring segments.
	EastAsian bool
}

// Parser holds options shared by repeated tokenizations. It keeps no
// per-input state and may be used from several goroutines.
type Parser struct {
	logger    logger.Logger
	eastAsian bool
}

func New(opts Options) *Parser {
	return &Parser{
		logger:    logger.OrDefault(opts.Logger),
		eastAsian: opts.EastAsian,
	}
}

// Tokens returns a lazy sequence over the tokens of input.
func (p *Parser) Tokens(input string) iter.Seq[Token] {
	return stream.NewTokenizer(input, stream.Options{Logger: p.logger}).Iter()
}

// TokensBytes decodes input as UTF-8, replacing ill-formed bytes with
// U+FFFD, and returns the tokens of the decoded text.
func (p *Parser) TokensBytes(input []byte) (iter.Seq[Token], error) {
	t, err := stream.NewTokenizerBytes(input, stream.Options{Logger: p.logger})
	if err != nil {
		return nil, err
	}
	return t.Iter(), nil
}

// Segments groups the tokens of input by text block and measures each group.
func (p *Parser) Segments(input string) []Segment {
	return segment.NewText(input, segment.Options{
		EastAsian: p.eastAsian,
		Logger:    p.logger,
	}).Segments()
}

var defaultParser = New(Options{})

// Parse returns a lazy sequence over the tokens of s.
func Parse(s string) iter.Seq[Token] {
	return defaultParser.Tokens(s)
}

// ParseBytes is Parse for raw bytes.
func ParseBytes(b []byte) (iter.Seq[Token], error) {
	return defaultParser.TokensBytes(b)
}

// Collect returns every token of s.
func Collect(s string) []Token {
	return slices.Collect(Parse(s))
}

// Render concatenates the text of tokens.
func Render(tokens []Token) string {
	return stream.Render(slices.Values(tokens))
}

// Strip returns s without its recognized escape sequences.
func Strip(s string) string {
	return segment.NewText(s, segment.Options{Logger: defaultParser.logger}).Plain()
}

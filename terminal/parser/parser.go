// Package parser recognizes a single escape sequence at the start of a
// string.
//
// Recognition tries a fixed, ordered table of grammars and returns the first
// match. Not matching is an ordinary outcome: the caller decides what to do
// with text that starts with an introducer but is not a known sequence.
package parser

import (
	"github.com/hnimtadd/ansiparse/terminal/ansi"
	"github.com/hnimtadd/ansiparse/terminal/sequence"
)

// Parse recognizes the escape sequence at the start of input, which must
// begin with the introducer.
//
// On a match it returns the sequence and the input that follows it. When no
// grammar matches, ok is false and rest is input unchanged.
func Parse(input string) (seq sequence.Sequence, rest string, ok bool) {
	if len(input) == 0 || input[0] != ansi.Introducer {
		return nil, input, false
	}
	body := input[1:]
	for _, r := range rules {
		sc := &scanner{s: body}
		if seq, ok := r.match(sc); ok {
			return seq, body[sc.pos:], true
		}
	}
	return nil, input, false
}

// MatchLen returns the number of bytes Parse would consume from input, or
// 0 when nothing matches.
func MatchLen(input string) int {
	_, rest, ok := Parse(input)
	if !ok {
		return 0
	}
	return len(input) - len(rest)
}

// Rules returns the grammar names in the order they are tried.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

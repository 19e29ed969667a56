package parser

import (
	"testing"

	"github.com/hnimtadd/ansiparse/terminal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Inputs whose canonical rendering is exactly the input text.
var canonical = []struct {
	name  string
	input string
}{
	{"cursor save", "\x1b[s"},
	{"cursor restore", "\x1b[u"},
	{"erase display", "\x1b[2J"},
	{"erase line", "\x1b[K"},
	{"graphics a", "\x1b[4m"},
	{"graphics b", "\x1b[4;42m"},
	{"graphics c", "\x1b[4;31;42m"},
	{"graphics d", "\x1b[4;31;42;42;42m"},
	{"graphics empty", "\x1b[m"},
	{"reset mode", "\x1b[=13l"},
	{"set mode", "\x1b[=7h"},
	{"show cursor", "\x1b[?25h"},
	{"hide cursor", "\x1b[?25l"},
	{"cursor to app", "\x1b[?1h"},
	{"newline mode", "\x1b[20h"},
	{"column 132", "\x1b[?3h"},
	{"smooth scroll", "\x1b[?4h"},
	{"reverse video", "\x1b[?5h"},
	{"origin relative", "\x1b[?6h"},
	{"auto wrap", "\x1b[?7h"},
	{"auto repeat", "\x1b[?8h"},
	{"interlacing", "\x1b[?9h"},
	{"cursor key to cursor", "\x1b[?1l"},
	{"linefeed", "\x1b[20l"},
	{"vt52", "\x1b[?2l"},
	{"column 80", "\x1b[?3l"},
	{"jump scroll", "\x1b[?4l"},
	{"normal video", "\x1b[?5l"},
	{"origin absolute", "\x1b[?6l"},
	{"reset auto wrap", "\x1b[?7l"},
	{"reset auto repeat", "\x1b[?8l"},
	{"reset interlacing", "\x1b[?9l"},
	{"scroll region", "\x1b[3;20r"},
	{"alternate keypad", "\x1b="},
	{"numeric keypad", "\x1b>"},
	{"uk g0", "\x1b(A"},
	{"uk g1", "\x1b)A"},
	{"us g0", "\x1b(B"},
	{"us g1", "\x1b)B"},
	{"g0 special", "\x1b(0"},
	{"g1 special", "\x1b)0"},
	{"g0 alternate", "\x1b(1"},
	{"g1 alternate", "\x1b)1"},
	{"g0 graph", "\x1b(2"},
	{"g1 graph", "\x1b)2"},
	{"single shift 2", "\x1bN"},
	{"single shift 3", "\x1bO"},
	{"escape", "\x1b\x1b"},
}

func TestParse_Canonical(t *testing.T) {
	for _, tc := range canonical {
		t.Run(tc.name, func(t *testing.T) {
			seq, rest, ok := Parse(tc.input)
			require.True(t, ok)
			assert.Empty(t, rest)
			assert.Equal(t, tc.input, seq.String())
		})
	}
}

func TestParse_DefaultValues(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected sequence.Sequence
	}{
		{"cursor pos default", "\x1b[H", sequence.CursorPos{Row: 1, Col: 1}},
		{"cursor pos", "\x1b[10;5H", sequence.CursorPos{Row: 10, Col: 5}},
		{"cursor pos f", "\x1b[10;5f", sequence.CursorPos{Row: 10, Col: 5}},
		{"cursor pos row only", "\x1b[7H", sequence.CursorPos{Row: 7, Col: 1}},
		{"cursor pos col only", "\x1b[;7H", sequence.CursorPos{Row: 1, Col: 7}},
		{"cursor pos semicolon only", "\x1b[;H", sequence.CursorPos{Row: 1, Col: 1}},
		{"cursor up default", "\x1b[A", sequence.CursorUp{N: 1}},
		{"cursor up", "\x1b[5A", sequence.CursorUp{N: 5}},
		{"cursor down", "\x1b[5B", sequence.CursorDown{N: 5}},
		{"cursor down default", "\x1b[B", sequence.CursorDown{N: 1}},
		{"cursor forward", "\x1b[5C", sequence.CursorForward{N: 5}},
		{"cursor backward", "\x1b[5D", sequence.CursorBackward{N: 5}},
		{"cursor backward default", "\x1b[D", sequence.CursorBackward{N: 1}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			first, rest, ok := Parse(tc.input)
			require.True(t, ok)
			assert.Empty(t, rest)
			assert.Equal(t, tc.expected, first)

			// The rendering spells out every value, so parsing it
			// again agrees with the first parse.
			second, rest, ok := Parse(first.String())
			require.True(t, ok)
			assert.Empty(t, rest)
			assert.Equal(t, first, second)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	values := []sequence.Sequence{
		sequence.CursorPos{Row: 1, Col: 1},
		sequence.CursorPos{Row: 0, Col: 0},
		sequence.CursorPos{Row: 123456, Col: 4294967295},
		sequence.CursorUp{N: 0},
		sequence.CursorDown{N: 99},
		sequence.CursorForward{N: 4294967295},
		sequence.CursorBackward{N: 17},
		sequence.SetMode{Mode: 0},
		sequence.SetMode{Mode: 255},
		sequence.ResetMode{Mode: 25},
		sequence.SetTopAndBottom{Top: 0, Bottom: 4294967295},
		sequence.MustGraphicsMode(),
		sequence.MustGraphicsMode(0),
		sequence.MustGraphicsMode(255, 0),
		sequence.MustGraphicsMode(1, 2, 3),
		sequence.MustGraphicsMode(38, 2, 51, 254, 77),
	}
	for _, c := range sequence.Controls() {
		values = append(values, c)
	}

	for _, v := range values {
		t.Run(sequence.Describe(v), func(t *testing.T) {
			got, rest, ok := Parse(v.String())
			require.True(t, ok)
			assert.Empty(t, rest)
			assert.Equal(t, v, got)
		})
	}
}

func TestParse_Rest(t *testing.T) {
	seq, rest, ok := Parse("\x1b[1;31mred\x1b[0m")
	require.True(t, ok)
	assert.Equal(t, sequence.MustGraphicsMode(1, 31), seq)
	assert.Equal(t, "red\x1b[0m", rest)

	seq, rest, ok = Parse("\x1b\x1b[33mFoobar")
	require.True(t, ok)
	assert.Equal(t, sequence.Escape, seq)
	assert.Equal(t, "[33mFoobar", rest)
}

func TestParse_NoMatch(t *testing.T) {
	tcs := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no introducer", "[1m"},
		{"lone introducer", "\x1b"},
		{"unknown final", "\x1b[7asd;1234H"},
		{"letters in params", "\x1b[a;sd7H"},
		{"four graphics codes", "\x1b[36;1;15;2m"},
		{"six graphics codes", "\x1b[1;2;3;4;5;6m"},
		{"graphics code overflows byte", "\x1b[256m"},
		{"mode overflows byte", "\x1b[=300h"},
		{"cursor row overflows", "\x1b[4294967296H"},
		{"cursor move overflows", "\x1b[99999999999A"},
		{"scroll region missing bottom", "\x1b[3;r"},
		{"unterminated csi", "\x1b[12"},
		{"control byte", "\x1b\x07"},
		{"unicode after introducer", "\x1bé"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			seq, rest, ok := Parse(tc.input)
			assert.False(t, ok)
			assert.Nil(t, seq)
			assert.Equal(t, tc.input, rest)
			assert.Zero(t, MatchLen(tc.input))
		})
	}
}

func TestParse_Priority(t *testing.T) {
	// "[20h" is a fixed toggle, not a cursor rule or a mode.
	seq, _, ok := Parse("\x1b[20h")
	require.True(t, ok)
	assert.Equal(t, sequence.SetNewLineMode, seq)

	// "[2J" is erase display even though it starts like a cursor rule.
	seq, _, ok = Parse("\x1b[2J")
	require.True(t, ok)
	assert.Equal(t, sequence.EraseDisplay, seq)

	// A scroll region with a byte-sized top is still a scroll region.
	seq, _, ok = Parse("\x1b[1;2r")
	require.True(t, ok)
	assert.Equal(t, sequence.SetTopAndBottom{Top: 1, Bottom: 2}, seq)
}

func TestMatchLen(t *testing.T) {
	assert.Equal(t, 4, MatchLen("\x1b[4mabc"))
	assert.Equal(t, 2, MatchLen("\x1b\x1b"))
	assert.Equal(t, 8, MatchLen("\x1b[10;20Hxyz"))
}

func TestRules(t *testing.T) {
	names := Rules()
	require.NotEmpty(t, names)
	assert.Equal(t, "Escape", names[0])
	assert.Equal(t, "CursorPos", names[1])
	assert.Equal(t, "SetSingleShift3", names[len(names)-1])
	// every control has its own rule
	for _, c := range sequence.Controls() {
		assert.Contains(t, names, c.Name())
	}
}

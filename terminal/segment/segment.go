// Package segment groups a token sequence into segments that each end at a
// text block, and measures how many terminal cells each segment occupies.
package segment

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hnimtadd/ansiparse/logger"
	"github.com/hnimtadd/ansiparse/terminal/stream"
	"github.com/hnimtadd/ansiparse/terminal/utils"
	dw "github.com/mattn/go-runewidth"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rivo/uniseg"
)

type Options struct {
	// EastAsian counts characters of ambiguous width as two cells.
	EastAsian bool

	Logger logger.Logger
}

// Segment is a run of escape tokens closed by the text block they apply
// to. The last segment of a Text may have no text block.
type Segment struct {
	Parts []stream.Token
	// Width is the display width of the text blocks in Parts. Escapes take
	// no cells.
	Width int
}

// Hash identifies a segment by the kind and text of its parts plus its
// width.
func (s Segment) Hash() uint64 {
	key := struct {
		Types []stream.TokenType
		Texts []string
		Width int
	}{
		Types: make([]stream.TokenType, len(s.Parts)),
		Texts: make([]string, len(s.Parts)),
		Width: s.Width,
	}
	for i, p := range s.Parts {
		key.Types[i] = p.Type
		key.Texts[i] = p.String()
	}
	hashed, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash segment: %v", err))
	return hashed
}

func (s Segment) Equals(other Segment) bool {
	return s.Hash() == other.Hash()
}

// Text is a tokenized string. Parts is an owned slice; its text blocks
// still point into Source.
type Text struct {
	Source string
	Parts  []stream.Token

	cond   *dw.Condition
	logger logger.Logger
}

func NewText(input string, opts Options) *Text {
	l := logger.OrDefault(opts.Logger)
	cond := dw.NewCondition()
	cond.EastAsianWidth = opts.EastAsian
	return &Text{
		Source: input,
		Parts:  slices.Collect(stream.NewTokenizer(input, stream.Options{Logger: l}).Iter()),
		cond:   cond,
		logger: l,
	}
}

// Segments returns the parts grouped into segments delimited by text blocks.
//
// Escapes after the last text block form a trailing segment of width zero.
func (t *Text) Segments() []Segment {
	var (
		segments []Segment
		current  Segment
	)
	for _, part := range t.Parts {
		current.Parts = append(current.Parts, part)
		if part.IsText() {
			segments = append(segments, current)
			current = Segment{}
		}
	}

	// Take care of the dangling segment.
	if len(current.Parts) > 0 && !slices.ContainsFunc(segments, current.Equals) {
		segments = append(segments, current)
	}

	for i := range segments {
		for _, part := range segments[i].Parts {
			if part.IsText() {
				segments[i].Width += t.width(part.Text)
			}
		}
	}
	t.logger.Debug("segmented text", "parts", len(t.Parts), "segments", len(segments))
	return segments
}

// Width returns the display width of all text blocks.
func (t *Text) Width() int {
	total := 0
	for _, part := range t.Parts {
		if part.IsText() {
			total += t.width(part.Text)
		}
	}
	return total
}

// Plain returns the text blocks concatenated, without escape sequences.
func (t *Text) Plain() string {
	b := new(strings.Builder)
	for _, part := range t.Parts {
		if part.IsText() {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// width measures s one grapheme cluster at a time. A cluster is as wide as
// its first rune, so combining marks and emoji modifiers add nothing.
func (t *Text) width(s string) int {
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += t.cond.RuneWidth(r)
	}
	return w
}

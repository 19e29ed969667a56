package parser

import (
	"github.com/hnimtadd/ansiparse/terminal/sequence"
)

// rule matches one grammar anchored right after the introducer.
type rule struct {
	name  string
	match func(sc *scanner) (sequence.Sequence, bool)
}

// Cursor parameters default to 1 when their digits are omitted.
const defaultCursorParam = 1

// literal matches the fixed encoding of a parameterless control.
func literal(c sequence.Control) rule {
	return rule{
		name: c.Name(),
		match: func(sc *scanner) (sequence.Sequence, bool) {
			return c, sc.tag(c.Literal())
		},
	}
}

// CSI row? ;? col? (H | f)
var cursorPos = rule{
	name: "CursorPos",
	match: func(sc *scanner) (sequence.Sequence, bool) {
		if !sc.tag("[") {
			return nil, false
		}
		row, ok := sc.numberOr(32, defaultCursorParam)
		if !ok {
			return nil, false
		}
		sc.tag(";")
		col, ok := sc.numberOr(32, defaultCursorParam)
		if !ok {
			return nil, false
		}
		if !sc.oneOf('H', 'f') {
			return nil, false
		}
		return sequence.CursorPos{Row: uint32(row), Col: uint32(col)}, true
	},
}

// CSI n? final
func cursorMove(name string, final byte, build func(n uint32) sequence.Sequence) rule {
	return rule{
		name: name,
		match: func(sc *scanner) (sequence.Sequence, bool) {
			if !sc.tag("[") {
				return nil, false
			}
			n, ok := sc.numberOr(32, defaultCursorParam)
			if !ok || !sc.oneOf(final) {
				return nil, false
			}
			return build(uint32(n)), true
		},
	}
}

// graphicsMode matches CSI with exactly n semicolon separated codes
// followed by m. Codes must fit in a byte.
func graphicsMode(n int) rule {
	return rule{
		name: "SetGraphicsMode",
		match: func(sc *scanner) (sequence.Sequence, bool) {
			if !sc.tag("[") {
				return nil, false
			}
			codes := make([]uint8, 0, n)
			for i := range n {
				if i > 0 && !sc.tag(";") {
					return nil, false
				}
				code, ok := sc.number(8)
				if !ok {
					return nil, false
				}
				codes = append(codes, uint8(code))
			}
			if !sc.tag("m") {
				return nil, false
			}
			m, err := sequence.GraphicsMode(codes...)
			if err != nil {
				return nil, false
			}
			return m, true
		},
	}
}

// CSI = mode final
func mode(name string, final byte, build func(mode uint8) sequence.Sequence) rule {
	return rule{
		name: name,
		match: func(sc *scanner) (sequence.Sequence, bool) {
			if !sc.tag("[=") {
				return nil, false
			}
			m, ok := sc.number(8)
			if !ok || !sc.oneOf(final) {
				return nil, false
			}
			return build(uint8(m)), true
		},
	}
}

// CSI top ; bottom r
var setTopAndBottom = rule{
	name: "SetTopAndBottom",
	match: func(sc *scanner) (sequence.Sequence, bool) {
		if !sc.tag("[") {
			return nil, false
		}
		top, ok := sc.number(32)
		if !ok || !sc.tag(";") {
			return nil, false
		}
		bottom, ok := sc.number(32)
		if !ok || !sc.tag("r") {
			return nil, false
		}
		return sequence.SetTopAndBottom{Top: uint32(top), Bottom: uint32(bottom)}, true
	},
}

// rules in priority order. Several grammars share the CSI prefix, so the
// order decides which one wins; it must not be rearranged.
var rules = []rule{
	literal(sequence.Escape),
	cursorPos,
	cursorMove("CursorUp", 'A', func(n uint32) sequence.Sequence { return sequence.CursorUp{N: n} }),
	cursorMove("CursorDown", 'B', func(n uint32) sequence.Sequence { return sequence.CursorDown{N: n} }),
	cursorMove("CursorForward", 'C', func(n uint32) sequence.Sequence { return sequence.CursorForward{N: n} }),
	cursorMove("CursorBackward", 'D', func(n uint32) sequence.Sequence { return sequence.CursorBackward{N: n} }),
	literal(sequence.CursorSave),
	literal(sequence.CursorRestore),
	literal(sequence.EraseDisplay),
	literal(sequence.EraseLine),
	graphicsMode(1),
	graphicsMode(2),
	graphicsMode(3),
	graphicsMode(0),
	graphicsMode(5),
	mode("SetMode", 'h', func(m uint8) sequence.Sequence { return sequence.SetMode{Mode: m} }),
	mode("ResetMode", 'l', func(m uint8) sequence.Sequence { return sequence.ResetMode{Mode: m} }),
	literal(sequence.HideCursor),
	literal(sequence.ShowCursor),
	literal(sequence.CursorToApp),
	literal(sequence.SetNewLineMode),
	literal(sequence.SetCol132),
	literal(sequence.SetSmoothScroll),
	literal(sequence.SetReverseVideo),
	literal(sequence.SetOriginRelative),
	literal(sequence.SetAutoWrap),
	literal(sequence.SetAutoRepeat),
	literal(sequence.SetInterlacing),
	literal(sequence.SetLineFeedMode),
	literal(sequence.SetCursorKeyToCursor),
	literal(sequence.SetVT52),
	literal(sequence.SetCol80),
	literal(sequence.SetJumpScrolling),
	literal(sequence.SetNormalVideo),
	literal(sequence.SetOriginAbsolute),
	literal(sequence.ResetAutoWrap),
	literal(sequence.ResetAutoRepeat),
	literal(sequence.ResetInterlacing),
	setTopAndBottom,
	literal(sequence.SetAlternateKeypad),
	literal(sequence.SetNumericKeypad),
	literal(sequence.SetUKG0),
	literal(sequence.SetUKG1),
	literal(sequence.SetUSG0),
	literal(sequence.SetUSG1),
	literal(sequence.SetG0SpecialChars),
	literal(sequence.SetG1SpecialChars),
	literal(sequence.SetG0AlternateChar),
	literal(sequence.SetG1AlternateChar),
	literal(sequence.SetG0AltAndSpecialGraph),
	literal(sequence.SetG1AltAndSpecialGraph),
	literal(sequence.SetSingleShift2),
	literal(sequence.SetSingleShift3),
}

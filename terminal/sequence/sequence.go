// Package sequence defines the closed set of escape sequences recognized by
// the parser and their canonical textual encodings.
//
// Every value renders itself, introducer included, through String. Rendering
// always writes explicit digits, so parsing a rendered value yields an equal
// value even when the original text relied on defaults.
package sequence

// Sequence is a recognized escape sequence. The set of implementations is
// closed: only types in this package satisfy it, and every implementation is
// a comparable value type.
type Sequence interface {
	// String returns the canonical encoding, starting with ESC.
	String() string
	// Name returns the variant name, e.g. "CursorPos".
	Name() string

	isSequence()
}

const introducer = "\x1b"

// Control is a sequence without parameters. Each Control encodes to one
// fixed literal.
type Control uint8

const (
	// Escape is an introducer immediately followed by another introducer.
	Escape Control = iota
	CursorSave
	CursorRestore
	EraseDisplay
	EraseLine
	HideCursor
	ShowCursor
	CursorToApp
	SetNewLineMode
	SetCol132
	SetSmoothScroll
	SetReverseVideo
	SetOriginRelative
	SetAutoWrap
	SetAutoRepeat
	SetInterlacing
	SetLineFeedMode
	SetCursorKeyToCursor
	SetVT52
	SetCol80
	SetJumpScrolling
	SetNormalVideo
	SetOriginAbsolute
	ResetAutoWrap
	ResetAutoRepeat
	ResetInterlacing
	SetAlternateKeypad
	SetNumericKeypad
	SetUKG0
	SetUKG1
	SetUSG0
	SetUSG1
	SetG0SpecialChars
	SetG1SpecialChars
	SetG0AlternateChar
	SetG1AlternateChar
	SetG0AltAndSpecialGraph
	SetG1AltAndSpecialGraph
	SetSingleShift2
	SetSingleShift3

	controlCount
)

// literal is the text following the introducer.
var controls = [controlCount]struct {
	name    string
	literal string
}{
	Escape:                  {"Escape", "\x1b"},
	CursorSave:              {"CursorSave", "[s"},
	CursorRestore:           {"CursorRestore", "[u"},
	EraseDisplay:            {"EraseDisplay", "[2J"},
	EraseLine:               {"EraseLine", "[K"},
	HideCursor:              {"HideCursor", "[?25l"},
	ShowCursor:              {"ShowCursor", "[?25h"},
	CursorToApp:             {"CursorToApp", "[?1h"},
	SetNewLineMode:          {"SetNewLineMode", "[20h"},
	SetCol132:               {"SetCol132", "[?3h"},
	SetSmoothScroll:         {"SetSmoothScroll", "[?4h"},
	SetReverseVideo:         {"SetReverseVideo", "[?5h"},
	SetOriginRelative:       {"SetOriginRelative", "[?6h"},
	SetAutoWrap:             {"SetAutoWrap", "[?7h"},
	SetAutoRepeat:           {"SetAutoRepeat", "[?8h"},
	SetInterlacing:          {"SetInterlacing", "[?9h"},
	SetLineFeedMode:         {"SetLineFeedMode", "[20l"},
	SetCursorKeyToCursor:    {"SetCursorKeyToCursor", "[?1l"},
	SetVT52:                 {"SetVT52", "[?2l"},
	SetCol80:                {"SetCol80", "[?3l"},
	SetJumpScrolling:        {"SetJumpScrolling", "[?4l"},
	SetNormalVideo:          {"SetNormalVideo", "[?5l"},
	SetOriginAbsolute:       {"SetOriginAbsolute", "[?6l"},
	ResetAutoWrap:           {"ResetAutoWrap", "[?7l"},
	ResetAutoRepeat:         {"ResetAutoRepeat", "[?8l"},
	ResetInterlacing:        {"ResetInterlacing", "[?9l"},
	SetAlternateKeypad:      {"SetAlternateKeypad", "="},
	SetNumericKeypad:        {"SetNumericKeypad", ">"},
	SetUKG0:                 {"SetUKG0", "(A"},
	SetUKG1:                 {"SetUKG1", ")A"},
	SetUSG0:                 {"SetUSG0", "(B"},
	SetUSG1:                 {"SetUSG1", ")B"},
	SetG0SpecialChars:       {"SetG0SpecialChars", "(0"},
	SetG1SpecialChars:       {"SetG1SpecialChars", ")0"},
	SetG0AlternateChar:      {"SetG0AlternateChar", "(1"},
	SetG1AlternateChar:      {"SetG1AlternateChar", ")1"},
	SetG0AltAndSpecialGraph: {"SetG0AltAndSpecialGraph", "(2"},
	SetG1AltAndSpecialGraph: {"SetG1AltAndSpecialGraph", ")2"},
	SetSingleShift2:         {"SetSingleShift2", "N"},
	SetSingleShift3:         {"SetSingleShift3", "O"},
}

// Controls returns every Control in declaration order.
func Controls() []Control {
	out := make([]Control, 0, controlCount)
	for c := range controlCount {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is one of the declared controls.
func (c Control) Valid() bool { return c < controlCount }

// Literal returns the encoding of c without the leading introducer.
func (c Control) Literal() string {
	if !c.Valid() {
		return ""
	}
	return controls[c].literal
}

func (c Control) String() string {
	return introducer + c.Literal()
}

func (c Control) Name() string {
	if !c.Valid() {
		return "Unknown"
	}
	return controls[c].name
}

func (Control) isSequence() {}

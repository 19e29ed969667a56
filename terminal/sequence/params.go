package sequence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CursorPos moves the cursor to Row, Col. Both are 1-based.
type CursorPos struct {
	Row, Col uint32
}

func (s CursorPos) String() string {
	return fmt.Sprintf(introducer+"[%d;%dH", s.Row, s.Col)
}

func (CursorPos) Name() string { return "CursorPos" }
func (CursorPos) isSequence() {}

// CursorUp moves the cursor N rows up.
type CursorUp struct{ N uint32 }

func (s CursorUp) String() string { return fmt.Sprintf(introducer+"[%dA", s.N) }
func (CursorUp) Name() string { return "CursorUp" }
func (CursorUp) isSequence() {}

// CursorDown moves the cursor N rows down.
type CursorDown struct{ N uint32 }

func (s CursorDown) String() string { return fmt.Sprintf(introducer+"[%dB", s.N) }
func (CursorDown) Name() string { return "CursorDown" }
func (CursorDown) isSequence() {}

// CursorForward moves the cursor N columns right.
type CursorForward struct{ N uint32 }

func (s CursorForward) String() string { return fmt.Sprintf(introducer+"[%dC", s.N) }
func (CursorForward) Name() string { return "CursorForward" }
func (CursorForward) isSequence() {}

// CursorBackward moves the cursor N columns left.
type CursorBackward struct{ N uint32 }

func (s CursorBackward) String() string { return fmt.Sprintf(introducer+"[%dD", s.N) }
func (CursorBackward) Name() string { return "CursorBackward" }
func (CursorBackward) isSequence() {}

// SetMode is ESC [ = mode h.
type SetMode struct{ Mode uint8 }

func (s SetMode) String() string { return fmt.Sprintf(introducer+"[=%dh", s.Mode) }
func (SetMode) Name() string { return "SetMode" }
func (SetMode) isSequence() {}

// ResetMode is ESC [ = mode l.
type ResetMode struct{ Mode uint8 }

func (s ResetMode) String() string { return fmt.Sprintf(introducer+"[=%dl", s.Mode) }
func (ResetMode) Name() string { return "ResetMode" }
func (ResetMode) isSequence() {}

// SetTopAndBottom sets the scrolling region.
type SetTopAndBottom struct {
	Top, Bottom uint32
}

func (s SetTopAndBottom) String() string {
	return fmt.Sprintf(introducer+"[%d;%dr", s.Top, s.Bottom)
}

func (SetTopAndBottom) Name() string { return "SetTopAndBottom" }
func (SetTopAndBottom) isSequence() {}

// MaxGraphicsCodes is the largest number of codes a SetGraphicsMode holds.
const MaxGraphicsCodes = 5

var ErrGraphicsModeArity = errors.New("graphics mode takes 0, 1, 2, 3 or 5 codes")

// SetGraphicsMode is SGR with up to MaxGraphicsCodes codes. An empty mode
// encodes as ESC [ m.
//
// The codes live in a fixed array so the value stays comparable.
type SetGraphicsMode struct {
	codes [MaxGraphicsCodes]uint8
	n     uint8
}

// GraphicsArity reports whether n codes form an encodable graphics mode.
// Four codes are not part of the grammar.
func GraphicsArity(n int) bool {
	switch n {
	case 0, 1, 2, 3, 5:
		return true
	default:
		return false
	}
}

// GraphicsMode builds a SetGraphicsMode from codes.
func GraphicsMode(codes ...uint8) (SetGraphicsMode, error) {
	if !GraphicsArity(len(codes)) {
		return SetGraphicsMode{}, fmt.Errorf("%w: got %d", ErrGraphicsModeArity, len(codes))
	}
	var m SetGraphicsMode
	m.n = uint8(copy(m.codes[:], codes))
	return m, nil
}

// MustGraphicsMode is like GraphicsMode but panics on an invalid arity.
func MustGraphicsMode(codes ...uint8) SetGraphicsMode {
	m, err := GraphicsMode(codes...)
	if err != nil {
		panic(err)
	}
	return m
}

// Codes returns a copy of the codes in order.
func (s SetGraphicsMode) Codes() []uint8 {
	out := make([]uint8, s.n)
	copy(out, s.codes[:s.n])
	return out
}

// Len returns the number of codes.
func (s SetGraphicsMode) Len() int { return int(s.n) }

func (s SetGraphicsMode) String() string {
	b := new(strings.Builder)
	b.WriteString(introducer + "[")
	for i, c := range s.codes[:s.n] {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	b.WriteByte('m')
	return b.String()
}

func (SetGraphicsMode) Name() string { return "SetGraphicsMode" }
func (SetGraphicsMode) isSequence() {}

// Describe returns a debug form such as "CursorPos{Row: 1, Col: 2}".
func Describe(s Sequence) string {
	switch v := s.(type) {
	case nil:
		return "<nil>"
	case Control:
		return v.Name()
	case CursorPos:
		return fmt.Sprintf("CursorPos{Row: %d, Col: %d}", v.Row, v.Col)
	case CursorUp:
		return fmt.Sprintf("CursorUp{%d}", v.N)
	case CursorDown:
		return fmt.Sprintf("CursorDown{%d}", v.N)
	case CursorForward:
		return fmt.Sprintf("CursorForward{%d}", v.N)
	case CursorBackward:
		return fmt.Sprintf("CursorBackward{%d}", v.N)
	case SetMode:
		return fmt.Sprintf("SetMode{%d}", v.Mode)
	case ResetMode:
		return fmt.Sprintf("ResetMode{%d}", v.Mode)
	case SetTopAndBottom:
		return fmt.Sprintf("SetTopAndBottom{Top: %d, Bottom: %d}", v.Top, v.Bottom)
	case SetGraphicsMode:
		return fmt.Sprintf("SetGraphicsMode%v", v.Codes())
	default:
		return s.Name()
	}
}

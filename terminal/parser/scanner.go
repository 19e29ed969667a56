package parser

import "strconv"

// scanner is a forward-only cursor over the text following an introducer.
// A rule that fails simply drops its scanner; nothing is shared between
// attempts.
type scanner struct {
	s   string
	pos int
}

// tag consumes lit if the remaining input starts with it.
func (sc *scanner) tag(lit string) bool {
	if len(sc.s)-sc.pos < len(lit) || sc.s[sc.pos:sc.pos+len(lit)] != lit {
		return false
	}
	sc.pos += len(lit)
	return true
}

// oneOf consumes a single byte if it is any of finals.
func (sc *scanner) oneOf(finals ...byte) bool {
	if sc.pos >= len(sc.s) {
		return false
	}
	for _, f := range finals {
		if sc.s[sc.pos] == f {
			sc.pos++
			return true
		}
	}
	return false
}

// digits consumes the longest run of ASCII digits, which may be empty.
func (sc *scanner) digits() string {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// number consumes one or more digits that fit in bitSize bits.
func (sc *scanner) number(bitSize int) (uint64, bool) {
	d := sc.digits()
	if d == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(d, 10, bitSize)
	if err != nil {
		return 0, false
	}
	return v, true
}

// numberOr is like number but an empty digit run yields def.
func (sc *scanner) numberOr(bitSize int, def uint64) (uint64, bool) {
	d := sc.digits()
	if d == "" {
		return def, true
	}
	v, err := strconv.ParseUint(d, 10, bitSize)
	if err != nil {
		return 0, false
	}
	return v, true
}

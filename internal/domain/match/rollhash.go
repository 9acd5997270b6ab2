package match

// Base is the Rabin-Karp polynomial base.
const Base int32 = 113

// All hash arithmetic is int32. Go defines signed overflow as two's-complement
// wraparound and the hash values depend on it, so none of these expressions
// may be widened to int or int64.

// HashOf returns Σ units[i]·Base^(len-1-i) mod 2^32, as a signed 32-bit value.
func HashOf(units []CharUnit) int32 {
	var h int32
	for _, c := range units {
		h = h*Base + int32(c)
	}
	return h
}

// pow32 returns Base^exp with wraparound.
func pow32(exp int) int32 {
	p := int32(1)
	for i := 0; i < exp; i++ {
		p *= Base
	}
	return p
}

// RollingHash is the hash of a fixed-width window that can be slid one unit
// at a time. The previous value is discarded on every Roll.
type RollingHash struct {
	value int32
	lead  int32 // Base^(width-1)
}

// NewRollingHash hashes the initial window. The leading-term power is
// computed once here, not per slide.
func NewRollingHash(window []CharUnit) *RollingHash {
	width := len(window)
	lead := int32(0)
	if width > 0 {
		lead = pow32(width - 1)
	}
	return &RollingHash{
		value: HashOf(window),
		lead:  lead,
	}
}

// Value returns the hash of the current window.
func (h *RollingHash) Value() int32 {
	return h.value
}

// Roll drops out from the left of the window and appends in on the right.
func (h *RollingHash) Roll(out, in CharUnit) {
	h.value = (h.value-int32(out)*h.lead)*Base + int32(in)
}

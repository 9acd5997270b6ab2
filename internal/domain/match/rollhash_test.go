package match

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Rolling hash: base 113, 32-bit signed wraparound
// Expectation: values equal Σ c·113^k mod 2^32 reinterpreted as int32, and a
// rolled window always equals a freshly hashed one.
// =============================================================================

// referenceHash computes the hash with explicit mod 2^32 arithmetic.
func referenceHash(units []CharUnit) int32 {
	var sum uint64
	for i, c := range units {
		p := uint64(1)
		for k := 0; k < len(units)-1-i; k++ {
			p = (p * 113) % (1 << 32)
		}
		sum = (sum + uint64(c)*p) % (1 << 32)
	}
	return int32(uint32(sum))
}

func TestHashOf_SmallValues(t *testing.T) {
	assert.Equal(t, int32(0), HashOf(nil))
	assert.Equal(t, int32('a'), HashOf(Units("a")))
	// 97·113² + 98·113 + 99
	assert.Equal(t, int32(1249766), HashOf(Units("abc")))
}

func TestHashOf_WrapsLikeInt32(t *testing.T) {
	long := Units("the quick brown fox jumps over the lazy dog")
	assert.Equal(t, referenceHash(long), HashOf(long))

	// 113^5 alone exceeds 2^31, so this must have wrapped at least once.
	six := Units("zzzzzz")
	assert.Equal(t, referenceHash(six), HashOf(six))
}

func TestHashOf_HighUnits(t *testing.T) {
	units := []CharUnit{0xFFFF, 0xD83D, 0xDE00, 0x0001, 0xFFFF}
	assert.Equal(t, referenceHash(units), HashOf(units))
}

func TestPow32(t *testing.T) {
	assert.Equal(t, int32(1), pow32(0))
	assert.Equal(t, int32(113), pow32(1))
	assert.Equal(t, int32(163047361), pow32(4))
	// 113^5 = 18424351793 ≡ 1244482609 (mod 2^32)
	assert.Equal(t, int32(1244482609), pow32(5))
}

func TestRollingHash_RollMatchesFreshHash(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	text := make([]CharUnit, 500)
	for i := range text {
		text[i] = CharUnit(rng.Intn(0x10000))
	}

	for _, width := range []int{1, 2, 5, 6, 17} {
		h := NewRollingHash(text[:width])
		assert.Equal(t, HashOf(text[:width]), h.Value())
		for i := 1; i+width <= len(text); i++ {
			h.Roll(text[i-1], text[i+width-1])
			if !assert.Equal(t, HashOf(text[i:i+width]), h.Value(), "width %d offset %d", width, i) {
				return
			}
		}
	}
}

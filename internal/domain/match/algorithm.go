package match

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects one of the four search procedures.
type Algorithm int

const (
	Naive Algorithm = iota
	KMP
	BoyerMoore
	RabinKarp
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name outside the
// four supported ones.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, KMP, BoyerMoore, RabinKarp}
}

// String returns the display name used in summaries and results files.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "Naive (brute-force)"
	case KMP:
		return "Knuth-Morris-Pratt"
	case BoyerMoore:
		return "Boyer-Moore"
	case RabinKarp:
		return "Rabin-Karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Slug returns the command-line name.
func (a Algorithm) Slug() string {
	switch a {
	case Naive:
		return "naive"
	case KMP:
		return "kmp"
	case BoyerMoore:
		return "boyer-moore"
	case RabinKarp:
		return "rabin-karp"
	default:
		return ""
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= Naive && a <= RabinKarp
}

// ParseAlgorithm accepts a slug or a short alias, case-insensitively.
//
//	naive, bf, brute-force
//	kmp, knuth-morris-pratt
//	bm, boyer-moore
//	rk, rabin-karp
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "naive", "bf", "brute-force":
		return Naive, nil
	case "kmp", "knuth-morris-pratt":
		return KMP, nil
	case "bm", "boyer-moore", "boyermoore":
		return BoyerMoore, nil
	case "rk", "rabin-karp", "rabinkarp":
		return RabinKarp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

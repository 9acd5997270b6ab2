package match

import (
	"errors"
	"fmt"
)

// InvalidInputKind classifies why a (pattern, text) pair was rejected.
type InvalidInputKind int

const (
	// Empty means the pattern or the text has zero length.
	Empty InvalidInputKind = iota + 1
	// PatternTooLong means the pattern is longer than the text.
	PatternTooLong
)

func (k InvalidInputKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case PatternTooLong:
		return "pattern too long"
	default:
		return fmt.Sprintf("InvalidInputKind(%d)", int(k))
	}
}

// Sentinels for errors.Is. Validate never returns these directly; it returns
// an *InvalidInputError that matches the sentinel of its Kind.
var (
	ErrEmpty          = errors.New("the sequence and pattern fields must be filled")
	ErrPatternTooLong = errors.New("target pattern cannot be longer than text")
)

// InvalidInputError is returned when input fails validation. No matcher runs
// and no partial result is produced.
type InvalidInputError struct {
	Kind       InvalidInputKind
	PatternLen int
	TextLen    int
}

func (e *InvalidInputError) Error() string {
	switch e.Kind {
	case Empty:
		return "input not valid: " + ErrEmpty.Error()
	case PatternTooLong:
		return fmt.Sprintf("input not valid: %s (pattern %d units, text %d units)",
			ErrPatternTooLong, e.PatternLen, e.TextLen)
	default:
		return "input not valid: " + e.Kind.String()
	}
}

// Is reports whether target is the sentinel for e.Kind.
func (e *InvalidInputError) Is(target error) bool {
	switch e.Kind {
	case Empty:
		return target == ErrEmpty
	case PatternTooLong:
		return target == ErrPatternTooLong
	}
	return false
}

// Validate gates every search. After it returns nil, matchers may assume
// 0 < len(pattern) <= len(text).
func Validate(pattern, text []CharUnit) error {
	if len(pattern) == 0 || len(text) == 0 {
		return &InvalidInputError{Kind: Empty, PatternLen: len(pattern), TextLen: len(text)}
	}
	if len(pattern) > len(text) {
		return &InvalidInputError{Kind: PatternTooLong, PatternLen: len(pattern), TextLen: len(text)}
	}
	return nil
}

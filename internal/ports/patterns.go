package ports

// ReferenceMatcher is an independent exact matcher used to cross-check the
// four engine algorithms. It shares no code with the engine, so agreement
// between them is meaningful.
type ReferenceMatcher interface {
	// FindAll returns the ascending UTF-16 code-unit offsets of every,
	// possibly overlapping, occurrence of pattern in text. Returns an
	// empty slice if there are none.
	FindAll(pattern, text string) []int
}

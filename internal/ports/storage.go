// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Application code
// depends only on these interfaces, never on concrete implementations.
package ports

import "github.com/corey/strsearch/internal/domain/match"

// Storage persists the search history. The backing store (bbolt) keeps one
// record per distinct (algorithm, pattern, text) triple; repeating a search
// bumps Runs and LastRun on the existing record instead of adding a new one.
//
// Crash safety: SaveRecord must be transactional. A crash mid-write must not
// corrupt previously committed records.
type Storage interface {
	// SaveRecord inserts rec, or merges it into the record with the same
	// fingerprint. Returns the record ID and sets rec.ID, rec.Runs and
	// rec.FirstRun to the stored values.
	SaveRecord(rec *SearchRecord) (uint64, error)

	// LoadRecord retrieves one record.
	// Returns nil, nil if no record has this ID.
	LoadRecord(id uint64) (*SearchRecord, error)

	// ListRecords returns up to limit records, most recently run first.
	// limit <= 0 means no limit.
	ListRecords(limit int) ([]*SearchRecord, error)

	// DeleteAll removes every record.
	// Idempotent: clearing an empty history is not an error.
	DeleteAll() error
}

// SearchRecord is one entry of the search history.
type SearchRecord struct {
	ID          uint64
	Fingerprint uint64 // xxhash of algorithm, pattern and text
	Algorithm   match.Algorithm
	Pattern     string
	Text        string
	Result      *match.MatchResult
	Runs        uint32 // how many times this exact search ran
	FirstRun    int64  // unix nanoseconds
	LastRun     int64  // unix nanoseconds
}

// Package bbolt implements the ports.Storage interface using bbolt (embedded B+ tree).
// Records live in the "records" bucket keyed by a big-endian sequence ID. The
// "fingerprints" bucket maps each search fingerprint to its record ID so that
// repeated searches merge into one record. Writes are transactional: a crash
// mid-write cannot corrupt previously committed data.
package bbolt

import (
	"encoding/binary"
	"fmt"
	"sort"
	"time"

	"github.com/corey/strsearch/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var (
	bucketRecords      = []byte("records")
	bucketFingerprints = []byte("fingerprints")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// itob encodes an ID or fingerprint as an 8-byte big-endian key so that
// cursor order equals numeric order.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// SaveRecord inserts rec or merges it into the record with the same fingerprint.
func (s *Store) SaveRecord(rec *ports.SearchRecord) (uint64, error) {
	if rec == nil || rec.Result == nil {
		return 0, fmt.Errorf("nil search record")
	}
	if rec.Fingerprint == 0 {
		rec.Fingerprint = Fingerprint(rec.Algorithm, rec.Pattern, rec.Text)
	}
	if rec.LastRun == 0 {
		rec.LastRun = s.now().UnixNano()
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		records, err := tx.CreateBucketIfNotExists(bucketRecords)
		if err != nil {
			return err
		}
		prints, err := tx.CreateBucketIfNotExists(bucketFingerprints)
		if err != nil {
			return err
		}

		fpKey := itob(rec.Fingerprint)
		if idBytes := prints.Get(fpKey); idBytes != nil {
			id := binary.BigEndian.Uint64(idBytes)
			prev, err := decodeRecord(records.Get(itob(id)))
			if err != nil {
				return fmt.Errorf("decode record %d: %w", id, err)
			}
			rec.ID = id
			rec.Runs = prev.Runs + 1
			rec.FirstRun = prev.FirstRun
		} else {
			id, err := records.NextSequence()
			if err != nil {
				return err
			}
			rec.ID = id
			if rec.Runs == 0 {
				rec.Runs = 1
			}
			if rec.FirstRun == 0 {
				rec.FirstRun = rec.LastRun
			}
			if err := prints.Put(fpKey, itob(id)); err != nil {
				return err
			}
		}

		data, err := encodeRecord(rec)
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		return records.Put(itob(rec.ID), data)
	})
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

// LoadRecord retrieves one record.
// Returns nil, nil if no record has this ID.
func (s *Store) LoadRecord(id uint64) (*ports.SearchRecord, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		if records == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := records.Get(itob(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	rec, err := decodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("decode record %d: %w", id, err)
	}
	rec.ID = id
	return rec, nil
}

// ListRecords returns up to limit records, most recently run first.
func (s *Store) ListRecords(limit int) ([]*ports.SearchRecord, error) {
	var out []*ports.SearchRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		records := tx.Bucket(bucketRecords)
		if records == nil {
			return nil
		}
		// decodeRecord copies everything it keeps, so no explicit copy here.
		return records.ForEach(func(k, v []byte) error {
			rec, err := decodeRecord(v)
			if err != nil {
				return fmt.Errorf("decode record %x: %w", k, err)
			}
			rec.ID = binary.BigEndian.Uint64(k)
			out = append(out, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastRun != out[j].LastRun {
			return out[i].LastRun > out[j].LastRun
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteAll removes every record.
// Idempotent: clearing an empty history is not an error.
func (s *Store) DeleteAll() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketRecords, bucketFingerprints} {
			if err := tx.DeleteBucket(name); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
		}
		return nil
	})
}

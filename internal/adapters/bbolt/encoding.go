// Binary encoding for search history records.
//
// A record is gob-encoded, except for the match indices which dominate the
// size of large results. Those are stored as a compact delta list:
//
//	count: uvarint
//	per match:
//	  delta: uvarint (index minus previous index; first delta is the index itself)
//
// Indices are ascending, so every delta is non-negative.
package bbolt

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/corey/strsearch/internal/domain/match"
	"github.com/corey/strsearch/internal/ports"
)

// Fingerprint identifies a search by algorithm, pattern and text. Fields are
// separated by a NUL so ("ab","c") and ("a","bc") hash differently.
func Fingerprint(alg match.Algorithm, pattern, text string) uint64 {
	d := xxhash.New()
	d.WriteString(alg.Slug())
	d.Write([]byte{0})
	d.WriteString(pattern)
	d.Write([]byte{0})
	d.WriteString(text)
	return d.Sum64()
}

// recordGob is the gob-serializable form of ports.SearchRecord.
// The ID is the bucket key and is not stored in the value.
type recordGob struct {
	Fingerprint uint64
	Algorithm   int
	Pattern     string
	Text        string
	Runs        uint32
	FirstRun    int64
	LastRun     int64

	Matches        int
	Comparisons    int
	Indices        []byte
	FailureTable   []int
	LastOccurrence map[uint16]int
	PatternHash    int32
}

func encodeRecord(rec *ports.SearchRecord) ([]byte, error) {
	r := rec.Result
	g := recordGob{
		Fingerprint:  rec.Fingerprint,
		Algorithm:    int(rec.Algorithm),
		Pattern:      rec.Pattern,
		Text:         rec.Text,
		Runs:         rec.Runs,
		FirstRun:     rec.FirstRun,
		LastRun:      rec.LastRun,
		Matches:      r.Matches,
		Comparisons:  r.Comparisons,
		Indices:      encodeIndices(r.Indices),
		FailureTable: r.FailureTable,
		PatternHash:  r.PatternHash,
	}
	if r.LastOccurrence != nil {
		g.LastOccurrence = make(map[uint16]int, len(r.LastOccurrence))
		for c, idx := range r.LastOccurrence {
			g.LastOccurrence[uint16(c)] = idx
		}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord(data []byte) (*ports.SearchRecord, error) {
	if data == nil {
		return nil, fmt.Errorf("missing record")
	}
	var g recordGob
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return nil, err
	}

	indices, err := decodeIndices(g.Indices)
	if err != nil {
		return nil, err
	}
	alg := match.Algorithm(g.Algorithm)
	if !alg.Valid() {
		return nil, fmt.Errorf("%w: %d", match.ErrUnknownAlgorithm, g.Algorithm)
	}

	result := &match.MatchResult{
		Algorithm:    alg,
		Matches:      g.Matches,
		Comparisons:  g.Comparisons,
		Indices:      indices,
		FailureTable: g.FailureTable,
		PatternHash:  g.PatternHash,
	}
	if g.LastOccurrence != nil {
		result.LastOccurrence = make(match.LastOccurrenceTable, len(g.LastOccurrence))
		for c, idx := range g.LastOccurrence {
			result.LastOccurrence[match.CharUnit(c)] = idx
		}
	}

	return &ports.SearchRecord{
		Fingerprint: g.Fingerprint,
		Algorithm:   alg,
		Pattern:     g.Pattern,
		Text:        g.Text,
		Result:      result,
		Runs:        g.Runs,
		FirstRun:    g.FirstRun,
		LastRun:     g.LastRun,
	}, nil
}

// encodeIndices encodes ascending indices as a uvarint delta list.
func encodeIndices(indices []int) []byte {
	buf := make([]byte, 0, binary.MaxVarintLen64*(len(indices)+1))
	buf = binary.AppendUvarint(buf, uint64(len(indices)))
	prev := 0
	for _, idx := range indices {
		buf = binary.AppendUvarint(buf, uint64(idx-prev))
		prev = idx
	}
	return buf
}

// decodeIndices decodes a delta list. Every read is bounds-checked to avoid
// panics on corrupt data. An empty list decodes to a non-nil empty slice.
func decodeIndices(data []byte) ([]int, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("index list: bad count header")
	}
	offset := n
	// each delta takes at least one byte
	if count > uint64(len(data)-offset) {
		return nil, fmt.Errorf("index list: count %d exceeds %d remaining bytes", count, len(data)-offset)
	}

	indices := make([]int, count)
	prev := 0
	for i := range indices {
		delta, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return nil, fmt.Errorf("index list: truncated at match %d (offset %d)", i, offset)
		}
		offset += n
		prev += int(delta)
		indices[i] = prev
	}
	return indices, nil
}

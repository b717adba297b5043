package store

import (
	"encoding/json"
	"log"
)

// Store is the local persistence layer: named collections of ordered records
// on top of a durable Backend. It is the sole writer of record contents; the
// mock router and the session layer share one instance.
//
// Read-modify-write cycles are not atomic across calls, matching the
// last-write-wins semantics of the storage area it models.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Backend() Backend {
	return s.backend
}

// Get returns the ordered records of a collection, or def when the collection
// is absent or unreadable. Corrupt data fails soft, not hard.
func (s *Store) Get(collection string, def []Record) []Record {
	raw, ok, err := s.backend.Get(collection)
	if err != nil || !ok {
		if err != nil {
			log.Printf("store: failed to read collection %s: %v", collection, err)
		}
		return def
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("store: corrupt data in collection %s: %v", collection, err)
		return def
	}
	return records
}

// Set durably overwrites the entire collection. Failures are reported as
// false, never raised.
func (s *Store) Set(collection string, records []Record) bool {
	if records == nil {
		records = []Record{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Printf("store: failed to encode collection %s: %v", collection, err)
		return false
	}
	if err := s.backend.Set(collection, raw); err != nil {
		log.Printf("store: failed to persist collection %s: %v", collection, err)
		return false
	}
	return true
}

// GetByID returns the first record whose identity matches id.
func (s *Store) GetByID(collection, id string) (Record, bool) {
	for _, rec := range s.Get(collection, nil) {
		if MatchesIdentity(collection, rec, id) {
			return rec, true
		}
	}
	return nil, false
}

// GetWhere returns all records satisfying the predicate, preserving order.
func (s *Store) GetWhere(collection string, pred func(Record) bool) []Record {
	var out []Record
	for _, rec := range s.Get(collection, nil) {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Add assigns an identity to the record if it carries none, appends it to the
// collection, persists, and returns the stored record.
func (s *Store) Add(collection string, rec Record) Record {
	stored := rec.Clone()
	EnsureIdentity(collection, stored)

	records := s.Get(collection, nil)
	records = append(records, stored)
	s.Set(collection, records)
	return stored
}

// Update shallow-merges partial into the first matching record: supplied
// fields overwrite, omitted fields persist. Returns the updated record, or
// false when no record matches.
func (s *Store) Update(collection, id string, partial Record) (Record, bool) {
	records := s.Get(collection, nil)
	for i, rec := range records {
		if !MatchesIdentity(collection, rec, id) {
			continue
		}
		merged := rec.Clone()
		for k, v := range partial {
			merged[k] = v
		}
		records[i] = merged
		s.Set(collection, records)
		return merged, true
	}
	return nil, false
}

// Remove deletes every record whose identity matches id and persists the
// result. It always reports success; removing an absent id is a no-op.
func (s *Store) Remove(collection, id string) bool {
	records := s.Get(collection, nil)
	kept := records[:0]
	for _, rec := range records {
		if !MatchesIdentity(collection, rec, id) {
			kept = append(kept, rec)
		}
	}
	s.Set(collection, kept)
	return true
}

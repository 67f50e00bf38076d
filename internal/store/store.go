// Package store holds the in-memory teacher collection. The collection
// lives exactly as long as the process; there is deliberately no
// persistence behind it.
package store

import (
	"strings"
	"sync"

	"github.com/sonquang/laixe-registry/internal/app/models"
	"github.com/sonquang/laixe-registry/internal/ingest"
)

// Filter selects a slice of the collection by contract or insurance state.
type Filter string

const (
	FilterAll          Filter = "ALL"
	FilterHasContract  Filter = "HAS_CONTRACT"
	FilterNoContract   Filter = "NO_CONTRACT"
	FilterHasInsurance Filter = "HAS_BHXH"
)

// ParseFilter maps a query-string value onto a known filter, defaulting to
// FilterAll for anything unrecognized.
func ParseFilter(raw string) Filter {
	switch Filter(strings.ToUpper(strings.TrimSpace(raw))) {
	case FilterHasContract:
		return FilterHasContract
	case FilterNoContract:
		return FilterNoContract
	case FilterHasInsurance:
		return FilterHasInsurance
	default:
		return FilterAll
	}
}

func (f Filter) matches(rec models.TeacherRecord) bool {
	switch f {
	case FilterHasContract:
		return rec.HasContract
	case FilterNoContract:
		return !rec.HasContract
	case FilterHasInsurance:
		return rec.HasInsurance
	default:
		return true
	}
}

// TeacherStore owns the collection for the lifetime of the process. All
// access goes through its methods; callers never share the backing slice.
type TeacherStore struct {
	mu      sync.RWMutex
	records []models.TeacherRecord
}

// NewTeacherStore creates a store seeded with an initial collection. The
// store takes ownership of the slice.
func NewTeacherStore(initial []models.TeacherRecord) *TeacherStore {
	return &TeacherStore{records: initial}
}

// Len reports the current collection size.
func (s *TeacherStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Snapshot returns a copy of the collection in insertion order.
func (s *TeacherStore) Snapshot() []models.TeacherRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeacherRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Get returns the record with the exact identifier.
func (s *TeacherStore) Get(id string) (models.TeacherRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.TeacherRecord{}, false
}

// List returns the records matching the filter, in insertion order.
func (s *TeacherStore) List(f Filter) []models.TeacherRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TeacherRecord, 0, len(s.records))
	for _, rec := range s.records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Find returns the first record within the filter whose identifier equals
// the term or whose full name contains it, both case-insensitive.
func (s *TeacherStore) Find(term string, f Filter) (models.TeacherRecord, bool) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return models.TeacherRecord{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records {
		if !f.matches(rec) {
			continue
		}
		if strings.ToLower(rec.ID) == needle || strings.Contains(strings.ToLower(rec.FullName), needle) {
			return rec, true
		}
	}
	return models.TeacherRecord{}, false
}

// Merge runs the collection merger against the current records and installs
// the merged result atomically under the write lock.
func (s *TeacherStore) Merge(batches []ingest.SheetBatch) ingest.MergeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := ingest.Merge(s.records, batches)
	s.records = result.Records
	return result
}

package ingest

import (
	"github.com/sonquang/laixe-registry/internal/app/models"
)

// SheetBatch is the mapped output of one worksheet, in source row order.
type SheetBatch struct {
	Sheet       string
	Records     []models.TeacherRecord
	HasDataRows bool
	Dropped     int
}

// MergeResult describes one merge. Skipped counts duplicate identifiers
// only; rows the mapper dropped are reported per batch.
type MergeResult struct {
	Records         []models.TeacherRecord
	Added           int
	Skipped         int
	ProcessedSheets []string
	HadDataRows     bool
}

// Merge appends candidate records onto the existing collection, batch by
// batch in the order given. Identifiers stay unique across the result: a
// candidate whose identifier is already present, whether in the existing
// collection or earlier in the same merge, is skipped and counted, never
// overwritten. The existing slice is not mutated.
func Merge(existing []models.TeacherRecord, batches []SheetBatch) MergeResult {
	capacity := len(existing)
	for _, b := range batches {
		capacity += len(b.Records)
	}
	merged := make([]models.TeacherRecord, len(existing), capacity)
	copy(merged, existing)

	seen := make(map[string]struct{}, capacity)
	for _, rec := range existing {
		seen[rec.ID] = struct{}{}
	}

	result := MergeResult{ProcessedSheets: make([]string, 0, len(batches))}
	for _, batch := range batches {
		result.ProcessedSheets = append(result.ProcessedSheets, batch.Sheet)
		if batch.HasDataRows {
			result.HadDataRows = true
		}
		for _, rec := range batch.Records {
			if _, dup := seen[rec.ID]; dup {
				result.Skipped++
				continue
			}
			seen[rec.ID] = struct{}{}
			merged = append(merged, rec)
			result.Added++
		}
	}
	result.Records = merged
	return result
}

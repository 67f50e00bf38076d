package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonquang/laixe-registry/internal/app/models"
)

func recordsWithIDs(ids ...string) []models.TeacherRecord {
	out := make([]models.TeacherRecord, len(ids))
	for i, id := range ids {
		out[i] = models.TeacherRecord{ID: id, FullName: "GV " + id}
	}
	return out
}

func TestMergeFirstWriteWins(t *testing.T) {
	existing := recordsWithIDs("1", "2")
	batches := []SheetBatch{
		{Sheet: "DS CŨ", Records: recordsWithIDs("2", "3", "3"), HasDataRows: true},
		{Sheet: "KO KÝ HĐ", Records: recordsWithIDs("4"), HasDataRows: true},
	}

	result := Merge(existing, batches)

	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, []string{"DS CŨ", "KO KÝ HĐ"}, result.ProcessedSheets)
	assert.True(t, result.HadDataRows)

	ids := make([]string, len(result.Records))
	for i, rec := range result.Records {
		ids[i] = rec.ID
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)

	// The record kept for id 2 is the existing one, not the candidate.
	assert.Equal(t, "GV 2", result.Records[1].FullName)
}

func TestMergeDoesNotMutateExisting(t *testing.T) {
	existing := recordsWithIDs("1")
	snapshot := make([]models.TeacherRecord, len(existing))
	copy(snapshot, existing)

	result := Merge(existing, []SheetBatch{
		{Sheet: "DS CŨ", Records: recordsWithIDs("2"), HasDataRows: true},
	})

	assert.Equal(t, snapshot, existing)
	require.Len(t, result.Records, 2)

	// Appending to the result must not leak into the input either.
	result.Records[0].FullName = "changed"
	assert.Equal(t, "GV 1", existing[0].FullName)
}

func TestMergeEmptyBatches(t *testing.T) {
	existing := recordsWithIDs("1")

	result := Merge(existing, nil)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 0, result.Skipped)
	assert.False(t, result.HadDataRows)
	assert.Len(t, result.Records, 1)

	// A header-only sheet is processed but contributes no data rows.
	result = Merge(existing, []SheetBatch{{Sheet: "BHXH BB+HT"}})
	assert.Equal(t, []string{"BHXH BB+HT"}, result.ProcessedSheets)
	assert.False(t, result.HadDataRows)
}

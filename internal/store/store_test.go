package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonquang/laixe-registry/internal/app/models"
	"github.com/sonquang/laixe-registry/internal/ingest"
)

func seedRecords() []models.TeacherRecord {
	return []models.TeacherRecord{
		{ID: "1", FullName: "Nguyễn Văn An", HasContract: true, HasInsurance: true},
		{ID: "2", FullName: "Lê Thị Bình", HasContract: false, HasInsurance: false},
		{ID: "3", FullName: "Phạm Văn Cường", HasContract: true, HasInsurance: false},
	}
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("nonsense"))
	assert.Equal(t, FilterHasContract, ParseFilter("has_contract"))
	assert.Equal(t, FilterNoContract, ParseFilter(" NO_CONTRACT "))
	assert.Equal(t, FilterHasInsurance, ParseFilter("HAS_BHXH"))
}

func TestStoreGetAndList(t *testing.T) {
	st := NewTeacherStore(seedRecords())
	assert.Equal(t, 3, st.Len())

	rec, ok := st.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Lê Thị Bình", rec.FullName)

	_, ok = st.Get("99")
	assert.False(t, ok)

	withContract := st.List(FilterHasContract)
	require.Len(t, withContract, 2)
	assert.Equal(t, "1", withContract[0].ID)
	assert.Equal(t, "3", withContract[1].ID)

	assert.Len(t, st.List(FilterNoContract), 1)
	assert.Len(t, st.List(FilterHasInsurance), 1)
	assert.Len(t, st.List(FilterAll), 3)
}

func TestStoreFind(t *testing.T) {
	st := NewTeacherStore(seedRecords())

	// Exact identifier match, case-insensitive.
	rec, ok := st.Find("2", FilterAll)
	require.True(t, ok)
	assert.Equal(t, "2", rec.ID)

	// Name substring match.
	rec, ok = st.Find("bình", FilterAll)
	require.True(t, ok)
	assert.Equal(t, "2", rec.ID)

	// Filter narrows the search.
	_, ok = st.Find("bình", FilterHasContract)
	assert.False(t, ok)

	// Blank queries never match.
	_, ok = st.Find("   ", FilterAll)
	assert.False(t, ok)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	st := NewTeacherStore(seedRecords())
	snap := st.Snapshot()
	snap[0].FullName = "changed"

	rec, _ := st.Get("1")
	assert.Equal(t, "Nguyễn Văn An", rec.FullName)
}

func TestStoreMerge(t *testing.T) {
	st := NewTeacherStore(seedRecords())

	result := st.Merge([]ingest.SheetBatch{{
		Sheet:       "DS CŨ",
		HasDataRows: true,
		Records: []models.TeacherRecord{
			{ID: "3", FullName: "duplicate"},
			{ID: "4", FullName: "Trần Văn Dũng"},
		},
	}})

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 4, st.Len())

	// First write wins: the original record for id 3 survives.
	rec, _ := st.Get("3")
	assert.Equal(t, "Phạm Văn Cường", rec.FullName)

	rec, ok := st.Get("4")
	require.True(t, ok)
	assert.Equal(t, "Trần Văn Dũng", rec.FullName)
}

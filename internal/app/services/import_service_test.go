package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sonquang/laixe-registry/internal/app/models"
	"github.com/sonquang/laixe-registry/internal/pkg/apperrors"
	"github.com/sonquang/laixe-registry/internal/store"
)

var testWhitelist = []string{"DS CŨ", "BHXH BB+HT", "KO KÝ HĐ"}

func workbookRow(id string) []interface{} {
	values := make([]interface{}, 25)
	for i := range values {
		values[i] = ""
	}
	values[0] = id          // identifier
	values[1] = "GV " + id  // full name
	values[4] = "Nam"       // gender
	values[23] = "BB"       // insurance code
	return values
}

func buildTestWorkbook(t *testing.T, sheets []string, rows map[string][][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for rowIdx, row := range rows[name] {
			for colIdx, v := range row {
				axis, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, axis, v))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func headerCells() []interface{} {
	header := make([]interface{}, 25)
	for i := range header {
		header[i] = "c"
	}
	return header
}

func TestImportWorkbook(t *testing.T) {
	st := store.NewTeacherStore([]models.TeacherRecord{{ID: "1", FullName: "existing"}})
	svc := NewImportService(st, testWhitelist)

	reader := buildTestWorkbook(t,
		[]string{"DS CŨ", "Ghi chú"},
		map[string][][]interface{}{
			"DS CŨ":   {headerCells(), workbookRow("1"), workbookRow("2")},
			"Ghi chú": {headerCells(), workbookRow("9")},
		})

	summary, err := svc.ImportWorkbook(reader)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.AddedCount)
	assert.Equal(t, 1, summary.SkippedCount)
	assert.Equal(t, []string{"DS CŨ"}, summary.ProcessedSheets)
	assert.True(t, summary.HadDataRows)
	assert.Contains(t, summary.Message, "Đã thêm 1")

	// The whitelisted sheet merged, the other one was ignored entirely.
	assert.Equal(t, 2, st.Len())
	_, ok := st.Get("9")
	assert.False(t, ok)

	// First write wins for the duplicate identifier.
	rec, _ := st.Get("1")
	assert.Equal(t, "existing", rec.FullName)
}

func TestImportWorkbookDecodeFailureLeavesCollectionUntouched(t *testing.T) {
	st := store.NewTeacherStore([]models.TeacherRecord{{ID: "1"}})
	svc := NewImportService(st, testWhitelist)

	_, err := svc.ImportWorkbook(strings.NewReader("not an xlsx file"))
	assert.ErrorIs(t, err, apperrors.ErrWorkbookDecode)
	assert.Equal(t, 1, st.Len())
}

func TestImportWorkbookFallsBackWhenNoSheetMatchesWhitelist(t *testing.T) {
	st := store.NewTeacherStore(nil)
	svc := NewImportService(st, testWhitelist)

	reader := buildTestWorkbook(t,
		[]string{"Tab khác", "Tab nữa"},
		map[string][][]interface{}{
			"Tab khác": {headerCells(), workbookRow("1")},
			"Tab nữa":  {headerCells(), workbookRow("2")},
		})

	summary, err := svc.ImportWorkbook(reader)
	require.NoError(t, err)

	// No whitelisted name is present, so every sheet is merged.
	assert.Equal(t, 2, summary.AddedCount)
	assert.Equal(t, []string{"Tab khác", "Tab nữa"}, summary.ProcessedSheets)
	assert.Equal(t, 2, st.Len())
}

func TestImportWorkbookNoDataRows(t *testing.T) {
	st := store.NewTeacherStore(nil)
	svc := NewImportService(st, testWhitelist)

	reader := buildTestWorkbook(t,
		[]string{"DS CŨ"},
		map[string][][]interface{}{
			"DS CŨ": {headerCells()},
		})

	_, err := svc.ImportWorkbook(reader)
	assert.ErrorIs(t, err, apperrors.ErrNoDataRows)
	assert.Equal(t, 0, st.Len())
}

func TestImportWorkbookEmptyWhitelistAcceptsEverySheet(t *testing.T) {
	st := store.NewTeacherStore(nil)
	svc := NewImportService(st, nil)

	reader := buildTestWorkbook(t,
		[]string{"Bất kỳ"},
		map[string][][]interface{}{
			"Bất kỳ": {headerCells(), workbookRow("5")},
		})

	summary, err := svc.ImportWorkbook(reader)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.AddedCount)
	assert.Equal(t, 1, st.Len())
}

package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// SheetGrid is one worksheet decoded into a dense grid. Row 0 is the column
// header; absent trailing cells simply shorten the row.
type SheetGrid struct {
	Name string
	Rows [][]Cell
}

// DecodeWorkbook reads xlsx workbook bytes into per-sheet cell grids.
//
// Cells are decoded by their stored type: date-formatted numbers become
// structured dates, plain numbers stay numeric (spreadsheet serials
// included, which the normalizer understands), everything else is text. Raw
// values are requested so text that merely looks numeric, like a phone
// number with a leading zero, is not reformatted.
func DecodeWorkbook(r io.Reader) ([]SheetGrid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	grids := make([]SheetGrid, 0, f.SheetCount)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		grid := SheetGrid{Name: name, Rows: make([][]Cell, len(rows))}
		for rowIdx, row := range rows {
			cells := make([]Cell, len(row))
			for colIdx, raw := range row {
				cells[colIdx] = decodeCell(f, name, colIdx+1, rowIdx+1, raw)
			}
			grid.Rows[rowIdx] = cells
		}
		grids = append(grids, grid)
	}
	return grids, nil
}

func decodeCell(f *excelize.File, sheet string, col, row int, raw string) Cell {
	if raw == "" {
		return AbsentCell()
	}
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return TextCell(raw)
	}
	kind, err := f.GetCellType(sheet, axis)
	if err != nil {
		return TextCell(raw)
	}
	switch kind {
	case excelize.CellTypeDate:
		if serial, perr := strconv.ParseFloat(raw, 64); perr == nil {
			if t, derr := excelize.ExcelDateToTime(serial, false); derr == nil {
				return DateCell(t)
			}
		}
		return TextCell(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, perr := strconv.ParseFloat(raw, 64); perr == nil {
			return NumberCell(n)
		}
		return TextCell(raw)
	default:
		return TextCell(raw)
	}
}

// MapSheet maps one decoded grid into a batch for the merger. The header row
// is dropped, all-empty rows are skipped silently, and rows the mapper
// rejects are counted as dropped.
func MapSheet(grid SheetGrid) SheetBatch {
	batch := SheetBatch{Sheet: grid.Name}
	if len(grid.Rows) <= 1 {
		return batch
	}
	batch.HasDataRows = true
	for _, row := range grid.Rows[1:] {
		if rowEmpty(row) {
			continue
		}
		rec, ok := MapRow(row)
		if !ok {
			batch.Dropped++
			continue
		}
		batch.Records = append(batch.Records, *rec)
	}
	return batch
}

func rowEmpty(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

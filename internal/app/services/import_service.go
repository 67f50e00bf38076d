package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sonquang/laixe-registry/internal/app/models/dto"
	"github.com/sonquang/laixe-registry/internal/ingest"
	"github.com/sonquang/laixe-registry/internal/pkg/apperrors"
	"github.com/sonquang/laixe-registry/internal/store"
)

// ImportService defines the interface for workbook ingestion
type ImportService interface {
	ImportWorkbook(r io.Reader) (*dto.ImportSummary, error)
}

// importServiceImpl implements the ImportService interface
type importServiceImpl struct {
	store          *store.TeacherStore
	sheetWhitelist map[string]struct{}
}

// NewImportService creates a new import service instance. With an empty
// whitelist every worksheet is processed.
func NewImportService(st *store.TeacherStore, sheetWhitelist []string) ImportService {
	whitelist := make(map[string]struct{}, len(sheetWhitelist))
	for _, name := range sheetWhitelist {
		whitelist[name] = struct{}{}
	}
	return &importServiceImpl{
		store:          st,
		sheetWhitelist: whitelist,
	}
}

// ImportWorkbook decodes an xlsx workbook, maps its sheets and merges the
// resulting records into the collection. When the workbook contains any of
// the whitelisted sheet names only those sheets are merged; a workbook with
// none of them is merged in full.
//
// A workbook that cannot be decoded, one without any sheet at all, and one
// whose sheets hold only header rows are three distinct failures; the
// collection is left untouched by all of them. Duplicate identifiers and
// unparsable rows never fail the import, they are skipped and counted.
func (s *importServiceImpl) ImportWorkbook(r io.Reader) (*dto.ImportSummary, error) {
	grids, err := ingest.DecodeWorkbook(r)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrWorkbookDecode, err.Error())
	}
	if len(grids) == 0 {
		return nil, apperrors.ErrEmptyWorkbook
	}

	selected := s.selectSheets(grids)
	batches := make([]ingest.SheetBatch, 0, len(selected))
	dropped := 0
	for _, grid := range selected {
		batch := ingest.MapSheet(grid)
		dropped += batch.Dropped
		batches = append(batches, batch)
	}

	result := s.store.Merge(batches)
	if !result.HadDataRows {
		return nil, apperrors.ErrNoDataRows
	}

	skipped := result.Skipped + dropped
	summary := &dto.ImportSummary{
		AddedCount:      result.Added,
		SkippedCount:    skipped,
		ProcessedSheets: result.ProcessedSheets,
		HadDataRows:     result.HadDataRows,
		Message:         buildSummaryMessage(result.Added, skipped, result.ProcessedSheets),
	}

	log.Info().
		Int("added", result.Added).
		Int("skipped", skipped).
		Strs("sheets", result.ProcessedSheets).
		Msg("Workbook import finished")
	return summary, nil
}

// selectSheets narrows the decoded sheets to the whitelisted names. When no
// sheet name matches, every sheet is kept so ad-hoc workbooks still import.
func (s *importServiceImpl) selectSheets(grids []ingest.SheetGrid) []ingest.SheetGrid {
	if len(s.sheetWhitelist) == 0 {
		return grids
	}
	matched := make([]ingest.SheetGrid, 0, len(grids))
	for _, grid := range grids {
		if _, ok := s.sheetWhitelist[grid.Name]; ok {
			matched = append(matched, grid)
		} else {
			log.Debug().Str("sheet", grid.Name).Msg("Sheet outside whitelist")
		}
	}
	if len(matched) == 0 {
		return grids
	}
	return matched
}

func buildSummaryMessage(added, skipped int, sheets []string) string {
	sheetList := strings.Join(sheets, ", ")
	if added == 0 {
		return fmt.Sprintf("Không tìm thấy giáo viên mới trong file. Đã xử lý các sheet: %s.", sheetList)
	}
	return fmt.Sprintf(
		"Đã thêm %d giáo viên mới, bỏ qua %d dòng (trùng STT hoặc dữ liệu không hợp lệ). Đã xử lý các sheet: %s.",
		added, skipped, sheetList)
}

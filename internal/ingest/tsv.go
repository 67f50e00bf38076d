package ingest

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sonquang/laixe-registry/internal/app/models"
)

// ParseDelimited maps a tab-separated block into teacher records. The first
// line is a column header and is dropped. Each cell is trimmed, stripped of
// one layer of surrounding double quotes, and has backslash-escaped newlines
// un-escaped so multi-line cells (the contract cell) survive the flat
// encoding. Rows the mapper rejects are excluded from the result.
//
// The format is deliberately not RFC 4180: cells never contain tabs, quoting
// is a single optional outer layer, and embedded newlines are
// backslash-escaped instead of quoted, so encoding/csv cannot parse it.
func ParseDelimited(block string) []models.TeacherRecord {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) <= 1 {
		return nil
	}
	records := make([]models.TeacherRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		row := make([]Cell, len(fields))
		for i, field := range fields {
			row[i] = TextCell(unescapeCell(stripOuterQuotes(strings.TrimSpace(field))))
		}
		rec, ok := MapRow(row)
		if !ok {
			log.Debug().Int("cells", len(fields)).Msg("Skipping unparsable delimited row")
			continue
		}
		records = append(records, *rec)
	}
	return records
}

// stripOuterQuotes removes at most one leading and one trailing double
// quote. Interior quotes are data.
func stripOuterQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func unescapeCell(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}

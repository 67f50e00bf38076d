// Package seed embeds the initial registry dataset and parses it into the
// starting collection.
package seed

import (
	_ "embed"

	"github.com/rs/zerolog"

	"github.com/sonquang/laixe-registry/internal/app/models"
	"github.com/sonquang/laixe-registry/internal/ingest"
)

// The legacy registry export. One header line, then one tab-separated row
// per teacher; embedded newlines inside cells are backslash-escaped.
//
//go:embed teachers.tsv
var teachersTSV string

// LoadInitialTeachers parses the embedded dataset into an owned collection.
// Called once at startup; the caller keeps ownership of the slice.
func LoadInitialTeachers(lgr zerolog.Logger) []models.TeacherRecord {
	records := ingest.ParseDelimited(teachersTSV)
	lgr.Info().Int("teachers", len(records)).Msg("Initial dataset parsed")
	return records
}

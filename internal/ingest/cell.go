// Package ingest implements the record ingestion pipeline: cell
// normalization, date handling, row-to-record mapping, the tabular source
// adapters and the collection merger. Everything in here is pure and
// transport-free; HTTP and storage live elsewhere.
package ingest

import (
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the closed set of value shapes a tabular source can
// hand to the pipeline.
type CellKind int

const (
	KindAbsent CellKind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is one untyped source cell, modeled as a tagged variant so the
// normalizer can match on shape instead of inspecting runtime types.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// TextCell wraps free text.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell wraps a numeric value, typically a spreadsheet serial.
func NumberCell(n float64) Cell { return Cell{Kind: KindNumber, Number: n} }

// DateCell wraps an already-structured date.
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Date: t} }

// AbsentCell marks a cell the source did not supply.
func AbsentCell() Cell { return Cell{} }

// String coerces the cell to trimmed display text. Numbers render without a
// trailing zero fraction so identifier columns read back exactly as typed.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return strings.TrimSpace(c.Text)
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		y, m, d := c.Date.UTC().Date()
		return formatDMY(d, int(m), y)
	default:
		return ""
	}
}

// IsEmpty reports whether the cell coerces to empty text.
func (c Cell) IsEmpty() bool { return c.String() == "" }

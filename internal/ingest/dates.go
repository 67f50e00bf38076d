package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Plausibility bounds for parsed years and the spreadsheet serial cutoff
// (the serial for 9999-12-31). The legacy dataset depends on these exact
// values; check the registry's import history before touching them.
const (
	minPlausibleYear = 1890
	maxPlausibleYear = 2200
	maxExcelSerial   = 2958465
)

// Day zero of the 1900 spreadsheet date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Normalize converts a cell holding a date in any of the encodings the
// sources produce into canonical DD/MM/YYYY text.
//
// The boolean reports a confident parse. When it is false the string carries
// the best-available fallback instead: the trimmed original for text cells,
// the numeral's plain string form for numbers, and "" for absent cells and
// structured dates whose year falls outside the plausible bounds.
// Normalization never fails hard; imperfect legacy values are kept verbatim
// for a human to reconcile downstream.
func Normalize(c Cell) (string, bool) {
	switch c.Kind {
	case KindDate:
		y, m, d := c.Date.UTC().Date()
		if y < minPlausibleYear || y > maxPlausibleYear {
			return "", false
		}
		return formatDMY(d, int(m), y), true
	case KindNumber:
		return normalizeNumber(c.Number)
	case KindText:
		return normalizeText(strings.TrimSpace(c.Text))
	default:
		return "", false
	}
}

// AddOneYear derives a contract expiry from its canonical signing date: same
// day and month, year incremented. Input that does not look like DD/MM/YYYY
// is returned unchanged. No calendar validation is attempted; the result has
// the same precision as the source data.
func AddOneYear(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return date
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s/%s/%d", parts[0], parts[1], year+1)
}

func normalizeNumber(n float64) (string, bool) {
	fallback := strconv.FormatFloat(n, 'f', -1, 64)
	if n > 0 && n < maxExcelSerial {
		t := excelEpoch.AddDate(0, 0, int(n))
		y, m, d := t.Date()
		if y < minPlausibleYear || y > maxPlausibleYear {
			return fallback, false
		}
		return formatDMY(d, int(m), y), true
	}
	if n == math.Trunc(n) && isPlausibleYear(int(n)) && len(fallback) == 4 {
		return "01/01/" + fallback, true
	}
	return fallback, false
}

func normalizeText(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	parts := splitDateParts(s)
	if len(parts) == 3 {
		day, month, year := parts[0], parts[1], parts[2]
		// Year-first layouts (YYYY/MM/DD) are flipped into day-first.
		if looksLikeYear(parts[0]) && len(parts[1]) <= 2 && len(parts[2]) <= 2 {
			day, month, year = parts[2], parts[1], parts[0]
		} else if !(len(parts[0]) <= 2 && len(parts[1]) <= 2 && looksLikeYear(parts[2])) {
			return s, false
		}
		d, errD := strconv.Atoi(day)
		m, errM := strconv.Atoi(month)
		y, errY := strconv.Atoi(year)
		if errD != nil || errM != nil || errY != nil {
			return s, false
		}
		return formatDMY(d, m, y), true
	}
	if len(s) == 4 {
		if y, err := strconv.Atoi(s); err == nil && isPlausibleYear(y) {
			return "01/01/" + s, true
		}
	}
	return s, false
}

// splitDateParts splits on the accepted separators ('/', '-', '.') while
// preserving empty segments, so "15//2020" stays three parts and is rejected
// by the numeric checks rather than silently collapsing.
func splitDateParts(s string) []string {
	norm := strings.NewReplacer("-", "/", ".", "/").Replace(s)
	return strings.Split(norm, "/")
}

func looksLikeYear(part string) bool {
	if len(part) != 4 {
		return false
	}
	y, err := strconv.Atoi(part)
	return err == nil && y > minPlausibleYear
}

func isPlausibleYear(y int) bool {
	return y > minPlausibleYear && y < maxPlausibleYear
}

func formatDMY(d, m, y int) string {
	return fmt.Sprintf("%02d/%02d/%04d", d, m, y)
}

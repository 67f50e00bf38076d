package ingest

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"canonical", "15/03/2021", "15/03/2021", true},
		{"dash separators", "15-3-2021", "15/03/2021", true},
		{"dot separators", "15.03.2021", "15/03/2021", true},
		{"year first", "2021-03-15", "15/03/2021", true},
		{"unpadded slashes", "15/3/2020", "15/03/2020", true},
		{"year first slashes", "2020/3/15", "15/03/2020", true},
		{"dot padded", "15.03.2020", "15/03/2020", true},
		{"unpadded day and month", "1/4/1999", "01/04/1999", true},
		{"surrounding spaces", " 28/03/2025 ", "28/03/2025", true},
		{"bare year", "1985", "01/01/1985", true},
		{"out of range bare year", "2300", "2300", false},
		{"too old bare year", "1890", "1890", false},
		{"free text", "không rõ", "không rõ", false},
		{"two parts only", "03/2021", "03/2021", false},
		{"empty separator run", "15//2021", "15//2021", false},
		{"non numeric day", "ab/03/2021", "ab/03/2021", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(TextCell(tc.in))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestNormalizeSerial(t *testing.T) {
	// 44927 is 2023-01-01 in the 1900 date system
	got, ok := Normalize(NumberCell(44927))
	require.True(t, ok)
	assert.Equal(t, "01/01/2023", got)

	got, ok = Normalize(NumberCell(45000))
	require.True(t, ok)
	assert.Equal(t, "15/03/2023", got)
}

func TestNormalizeSerialOutOfRange(t *testing.T) {
	// A serial just under the cutoff lands far beyond the plausible year
	// bounds and must fall back to the numeral's string form.
	got, ok := Normalize(NumberCell(2958464))
	assert.False(t, ok)
	assert.Equal(t, "2958464", got)

	// A serial that decodes to year 2300 is equally implausible.
	// Computed via Unix seconds: Sub returns a time.Duration, which
	// saturates at roughly 292 years and would silently yield a serial in
	// the plausible range.
	serial := int((time.Date(2300, time.January, 1, 0, 0, 0, 0, time.UTC).Unix() - excelEpoch.Unix()) / 86400)
	got, ok = Normalize(NumberCell(float64(serial)))
	assert.False(t, ok)
	assert.Equal(t, strconv.Itoa(serial), got)

	// Outside the serial range entirely.
	got, ok = Normalize(NumberCell(-5))
	assert.False(t, ok)
	assert.Equal(t, "-5", got)

	got, ok = Normalize(NumberCell(2958465))
	assert.False(t, ok)
	assert.Equal(t, "2958465", got)
}

func TestNormalizeStructuredDate(t *testing.T) {
	got, ok := Normalize(DateCell(time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)))
	require.True(t, ok)
	assert.Equal(t, "15/03/2021", got)

	// Years outside the plausible bounds come back absent, not formatted.
	got, ok = Normalize(DateCell(time.Date(2300, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ok)
	assert.Equal(t, "", got)

	got, ok = Normalize(DateCell(time.Date(1700, time.June, 5, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestNormalizeAbsent(t *testing.T) {
	got, ok := Normalize(AbsentCell())
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestAddOneYear(t *testing.T) {
	assert.Equal(t, "28/03/2026", AddOneYear("28/03/2025"))
	assert.Equal(t, "01/01/2000", AddOneYear("01/01/1999"))

	// No calendar validation by design
	assert.Equal(t, "29/02/2025", AddOneYear("29/02/2024"))

	// Malformed input passes through unchanged
	assert.Equal(t, "2025", AddOneYear("2025"))
	assert.Equal(t, "28/03", AddOneYear("28/03"))
	assert.Equal(t, "28/03/20xx", AddOneYear("28/03/20xx"))
	assert.Equal(t, "", AddOneYear(""))
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "0988034112", TextCell(" 0988034112 ").String())
	assert.Equal(t, "12", NumberCell(12).String())
	assert.Equal(t, "12.5", NumberCell(12.5).String())
	assert.Equal(t, "", AbsentCell().String())
	assert.True(t, TextCell("   ").IsEmpty())
}

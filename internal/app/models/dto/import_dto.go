package dto

// ImportSummary reports the outcome of one workbook import. SkippedCount
// covers both duplicate identifiers and rows dropped as unparsable.
type ImportSummary struct {
	AddedCount      int      `json:"addedCount"`
	SkippedCount    int      `json:"skippedCount"`
	ProcessedSheets []string `json:"processedSheets"`
	HadDataRows     bool     `json:"hadDataRows"`
	Message         string   `json:"message"`
}

package report

// Summary is the structure of the extraction_summary.json file written next
// to the CSV outputs. It carries everything the CSVs do not: section
// metadata, totals, warnings, and which files a run produced.
type Summary struct {
	GeneratedAt  string           `json:"generated_at"`
	Document     string           `json:"document"`
	StartPage    int              `json:"start_page"`
	EndPage      int              `json:"end_page"`
	SectionCount int              `json:"section_count"`
	RowCount     int              `json:"row_count"`
	Sections     []SectionSummary `json:"sections"`
	Warnings     []string         `json:"warnings,omitempty"`
	Outputs      []string         `json:"outputs,omitempty"`
}

// SectionSummary is one section's metadata and output location.
type SectionSummary struct {
	Title      string            `json:"title"`
	File       string            `json:"file,omitempty"`
	RowCount   int               `json:"row_count"`
	StartDate  string            `json:"start_date,omitempty"`
	ReturnDate string            `json:"return_date,omitempty"`
	UserDays   string            `json:"user_days,omitempty"`
	Totals     map[string]string `json:"totals,omitempty"`
}

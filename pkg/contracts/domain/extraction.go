package domain

// DataRange is an inclusive row-index pair in the original grid
// delimiting the extracted data rows.
type DataRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ExtractedData is the result of recovering the core table from a messy
// grid. It is produced once per extraction and never mutated afterward;
// downstream cleaning and combination work on clones of Core and Metadata.
type ExtractedData struct {
	// Core is the recovered rectangular data table, header row excluded.
	Core Table `json:"core"`

	// Metadata holds key/value pairs scraped from rows above the header.
	Metadata *Metadata `json:"metadata"`

	// HeaderRow is the original row index used as header; meaningful only
	// when HasHeader is true.
	HeaderRow int  `json:"header_row"`
	HasHeader bool `json:"has_header"`

	// DataRange delimits the extracted data rows in the original grid.
	DataRange DataRange `json:"data_range"`

	// Footer holds one joined string per non-empty footer row.
	Footer []string `json:"footer"`

	// Confidence is a heuristic quality score in [0,1].
	Confidence float64 `json:"confidence"`

	// Warnings lists every anomaly detected during extraction.
	Warnings []string `json:"warnings"`
}

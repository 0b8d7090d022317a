package internal

// AtaMeta is the header metadata of one ata record. It is extracted once
// from the record's boundary page and copied by value into every row the
// record produces.
type AtaMeta struct {
	Number       string
	Validity     string
	ManagingUnit string
}

// ItemFields holds the fields extracted from one item block. Numeric
// fields keep their formatted string representation so integers stay
// integers in the report.
type ItemFields struct {
	Code          string
	Description   string
	UnitPrice     string
	RegisteredQty string
	AvailableQty  string
}

// ReportRow is one line of the output spreadsheet.
type ReportRow struct {
	AtaMeta
	ItemFields

	// Balance is unit price times quantity available for reallocation,
	// rounded to 2 decimals. Unparsable operands count as zero.
	Balance float64
}

const (
	DocStatusIngested = "ingested"
	DocStatusExported = "exported"
	DocStatusEmpty    = "empty"
	DocStatusFailed   = "failed"
)

// DocumentRow is a processed PDF as recorded in storage.
type DocumentRow struct {
	ID        int
	Path      string
	Hash      string
	Status    string
	OutputRef string
	CreatedAt string
	UpdatedAt string
}

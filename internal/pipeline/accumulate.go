package pipeline

import (
	"log/slog"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
)

type accumulatorState int

const (
	stateIdle accumulatorState = iota
	stateAccumulating
)

// Accumulator buffers the pages of the ata currently being read. An ata's
// items span many pages after its header with no end marker, so the next
// boundary page (or the end of the document) is the only reliable
// terminator; that is when the buffered record is flushed into rows.
type Accumulator struct {
	state accumulatorState
	meta  internal.AtaMeta
	pages []string
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Feed consumes one normalized page in document order and returns the rows
// of any record the page terminated. Empty pages are skipped. A page
// arriving before the first boundary is buffered under empty metadata.
func (a *Accumulator) Feed(page string) []internal.ReportRow {
	if page == "" {
		return nil
	}

	var flushed []internal.ReportRow
	if IsBoundaryPage(page) {
		flushed = a.flush()
		a.state = stateAccumulating
		a.meta = ExtractAtaMeta(page)
	}
	a.pages = append(a.pages, page)
	return flushed
}

// Finish flushes the still-accumulating record at end of document and
// resets the accumulator.
func (a *Accumulator) Finish() []internal.ReportRow {
	rows := a.flush()
	a.state = stateIdle
	a.meta = internal.AtaMeta{}
	return rows
}

func (a *Accumulator) flush() []internal.ReportRow {
	if len(a.pages) == 0 {
		return nil
	}
	rows := AssembleRows(a.meta, a.pages)
	if len(rows) > 0 && a.state == stateIdle {
		// Items found on pages before the first ata header end up in the
		// report with blank record metadata.
		slog.Warn("items extracted before the first ata header page", "rows", len(rows))
	}
	a.pages = nil
	return rows
}

package pipeline

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/util"
)

const (
	titleDescriptionMax  = 300
	detailDescriptionMax = 400
	minTitleLength       = 10
	itemCodeWidth        = 5
)

// SplitItemBlocks partitions a record's buffered pages into one block per
// line item. Pages are joined with a blank line so tokens never fuse
// across page breaks. Each block starts at an item marker and runs until
// the next marker or the end of the record.
func SplitItemBlocks(pages []string) []string {
	full := strings.Join(pages, "\n\n")
	starts := reItemSplit.FindAllStringIndex(full, -1)

	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(full)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := strings.TrimSpace(full[loc[0]:end])
		if strings.HasPrefix(strings.ToUpper(block), "DETALHAMENTO DO ITEM") {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// ExtractItemFields runs the pattern cascade over one item block. The
// second return is false when the block is rejected: no re-locatable item
// marker, no CRO/2 participation line, or a non-positive registered
// quantity.
func ExtractItemFields(block string) (internal.ItemFields, bool) {
	m := reItemStart.FindStringSubmatch(block)
	if m == nil {
		return internal.ItemFields{}, false
	}
	code := m[1]
	if len(code) < itemCodeWidth {
		code = strings.Repeat("0", itemCodeWidth-len(code)) + code
	}

	var unitPrice *float64
	if sm := reSupplierLine.FindStringSubmatch(block); sm != nil {
		unitPrice = util.ParseNumberPtBR(sm[1])
	}

	cm := reParticipation.FindStringSubmatch(block)
	if cm == nil {
		return internal.ItemFields{}, false
	}
	registered := util.ParseNumberPtBR(cm[1])
	available := util.ParseNumberPtBR(cm[2])
	if registered == nil || *registered <= 0 {
		return internal.ItemFields{}, false
	}

	return internal.ItemFields{
		Code:          code,
		Description:   extractDescription(block),
		UnitPrice:     util.FormatNumber(unitPrice),
		RegisteredQty: util.FormatNumber(registered),
		AvailableQty:  util.FormatNumber(available),
	}, true
}

// descriptionStrategy returns the extracted description or "" on no match.
// Strategies run in priority order; new ones append without disturbing
// existing ones.
type descriptionStrategy func(block string) string

var descriptionStrategies = []descriptionStrategy{
	titleDescription,
	detailedDescription,
}

func extractDescription(block string) string {
	b := strings.ReplaceAll(block, " ", " ")
	b = strings.ReplaceAll(b, "\r", "\n")
	b = reHorizWS.ReplaceAllString(b, " ")

	for _, strategy := range descriptionStrategies {
		if desc := strategy(b); desc != "" {
			return desc
		}
	}
	return ""
}

// titleDescription takes the short item title printed right under the item
// marker line, truncated at the first section label. Preferred because it
// reads cleanly in a table cell.
func titleDescription(b string) string {
	m := reItemHeaderLine.FindStringIndex(b)
	if m == nil {
		return ""
	}
	tail := b[m[1]:]

	if stop := reDescriptionStop.FindStringIndex(tail); stop != nil {
		tail = tail[:stop[0]]
	} else {
		tail = truncateRunes(tail, titleDescriptionMax)
	}

	title := collapseSpaces(tail)
	if utf8.RuneCountInString(title) > minTitleLength {
		return title
	}
	return ""
}

// detailedDescription falls back to the "Descrição detalhada" section,
// bounded so it never swallows the rest of the document.
func detailedDescription(b string) string {
	m := reDescLabel.FindStringIndex(b)
	if m == nil {
		return ""
	}
	tail := b[m[1]:]
	tail = reDetailedLabel.ReplaceAllString(tail, " ")

	if stop := reDetailStop.FindStringIndex(tail); stop != nil {
		tail = tail[:stop[0]]
	} else {
		tail = truncateRunes(tail, detailDescriptionMax)
	}

	return collapseSpaces(tail)
}

// AssembleRows extracts every qualifying item from a record's pages and
// joins it with the record metadata, in document order.
func AssembleRows(meta internal.AtaMeta, pages []string) []internal.ReportRow {
	var rows []internal.ReportRow
	for _, block := range SplitItemBlocks(pages) {
		fields, ok := ExtractItemFields(block)
		if !ok {
			continue
		}
		rows = append(rows, internal.ReportRow{
			AtaMeta:    meta,
			ItemFields: fields,
			Balance:    reallocationBalance(fields),
		})
	}
	return rows
}

// reallocationBalance re-parses the formatted price and available quantity
// (absent counts as zero) and rounds the product to 2 decimals.
func reallocationBalance(fields internal.ItemFields) float64 {
	price, qty := 0.0, 0.0
	if v := util.ParseNumberPtBR(fields.UnitPrice); v != nil {
		price = *v
	}
	if v := util.ParseNumberPtBR(fields.AvailableQty); v != nil {
		qty = *v
	}
	return math.Round(price*qty*100) / 100
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

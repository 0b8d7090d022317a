package pipeline

import (
	"strings"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
)

// IsBoundaryPage reports whether a normalized page opens a new ata record.
// Both fixed markers must be present somewhere on the page; their relative
// order does not matter.
func IsBoundaryPage(text string) bool {
	t := strings.ToUpper(text)
	return strings.Contains(t, markerReportTitle) && strings.Contains(t, markerAtaInfo)
}

// ExtractAtaMeta pulls the record number, validity period and managing
// unit from a boundary page. Each field is searched independently and
// defaults to empty on no match; an all-empty result is valid.
func ExtractAtaMeta(text string) internal.AtaMeta {
	meta := internal.AtaMeta{}

	if m := reAtaNumber.FindStringSubmatch(text); m != nil {
		meta.Number = NormalizePageText(m[1])
	}
	if m := reManagingUnit.FindStringSubmatch(text); m != nil {
		meta.ManagingUnit = NormalizePageText(m[1])
	}
	if m := reValidity.FindStringSubmatch(text); m != nil {
		meta.Validity = m[1] + " a " + m[2]
	}

	return meta
}

// FindAtaNumber returns the first ata number on the page, or "".
func FindAtaNumber(text string) string {
	if m := reAtaNumber.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// FindManagingUnitCode returns the bare 6-digit managing unit code, or "".
func FindManagingUnitCode(text string) string {
	if m := reManagingCode.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

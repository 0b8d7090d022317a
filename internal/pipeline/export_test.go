package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
)

func exportRow(meta internal.AtaMeta, code string) internal.ReportRow {
	return internal.ReportRow{
		AtaMeta: meta,
		ItemFields: internal.ItemFields{
			Code:          code,
			Description:   "ARAME FARPADO GALVANIZADO ROLO 500 M",
			UnitPrice:     "1250",
			RegisteredQty: "100",
			AvailableQty:  "40",
		},
		Balance: 50000.00,
	}
}

func TestExportRowsToXLSX(t *testing.T) {
	metaA := metaFor("045/2024")
	metaB := metaFor("046/2024")
	rows := []internal.ReportRow{
		exportRow(metaA, "00001"),
		exportRow(metaA, "00002"),
		exportRow(metaA, "00003"),
		exportRow(metaB, "00001"),
	}

	out := filepath.Join(t.TempDir(), "out", "Relatorio.xlsx")
	if err := ExportRowsToXLSX(rows, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetRows(ReportSheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 5 {
		t.Fatalf("rows=%d", len(got))
	}
	if got[0][0] != "NumeroAta" || got[0][8] != "SaldoRemanejamento" {
		t.Fatalf("header=%v", got[0])
	}
	if got[1][0] != "045/2024" || got[1][3] != "00001" || got[1][5] != "1250" {
		t.Fatalf("data row=%v", got[1])
	}

	raw, err := f.GetCellValue(ReportSheetName, "I2", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatal(err)
	}
	if raw != "50000" {
		t.Fatalf("balance raw=%q", raw)
	}
}

func TestExportMergesAtaRuns(t *testing.T) {
	metaA := metaFor("045/2024")
	metaB := metaFor("046/2024")
	rows := []internal.ReportRow{
		exportRow(metaA, "00001"),
		exportRow(metaA, "00002"),
		exportRow(metaA, "00003"),
		exportRow(metaB, "00001"),
	}

	out := filepath.Join(t.TempDir(), "Relatorio.xlsx")
	if err := ExportRowsToXLSX(rows, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	merges, err := f.GetMergeCells(ReportSheetName)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]bool{"A2:A4": false, "B2:B4": false, "C2:C4": false}
	for _, m := range merges {
		key := m.GetStartAxis() + ":" + m.GetEndAxis()
		if _, ok := want[key]; !ok {
			t.Fatalf("unexpected merge %s", key)
		}
		want[key] = true
	}
	for key, seen := range want {
		if !seen {
			t.Fatalf("missing merge %s", key)
		}
	}
}

func TestExportSingletonRunsStayUnmerged(t *testing.T) {
	rows := []internal.ReportRow{
		exportRow(metaFor("045/2024"), "00001"),
		exportRow(metaFor("046/2024"), "00001"),
	}

	out := filepath.Join(t.TempDir(), "Relatorio.xlsx")
	if err := ExportRowsToXLSX(rows, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	merges, err := f.GetMergeCells(ReportSheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(merges) != 0 {
		t.Fatalf("merges=%d", len(merges))
	}
}

func TestSmokePagesToWorkbook(t *testing.T) {
	rows := ProcessPages([]string{headerPageA, itemPageA})
	if len(rows) != 1 {
		t.Fatalf("rows=%d", len(rows))
	}

	out := filepath.Join(t.TempDir(), "Relatorio.xlsx")
	if err := ExportRowsToXLSX(rows, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := f.GetRows(ReportSheetName)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("rows=%d", len(got))
	}
	data := got[1]
	if data[0] != "045/2024" || data[3] != "00012" || data[6] != "100" || data[7] != "40" {
		t.Fatalf("data row=%v", data)
	}
}

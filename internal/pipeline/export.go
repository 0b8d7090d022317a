package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
)

// ReportSheetName is the single sheet of the output workbook.
const ReportSheetName = "CRO2_Itens"

var reportHeaders = []string{
	"NumeroAta",
	"Vigencia",
	"UnidadeGerenciadora",
	"Item",
	"DescricaoItem",
	"ValorUnitario",
	"QtdRegistrada",
	"QtdDisponivelRemanejamento",
	"SaldoRemanejamento",
}

const (
	colNumber = iota + 1
	colValidity
	colManagingUnit
	colItem
	colDescription
	colUnitPrice
	colRegisteredQty
	colAvailableQty
	colBalance
)

// ExportRowsToXLSX writes the row set to a single-sheet workbook. Field
// values go in verbatim as their formatted strings; the balance is written
// as a number with a 0.00 format. Consecutive rows of the same ata get
// their first three columns merged into one cell per column.
func ExportRowsToXLSX(rows []internal.ReportRow, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, ReportSheetName); err != nil {
		return err
	}
	sheet = ReportSheetName

	for i, h := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(colNumber, row.Number)
		set(colValidity, row.Validity)
		set(colManagingUnit, row.ManagingUnit)
		set(colItem, row.Code)
		set(colDescription, row.Description)
		set(colUnitPrice, row.UnitPrice)
		set(colRegisteredQty, row.RegisteredQty)
		set(colAvailableQty, row.AvailableQty)
		set(colBalance, row.Balance)
	}

	if err := applyStyles(f, len(rows)); err != nil {
		return err
	}
	if err := mergeAtaRuns(f, rows); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func applyStyles(f *excelize.File, rowCount int) error {
	if rowCount == 0 {
		return nil
	}

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
	})
	if err != nil {
		return err
	}
	center, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return err
	}
	balanceFmt := "0.00"
	balance, err := f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Vertical: "center"},
		CustomNumFmt: &balanceFmt,
	})
	if err != nil {
		return err
	}

	last := rowCount + 1
	style := func(col, styleID int) error {
		top, _ := excelize.CoordinatesToCellName(col, 2)
		bottom, _ := excelize.CoordinatesToCellName(col, last)
		return f.SetCellStyle(ReportSheetName, top, bottom, styleID)
	}

	if err := style(colDescription, wrap); err != nil {
		return err
	}
	for _, col := range []int{colNumber, colValidity, colManagingUnit, colItem, colUnitPrice, colRegisteredQty, colAvailableQty} {
		if err := style(col, center); err != nil {
			return err
		}
	}
	return style(colBalance, balance)
}

// mergeAtaRuns merges the record-metadata columns over each maximal run of
// consecutive rows belonging to the same ata, so one ata's many item rows
// group visually under one header. Singleton runs stay unmerged.
func mergeAtaRuns(f *excelize.File, rows []internal.ReportRow) error {
	merged, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
	})
	if err != nil {
		return err
	}

	start := 0
	for start < len(rows) {
		end := start
		for end+1 < len(rows) && sameAta(rows[end+1], rows[start]) {
			end++
		}

		if end > start {
			for _, col := range []int{colNumber, colValidity, colManagingUnit} {
				top, _ := excelize.CoordinatesToCellName(col, start+2)
				bottom, _ := excelize.CoordinatesToCellName(col, end+2)
				if err := f.MergeCell(ReportSheetName, top, bottom); err != nil {
					return err
				}
				if err := f.SetCellStyle(ReportSheetName, top, top, merged); err != nil {
					return err
				}
			}
		}

		start = end + 1
	}
	return nil
}

func sameAta(a, b internal.ReportRow) bool {
	return a.Number == b.Number && a.Validity == b.Validity && a.ManagingUnit == b.ManagingUnit
}

// Package rename derives a canonical filename for an ata PDF from the
// record number and managing unit code found in its text.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal/pipeline"
)

var (
	ErrNotPDF         = errors.New("input file is not a PDF")
	ErrNumberNotFound = errors.New("ata number not found in document")
	ErrUnitNotFound   = errors.New("managing unit code not found in document")
)

// FindAtaIdentity scans the document's pages in order and returns the
// first ata number and managing unit code found. Each field keeps its
// first match; scanning stops as soon as both are known.
func FindAtaIdentity(rawPages []string) (number, unit string) {
	for _, raw := range rawPages {
		text := pipeline.NormalizePageText(raw)
		if text == "" {
			continue
		}
		if number == "" {
			number = pipeline.FindAtaNumber(text)
		}
		if unit == "" {
			unit = pipeline.FindManagingUnitCode(text)
		}
		if number != "" && unit != "" {
			break
		}
	}
	return number, unit
}

// BuildName formats the canonical basename for an ata PDF.
func BuildName(number, unit string) string {
	return fmt.Sprintf("ATA_%s_UG-%s.pdf", strings.ReplaceAll(number, "/", "-"), unit)
}

// NextAvailable probes target, target_1, target_2, ... and returns the
// first path that does not exist yet.
func NextAvailable(target string) string {
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return target
	}

	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// DeriveTarget computes the collision-free canonical path for the PDF at
// pdfPath, in the same directory. Each precondition failure surfaces as
// its own error and nothing is renamed.
func DeriveTarget(pdfPath string) (string, error) {
	if !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
		return "", ErrNotPDF
	}
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("file not found: %w", err)
	}

	pages, err := pipeline.ExtractPagesFromFile(pdfPath)
	if err != nil {
		return "", err
	}

	number, unit := FindAtaIdentity(pages)
	if number == "" {
		return "", ErrNumberNotFound
	}
	if unit == "" {
		return "", ErrUnitNotFound
	}

	target := filepath.Join(filepath.Dir(pdfPath), BuildName(number, unit))
	return NextAvailable(target), nil
}

// Rename moves the PDF to its canonical name. With dryRun the target is
// only computed and returned.
func Rename(pdfPath string, dryRun bool) (string, error) {
	target, err := DeriveTarget(pdfPath)
	if err != nil {
		return "", err
	}
	if dryRun {
		return target, nil
	}
	if err := os.Rename(pdfPath, target); err != nil {
		return "", err
	}
	return target, nil
}

package pipeline

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/config"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/storage"
)

// ProcessingService runs the extraction pipeline over a PDF and records
// the run in storage: one documents row per distinct content hash, one
// runs row per processing attempt.
type ProcessingService struct {
	db  *storage.DB
	cfg config.Config
}

func NewProcessingService(db *storage.DB, cfg config.Config) *ProcessingService {
	return &ProcessingService{db: db, cfg: cfg}
}

type ProcessResult struct {
	DocumentID int
	Rows       int
	OutputPath string
}

// ProcessFile extracts all qualifying rows from the PDF at path and writes
// the report workbook into the configured output directory. Zero rows is
// not an error: the document is marked empty and no file is written.
func (s *ProcessingService) ProcessFile(path string) (ProcessResult, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return ProcessResult{}, err
	}
	hashBytes := sha256.Sum256(content)
	hash := hex.EncodeToString(hashBytes[:])

	doc, err := s.db.UpsertDocument(path, hash, internal.DocStatusIngested)
	if err != nil {
		return ProcessResult{}, err
	}

	pages, err := ExtractPages(content)
	if err != nil {
		_ = s.db.UpdateDocumentStatus(doc.ID, internal.DocStatusFailed, "")
		return ProcessResult{}, err
	}
	rows := ProcessPages(pages)

	result := ProcessResult{DocumentID: doc.ID, Rows: len(rows)}
	status := internal.DocStatusEmpty
	if len(rows) > 0 {
		result.OutputPath = filepath.Join(s.cfg.OutputDir, reportFilename(path))
		if err := ExportRowsToXLSX(rows, result.OutputPath); err != nil {
			_ = s.db.UpdateDocumentStatus(doc.ID, internal.DocStatusFailed, "")
			return ProcessResult{}, err
		}
		status = internal.DocStatusExported
	}

	if err := s.db.UpdateDocumentStatus(doc.ID, status, result.OutputPath); err != nil {
		return ProcessResult{}, err
	}
	_ = s.db.InsertRun(traceID(), doc.ID,
		map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		map[string]int{"pages": len(pages), "rows": len(rows)})

	slog.Info("document processed",
		"document", doc.ID, "pages", len(pages), "rows", len(rows), "status", status)

	return result, nil
}

func reportFilename(pdfPath string) string {
	stem := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	return fmt.Sprintf("Relatorio_%s.xlsx", stem)
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}

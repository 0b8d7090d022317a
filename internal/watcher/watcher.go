package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/config"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/pipeline"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/storage"
)

// Service polls an input directory for new ata PDFs and pushes them
// through the processing pipeline in batches.
type Service struct {
	db  *storage.DB
	cfg config.Config
}

func NewService(db *storage.DB, cfg config.Config) *Service {
	return &Service{db: db, cfg: cfg}
}

func (s *Service) Run(ctx context.Context) error {
	for {
		if err := s.runCycle(); err != nil {
			slog.Error("watcher cycle failed", "err", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(time.Duration(s.cfg.WatchIntervalSec) * time.Second):
		}
	}
}

func (s *Service) runCycle() error {
	entries, err := os.ReadDir(s.cfg.WatchInputDir)
	if err != nil {
		return err
	}

	processor := pipeline.NewProcessingService(s.db, s.cfg)
	scanned, processed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		scanned++
		if processed >= s.cfg.WatchBatch {
			break
		}

		path := filepath.Join(s.cfg.WatchInputDir, entry.Name())
		seen, err := s.alreadyProcessed(path)
		if err != nil {
			slog.Error("cannot check document", "path", path, "err", err)
			continue
		}
		if seen {
			continue
		}

		res, err := processor.ProcessFile(path)
		if err != nil {
			slog.Error("cannot process document", "path", path, "err", err)
			continue
		}
		processed++
		slog.Info("watcher processed document",
			"path", path, "rows", res.Rows, "output", res.OutputPath)
	}

	slog.Info("watcher cycle done", "scanned", scanned, "processed", processed)
	return nil
}

// alreadyProcessed reports whether this exact file content already went
// through the pipeline. Failed documents are retried on the next cycle.
func (s *Service) alreadyProcessed(path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	hashBytes := sha256.Sum256(content)
	doc, err := s.db.GetDocumentByHash(hex.EncodeToString(hashBytes[:]))
	if err != nil {
		return false, err
	}
	return doc != nil && doc.Status != internal.DocStatusFailed, nil
}

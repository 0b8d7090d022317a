package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/GuilhermeEustaquio/ExcelAtas/internal/config"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/pipeline"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/rename"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/storage"
	"github.com/GuilhermeEustaquio/ExcelAtas/internal/watcher"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "extract":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pdfPath := fs.String("pdf", "", "input PDF (may contain several atas)")
		out := fs.String("out", "Relatorio.xlsx", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*pdfPath) == "" {
			must(fmt.Errorf("--pdf is required"))
		}
		rows, err := pipeline.ProcessPDF(*pdfPath)
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no CRO/2 items found in %s", *pdfPath))
		}
		must(pipeline.ExportRowsToXLSX(rows, *out))
		fmt.Printf("extract done rows=%d output=%s\n", len(rows), *out)
	case "process":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pdfPath := fs.String("pdf", "", "input PDF")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*pdfPath) == "" {
			must(fmt.Errorf("--pdf is required"))
		}
		db := openDB(cfg)
		defer db.Close()
		res, err := pipeline.NewProcessingService(db, cfg).ProcessFile(*pdfPath)
		must(err)
		if res.Rows == 0 {
			fmt.Printf("no CRO/2 items found, document=%d marked empty\n", res.DocumentID)
			return
		}
		fmt.Printf("processed document=%d rows=%d output=%s\n", res.DocumentID, res.Rows, res.OutputPath)
	case "rename":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		pdfPath := fs.String("pdf", "", "PDF to rename")
		dryRun := fs.Bool("dry-run", false, "print the new name without renaming")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*pdfPath) == "" {
			must(fmt.Errorf("--pdf is required"))
		}
		target, err := rename.Rename(*pdfPath, *dryRun)
		must(err)
		if *dryRun {
			fmt.Printf("suggested name: %s\n", target)
			return
		}
		fmt.Printf("renamed to: %s\n", target)
	case "status":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		status := fs.String("status", "exported", "ingested|exported|empty|failed")
		limit := fs.Int("limit", 20, "max documents")
		_ = fs.Parse(os.Args[2:])
		db := openDB(cfg)
		defer db.Close()
		docs, err := db.ListDocumentsByStatus(*status, *limit)
		must(err)
		for _, doc := range docs {
			fmt.Printf("%d\t%s\t%s\t%s\n", doc.ID, doc.Status, doc.Path, doc.OutputRef)
		}
		fmt.Printf("%d document(s) with status=%s\n", len(docs), *status)
	case "watch":
		db := openDB(cfg)
		defer db.Close()
		must(watcher.NewService(db, cfg).Run(context.Background()))
	default:
		usage()
		os.Exit(1)
	}
}

func openDB(cfg config.Config) *storage.DB {
	db, err := storage.Open(cfg.DBPath)
	must(err)
	return db
}

func usage() {
	fmt.Println("usage: excelatas <command>")
	fmt.Println("commands:")
	fmt.Println("  extract --pdf=ata.pdf [--out=Relatorio.xlsx]")
	fmt.Println("  process --pdf=ata.pdf")
	fmt.Println("  rename --pdf=ata.pdf [--dry-run]")
	fmt.Println("  status [--status=exported] [--limit=20]")
	fmt.Println("  watch")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

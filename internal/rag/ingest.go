package rag

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdfx "github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// IngestPDF indexes every non-empty page of a PDF as its own document. The
// document id is "<source>_p<page>" so re-ingesting the same file is an
// upsert, not a duplicate.
func IngestPDF(ctx context.Context, store *Store, path, sourceName string) error {
	f, r, err := pdfx.Open(path)
	if err != nil {
		return fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	total := r.NumPage()
	for page := 1; page <= total; page++ {
		p := r.Page(page)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		txt = strings.TrimSpace(txt)
		if txt == "" {
			continue
		}
		source := fmt.Sprintf("%s (Page %d)", sourceName, page)
		id := fmt.Sprintf("%s_p%d", sourceName, page)
		if err := store.Add(ctx, txt, source, id); err != nil {
			return err
		}
	}
	return nil
}

// IngestDir ingests every .pdf file in dir, using the file name as source.
func IngestDir(ctx context.Context, store *Store, dir string, log *zap.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read pdf dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		log.Info("ingesting pdf", zap.String("file", e.Name()))
		if err := IngestPDF(ctx, store, filepath.Join(dir, e.Name()), e.Name()); err != nil {
			log.Warn("failed to ingest pdf", zap.String("file", e.Name()), zap.Error(err))
		}
	}
	return nil
}

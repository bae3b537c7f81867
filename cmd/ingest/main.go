package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/veritas-agent/internal/config"
	"github.com/example/veritas-agent/internal/logger"
	"github.com/example/veritas-agent/internal/rag"
)

// ingest loads PDF documents into the trusted library so their pages can be
// retrieved during analysis.
func main() {
	configFile := flag.String("config", "", "path to config file (optional)")
	dir := flag.String("dir", "", "directory of PDFs to ingest (defaults to library.documents_dir)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fatal(err)
	}
	log, err := logger.New(cfg.Logging.Level, "console")
	if err != nil {
		fatal(err)
	}
	defer log.Sync() //nolint:errcheck

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		fatal(fmt.Errorf("GOOGLE_API_KEY is required for ingestion"))
	}

	ctx := context.Background()
	embedder, err := rag.NewGeminiEmbedder(ctx, apiKey, cfg.Library.EmbeddingModel)
	if err != nil {
		fatal(err)
	}
	store, err := rag.Open(cfg.Library.Path, embedder, log)
	if err != nil {
		fatal(err)
	}
	store.SeedIfEmpty(ctx)

	target := *dir
	if target == "" {
		target = cfg.Library.DocumentsDir
	}
	if err := rag.IngestDir(ctx, store, target, log); err != nil {
		fatal(err)
	}
	log.Info("ingestion complete", zap.String("dir", target), zap.Int("documents", store.Count()))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "ingest:", err)
	os.Exit(1)
}

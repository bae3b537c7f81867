package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/veritas-agent/internal/agents"
	"github.com/example/veritas-agent/internal/api"
	"github.com/example/veritas-agent/internal/config"
	"github.com/example/veritas-agent/internal/knowledge"
	"github.com/example/veritas-agent/internal/logger"
	"github.com/example/veritas-agent/internal/ocr"
	"github.com/example/veritas-agent/internal/providers/llm"
	"github.com/example/veritas-agent/internal/rag"
	"github.com/example/veritas-agent/internal/tools"
)

func main() {
	configFile := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	library := buildLibrary(ctx, cfg, log)
	agent := buildAgent(ctx, cfg, library, log)
	transcriber := buildTranscriber(ctx, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewServer(agent, transcriber, log).Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error("shutdown incomplete", zap.Error(err))
	}
}

// buildLibrary opens the trusted library, seeding it on first run. Any
// failure degrades the library to the unavailable stub so the agent can
// still answer from web search.
func buildLibrary(ctx context.Context, cfg *config.Config, log *zap.Logger) rag.Library {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Warn("GOOGLE_API_KEY not set, trusted library disabled")
		return rag.Unavailable{}
	}
	embedder, err := rag.NewGeminiEmbedder(ctx, apiKey, cfg.Library.EmbeddingModel)
	if err != nil {
		log.Warn("embedder init failed, trusted library disabled", zap.Error(err))
		return rag.Unavailable{}
	}
	store, err := rag.Open(cfg.Library.Path, embedder, log)
	if err != nil {
		log.Warn("trusted library open failed, disabled", zap.Error(err))
		return rag.Unavailable{}
	}
	store.SeedIfEmpty(ctx)
	return store
}

// buildAgent wires the react agent when an LLM provider is configured and
// falls back to the keyword table otherwise.
func buildAgent(ctx context.Context, cfg *config.Config, library rag.Library, log *zap.Logger) agents.Agent {
	client, err := llm.NewFromEnv(ctx, cfg.Agent.Provider, cfg.Agent.Model, cfg.Agent.CallTimeout)
	if err != nil {
		log.Warn("no LLM provider available, using keyword fallback agent", zap.Error(err))
		return agents.NewKeywordAgent(knowledge.NewTable(), log)
	}

	reg := tools.NewRegistry()
	reg.Register(&tools.LibraryTool{Library: library, TopK: cfg.Library.TopK})
	reg.Register(&tools.WebSearchTool{})
	reg.Register(tools.MedicalDBTool{})

	validator := agents.NewSafetyValidator(client, cfg.Agent.CallTimeout, log)
	opts := agents.Options{
		MaxRetries:    cfg.Agent.MaxRetries,
		MaxIterations: cfg.Agent.MaxIterations,
		CallTimeout:   cfg.Agent.CallTimeout,
	}
	log.Info("react agent enabled")
	return agents.NewReactAgent(client, reg, validator, opts, log)
}

func buildTranscriber(ctx context.Context, log *zap.Logger) ocr.Transcriber {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return ocr.Disabled{}
	}
	t, err := ocr.NewGeminiTranscriber(ctx, apiKey, "")
	if err != nil {
		log.Warn("vision transcriber init failed", zap.Error(err))
		return ocr.Disabled{}
	}
	return t
}

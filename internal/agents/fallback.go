package agents

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/veritas-agent/internal/knowledge"
	"github.com/example/veritas-agent/internal/models"
)

// KeywordAgent answers from the built-in knowledge table. It backs the
// service when no LLM provider is configured and never fails.
type KeywordAgent struct {
	table *knowledge.Table
	log   *zap.Logger
}

func NewKeywordAgent(table *knowledge.Table, log *zap.Logger) *KeywordAgent {
	return &KeywordAgent{table: table, log: log}
}

func (a *KeywordAgent) Invoke(_ context.Context, query string) (*models.AnalysisResult, error) {
	a.log.Debug("keyword lookup", zap.Int("query_len", len(query)))
	res := a.table.Lookup(query)
	res.Normalize()
	return &res, nil
}

package agents

import (
	"context"

	"github.com/example/veritas-agent/internal/models"
)

// Agent analyzes one claim and produces a verdict record. The implementation
// is chosen once at startup: the LLM-backed react agent when a provider could
// be constructed, the keyword fallback otherwise. Call sites never branch on
// the concrete type.
type Agent interface {
	Invoke(ctx context.Context, query string) (*models.AnalysisResult, error)
}

package agents

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/veritas-agent/internal/providers/llm"
)

// Validator judges a candidate response. A rejection carries a reason that
// is fed back to the agent for the next attempt.
type Validator interface {
	Validate(ctx context.Context, content string) (bool, string)
}

const safetyRubric = `You are a safety reviewer for a health misinformation analysis service.
Judge the output below against these rules:
1. It must not recommend dangerous, harmful, or unproven medical treatments.
2. Factual claims must be attributed to sources.
3. The tone must be neutral and informative, not alarmist.
4. It should be a JSON object with the keys "verdict", "confidence", "explanation", "sources", and "corrective_information".
Respond ONLY with a JSON object: {"valid": true|false, "reason": "..."}`

// SafetyValidator asks a second model to review agent output. Reviewer
// failures never block a response; the check passes open.
type SafetyValidator struct {
	llm     llm.Client
	timeout time.Duration
	log     *zap.Logger
}

func NewSafetyValidator(client llm.Client, timeout time.Duration, log *zap.Logger) *SafetyValidator {
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &SafetyValidator{llm: client, timeout: timeout, log: log}
}

func (v *SafetyValidator) Validate(ctx context.Context, content string) (bool, string) {
	cctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	_, raw, err := v.llm.Verify(cctx, safetyRubric, content)
	if err != nil {
		v.log.Warn("safety reviewer unavailable, passing open", zap.Error(err))
		return true, ""
	}

	var verdict struct {
		Valid  *bool  `json:"valid"`
		Reason string `json:"reason"`
	}
	trimmed := strings.TrimSpace(stripFences(raw))
	if uerr := json.Unmarshal([]byte(trimmed), &verdict); uerr != nil || verdict.Valid == nil {
		v.log.Warn("unparseable safety verdict, passing open", zap.String("raw", raw))
		return true, ""
	}
	if *verdict.Valid {
		return true, ""
	}
	return false, verdict.Reason
}

// stripFences drops a markdown code fence wrapper if the model added one.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return s
}

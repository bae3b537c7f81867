package agents

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/example/veritas-agent/internal/models"
)

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// parseResult extracts the structured record from agent output. Output
// that carries no parseable JSON is preserved verbatim as an Unverified
// explanation rather than discarded.
func parseResult(content string) *models.AnalysisResult {
	block := jsonBlockRe.FindString(content)
	if block == "" {
		return rawResult(content)
	}
	var res models.AnalysisResult
	if err := json.Unmarshal([]byte(block), &res); err != nil {
		return rawResult(content)
	}
	res.Normalize()
	return &res
}

func rawResult(content string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Verdict:     models.VerdictUnverified,
		Confidence:  0.0,
		Explanation: content,
		Sources:     []string{},
	}
}

func exhaustedResult() *models.AnalysisResult {
	return &models.AnalysisResult{
		Verdict:     models.VerdictUnverified,
		Confidence:  0.0,
		Explanation: "Safety Agent rejected the response after multiple attempts. Please try again.",
		Sources:     []string{},
	}
}

func errorResult(err error) *models.AnalysisResult {
	return &models.AnalysisResult{
		Verdict:     models.VerdictError,
		Confidence:  0.0,
		Explanation: fmt.Sprintf("An internal error occurred: %v", err),
		Sources:     []string{},
	}
}

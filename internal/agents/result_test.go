package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/veritas-agent/internal/models"
)

func TestParseResultExtractsEmbeddedJSON(t *testing.T) {
	content := `Here is my analysis:
{"verdict": "Misleading", "confidence": 0.8, "explanation": "partial truth", "sources": ["CDC"]}
Hope that helps.`
	res := parseResult(content)
	assert.Equal(t, models.VerdictMisleading, res.Verdict)
	assert.Equal(t, 0.8, res.Confidence)
	assert.Equal(t, []string{"CDC"}, res.Sources)
}

func TestParseResultNormalizesUnknownVerdict(t *testing.T) {
	res := parseResult(`{"verdict": "Probably", "confidence": 1.7, "explanation": "x"}`)
	assert.Equal(t, models.VerdictUnverified, res.Verdict)
	assert.Equal(t, 1.0, res.Confidence)
	require.NotNil(t, res.Sources)
	assert.Empty(t, res.Sources)
}

func TestParseResultNoJSON(t *testing.T) {
	res := parseResult("plain prose answer")
	assert.Equal(t, models.VerdictUnverified, res.Verdict)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, "plain prose answer", res.Explanation)
}

func TestParseResultMalformedJSON(t *testing.T) {
	res := parseResult(`{"verdict": "True", "confidence": }`)
	assert.Equal(t, models.VerdictUnverified, res.Verdict)
	assert.Contains(t, res.Explanation, `"verdict"`)
}

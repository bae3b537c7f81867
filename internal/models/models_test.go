package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCoercesUnknownVerdict(t *testing.T) {
	r := AnalysisResult{Verdict: "Probably", Confidence: 0.7}
	r.Normalize()
	assert.Equal(t, VerdictUnverified, r.Verdict)
}

func TestNormalizeClampsConfidence(t *testing.T) {
	r := AnalysisResult{Verdict: VerdictFalse, Confidence: 1.7}
	r.Normalize()
	assert.Equal(t, 1.0, r.Confidence)

	r = AnalysisResult{Verdict: VerdictFalse, Confidence: -0.2}
	r.Normalize()
	assert.Equal(t, 0.0, r.Confidence)
}

func TestNormalizeKeepsValidFields(t *testing.T) {
	r := AnalysisResult{
		Verdict:     VerdictMisleading,
		Confidence:  0.85,
		Explanation: "some explanation",
		Sources:     []string{"WHO", "CDC"},
	}
	r.Normalize()
	assert.Equal(t, VerdictMisleading, r.Verdict)
	assert.Equal(t, 0.85, r.Confidence)
	assert.Equal(t, []string{"WHO", "CDC"}, r.Sources)
}

func TestNormalizeFillsMissingExplanation(t *testing.T) {
	r := AnalysisResult{Verdict: VerdictTrue, Confidence: 0.9}
	r.Normalize()
	assert.Equal(t, "No explanation provided.", r.Explanation)
}

func TestEmptySourcesSerializeAsList(t *testing.T) {
	r := AnalysisResult{Verdict: VerdictUnverified}
	r.Normalize()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"sources":[]`)
	assert.Contains(t, string(b), `"corrective_information":null`)
}

package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/veritas-agent/internal/models"
)

func TestLookupKnownMyth(t *testing.T) {
	table := NewTable()

	res := table.Lookup("Does drinking bleach cure covid")
	assert.Equal(t, models.VerdictFalse, res.Verdict)
	assert.Equal(t, 0.99, res.Confidence)
	assert.Equal(t, []string{"WHO", "CDC"}, res.Sources)
	require.NotNil(t, res.CorrectiveInformation)
	assert.Equal(t, "Do not ingest disinfectants.", *res.CorrectiveInformation)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	table := NewTable()

	upper := table.Lookup("Is BLEACH a cure?")
	lower := table.Lookup("Is bleach a cure?")
	assert.Equal(t, lower, upper)
}

func TestLookupRegistrationOrderBreaksTies(t *testing.T) {
	table := NewTable()

	// "detox" is registered before "sugar"; with both present the detox
	// verdict must win.
	res := table.Lookup("do sugar detox diets work")
	assert.Equal(t, "Your liver and kidneys detox your body naturally. Detox teas are unnecessary.", res.Explanation)
	assert.Equal(t, []string{"Mayo Clinic"}, res.Sources)
}

func TestLookupDefaultRecord(t *testing.T) {
	table := NewTable()

	res := table.Lookup("does standing on one leg improve posture")
	assert.Equal(t, models.VerdictUnverified, res.Verdict)
	assert.Equal(t, 0.50, res.Confidence)
	assert.Contains(t, res.Explanation, "does standing on one leg improve posture")
	assert.Contains(t, res.Explanation, "'sugar'")
	assert.Empty(t, res.Sources)
	require.NotNil(t, res.CorrectiveInformation)
	assert.Equal(t, "Please consult a medical professional.", *res.CorrectiveInformation)
}

func TestLookupEmptyQueryFallsThrough(t *testing.T) {
	table := NewTable()

	res := table.Lookup("")
	assert.Equal(t, models.VerdictUnverified, res.Verdict)
	assert.Equal(t, 0.50, res.Confidence)
}

func TestLookupNeverReturnsMalformedRecord(t *testing.T) {
	table := NewTable()
	for _, q := range []string{"vaccines cause autism", "5g towers", "", "carrot night vision"} {
		res := table.Lookup(q)
		assert.True(t, res.Verdict.Valid(), "query %q", q)
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 1.0)
		assert.NotNil(t, res.Sources)
	}
}

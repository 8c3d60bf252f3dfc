package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/progressive"
)

// The example table must stay truthful: every example's expected prefix is
// what the engine actually computes for its input.
func TestUsageExamples_MatchEngineOutput(t *testing.T) {
	engine := progressive.NewEngine()

	for _, ex := range UsageExamples() {
		t.Run(ex.Name, func(t *testing.T) {
			require.NotEmpty(t, ex.Input)
			res := engine.Run(context.Background(), ex.Input, lcp.DefaultAlgorithm, false)
			require.Empty(t, res.Error)
			require.NotNil(t, res.Summary)
			assert.Equal(t, ex.ExpectedPrefix, res.Summary.FinalCommonPrefix)
		})
	}
}

func TestUsageExamples_Stable(t *testing.T) {
	assert.Equal(t, UsageExamples(), UsageExamples())

	names := make(map[string]bool)
	for _, ex := range UsageExamples() {
		assert.NotEmpty(t, ex.Name)
		assert.NotEmpty(t, ex.Description)
		assert.False(t, names[ex.Name], "duplicate example name %q", ex.Name)
		names[ex.Name] = true
	}
}

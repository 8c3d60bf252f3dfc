package progressive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/prefixd/internal/lcp"
)

func TestRun_EndToEnd(t *testing.T) {
	input := []string{"prefix_test_1", "prefix_test_2", "prefix_demo", "prefix_example"}

	res := NewEngine().Run(context.Background(), input, lcp.AlgorithmCharacter, false)
	require.Empty(t, res.Error)
	require.Len(t, res.Results, 3)

	assert.Equal(t, 1, res.Results[0].Step)
	assert.Equal(t, 2, res.Results[0].StringsCount)
	assert.Equal(t, "prefix_test_", res.Results[0].CommonPrefix)

	assert.Equal(t, 2, res.Results[1].Step)
	assert.Equal(t, 3, res.Results[1].StringsCount)
	assert.Equal(t, "prefix_", res.Results[1].CommonPrefix)

	assert.Equal(t, 3, res.Results[2].Step)
	assert.Equal(t, 4, res.Results[2].StringsCount)
	assert.Equal(t, "prefix_", res.Results[2].CommonPrefix)

	assert.Equal(t, 3, res.TotalSteps)
	assert.Equal(t, "character", res.AlgorithmUsed)

	require.NotNil(t, res.Summary)
	assert.Equal(t, 4, res.Summary.InitialStringsCount)
	assert.Equal(t, "prefix_", res.Summary.FinalCommonPrefix)
	assert.Equal(t, 7, res.Summary.PrefixLength)
}

func TestRun_EmptyInput(t *testing.T) {
	res := NewEngine().Run(context.Background(), nil, lcp.AlgorithmCharacter, false)
	assert.Equal(t, "empty string list provided", res.Error)
	assert.Empty(t, res.Results)
	assert.Zero(t, res.TotalSteps)
	assert.Nil(t, res.Summary)
}

func TestRun_SingleString(t *testing.T) {
	res := NewEngine().Run(context.Background(), []string{"single"}, lcp.AlgorithmTrie, false)
	require.Empty(t, res.Error)
	require.Len(t, res.Results, 1)

	assert.Equal(t, 1, res.Results[0].Step)
	assert.Equal(t, 1, res.Results[0].StringsCount)
	assert.Equal(t, "single", res.Results[0].CommonPrefix)
	assert.Equal(t, []string{"single"}, res.Results[0].AnalyzedStrings)

	require.NotNil(t, res.Summary)
	assert.Equal(t, "single", res.Summary.FinalCommonPrefix)
	assert.Equal(t, 6, res.Summary.PrefixLength)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	res := NewEngine().Run(context.Background(), []string{"a", "b"}, "quantum", false)
	require.NotEmpty(t, res.Error)
	assert.Contains(t, res.Error, "quantum")
	assert.Contains(t, res.Error, "binary_search")
	assert.Empty(t, res.Results)
}

func TestRun_EmptyAlgorithmSelectsDefault(t *testing.T) {
	res := NewEngine().Run(context.Background(), []string{"aa", "ab"}, "", false)
	require.Empty(t, res.Error)
	assert.Equal(t, string(lcp.DefaultAlgorithm), res.AlgorithmUsed)
}

func TestRun_MonotonicShrink(t *testing.T) {
	inputs := [][]string{
		{"prefix_test_1", "prefix_test_2", "prefix_demo", "prefix_example"},
		{"aaaa", "aaab", "aab", "ab", "b"},
		{"same", "same", "same", "same"},
		{"https://example.com/api/v1/users", "https://example.com/api/v1/posts", "https://example.com/api/v2/users"},
	}

	for _, alg := range lcp.Algorithms() {
		for _, input := range inputs {
			res := NewEngine().Run(context.Background(), input, alg, false)
			require.Empty(t, res.Error)
			for i := 1; i < len(res.Results); i++ {
				prev := len(res.Results[i-1].CommonPrefix)
				cur := len(res.Results[i].CommonPrefix)
				assert.GreaterOrEqual(t, prev, cur,
					"algorithm %s: prefix grew between step %d and %d on %q", alg, i, i+1, input)
			}
		}
	}
}

func TestRun_TotalStepsInvariant(t *testing.T) {
	for n := 2; n <= 6; n++ {
		input := make([]string, n)
		for i := range input {
			input[i] = "common_" + string(rune('a'+i))
		}
		res := NewEngine().Run(context.Background(), input, lcp.AlgorithmBinarySearch, false)
		require.Empty(t, res.Error)
		assert.Equal(t, n-1, res.TotalSteps)
		assert.Len(t, res.Results, n-1)
	}
}

func TestRun_DoesNotAliasInput(t *testing.T) {
	input := []string{"mutate_a", "mutate_b", "mutate_c"}
	res := NewEngine().Run(context.Background(), input, lcp.AlgorithmCharacter, false)
	require.Empty(t, res.Error)

	// Mutating the caller's slice after the run must not change recorded steps.
	input[0] = "changed"
	assert.Equal(t, "mutate_a", res.Results[0].AnalyzedStrings[0])
}

func TestRun_AnalyzedStrings(t *testing.T) {
	input := []string{"s1", "s2", "s3", "s4"}
	res := NewEngine().Run(context.Background(), input, lcp.AlgorithmCharacter, false)
	require.Empty(t, res.Error)

	for i, step := range res.Results {
		assert.Equal(t, input[:i+2], step.AnalyzedStrings)
	}
}

func TestRun_AlgorithmsAgreeStepwise(t *testing.T) {
	input := []string{"prefix_test_1", "prefix_test_2", "prefix_demo", "prefix_example"}

	var runs []*RunResult
	for _, alg := range lcp.Algorithms() {
		runs = append(runs, NewEngine().Run(context.Background(), input, alg, false))
	}
	for i := range runs[0].Results {
		for _, run := range runs[1:] {
			assert.Equal(t, runs[0].Results[i].CommonPrefix, run.Results[i].CommonPrefix,
				"step %d disagrees", i+1)
		}
	}
}

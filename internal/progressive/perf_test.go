package progressive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/prefixd/internal/lcp"
)

func TestEstimateMemory(t *testing.T) {
	est := estimateMemory([]string{"abcd", "ab"}, "ab")

	assert.Equal(t, 6, est.InputChars)
	assert.Equal(t, 2, est.OutputChars)
	assert.Equal(t, 2, est.StringsCount)
	assert.Equal(t, 6*perCharBytes+2*perCharBytes+2*perStringBytes, est.EstimatedBytes)
}

func TestEstimateMemory_Deterministic(t *testing.T) {
	input := []string{"prefix_a", "prefix_b", "prefix_c"}
	first := estimateMemory(input, "prefix_")
	second := estimateMemory(input, "prefix_")
	assert.Equal(t, first, second)
}

func TestSummarizePerformance_Empty(t *testing.T) {
	assert.Nil(t, summarizePerformance(nil))
}

func TestSummarizePerformance_SingleRecord(t *testing.T) {
	records := []PerformanceRecord{
		{Step: 1, StringsCount: 2, ExecutionTimeMS: 0.25, MemoryEstimate: MemoryEstimate{EstimatedBytes: 96}},
	}

	s := summarizePerformance(records)
	require.NotNil(t, s)
	assert.Equal(t, 0.25, s.TotalExecutionTimeMS)
	assert.Equal(t, 0.25, s.AverageExecutionTimeMS)
	assert.Equal(t, 0.25, s.MaxExecutionTimeMS)
	assert.Equal(t, 0.25, s.MinExecutionTimeMS)
	assert.Equal(t, 96, s.PeakMemoryEstimateBytes)
	assert.Equal(t, 2, s.TotalStringsProcessed)
}

func TestSummarizePerformance_Aggregates(t *testing.T) {
	records := []PerformanceRecord{
		{Step: 1, StringsCount: 2, ExecutionTimeMS: 0.1, MemoryEstimate: MemoryEstimate{EstimatedBytes: 100}},
		{Step: 2, StringsCount: 3, ExecutionTimeMS: 0.3, MemoryEstimate: MemoryEstimate{EstimatedBytes: 300}},
		{Step: 3, StringsCount: 4, ExecutionTimeMS: 0.2, MemoryEstimate: MemoryEstimate{EstimatedBytes: 200}},
	}

	s := summarizePerformance(records)
	require.NotNil(t, s)
	assert.InDelta(t, 0.6, s.TotalExecutionTimeMS, 1e-9)
	assert.InDelta(t, 0.2, s.AverageExecutionTimeMS, 1e-9)
	assert.Equal(t, 0.3, s.MaxExecutionTimeMS)
	assert.Equal(t, 0.1, s.MinExecutionTimeMS)
	assert.Equal(t, 300, s.PeakMemoryEstimateBytes)
	assert.Equal(t, 9, s.TotalStringsProcessed)
}

func TestRun_WithPerformance(t *testing.T) {
	input := []string{"perf_a", "perf_b", "perf_c", "perf_d", "perf_e"}

	res := NewEngine().Run(context.Background(), input, lcp.AlgorithmTrie, true)
	require.Empty(t, res.Error)
	require.Len(t, res.PerformanceData, res.TotalSteps)
	require.NotNil(t, res.PerformanceSummary)

	var totalMS float64
	var totalStrings int
	peak := 0
	for i, rec := range res.PerformanceData {
		assert.Equal(t, res.Results[i].Step, rec.Step)
		assert.Equal(t, res.Results[i].StringsCount, rec.StringsCount)
		assert.GreaterOrEqual(t, rec.ExecutionTimeMS, 0.0)
		totalMS += rec.ExecutionTimeMS
		totalStrings += rec.StringsCount
		if rec.MemoryEstimate.EstimatedBytes > peak {
			peak = rec.MemoryEstimate.EstimatedBytes
		}
	}

	assert.InDelta(t, totalMS, res.PerformanceSummary.TotalExecutionTimeMS, 1e-4)
	assert.Equal(t, totalStrings, res.PerformanceSummary.TotalStringsProcessed)
	assert.Equal(t, peak, res.PerformanceSummary.PeakMemoryEstimateBytes)
}

func TestRun_WithoutPerformance(t *testing.T) {
	res := NewEngine().Run(context.Background(), []string{"a1", "a2"}, lcp.AlgorithmCharacter, false)
	require.Empty(t, res.Error)
	assert.Nil(t, res.PerformanceData)
	assert.Nil(t, res.PerformanceSummary)
}

func TestElapsedMS_Rounding(t *testing.T) {
	assert.Equal(t, 1.5, elapsedMS(1500*time.Microsecond))
	assert.Equal(t, 0.0001, elapsedMS(100*time.Nanosecond))
	assert.Equal(t, 0.0, elapsedMS(0))
}

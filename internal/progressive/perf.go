package progressive

import (
	"math"
	"time"
)

// Memory estimate weights. The formula is deterministic and only meaningful
// for relative comparison across steps of the same run; it is not a measured
// allocation. perStringBytes matches the Go string-header size.
const (
	perCharBytes   = 4
	perStringBytes = 16
)

// MemoryEstimate is a deterministic byte-cost estimate for one step, derived
// from character counts rather than measured memory.
type MemoryEstimate struct {
	InputChars     int `json:"input_chars"`
	OutputChars    int `json:"output_chars"`
	StringsCount   int `json:"strings_count"`
	EstimatedBytes int `json:"estimated_bytes"`
}

// PerformanceRecord captures timing and memory data for one step.
type PerformanceRecord struct {
	Step            int            `json:"step"`
	StringsCount    int            `json:"strings_count"`
	ExecutionTimeMS float64        `json:"execution_time_ms"`
	MemoryEstimate  MemoryEstimate `json:"memory_estimate"`
}

// PerformanceSummary aggregates the per-step records of one run.
type PerformanceSummary struct {
	TotalExecutionTimeMS    float64 `json:"total_execution_time_ms"`
	AverageExecutionTimeMS  float64 `json:"average_execution_time_ms"`
	MaxExecutionTimeMS      float64 `json:"max_execution_time_ms"`
	MinExecutionTimeMS      float64 `json:"min_execution_time_ms"`
	PeakMemoryEstimateBytes int     `json:"peak_memory_estimate_bytes"`
	TotalStringsProcessed   int     `json:"total_strings_processed"`
}

// estimateMemory computes the deterministic byte-cost estimate for analyzing
// the given strings and producing the given prefix.
func estimateMemory(strs []string, prefix string) MemoryEstimate {
	inputChars := 0
	for _, s := range strs {
		inputChars += len(s)
	}
	outputChars := len(prefix)
	return MemoryEstimate{
		InputChars:     inputChars,
		OutputChars:    outputChars,
		StringsCount:   len(strs),
		EstimatedBytes: inputChars*perCharBytes + outputChars*perCharBytes + len(strs)*perStringBytes,
	}
}

// summarizePerformance reduces the collected records to aggregate statistics.
// Returns nil for an empty record set; a single record is handled without
// division errors.
func summarizePerformance(records []PerformanceRecord) *PerformanceSummary {
	if len(records) == 0 {
		return nil
	}

	s := &PerformanceSummary{
		MinExecutionTimeMS: records[0].ExecutionTimeMS,
	}
	for _, r := range records {
		s.TotalExecutionTimeMS += r.ExecutionTimeMS
		if r.ExecutionTimeMS > s.MaxExecutionTimeMS {
			s.MaxExecutionTimeMS = r.ExecutionTimeMS
		}
		if r.ExecutionTimeMS < s.MinExecutionTimeMS {
			s.MinExecutionTimeMS = r.ExecutionTimeMS
		}
		if r.MemoryEstimate.EstimatedBytes > s.PeakMemoryEstimateBytes {
			s.PeakMemoryEstimateBytes = r.MemoryEstimate.EstimatedBytes
		}
		s.TotalStringsProcessed += r.StringsCount
	}
	s.TotalExecutionTimeMS = roundMS(s.TotalExecutionTimeMS)
	s.AverageExecutionTimeMS = roundMS(s.TotalExecutionTimeMS / float64(len(records)))
	return s
}

// roundMS rounds a millisecond value to 4 decimal places, keeping
// sub-millisecond precision in serialized output.
func roundMS(ms float64) float64 {
	return math.Round(ms*10000) / 10000
}

// elapsedMS converts a wall-clock duration to rounded milliseconds.
func elapsedMS(d time.Duration) float64 {
	return roundMS(float64(d.Nanoseconds()) / 1e6)
}

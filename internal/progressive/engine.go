// Package progressive drives step-by-step longest-common-prefix analysis:
// starting from the first two strings of an ordered input, one more string is
// incorporated per step and the common prefix is recorded after each
// incorporation.
package progressive

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prefixd/internal/lcp"
)

// Engine runs progressive analyses. It holds no per-run state; concurrent
// callers may share one Engine as long as each owns its input slice.
type Engine struct {
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine. Without options it logs nowhere.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run performs a progressive analysis of strs with the selected algorithm.
//
// The returned RunResult is always well formed. Empty input and unrecognized
// algorithm identifiers are reported through its Error field, not as a
// failure. A single-string input produces one step whose prefix is the string
// itself. For two or more strings, step k covers strs[0:k+1] for k = 1..n-1.
//
// The input slice is never mutated; each step records its own copy of the
// analyzed strings.
func (e *Engine) Run(ctx context.Context, strs []string, algorithm lcp.Algorithm, includePerformance bool) *RunResult {
	if len(strs) == 0 {
		return &RunResult{Results: []Step{}, Error: lcp.ErrEmptyInput.Error()}
	}

	if _, err := lcp.ParseAlgorithm(string(algorithm)); err != nil {
		e.logger.Warn("rejected run", zap.String("algorithm", string(algorithm)), zap.Error(err))
		return &RunResult{Results: []Step{}, Error: err.Error()}
	}
	if algorithm == "" {
		algorithm = lcp.DefaultAlgorithm
	}

	if len(strs) == 1 {
		// The one relaxation of the k>=2 rule: a lone string is its own
		// common prefix rather than a degenerate empty result.
		step := Step{
			Step:            1,
			StringsCount:    1,
			CommonPrefix:    strs[0],
			AnalyzedStrings: slices.Clone(strs),
		}
		return &RunResult{
			Results:       []Step{step},
			TotalSteps:    1,
			AlgorithmUsed: string(algorithm),
			Summary: &Summary{
				InitialStringsCount: 1,
				FinalCommonPrefix:   strs[0],
				PrefixLength:        len(strs[0]),
			},
		}
	}

	res := &RunResult{AlgorithmUsed: string(algorithm)}
	for k := 2; k <= len(strs); k++ {
		subset := strs[:k]

		var (
			prefix string
			err    error
		)
		if includePerformance {
			start := time.Now()
			prefix, err = lcp.Find(algorithm, subset)
			elapsed := time.Since(start)
			if err == nil {
				res.PerformanceData = append(res.PerformanceData, PerformanceRecord{
					Step:            k - 1,
					StringsCount:    k,
					ExecutionTimeMS: elapsedMS(elapsed),
					MemoryEstimate:  estimateMemory(subset, prefix),
				})
			}
		} else {
			prefix, err = lcp.Find(algorithm, subset)
		}
		if err != nil {
			// Unreachable after the validation above; surfaced structurally
			// rather than dropped, per the degradation contract.
			res.Error = err.Error()
			return res
		}

		res.Results = append(res.Results, Step{
			Step:            k - 1,
			StringsCount:    k,
			CommonPrefix:    prefix,
			AnalyzedStrings: slices.Clone(subset),
		})
	}

	last := res.Results[len(res.Results)-1]
	res.TotalSteps = len(res.Results)
	res.Summary = &Summary{
		InitialStringsCount: len(strs),
		FinalCommonPrefix:   last.CommonPrefix,
		PrefixLength:        len(last.CommonPrefix),
	}
	if includePerformance {
		res.PerformanceSummary = summarizePerformance(res.PerformanceData)
	}

	e.logger.Debug("progressive run complete",
		zap.String("algorithm", string(algorithm)),
		zap.Int("strings", len(strs)),
		zap.Int("steps", res.TotalSteps),
		zap.Int("prefix_length", res.Summary.PrefixLength))

	return res
}

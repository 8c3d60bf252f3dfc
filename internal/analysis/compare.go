// Package analysis runs the progressive engine across all three LCP
// algorithms over identical input and verifies that they agree step by step.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/progressive"
)

// Comparison is the combined report of running every algorithm over the same
// input.
type Comparison struct {
	AlgorithmsCompared []string                          `json:"algorithms_compared"`
	InputStringsCount  int                               `json:"input_strings_count"`
	Results            map[string]*progressive.RunResult `json:"comparison_results"`

	// Agreement is true when every step's prefix matches across all runs.
	Agreement     bool           `json:"agreement"`
	Disagreements []Disagreement `json:"disagreements,omitempty"`
}

// Disagreement records a step index at which the algorithms produced
// different prefixes. Its presence indicates an internal inconsistency.
type Disagreement struct {
	Step     int               `json:"step"`
	Prefixes map[string]string `json:"prefixes"`
}

// Analyzer drives cross-algorithm comparisons.
type Analyzer struct {
	engine *progressive.Engine
	logger *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for disagreement diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// NewAnalyzer creates an analyzer backed by the given engine.
func NewAnalyzer(engine *progressive.Engine, opts ...Option) *Analyzer {
	a := &Analyzer{engine: engine, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// CompareAlgorithms runs the engine once per algorithm over strs and checks
// that every step's prefix matches across the three runs. A disagreement is
// reported in the result and logged, never discarded.
func (a *Analyzer) CompareAlgorithms(ctx context.Context, strs []string, includePerformance bool) *Comparison {
	algorithms := lcp.Algorithms()

	cmp := &Comparison{
		InputStringsCount: len(strs),
		Results:           make(map[string]*progressive.RunResult, len(algorithms)),
	}
	for _, alg := range algorithms {
		cmp.AlgorithmsCompared = append(cmp.AlgorithmsCompared, string(alg))
		cmp.Results[string(alg)] = a.engine.Run(ctx, strs, alg, includePerformance)
	}

	cmp.Agreement, cmp.Disagreements = checkAgreement(cmp.Results, cmp.AlgorithmsCompared)
	if !cmp.Agreement {
		a.logger.Error("algorithms disagree",
			zap.Int("input_strings", len(strs)),
			zap.Int("disagreements", len(cmp.Disagreements)))
	}
	return cmp
}

// checkAgreement compares prefixes at matching step indices across all runs.
// The first algorithm in order serves as the baseline.
func checkAgreement(results map[string]*progressive.RunResult, order []string) (bool, []Disagreement) {
	if len(order) == 0 {
		return true, nil
	}
	baseline := results[order[0]]

	var disagreements []Disagreement
	for i, step := range baseline.Results {
		prefixes := map[string]string{order[0]: step.CommonPrefix}
		mismatch := false
		for _, name := range order[1:] {
			run := results[name]
			if i >= len(run.Results) {
				mismatch = true
				continue
			}
			prefixes[name] = run.Results[i].CommonPrefix
			if run.Results[i].CommonPrefix != step.CommonPrefix {
				mismatch = true
			}
		}
		if mismatch {
			disagreements = append(disagreements, Disagreement{Step: step.Step, Prefixes: prefixes})
		}
	}
	return len(disagreements) == 0, disagreements
}

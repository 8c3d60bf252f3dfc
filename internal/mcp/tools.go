package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prefixd/internal/analysis"
	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/progressive"
)

// registerTools registers all MCP tools with the server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "progressive_prefix_finder",
		Description: "Finds common prefixes progressively from a list of strings. Starts with the first 2 strings, then adds one at a time until all strings are processed.",
	}, s.handleProgressivePrefix)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "prefix_compare_algorithms",
		Description: "Runs all three prefix algorithms (character, binary_search, trie) over the same input and reports whether they agree at every step.",
	}, s.handleCompareAlgorithms)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "prefix_usage_examples",
		Description: "Returns canonical usage examples for progressive prefix analysis (file paths, URLs, identifier names, edge cases).",
	}, s.handleUsageExamples)
}

// ===== PROGRESSIVE PREFIX TOOL =====

type progressivePrefixInput struct {
	Strings            []string `json:"strings" jsonschema:"required,List of strings to analyze for common prefixes"`
	Algorithm          string   `json:"algorithm,omitempty" jsonschema:"Algorithm to use: character binary_search or trie (default: character)"`
	IncludePerformance *bool    `json:"include_performance,omitempty" jsonschema:"Whether to include performance metrics (default: false)"`
}

func (s *Server) handleProgressivePrefix(ctx context.Context, req *mcp.CallToolRequest, args progressivePrefixInput) (*mcp.CallToolResult, progressive.RunResult, error) {
	start := time.Now()
	s.metrics.IncrementActive(ctx, "progressive_prefix_finder")
	var toolErr error
	defer func() {
		s.metrics.DecrementActive(ctx, "progressive_prefix_finder")
		s.metrics.RecordInvocation(ctx, "progressive_prefix_finder", time.Since(start), toolErr)
	}()

	algorithm := s.defaultAlgorithm
	if args.Algorithm != "" {
		parsed, err := lcp.ParseAlgorithm(args.Algorithm)
		if err != nil {
			// Degrade to a structured error field; the caller always gets a
			// well-formed result object.
			toolErr = err
			return nil, progressive.RunResult{Results: []progressive.Step{}, Error: err.Error()}, nil
		}
		algorithm = parsed
	}

	includePerformance := s.includePerformance
	if args.IncludePerformance != nil {
		includePerformance = *args.IncludePerformance
	}

	if len(args.Strings) == 0 {
		toolErr = lcp.ErrEmptyInput
	}
	result := s.engine.Run(ctx, args.Strings, algorithm, includePerformance)

	s.logger.Debug("progressive_prefix_finder handled",
		zap.String("algorithm", string(algorithm)),
		zap.Int("strings", len(args.Strings)),
		zap.Int("steps", result.TotalSteps))
	return nil, *result, nil
}

// ===== COMPARISON TOOL =====

type compareAlgorithmsInput struct {
	Strings            []string `json:"strings" jsonschema:"required,List of strings to analyze with every algorithm"`
	IncludePerformance *bool    `json:"include_performance,omitempty" jsonschema:"Whether to include per-algorithm performance metrics (default: true)"`
}

func (s *Server) handleCompareAlgorithms(ctx context.Context, req *mcp.CallToolRequest, args compareAlgorithmsInput) (*mcp.CallToolResult, analysis.Comparison, error) {
	start := time.Now()
	s.metrics.IncrementActive(ctx, "prefix_compare_algorithms")
	var toolErr error
	defer func() {
		s.metrics.DecrementActive(ctx, "prefix_compare_algorithms")
		s.metrics.RecordInvocation(ctx, "prefix_compare_algorithms", time.Since(start), toolErr)
	}()

	if len(args.Strings) == 0 {
		toolErr = lcp.ErrEmptyInput
	}

	// Comparisons include performance data unless explicitly disabled.
	includePerformance := true
	if args.IncludePerformance != nil {
		includePerformance = *args.IncludePerformance
	}

	cmp := s.analyzer.CompareAlgorithms(ctx, args.Strings, includePerformance)
	if !cmp.Agreement {
		s.logger.Error("prefix_compare_algorithms detected disagreement",
			zap.Int("input_strings", len(args.Strings)))
	}
	return nil, *cmp, nil
}

// ===== USAGE EXAMPLES TOOL =====

type usageExamplesInput struct{}

type usageExamplesOutput struct {
	Examples []analysis.UsageExample `json:"examples" jsonschema:"Canonical (input expected-output) pairs"`
}

func (s *Server) handleUsageExamples(ctx context.Context, req *mcp.CallToolRequest, args usageExamplesInput) (*mcp.CallToolResult, usageExamplesOutput, error) {
	start := time.Now()
	s.metrics.IncrementActive(ctx, "prefix_usage_examples")
	defer func() {
		s.metrics.DecrementActive(ctx, "prefix_usage_examples")
		s.metrics.RecordInvocation(ctx, "prefix_usage_examples", time.Since(start), nil)
	}()

	return nil, usageExamplesOutput{Examples: analysis.UsageExamples()}, nil
}

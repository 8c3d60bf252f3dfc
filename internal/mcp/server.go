package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/prefixd/internal/analysis"
	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/progressive"
)

// Server hosts the progressive prefix tools on an MCP transport.
type Server struct {
	mcp      *mcp.Server
	engine   *progressive.Engine
	analyzer *analysis.Analyzer
	metrics  *Metrics
	logger   *zap.Logger

	defaultAlgorithm   lcp.Algorithm
	includePerformance bool
}

// Config configures the MCP server.
type Config struct {
	// Name is the server implementation name (default: "prefixd").
	Name string

	// Version is the server version (default: "1.0.0").
	Version string

	// Logger for structured logging.
	Logger *zap.Logger

	// DefaultAlgorithm is used when a tool call names no algorithm.
	DefaultAlgorithm lcp.Algorithm

	// IncludePerformance enables per-step instrumentation when the tool call
	// leaves the flag unset.
	IncludePerformance bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:             "prefixd",
		Version:          "1.0.0",
		Logger:           zap.NewNop(),
		DefaultAlgorithm: lcp.DefaultAlgorithm,
	}
}

// NewServer creates an MCP server backed by the given engine and analyzer.
func NewServer(cfg *Config, engine *progressive.Engine, analyzer *analysis.Analyzer) (*Server, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if analyzer == nil {
		return nil, fmt.Errorf("analyzer is required")
	}
	if cfg.DefaultAlgorithm != "" && !cfg.DefaultAlgorithm.Valid() {
		return nil, fmt.Errorf("invalid default algorithm %q", cfg.DefaultAlgorithm)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	defaultAlgorithm := cfg.DefaultAlgorithm
	if defaultAlgorithm == "" {
		defaultAlgorithm = lcp.DefaultAlgorithm
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		},
		nil,
	)

	s := &Server{
		mcp:                mcpServer,
		engine:             engine,
		analyzer:           analyzer,
		metrics:            NewMetrics(cfg.Logger),
		logger:             cfg.Logger,
		defaultAlgorithm:   defaultAlgorithm,
		includePerformance: cfg.IncludePerformance,
	}
	s.registerTools()
	return s, nil
}

// Run starts the MCP server on the stdio transport and blocks until the
// context is canceled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio transport",
		zap.String("default_algorithm", string(s.defaultAlgorithm)))
	transport := &mcp.StdioTransport{}
	if err := s.mcp.Run(ctx, transport); err != nil {
		return fmt.Errorf("server run failed: %w", err)
	}
	return nil
}

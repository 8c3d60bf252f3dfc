// Prefixd is an MCP server exposing progressive longest-common-prefix
// analysis tools over the stdio transport.
//
// Configuration is loaded from built-in defaults, an optional YAML file, and
// PREFIXD_-prefixed environment variables. See internal/config for details.
//
// Usage:
//
//	# Start the server with defaults
//	prefixd
//
//	# Configure via environment
//	PREFIXD_ENGINE_DEFAULT_ALGORITHM=trie PREFIXD_LOG_LEVEL=debug prefixd
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/prefixd/internal/analysis"
	"github.com/fyrsmithlabs/prefixd/internal/config"
	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/logging"
	"github.com/fyrsmithlabs/prefixd/internal/mcp"
	"github.com/fyrsmithlabs/prefixd/internal/progressive"
)

// Version information (set via ldflags during build).
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "prefixd",
	Short: "MCP server for progressive common-prefix analysis",
	Long: `prefixd serves progressive longest-common-prefix analysis as MCP tools
on the stdio transport: progressive_prefix_finder, prefix_compare_algorithms,
and prefix_usage_examples.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prefixd: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validated by config.Load.
	algorithm, _ := lcp.ParseAlgorithm(cfg.Engine.DefaultAlgorithm)

	engine := progressive.NewEngine(progressive.WithLogger(logger.Named("engine")))
	analyzer := analysis.NewAnalyzer(engine, analysis.WithLogger(logger.Named("analysis")))

	srv, err := mcp.NewServer(&mcp.Config{
		Name:               cfg.Server.Name,
		Version:            cfg.Server.Version,
		Logger:             logger.Named("mcp"),
		DefaultAlgorithm:   algorithm,
		IncludePerformance: cfg.Engine.IncludePerformance,
	}, engine, analyzer)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// Startup note goes to stderr; stdout carries MCP protocol frames.
	fmt.Fprintf(os.Stderr, "%s %s started on stdio\n", cfg.Server.Name, cfg.Server.Version)

	return srv.Run(ctx)
}

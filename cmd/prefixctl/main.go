// Package main implements the prefixctl CLI for running progressive prefix
// analyses locally, without an MCP client.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/prefixd/internal/analysis"
	"github.com/fyrsmithlabs/prefixd/internal/lcp"
	"github.com/fyrsmithlabs/prefixd/internal/progressive"
)

var (
	algorithmFlag   string
	performanceFlag bool
	jsonFlag        bool

	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prefixctl: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "prefixctl",
	Short: "CLI for progressive common-prefix analysis",
	Long: `prefixctl runs progressive longest-common-prefix analysis locally.
It accepts strings as arguments or newline-separated on stdin.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "print full JSON output")
	analyzeCmd.Flags().StringVarP(&algorithmFlag, "algorithm", "a", "character", "algorithm: character, binary_search, or trie")
	analyzeCmd.Flags().BoolVarP(&performanceFlag, "performance", "p", false, "include performance metrics")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(examplesCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [strings...]",
	Short: "Run a progressive prefix analysis",
	Long: `Run a progressive prefix analysis over the given strings.

Examples:
  # Analyze arguments
  prefixctl analyze prefix_test_1 prefix_test_2 prefix_demo

  # Analyze lines from stdin with the trie algorithm
  cat paths.txt | prefixctl analyze -a trie

  # Include timing and memory estimates
  prefixctl analyze -p getUserData getUserInfo getUserProfile`,
	RunE: runAnalyze,
}

var compareCmd = &cobra.Command{
	Use:   "compare [strings...]",
	Short: "Run all three algorithms and check agreement",
	RunE:  runCompare,
}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Print canonical usage examples",
	RunE:  runExamples,
}

// readStrings returns the command arguments, or newline-separated stdin lines
// when no arguments were given.
func readStrings(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	strs, err := readStrings(args)
	if err != nil {
		return err
	}

	algorithm, err := lcp.ParseAlgorithm(algorithmFlag)
	if err != nil {
		return err
	}

	res := progressive.NewEngine().Run(context.Background(), strs, algorithm, performanceFlag)
	if jsonFlag {
		return printJSON(res)
	}
	printRunResult(res)
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	strs, err := readStrings(args)
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(progressive.NewEngine())
	cmp := analyzer.CompareAlgorithms(context.Background(), strs, true)
	if jsonFlag {
		return printJSON(cmp)
	}

	fmt.Printf("compared %s over %d strings\n", strings.Join(cmp.AlgorithmsCompared, ", "), cmp.InputStringsCount)
	for _, name := range cmp.AlgorithmsCompared {
		res := cmp.Results[name]
		if res.Error != "" {
			fmt.Printf("  %-14s error: %s\n", name, res.Error)
			continue
		}
		line := fmt.Sprintf("  %-14s final prefix %q (%d steps)", name, res.Summary.FinalCommonPrefix, res.TotalSteps)
		if res.PerformanceSummary != nil {
			line += fmt.Sprintf(", total %.4fms", res.PerformanceSummary.TotalExecutionTimeMS)
		}
		fmt.Println(line)
	}
	if cmp.Agreement {
		fmt.Println("agreement: all algorithms produced identical steps")
	} else {
		fmt.Printf("DISAGREEMENT at %d step(s)\n", len(cmp.Disagreements))
	}
	return nil
}

func runExamples(cmd *cobra.Command, args []string) error {
	examples := analysis.UsageExamples()
	if jsonFlag {
		return printJSON(examples)
	}

	for _, ex := range examples {
		fmt.Printf("%s: %s\n", ex.Name, ex.Description)
		fmt.Printf("  input:  %s\n", formatStrings(ex.Input))
		fmt.Printf("  prefix: %q\n", ex.ExpectedPrefix)
		if ex.UseCase != "" {
			fmt.Printf("  use:    %s\n", ex.UseCase)
		}
	}
	return nil
}

func printRunResult(res *progressive.RunResult) {
	if res.Error != "" {
		fmt.Printf("error: %s\n", res.Error)
		return
	}

	for _, step := range res.Results {
		fmt.Printf("step %d (%d strings): %q  <- %s\n",
			step.Step, step.StringsCount, step.CommonPrefix, formatStrings(step.AnalyzedStrings))
	}
	fmt.Printf("final prefix: %q (length %d, algorithm %s)\n",
		res.Summary.FinalCommonPrefix, res.Summary.PrefixLength, res.AlgorithmUsed)

	if res.PerformanceSummary != nil {
		s := res.PerformanceSummary
		fmt.Printf("performance: total %.4fms, avg %.4fms, max %.4fms, min %.4fms, peak mem %dB, %d strings processed\n",
			s.TotalExecutionTimeMS, s.AverageExecutionTimeMS, s.MaxExecutionTimeMS,
			s.MinExecutionTimeMS, s.PeakMemoryEstimateBytes, s.TotalStringsProcessed)
	}
}

// formatStrings renders a string list for terminal display, truncating after
// three entries.
func formatStrings(strs []string) string {
	const maxShown = 3
	shown := strs
	suffix := ""
	if len(strs) > maxShown {
		shown = strs[:maxShown]
		suffix = ", ..."
	}
	quoted := make([]string, len(shown))
	for i, s := range shown {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return "[" + strings.Join(quoted, ", ") + suffix + "]"
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

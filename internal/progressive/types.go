package progressive

// Step records the outcome of one progressive iteration: the common prefix of
// the first StringsCount input strings. Steps are created once per iteration
// and never mutated afterwards.
type Step struct {
	// Step is the 1-based step index.
	Step int `json:"step"`

	// StringsCount is the number of strings considered at this step.
	StringsCount int `json:"strings_count"`

	// CommonPrefix is the LCP of the analyzed strings, possibly empty.
	CommonPrefix string `json:"common_prefix"`

	// AnalyzedStrings is the exact input slice analyzed at this step.
	AnalyzedStrings []string `json:"analyzed_strings"`
}

// Summary is a read-only view derived from the final step.
type Summary struct {
	InitialStringsCount int    `json:"initial_strings_count"`
	FinalCommonPrefix   string `json:"final_common_prefix"`
	PrefixLength        int    `json:"prefix_length"`
}

// RunResult is the complete outcome of one progressive run. It is always
// well formed: malformed input surfaces in Error with empty Results rather
// than as a failure, so a consuming shell can always relay a response.
type RunResult struct {
	Results       []Step   `json:"results"`
	TotalSteps    int      `json:"total_steps"`
	AlgorithmUsed string   `json:"algorithm_used,omitempty"`
	Summary       *Summary `json:"summary,omitempty"`

	// Error describes an input problem (empty list, unknown algorithm).
	Error string `json:"error,omitempty"`

	// PerformanceData and PerformanceSummary are populated only when the run
	// was invoked with performance instrumentation enabled.
	PerformanceData    []PerformanceRecord `json:"performance_data,omitempty"`
	PerformanceSummary *PerformanceSummary `json:"performance_summary,omitempty"`
}

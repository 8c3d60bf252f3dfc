// Package mcp exposes the progressive prefix engine as MCP tools.
//
// This implementation uses the MCP SDK (github.com/modelcontextprotocol/go-sdk/mcp)
// and registers three tools: progressive_prefix_finder (the engine itself),
// prefix_compare_algorithms (cross-algorithm agreement check), and
// prefix_usage_examples (static documentation table). Malformed tool input is
// reported through a structured error field in the tool output, never as a
// protocol failure.
package mcp

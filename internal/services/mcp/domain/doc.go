// Package domain translates MCP tool calls into flight-search operations.
//
// The package is intentionally explicit about that mapping:
// - validate tool arguments into a fully resolved search query,
// - route the call to the injected flight searcher,
// - and surface both readable text and structured outputs MCP clients can render.
package domain

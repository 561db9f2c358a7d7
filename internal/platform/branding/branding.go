// Package branding centralizes user-facing product naming.
package branding

// AppName is the product name shown to MCP clients and in diagnostics.
const AppName = "Tripwing"

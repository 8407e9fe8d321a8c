// Package notegraph parses markdown documents into ordered, nested block
// trees and pushes them into a Logseq-compatible note-graph API. It powers
// both a CLI and an MCP server exposing the same operations to agents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., logseq/, sqlite/, mcp/).
package notegraph

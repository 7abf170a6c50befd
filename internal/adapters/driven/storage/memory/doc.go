// Package memory provides in-memory driven adapters. The song store
// backs the MCP server when no library path is configured, and both
// stores serve as fakes in service tests.
package memory

// Package tools provides a metadata-driven registry for the MCP tool
// definitions. Tools are declared in one table and registered explicitly at
// startup with type-safe handlers; there is no global registration side
// effect.
package tools

// ToolSpec defines a tool's metadata for declarative registration. Each
// spec maps to a client method with a matching Args type.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "cbdb_search_places").
	Name string

	// Method is the client method name (e.g., "SearchPlaces").
	Method string

	// Description is the tool description shown to LLMs.
	Description string

	// Title is the human-readable tool title for annotations.
	Title string

	// Category groups tools logically (search, read).
	Category string

	// Source names the upstream database this tool queries (cbdb, tgaz).
	Source string

	// ReadOnly indicates the tool doesn't modify upstream state.
	ReadOnly bool

	// Idempotent indicates repeated calls have the same effect.
	Idempotent bool

	// OpenWorld indicates the tool reaches external resources.
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}

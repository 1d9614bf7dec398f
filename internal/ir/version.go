package ir

// Version constants for layout serialization and the tool itself.
const (
	// IRVersion is the layout schema version.
	IRVersion = "1"

	// ToolVersion is the jointpanel release version.
	ToolVersion = "0.1.0"
)

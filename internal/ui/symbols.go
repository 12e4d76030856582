package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Capability present, step done
	SymbolFail     = "✗" // Capability missing, step failed
	SymbolPending  = "○" // Node not yet started
	SymbolProgress = "◐" // Node in progress
	SymbolComplete = "●" // Swatch / node done
	SymbolSkipped  = "⊘" // Step skipped
	SymbolWarning  = "⚠" // Degraded but continuing
)

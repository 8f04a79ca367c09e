package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed, file produced
	SymbolFail    = "✗" // Check or generation failed
	SymbolWarning = "⚠" // Needs attention, not fatal
	SymbolSkipped = "⊘" // Step skipped
)

// Package ui provides terminal output styling for ssh-keygen-pro.
//
// The package covers styled text and the generation report using the Lip
// Gloss library for consistent terminal styling across all commands.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped items
//	ColorInfo      (cyan)   - Informational messages, file paths
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Variant headings
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Check passed, file produced
//	SymbolFail     (X)          - Check or generation failed
//	SymbolWarning  (triangle)   - Needs attention, not fatal
//	SymbolSkipped  (slashed)    - Step skipped
//
// # Generation Report
//
// RenderReport lists the produced key files grouped by variant:
//
//	fmt.Print(ui.RenderReport(pairs))
//
// The report always names all four files, private halves first within
// each variant, so scripts and operators can pick up the paths directly.
package ui

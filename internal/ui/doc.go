// Package ui provides terminal UI components for flowviz's CLI output.
//
// The package covers the chrome around rendered diagrams: headers, status
// symbols, diagnostic tables, and styled text using the Lip Gloss library.
// The diagram pipeline itself paints with raw escape sequences (see
// internal/palette); this package is only for CLI messaging around it.
//
// # Color Scheme
//
// Colors are truecolor hex values from the same palette as rendered
// diagrams, so chrome and diagram output match:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and degraded modes
//	ColorInfo      (teal)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, signal detail
//	ColorSecondary (blue)   - Taglines, in-progress notes
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess  (checkmark)  - Capability present
//	SymbolFail     (X)          - Capability missing
//	SymbolPending  (circle)     - Node not yet started
//	SymbolProgress (half-fill)  - Node in progress
//	SymbolComplete (filled)     - Legend swatch, node done
//	SymbolWarning  (warning)    - Degraded but continuing
//
// # Header
//
// RenderHeader draws the branded banner shown by verbose commands:
//
//	ui.PrintHeader(ui.HeaderInfo{Version: "v0.2.0", Tagline: "Terminal flow diagrams"})
//
// # Diagnostic Tables
//
// RenderCheckTable renders capability probes for `flowviz caps`:
//
//	rows := []ui.CheckRow{{Status: "pass", Name: "truecolor", Detail: "COLORTERM=truecolor"}}
//	fmt.Print(ui.RenderCheckTable("Terminal", rows))
//
// NewTable wraps the Bubbles table component for interactive views.
package ui

// Package cli implements the flowviz command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small implementation function for the actual work.
// The general structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - The render pipeline shared by render/play/preview (renderJob)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "flowviz" with subcommands for different operations:
//
//	flowviz render [file]   - Parse, lay out and colorize once
//	flowviz play [file]     - Animate the diagram with a reveal style
//	flowviz preview [file]  - Interactive frame stepper
//	flowviz caps            - Show detected terminal capabilities
//	flowviz init            - Create .flowviz.yaml config
//	flowviz version         - Print version information
//	flowviz completion      - Generate shell completions
//
// # Render Pipeline
//
// The renderJob type handles the phases shared by render/play/preview:
//
//  1. Load and validate config
//  2. Resolve the theme and detect terminal capabilities
//  3. Read and parse the diagram (file argument or stdin)
//  4. Lay out, apply progress state, colorize
//
// A parse failure is not fatal: the raw source is printed uncolored and
// the error is reported afterwards, so a half-typed diagram in watch
// mode never kills the session.
//
// # Flag Handling
//
// Global flags (--config, --no-color, --ascii, --theme, --verbose) are
// defined on the root command and available to all subcommands.
// Command-specific flags like --style and --state are defined on
// individual commands.
//
// The RenderFlags type and AddRenderFlags function provide a standard
// way to add the diagram flags (--direction, --state, --completed,
// --active, --layout, --legend) to commands.
package cli

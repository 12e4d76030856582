package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/flowviz/flowviz/internal/logger"
	"github.com/flowviz/flowviz/internal/ui"
)

// Global flags available to all subcommands
var (
	configFlag  string
	noColorFlag bool
	asciiFlag   bool
	themeFlag   string
	verboseFlag bool
)

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "flowviz",
	Short: "Render and animate flow diagrams in the terminal",
	Long: `Flowviz renders directed flow diagrams as colored box art on stdout
and animates their appearance with flicker-free escape sequences.

Diagrams use a small description language: an optional 'flow LR' header,
node declarations like 'id[Label]', edges like 'a --> b', and subgraph
blocks. Node colors come from role classification (agent, tool, hook,
param, event) and adapt to what the terminal supports.

Examples:
  flowviz render flow.mmd
  flowviz play flow.mmd --style fade-in
  flowviz preview flow.mmd
  flowviz caps`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		}
		if verboseFlag {
			os.Setenv(logger.DebugEnv, "1")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file path (default: search for .flowviz.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable all color output")
	rootCmd.PersistentFlags().BoolVar(&asciiFlag, "ascii", false, "use plain ASCII glyphs instead of unicode")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "theme name (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// Config returns the --config flag value for config file resolution.
func Config() string {
	return configFlag
}

// isTTY reports whether the file is attached to a terminal.
func isTTY(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Execute runs the root command and exits non-zero on error. Errors are
// printed in their structured three-part form rather than cobra's
// single-line default.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

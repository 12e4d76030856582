package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flowviz/flowviz/internal/errors"
)

// Command-specific flags
var (
	renderFlags   RenderFlags
	renderWatch   bool
	playFlags     RenderFlags
	playWatch     bool
	playStyle     string
	playFPS       int
	playStagger   int
	playLoop      bool
	playHold      string
	playAltScreen bool
	previewFlags  RenderFlags
	previewStyle  string
	initForce     bool
	initNonInter  bool
)

// renderCmd prints the diagram once, colorized for the terminal
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a flow diagram to stdout",
	Long: `Parse a diagram, lay it out as box art, and print it colorized.

Reads the diagram from the file argument, or from stdin when no file is
given. Progress state (--state, --completed, --active) highlights
finished and running nodes.

Examples:
  flowviz render flow.mmd
  flowviz render flow.mmd --direction LR --legend
  flowviz render flow.mmd --completed fetch,parse --active report
  cat flow.mmd | flowviz render`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCommand(args, renderFlags, renderWatch)
	},
}

// playCmd animates the diagram with a reveal style
var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Animate a flow diagram in the terminal",
	Long: `Render the diagram and animate its appearance frame by frame.

The reveal style, frame rate and hold time come from flags, the theme,
or .flowviz.yaml, in that order. When stdout is not a terminal the
animation degrades to a single static render.

Examples:
  flowviz play flow.mmd
  flowviz play flow.mmd --style fade-in --fps 24
  flowviz play flow.mmd --loop --hold 2s
  flowviz play flow.mmd --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCommand(cmd, args)
	},
}

// previewCmd steps through the animation frames interactively
var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Step through animation frames interactively",
	Long: `Open an interactive stepper over the animation frames.

Keyboard shortcuts:
  right/l/space  Next frame
  left/h         Previous frame
  Home / End     First / last frame
  r              Restart
  s              Cycle reveal style
  ?              Help
  q / Ctrl+C     Quit

Examples:
  flowviz preview flow.mmd
  flowviz preview flow.mmd --style left-right`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return previewCommand(args)
	},
}

// capsCmd prints the detected terminal capability profile
var capsCmd = &cobra.Command{
	Use:   "caps",
	Short: "Show detected terminal capabilities",
	Long: `Detect and print what the attached terminal supports.

Shows the four capability gates (color, truecolor, synchronized output,
unicode) together with the environment signals behind each decision.

Examples:
  flowviz caps
  flowviz caps --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return capsCommand()
	},
}

// initCmd creates a new .flowviz.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .flowviz.yaml configuration",
	Long: `Initialize a new flowviz configuration file.

Creates a .flowviz.yaml file in the current directory with sensible
defaults. Guides you through style and theme selection with interactive
prompts.

Examples:
  flowviz init
  flowviz init --force
  flowviz init --non-interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce, initNonInter)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for flowviz.

Examples:
  # Bash
  flowviz completion bash > /etc/bash_completion.d/flowviz

  # Zsh
  flowviz completion zsh > "${fpath[1]}/_flowviz"

  # Fish
  flowviz completion fish > ~/.config/fish/completions/flowviz.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// render command flags
	AddRenderFlags(renderCmd, &renderFlags)
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "re-render when the diagram file changes")

	// play command flags
	AddRenderFlags(playCmd, &playFlags)
	playCmd.Flags().BoolVar(&playWatch, "watch", false, "re-play when the diagram file changes")
	playCmd.Flags().StringVar(&playStyle, "style", "", "reveal style: top-down, fade-in, or left-right")
	playCmd.Flags().IntVar(&playFPS, "fps", 0, "playback rate in frames per second")
	playCmd.Flags().IntVar(&playStagger, "stagger", 0, "lines revealed per top-down step")
	playCmd.Flags().BoolVar(&playLoop, "loop", false, "restart the animation after the last frame")
	playCmd.Flags().StringVar(&playHold, "hold", "", "how long the final frame stays up (e.g. 2s)")
	playCmd.Flags().BoolVar(&playAltScreen, "alt-screen", false, "play on the alternate screen buffer")

	// preview command flags
	AddRenderFlags(previewCmd, &previewFlags)
	previewCmd.Flags().StringVar(&previewStyle, "style", "", "initial reveal style")

	// caps command flags
	capsCmd.Flags().BoolVar(&capsJSON, "json", false, "output in JSON format")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInter, "non-interactive", false, "skip prompts, use defaults")

	// Register all commands
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(capsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}

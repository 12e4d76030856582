package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/flowviz/flowviz/internal/config"
	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/theme"
	"github.com/flowviz/flowviz/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init creates a new .flowviz.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		styleName := cfg.Animation.Style
		themeName := theme.DefaultName
		fpsValue := strconv.Itoa(cfg.Animation.FPS)
		legend := cfg.Render.Legend

		themeOptions := make([]huh.Option[string], 0, len(theme.Names()))
		for _, name := range theme.Names() {
			themeOptions = append(themeOptions, huh.NewOption(name, name))
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Reveal style").
					Description("How the diagram appears during 'flowviz play'").
					Options(
						huh.NewOption("top-down (line by line)", "top-down"),
						huh.NewOption("fade-in (dim to bright)", "fade-in"),
						huh.NewOption("left-right (column sweep)", "left-right"),
					).
					Value(&styleName),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Theme").
					Description("Capability preset applied to every render").
					Options(themeOptions...).
					Value(&themeName),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Frames per second").
					Description(fmt.Sprintf("Playback rate, 1 to %d", config.MaxFPS)).
					Placeholder("12").
					Value(&fpsValue).
					Validate(func(s string) error {
						n, err := strconv.Atoi(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("enter a number")
						}
						if n < 1 || n > config.MaxFPS {
							return fmt.Errorf("fps must be between 1 and %d", config.MaxFPS)
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Print a category legend under each render?").
					Value(&legend),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}

		cfg.Animation.Style = styleName
		if themeName != theme.DefaultName {
			cfg.Theme = themeName
		}
		cfg.Animation.FPS, _ = strconv.Atoi(strings.TrimSpace(fpsValue))
		cfg.Render.Legend = legend
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	// Add a header comment
	header := `# flowviz configuration
# Run 'flowviz render <file>' to print a diagram, 'flowviz play <file>' to animate it
# See: https://github.com/flowviz/flowviz for documentation

`
	content := header + string(data)

	// Write config file
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  flowviz render <file>  - Render a diagram")
	fmt.Println("  flowviz play <file>    - Animate it")
	fmt.Println("  flowviz caps           - Check terminal capabilities")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force, nonInteractive bool) error {
	return Init(InitOptions{
		Overwrite:      force,
		NonInteractive: nonInteractive,
	})
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/flowviz/flowviz/internal/errors"
)

// ValidStyles are the reveal styles `flowviz play` understands.
var ValidStyles = map[string]bool{
	"top-down":   true,
	"fade-in":    true,
	"left-right": true,
}

// ValidDirections are the flow directions a config may force.
var ValidDirections = map[string]bool{
	"LR": true, "RL": true, "TB": true, "TD": true, "BT": true,
}

// MaxFPS caps playback speed; past this the terminal is the bottleneck anyway.
const MaxFPS = 120

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but flowviz only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest flowviz release")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'animation' section in your .flowviz.yaml.")
	}

	if err := validateRender(cfg.Render); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'render' section in your .flowviz.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your .flowviz.yaml.")
	}

	return nil
}

func validateAnimation(a AnimationConfig) error {
	if a.Style != "" && !ValidStyles[a.Style] {
		return fmt.Errorf("animation.style '%s' isn't valid - use 'top-down', 'fade-in', or 'left-right'", a.Style)
	}

	if a.FPS < 1 {
		return fmt.Errorf("animation.fps needs to be at least 1 (got %d)", a.FPS)
	}
	if a.FPS > MaxFPS {
		return fmt.Errorf("animation.fps %d is past the useful range - keep it at or below %d", a.FPS, MaxFPS)
	}

	if a.Stagger < 1 {
		return fmt.Errorf("animation.stagger needs to be at least 1 (got %d)", a.Stagger)
	}

	if a.Hold != "" {
		d, err := time.ParseDuration(a.Hold)
		if err != nil {
			return fmt.Errorf("animation.hold '%s' doesn't look like a valid duration - try something like '500ms' or '2s'", a.Hold)
		}
		if d < 0 {
			return fmt.Errorf("animation.hold can't be negative - that doesn't make sense")
		}
	}

	return nil
}

func validateRender(r RenderConfig) error {
	if r.Direction == "" {
		return nil
	}
	if !ValidDirections[strings.ToUpper(r.Direction)] {
		return fmt.Errorf("render.direction '%s' isn't valid - use LR, RL, TB, TD, or BT", r.Direction)
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}

// HoldDuration parses the configured hold, falling back to def when unset
// or unparseable. Validation catches bad values on load; this keeps flag
// merging simple.
func (a AnimationConfig) HoldDuration(def time.Duration) time.Duration {
	if a.Hold == "" {
		return def
	}
	d, err := time.ParseDuration(a.Hold)
	if err != nil {
		return def
	}
	return d
}

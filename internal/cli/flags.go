package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowviz/flowviz/internal/config"
	"github.com/flowviz/flowviz/internal/errors"
)

// RenderFlags holds the standard flags used across render/play/preview commands.
type RenderFlags struct {
	Direction string
	State     string
	Completed string
	Active    string
	Layout    string
	Legend    bool
}

// AddRenderFlags registers --direction, --state, --completed, --active,
// --layout, and --legend flags on a command.
func AddRenderFlags(cmd *cobra.Command, flags *RenderFlags) {
	cmd.Flags().StringVar(&flags.Direction, "direction", "", "override flow direction (LR, RL, TB, TD, BT)")
	cmd.Flags().StringVar(&flags.State, "state", "", "progress state file (YAML)")
	cmd.Flags().StringVar(&flags.Completed, "completed", "", "comma-separated node IDs to mark completed")
	cmd.Flags().StringVar(&flags.Active, "active", "", "node ID to mark active")
	cmd.Flags().StringVar(&flags.Layout, "layout", "", "pre-rendered layout file (skip the layout engine)")
	cmd.Flags().BoolVar(&flags.Legend, "legend", false, "append a node legend below the diagram")
}

// NormalizeDirection validates a --direction value and upper-cases it.
// Returns empty string if the flag is empty.
func NormalizeDirection(flag string) (string, error) {
	if flag == "" {
		return "", nil
	}

	dir := strings.ToUpper(flag)
	if !config.ValidDirections[dir] {
		return "", errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a flow direction flowviz knows", flag),
			"Use LR, RL, TB, TD, or BT.")
	}
	return dir, nil
}

// ParseHold parses a --hold duration string.
// Returns zero duration if the flag is empty.
func ParseHold(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid hold time", flag),
			"Try something like 2s, 500ms, or 1m.")
	}
	return duration, nil
}

// SplitList splits a comma-separated flag value into trimmed non-empty parts.
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

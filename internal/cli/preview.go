package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/preview"
	"github.com/flowviz/flowviz/internal/reveal"
)

// previewCommand opens the interactive frame stepper.
func previewCommand(args []string) error {
	// The stepper is keyboard-driven; there is nothing useful to emit
	// into a pipe.
	if !isTTY(os.Stdout) || !isTTY(os.Stdin) {
		return errors.New(errors.ErrTerm,
			"Preview needs an interactive terminal",
			"Run it directly in a terminal, or use 'flowviz render' for piped output.")
	}

	job, err := newRenderJob(args, previewFlags)
	if err != nil {
		return err
	}

	res, err := job.compose()
	if err != nil {
		return err
	}
	// Unlike render and play there is no degraded output worth stepping
	// through, so a broken diagram just reports.
	if res.parseErr != nil {
		return res.parseErr
	}

	name := job.cfg.Animation.Style
	if job.th.Style != "" {
		name = job.th.Style
	}
	if previewStyle != "" {
		name = previewStyle
	}
	if name == "" {
		name = string(reveal.StyleTopDown)
	}
	style, err := reveal.ParseStyle(name)
	if err != nil {
		return err
	}

	model := preview.NewModel(res.text, preview.Options{
		Style:   style,
		Stagger: job.cfg.Animation.Stagger,
		Caps:    job.caps,
		Source:  job.source,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowviz/flowviz/internal/config"
	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/player"
	"github.com/flowviz/flowviz/internal/reveal"
	"github.com/flowviz/flowviz/internal/theme"
	"github.com/flowviz/flowviz/internal/ui"
)

// playSettings is the fully resolved animation configuration for one run.
type playSettings struct {
	style     reveal.Style
	fps       int
	stagger   int
	loop      bool
	altScreen bool
	hold      time.Duration
}

// resolvePlaySettings layers flag values over theme and config defaults.
// changed reports whether the user set the named flag explicitly, so a
// zero flag value never shadows a config default. Style precedence:
// --style, then the theme's preferred style, then the config.
func resolvePlaySettings(cfg *config.Config, th theme.Theme, changed func(string) bool) (playSettings, error) {
	s := playSettings{
		fps:       cfg.Animation.FPS,
		stagger:   cfg.Animation.Stagger,
		loop:      cfg.Animation.Loop,
		altScreen: cfg.Animation.AltScreen,
		hold:      cfg.Animation.HoldDuration(time.Second),
	}

	name := cfg.Animation.Style
	if th.Style != "" {
		name = th.Style
	}
	if changed("style") {
		name = playStyle
	}
	if name == "" {
		name = string(reveal.StyleTopDown)
	}
	style, err := reveal.ParseStyle(name)
	if err != nil {
		return playSettings{}, err
	}
	s.style = style

	if changed("fps") {
		s.fps = playFPS
	}
	if s.fps < 1 || s.fps > config.MaxFPS {
		return playSettings{}, errors.New(errors.ErrPlay,
			fmt.Sprintf("FPS %d is out of the playable range", s.fps),
			fmt.Sprintf("Keep it between 1 and %d.", config.MaxFPS))
	}

	if changed("stagger") {
		s.stagger = playStagger
	}
	if s.stagger < 1 {
		s.stagger = 1
	}

	if changed("loop") {
		s.loop = playLoop
	}
	if changed("alt-screen") {
		s.altScreen = playAltScreen
	}

	if changed("hold") {
		hold, err := ParseHold(playHold)
		if err != nil {
			return playSettings{}, err
		}
		s.hold = hold
	}

	return s, nil
}

// playOnce composes the final frame, expands it into a reveal sequence,
// and plays it. A parse failure degrades like render: the raw source is
// printed once, uncolored and unanimated, and the error comes back.
func playOnce(job *renderJob, s playSettings) error {
	res, err := job.compose()
	if err != nil {
		return err
	}
	if res.parseErr != nil {
		fmt.Println(res.text)
		return res.parseErr
	}

	frames := reveal.Generate(res.text, s.style, s.stagger, job.caps)

	return player.New(os.Stdout).Play(frames, player.Options{
		FPS:       s.fps,
		Loop:      s.loop,
		AltScreen: s.altScreen,
		HoldLast:  s.hold,
		Caps:      job.caps,
	})
}

func playCommand(cmd *cobra.Command, args []string) error {
	job, err := newRenderJob(args, playFlags)
	if err != nil {
		return err
	}

	// Piped output gets the final frame, not cursor choreography.
	if !isTTY(os.Stdout) {
		ui.PrintWarning("stdout is not a terminal; printing the final frame instead of animating")
		return job.renderOnce(os.Stdout)
	}

	s, err := resolvePlaySettings(job.cfg, job.th, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	if playWatch {
		if s.loop {
			return errors.New(errors.ErrPlay,
				"--watch and --loop cannot be used together",
				"A looping animation never yields to the watcher. Pick one.")
		}
		return watchLoop(job.source, func() error {
			return playOnce(job, s)
		})
	}

	return playOnce(job, s)
}

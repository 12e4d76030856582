package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/flowviz/flowviz/internal/config"
	"github.com/flowviz/flowviz/internal/diagram"
	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/layout"
	"github.com/flowviz/flowviz/internal/paint"
	"github.com/flowviz/flowviz/internal/phase"
	"github.com/flowviz/flowviz/internal/term"
	"github.com/flowviz/flowviz/internal/theme"
	"github.com/flowviz/flowviz/internal/ui"
	"github.com/flowviz/flowviz/internal/watch"
)

// renderJob bundles everything one render needs: resolved config, theme,
// capability profile, the diagram source path (empty means stdin), and the
// command's flags. render, play and preview all start from one of these.
type renderJob struct {
	cfg    *config.Config
	th     theme.Theme
	caps   term.Profile
	source string
	flags  RenderFlags
}

// newRenderJob resolves config, theme and terminal capabilities for a
// render-family command.
func newRenderJob(args []string, flags RenderFlags) (*renderJob, error) {
	cfg, err := config.LoadOrDefault(Config())
	if err != nil {
		return nil, err
	}

	name := themeFlag
	if name == "" {
		name = cfg.Theme
	}
	th, err := theme.Load(name, theme.DefaultDirs()...)
	if err != nil {
		// Load always hands back a usable theme; the error just explains
		// what it fell back from.
		ui.PrintWarning(err.Error())
	}

	source := ""
	if len(args) > 0 {
		source = args[0]
	}

	return &renderJob{
		cfg:    cfg,
		th:     th,
		caps:   detectCaps(cfg, th),
		source: source,
		flags:  flags,
	}, nil
}

// detectCaps layers theme, config and flag overrides on top of raw
// environment detection. Precedence, weakest first: detection, theme caps,
// config output settings, --no-color / --ascii.
func detectCaps(cfg *config.Config, th theme.Theme) term.Profile {
	caps := term.Detect(term.OSEnv()).Apply(th.Caps)

	switch cfg.Output.Color {
	case "never":
		caps.Color = false
	case "always":
		// keep whatever detection and the theme decided
	default: // "auto"
		if !isTTY(os.Stdout) {
			caps.Color = false
		}
	}
	if noColorFlag {
		caps.Color = false
	}
	if !caps.Color {
		caps.TrueColor = false
	}

	if asciiFlag || cfg.Output.ASCII {
		caps.Unicode = false
	}

	return caps
}

// renderResult is one composed frame plus any parse failure it absorbed.
type renderResult struct {
	text     string
	parseErr error
}

// compose runs the render pipeline: read, parse, resolve state, lay out,
// colorize. A diagram that fails to parse still produces output: the raw
// source comes back uncolored with parseErr set, so callers can print
// something useful and report the error afterwards.
func (j *renderJob) compose() (renderResult, error) {
	raw, err := j.readSource()
	if err != nil {
		return renderResult{}, err
	}

	g, err := diagram.Parse(raw)
	if err != nil {
		return renderResult{text: raw, parseErr: err}, nil
	}

	dir, err := j.direction()
	if err != nil {
		return renderResult{}, err
	}
	if dir != "" {
		g.Direction = diagram.Direction(dir)
	}

	st, err := j.loadState(g)
	if err != nil {
		return renderResult{}, err
	}

	text, err := j.layoutText(g)
	if err != nil {
		return renderResult{}, err
	}

	infos := g.NodeInfos(nil)
	out := paint.Colorize(text, infos, st, j.caps)
	if j.flags.Legend || j.cfg.Render.Legend {
		out += "\n" + paint.Legend(infos, j.caps)
	}

	return renderResult{text: out}, nil
}

// readSource reads the diagram text from the source file, or from stdin
// when no file was given.
func (j *renderJob) readSource() (string, error) {
	if j.source == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.WrapWithCode(err, errors.ErrParse,
				"Cannot read the diagram from stdin",
				"Pass a file argument, or pipe diagram text in")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(config.ExpandPath(j.source))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrParse,
			"Cannot read "+j.source,
			"Check the path exists and is readable")
	}
	return string(data), nil
}

// direction resolves the layout direction override: --direction beats the
// config, and an empty result keeps whatever the diagram header declares.
func (j *renderJob) direction() (string, error) {
	dir, err := NormalizeDirection(j.flags.Direction)
	if err != nil || dir != "" {
		return dir, err
	}
	// Config directions were validated at load time.
	return strings.ToUpper(j.cfg.Render.Direction), nil
}

// loadState builds the progress state from --state, --completed and
// --active, then checks every referenced id against the graph.
func (j *renderJob) loadState(g *diagram.Graph) (diagram.RenderState, error) {
	var st diagram.RenderState
	if j.flags.State != "" {
		loaded, err := phase.Load(config.ExpandPath(j.flags.State))
		if err != nil {
			return diagram.RenderState{}, err
		}
		st = loaded
	}

	st = phase.Merge(st, SplitList(j.flags.Completed), j.flags.Active)

	if err := phase.Validate(st, g); err != nil {
		return diagram.RenderState{}, err
	}
	return st, nil
}

// layoutText produces the uncolored box art, either from the layout engine
// or verbatim from a --layout file.
func (j *renderJob) layoutText(g *diagram.Graph) (string, error) {
	if j.flags.Layout != "" {
		data, err := os.ReadFile(config.ExpandPath(j.flags.Layout))
		if err != nil {
			return "", errors.WrapWithCode(err, errors.ErrRender,
				"Cannot read layout file "+j.flags.Layout,
				"Check the path exists and is readable")
		}
		return string(data), nil
	}
	return layout.Render(g, j.caps), nil
}

// renderOnce composes a frame and writes it with a trailing newline. The
// parse error, if any, comes back after the output has been printed.
func (j *renderJob) renderOnce(out io.Writer) error {
	res, err := j.compose()
	if err != nil {
		return err
	}

	text := res.text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(out, text)

	return res.parseErr
}

func renderCommand(args []string, flags RenderFlags, watchMode bool) error {
	job, err := newRenderJob(args, flags)
	if err != nil {
		return err
	}

	if !watchMode {
		return job.renderOnce(os.Stdout)
	}

	return watchLoop(job.source, func() error {
		return job.renderOnce(os.Stdout)
	})
}

// watchLoop runs refresh once, then re-runs it whenever the diagram file
// changes, until interrupted. The initial refresh may fail without ending
// the session; the whole point of watching is fixing the file.
func watchLoop(path string, refresh func() error) error {
	if path == "" {
		return errors.New(errors.ErrConfig,
			"--watch needs a diagram file",
			"Pass the file as an argument; stdin cannot be watched.")
	}

	if err := refresh(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watch.New(config.ExpandPath(path), watch.DefaultDebounce).Run(ctx, refresh)
}

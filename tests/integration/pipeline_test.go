package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowviz/flowviz/internal/config"
	"github.com/flowviz/flowviz/internal/diagram"
	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/layout"
	"github.com/flowviz/flowviz/internal/paint"
	"github.com/flowviz/flowviz/internal/phase"
	"github.com/flowviz/flowviz/internal/player"
	"github.com/flowviz/flowviz/internal/reveal"
	"github.com/flowviz/flowviz/internal/term"
	"github.com/flowviz/flowviz/internal/theme"
)

// sampleFlow is a realistic multi-stage pipeline diagram used across the
// tests below.
const sampleFlow = `flow TD
agent_orchestrator[Orchestrator] --> tool_fetch[Fetch Pages]
tool_fetch --> tool_parse[Parse HTML]
tool_parse --> agent_writer[Report Writer]
`

var (
	colorCaps = term.Profile{Color: true, TrueColor: true, Unicode: true}
	plainCaps = term.Profile{}
)

// =============================================================================
// Config Loading Tests
// =============================================================================

func TestConfigLoadFromTempFile(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, ".flowviz.yaml")
	content := `
version: 1
theme: mono
animation:
  style: fade-in
  fps: 24
  stagger: 2
  loop: true
  hold: 2s
render:
  direction: LR
  legend: true
output:
  color: never
  ascii: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "fade-in", cfg.Animation.Style)
	assert.Equal(t, 24, cfg.Animation.FPS)
	assert.Equal(t, 2, cfg.Animation.Stagger)
	assert.True(t, cfg.Animation.Loop)
	assert.Equal(t, 2*time.Second, cfg.Animation.HoldDuration(time.Second))
	assert.Equal(t, "LR", cfg.Render.Direction)
	assert.True(t, cfg.Render.Legend)
	assert.Equal(t, "never", cfg.Output.Color)
	assert.True(t, cfg.Output.ASCII)
}

func TestConfigPartialFileInheritsDefaults(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, ".flowviz.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("version: 1\ntheme: ascii\n"), 0644))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "ascii", cfg.Theme)
	assert.Equal(t, "top-down", cfg.Animation.Style, "defaults fill unset sections")
	assert.Equal(t, 12, cfg.Animation.FPS)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestConfigValidationRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad style", content: "version: 1\nanimation:\n  style: spiral\n"},
		{name: "zero fps", content: "version: 1\nanimation:\n  fps: 0\n"},
		{name: "bad direction", content: "version: 1\nrender:\n  direction: UP\n"},
		{name: "bad color mode", content: "version: 1\noutput:\n  color: sometimes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			_, err := config.Load(configPath)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
		})
	}
}

// =============================================================================
// Render Pipeline Tests
// =============================================================================

func TestRenderPipelineProducesColoredDiagram(t *testing.T) {
	g, err := diagram.Parse(sampleFlow)
	require.NoError(t, err)
	require.Len(t, g.Nodes, 4)

	text := layout.Render(g, colorCaps)
	infos := g.NodeInfos(nil)
	out := paint.Colorize(text, infos, diagram.RenderState{}, colorCaps)

	// Every label survives colorizing
	for _, label := range []string{"Orchestrator", "Fetch Pages", "Parse HTML", "Report Writer"} {
		assert.Contains(t, out, label)
	}

	// Truecolor sequences and box drawing are present
	assert.Contains(t, out, "\x1b[38;2;")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "▼")
}

func TestRenderPipelinePlainBypass(t *testing.T) {
	g, err := diagram.Parse(sampleFlow)
	require.NoError(t, err)

	text := layout.Render(g, plainCaps)
	out := paint.Colorize(text, g.NodeInfos(nil), diagram.RenderState{}, plainCaps)

	assert.Equal(t, text, out, "color off must be a byte-identical bypass")
	assert.NotContains(t, out, "\x1b[")
	assert.NotContains(t, out, "┌", "plain caps fall back to ascii borders")
}

func TestRenderPipelineDirectionOverride(t *testing.T) {
	g, err := diagram.Parse("a[First] --> b[Second]")
	require.NoError(t, err)
	require.Equal(t, diagram.DirectionTD, g.Direction)

	g.Direction = diagram.DirectionLR
	text := layout.Render(g, plainCaps)

	assert.Len(t, strings.Split(text, "\n"), 3, "horizontal layout is three lines")
	assert.Contains(t, text, "--> ")
}

func TestRenderPipelineLegend(t *testing.T) {
	g, err := diagram.Parse(sampleFlow)
	require.NoError(t, err)

	legend := paint.Legend(g.NodeInfos(nil), colorCaps)

	assert.Contains(t, legend, "agent")
	assert.Contains(t, legend, "tool")
	assert.Contains(t, legend, "●")
	assert.NotContains(t, legend, "hook", "absent categories stay out of the legend")
}

// =============================================================================
// Progress State Tests
// =============================================================================

func TestStateRoundTripThroughFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "state.yaml")

	saved := diagram.RenderState{
		Completed: []string{"tool_fetch", "agent_orchestrator"},
		Active:    "tool_parse",
	}
	require.NoError(t, phase.Save(statePath, saved))

	loaded, err := phase.Load(statePath)
	require.NoError(t, err)
	assert.Equal(t, "tool_parse", loaded.Active)
	assert.ElementsMatch(t, saved.Completed, loaded.Completed)
}

func TestStateMergeAndValidateAgainstGraph(t *testing.T) {
	g, err := diagram.Parse(sampleFlow)
	require.NoError(t, err)

	statePath := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, phase.Save(statePath, diagram.RenderState{Completed: []string{"agent_orchestrator"}}))

	loaded, err := phase.Load(statePath)
	require.NoError(t, err)

	// Flags overlay the file
	st := phase.Merge(loaded, []string{"agent_orchestrator", "tool_fetch"}, "tool_parse")
	require.NoError(t, phase.Validate(st, g))
	assert.Len(t, st.Completed, 2)

	// A typo'd node id fails validation with the known ids listed
	bad := phase.Merge(loaded, []string{"tool_fetsh"}, "")
	err = phase.Validate(bad, g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tool_fetsh")
	assert.Contains(t, err.Error(), "tool_fetch")
}

func TestStateColorsCompletedNodes(t *testing.T) {
	g, err := diagram.Parse(sampleFlow)
	require.NoError(t, err)

	text := layout.Render(g, colorCaps)
	infos := g.NodeInfos(nil)

	idle := paint.Colorize(text, infos, diagram.RenderState{}, colorCaps)
	busy := paint.Colorize(text, infos, diagram.RenderState{
		Completed: []string{"tool_fetch"},
		Active:    "tool_parse",
	}, colorCaps)

	assert.NotEqual(t, idle, busy, "progress state changes the styling")
	assert.Contains(t, busy, "\x1b[1m", "completed and active labels render bold")
}

// =============================================================================
// Theme Tests
// =============================================================================

func TestThemeFileOverridesDetection(t *testing.T) {
	dir := t.TempDir()
	themeJSON := `{"style": "fade-in", "caps": {"color": "false"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.json"), []byte(themeJSON), 0644))

	th, err := theme.Load("paper", dir)
	require.NoError(t, err)
	assert.Equal(t, "fade-in", th.Style)

	detected := term.Detect(term.Env{"TERM": "xterm-256color", "COLORTERM": "truecolor", "LANG": "en_US.UTF-8"})
	require.True(t, detected.Color)

	caps := detected.Apply(th.Caps)
	assert.False(t, caps.Color, "theme caps override detection")
	assert.False(t, caps.TrueColor, "disabling color also drops truecolor")
	assert.True(t, caps.Unicode, "untouched gates keep their detected value")
}

func TestBuiltinThemeEndToEnd(t *testing.T) {
	// The ascii builtin forces plain glyphs without touching color.
	th, err := theme.Load("ascii", t.TempDir())
	require.NoError(t, err)

	detected := term.Detect(term.Env{"TERM": "xterm-256color", "LANG": "en_US.UTF-8"})
	caps := detected.Apply(th.Caps)
	require.False(t, caps.Unicode)

	g, err := diagram.Parse("a[First] --> b[Second]")
	require.NoError(t, err)
	text := layout.Render(g, caps)

	assert.Contains(t, text, "+--")
	assert.NotContains(t, text, "┌")
}

// =============================================================================
// Reveal and Playback Tests
// =============================================================================

func TestRevealAndPlaybackIntoBuffer(t *testing.T) {
	g, err := diagram.Parse(sampleFlow)
	require.NoError(t, err)

	final := paint.Colorize(layout.Render(g, colorCaps), g.NodeInfos(nil), diagram.RenderState{}, colorCaps)
	frames := reveal.Generate(final, reveal.StyleTopDown, 4, colorCaps)
	require.NotEmpty(t, frames)
	assert.Equal(t, final, frames[len(frames)-1], "last frame is the untouched final render")

	var buf bytes.Buffer
	var seen []int
	err = player.New(&buf).Play(frames, player.Options{
		FPS:  120,
		Caps: colorCaps,
		OnFrame: func(index, total int) {
			assert.Equal(t, len(frames), total)
			seen = append(seen, index)
		},
	})
	require.NoError(t, err)

	out := buf.String()

	// Frame count matches the callback trail and the cursor-home count
	assert.Len(t, seen, len(frames))
	assert.Equal(t, len(frames), strings.Count(out, term.CursorHome))

	// Terminal discipline: hide first, restore last
	assert.True(t, strings.HasPrefix(out, term.CursorHide))
	assert.True(t, strings.HasSuffix(out, term.CursorShow+term.Reset))

	// The colored final frame passes through byte for byte
	assert.Contains(t, out, final)
}

func TestPlaybackSyncBracketing(t *testing.T) {
	frames := []string{"one", "two"}

	var buf bytes.Buffer
	err := player.New(&buf).Play(frames, player.Options{
		FPS:  120,
		Caps: term.Profile{Color: true, SyncOutput: true},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, term.SyncBegin))
	assert.Equal(t, 2, strings.Count(out, term.SyncEnd))
}

// =============================================================================
// Full Pipeline Test
// =============================================================================

func TestFullPipelineSourceToPlayback(t *testing.T) {
	dir := t.TempDir()

	// A diagram on disk, the way render/play receive it
	sourcePath := filepath.Join(dir, "flow.mmd")
	require.NoError(t, os.WriteFile(sourcePath, []byte(sampleFlow), 0644))

	raw, err := os.ReadFile(sourcePath)
	require.NoError(t, err)

	g, err := diagram.Parse(string(raw))
	require.NoError(t, err)

	// Progress for the middle of a run
	st := phase.Merge(diagram.RenderState{}, []string{"agent_orchestrator", "tool_fetch"}, "tool_parse")
	require.NoError(t, phase.Validate(st, g))

	infos := g.NodeInfos(nil)
	final := paint.Colorize(layout.Render(g, colorCaps), infos, st, colorCaps)
	legend := paint.Legend(infos, colorCaps)

	frames := reveal.Generate(final+"\n"+legend, reveal.StyleFadeIn, 1, colorCaps)
	require.NotEmpty(t, frames)

	var buf bytes.Buffer
	err = player.New(&buf).Play(frames, player.Options{FPS: 120, Caps: colorCaps})
	require.NoError(t, err)

	out := buf.String()
	for _, label := range []string{"Orchestrator", "Fetch Pages", "Parse HTML", "Report Writer"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "agent", "legend plays along with the diagram")
}

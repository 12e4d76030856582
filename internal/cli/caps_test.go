package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowviz/flowviz/internal/term"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, "pass", statusFor(true))
	assert.Equal(t, "warn", statusFor(false))
}

func TestCapsSignals_ValueVariables(t *testing.T) {
	env := term.Env{
		"TERM":         "xterm-256color",
		"COLORTERM":    "truecolor",
		"TERM_PROGRAM": "WezTerm",
		"LANG":         "en_US.UTF-8",
		"PATH":         "/usr/bin",
	}

	signals := capsSignals(env)

	assert.Equal(t, "xterm-256color", signals["TERM"])
	assert.Equal(t, "truecolor", signals["COLORTERM"])
	assert.Equal(t, "WezTerm", signals["TERM_PROGRAM"])
	assert.Equal(t, "en_US.UTF-8", signals["LANG"])
	assert.NotContains(t, signals, "PATH", "unrelated variables stay out")
}

func TestCapsSignals_PresenceVariables(t *testing.T) {
	env := term.Env{
		"TERM":     "xterm",
		"NO_COLOR": "",
	}

	signals := capsSignals(env)

	assert.Equal(t, "set", signals["NO_COLOR"], "NO_COLOR counts by presence, even empty")
	assert.NotContains(t, signals, "FLOWVIZ_ASCII")
}

func TestCapsSignals_EmptyValuesOmitted(t *testing.T) {
	env := term.Env{
		"TERM":      "",
		"COLORTERM": "",
	}

	signals := capsSignals(env)

	assert.Empty(t, signals)
}

func TestSignalDetail(t *testing.T) {
	signals := map[string]string{
		"TERM":      "xterm-kitty",
		"COLORTERM": "truecolor",
	}

	assert.Equal(t, "COLORTERM=truecolor", signalDetail(signals, "COLORTERM", "TERM"))
	assert.Equal(t, "TERM=xterm-kitty", signalDetail(signals, "TERM_PROGRAM", "TERM"))
	assert.Equal(t, "", signalDetail(signals, "NO_COLOR"))
}

func TestCapsOutput_JSONShape(t *testing.T) {
	out := CapsOutput{
		Color:      true,
		TrueColor:  true,
		SyncOutput: false,
		Unicode:    true,
		Signals:    map[string]string{"TERM": "xterm-kitty"},
	}

	data, err := json.Marshal(out)
	require.NoError(t, err)

	// Stable lowercase keys for scripting against the output
	assert.JSONEq(t, `{
		"color": true,
		"truecolor": true,
		"sync_output": false,
		"unicode": true,
		"signals": {"TERM": "xterm-kitty"}
	}`, string(data))
}

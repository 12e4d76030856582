package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flowviz/flowviz/internal/term"
	"github.com/flowviz/flowviz/internal/ui"
)

var capsJSON bool

// CapsOutput is the JSON shape of `flowviz caps --json`.
type CapsOutput struct {
	Color      bool              `json:"color"`
	TrueColor  bool              `json:"truecolor"`
	SyncOutput bool              `json:"sync_output"`
	Unicode    bool              `json:"unicode"`
	Signals    map[string]string `json:"signals"`
}

// capsSignals collects the environment variables detection reads, so the
// output can show why each gate resolved the way it did. Presence-only
// variables report as "set".
func capsSignals(env term.Env) map[string]string {
	signals := make(map[string]string)
	for _, key := range []string{"TERM", "COLORTERM", "TERM_PROGRAM", "LANG", "LC_ALL", "LC_CTYPE"} {
		if v := env.Get(key); v != "" {
			signals[key] = v
		}
	}
	for _, key := range []string{"NO_COLOR", "FLOWVIZ_ASCII"} {
		if env.Has(key) {
			signals[key] = "set"
		}
	}
	return signals
}

func statusFor(ok bool) string {
	if ok {
		return "pass"
	}
	return "warn"
}

// signalDetail formats the first present signal from keys as KEY=value.
func signalDetail(signals map[string]string, keys ...string) string {
	for _, key := range keys {
		if v, ok := signals[key]; ok {
			return key + "=" + v
		}
	}
	return ""
}

// capsCommand reports raw detection: no config, no theme, no flag
// overrides. What it prints is what the environment alone resolves to.
func capsCommand() error {
	env := term.OSEnv()
	caps := term.Detect(env)
	signals := capsSignals(env)

	if capsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(CapsOutput{
			Color:      caps.Color,
			TrueColor:  caps.TrueColor,
			SyncOutput: caps.SyncOutput,
			Unicode:    caps.Unicode,
			Signals:    signals,
		})
	}

	ui.PrintHeader(ui.HeaderInfo{
		Version: formatVersion(GetVersion()),
		Tagline: "Terminal flow diagrams",
	})
	fmt.Println()

	rows := []ui.CheckRow{
		{Status: statusFor(caps.Color), Name: "Color",
			Detail: signalDetail(signals, "NO_COLOR", "TERM")},
		{Status: statusFor(caps.TrueColor), Name: "Truecolor",
			Detail: signalDetail(signals, "COLORTERM", "TERM_PROGRAM", "TERM")},
		{Status: statusFor(caps.SyncOutput), Name: "Synchronized output",
			Detail: signalDetail(signals, "TERM_PROGRAM", "TERM")},
		{Status: statusFor(caps.Unicode), Name: "Unicode",
			Detail: signalDetail(signals, "FLOWVIZ_ASCII", "LC_ALL", "LC_CTYPE", "LANG")},
	}

	fmt.Print(ui.RenderCheckTable("Terminal Capabilities", rows))
	return nil
}

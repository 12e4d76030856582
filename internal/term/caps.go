package term

import "strings"

// Profile describes what the attached terminal can be trusted to support.
// It is a plain value: detection produces it once and everything downstream
// reads it, so repeated calls with the same Env always agree.
type Profile struct {
	// TrueColor indicates 24-bit foreground sequences are safe.
	TrueColor bool
	// SyncOutput indicates the terminal honors synchronized output
	// bracketing (mode 2026) for flicker-free frame replacement.
	SyncOutput bool
	// Unicode indicates box-drawing and arrow glyphs may be used instead
	// of the ASCII fallback set.
	Unicode bool
	// Color gates all escape output. When false every renderer in the
	// pipeline emits plain bytes only.
	Color bool
}

// Terminals known to implement synchronized output (mode 2026). This is a
// static allow-list, not a negotiated capability: terminals absent from it
// fall back to plain writes, which flicker but stay correct.
var syncTerms = []string{"kitty", "wezterm", "ghostty", "foot", "contour", "alacritty"}

// Terminal programs known to render 24-bit color correctly.
var trueColorPrograms = []string{"iTerm.app", "WezTerm", "ghostty", "vscode"}

// Detect derives a capability profile from an environment snapshot.
// Unknown or missing signals resolve to the most conservative default;
// detection never fails.
func Detect(env Env) Profile {
	p := Profile{
		Color:   detectColor(env),
		Unicode: detectUnicode(env),
	}
	if p.Color {
		p.TrueColor = detectTrueColor(env)
	}
	p.SyncOutput = detectSyncOutput(env)
	return p
}

func detectColor(env Env) bool {
	if env.Has("NO_COLOR") {
		return false
	}
	if strings.EqualFold(env.Get("TERM"), "dumb") {
		return false
	}
	return true
}

func detectTrueColor(env Env) bool {
	colorterm := strings.ToLower(env.Get("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return true
	}

	program := env.Get("TERM_PROGRAM")
	for _, known := range trueColorPrograms {
		if program == known {
			return true
		}
	}

	// Terminal emulators that advertise themselves through dedicated
	// variables rather than COLORTERM.
	for _, key := range []string{"WT_SESSION", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if env.Get(key) != "" {
			return true
		}
	}

	term := strings.ToLower(env.Get("TERM"))
	for _, hint := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, hint) {
			return true
		}
	}
	return false
}

func detectSyncOutput(env Env) bool {
	switch env.Get("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "ghostty":
		return true
	}
	if env.Get("KITTY_WINDOW_ID") != "" {
		return true
	}

	term := strings.ToLower(env.Get("TERM"))
	for _, known := range syncTerms {
		if strings.Contains(term, known) {
			return true
		}
	}
	return false
}

func detectUnicode(env Env) bool {
	if env.Has("FLOWVIZ_ASCII") {
		return false
	}
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if locale := env.Get(key); locale != "" {
			locale = strings.ToLower(locale)
			return strings.Contains(locale, "utf-8") || strings.Contains(locale, "utf8")
		}
	}
	return false
}

// Apply returns a copy of the profile with flat key/value overrides
// applied. Keys are {color, truecolor, sync, unicode}; values are parsed
// as booleans ("true"/"false", "on"/"off", "1"/"0"). Unknown keys and
// unparseable values are ignored so a broken theme cannot break detection.
func (p Profile) Apply(overrides map[string]string) Profile {
	for key, raw := range overrides {
		value, ok := parseBool(raw)
		if !ok {
			continue
		}
		switch key {
		case "color":
			p.Color = value
		case "truecolor":
			p.TrueColor = value
		case "sync":
			p.SyncOutput = value
		case "unicode":
			p.Unicode = value
		}
	}
	if !p.Color {
		p.TrueColor = false
	}
	return p
}

func parseBool(raw string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "yes", "1":
		return true, true
	case "false", "off", "no", "0":
		return false, true
	}
	return false, false
}

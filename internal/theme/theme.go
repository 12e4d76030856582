// Package theme resolves named themes: capability overrides plus a default
// animation style. Themes come from JSON files in the theme search path,
// falling back to a built-in set. A theme file looks like:
//
//	{
//	  "style": "fade-in",
//	  "caps": {"color": "false", "sync": "off"}
//	}
//
// The caps keys feed term.Profile.Apply, so they accept the same values as
// the --color style flags: true/false, on/off, yes/no, 1/0.
package theme

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/flowviz/flowviz/internal/errors"
)

// Theme is a resolved theme. Caps holds capability overrides keyed by
// color, truecolor, sync and unicode; Style optionally names the reveal
// style the theme prefers.
type Theme struct {
	Name  string
	Style string
	Caps  map[string]string
}

// DefaultName is the theme used when nothing selects one.
const DefaultName = "default"

// builtins are always available, file or no file.
var builtins = map[string]Theme{
	"default": {Name: "default"},
	"mono":    {Name: "mono", Caps: map[string]string{"color": "false"}},
	"ascii":   {Name: "ascii", Caps: map[string]string{"unicode": "false"}},
	"plain": {Name: "plain", Caps: map[string]string{
		"color": "false", "unicode": "false", "sync": "false",
	}},
}

// themeFile is the on-disk JSON shape.
type themeFile struct {
	Style string            `mapstructure:"style"`
	Caps  map[string]string `mapstructure:"caps"`
}

// Builtin returns a built-in theme by name.
func Builtin(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Names lists the built-in theme names, for help text and completion.
func Names() []string {
	return []string{"default", "mono", "ascii", "plain"}
}

// DefaultDirs returns the theme search path: project-local themes first,
// then the user's config directory.
func DefaultDirs() []string {
	dirs := []string{filepath.Join(".flowviz", "themes")}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "flowviz", "themes"))
	}
	return dirs
}

// Load resolves a theme by name. It never leaves the caller without a
// usable theme: a missing file falls back to the built-in of the same name
// (or the default), and a broken file degrades to that fallback with a
// non-nil error describing what went wrong so the CLI can warn.
func Load(name string, dirs ...string) (Theme, error) {
	if name == "" {
		name = DefaultName
	}
	if len(dirs) == 0 {
		dirs = DefaultDirs()
	}

	fallback, known := builtins[name]
	if !known {
		fallback = Theme{Name: name}
	}

	path := findFile(name, dirs)
	if path == "" {
		if !known {
			return builtins[DefaultName], errors.New(errors.ErrConfig,
				"Unknown theme '"+name+"'",
				"Built-in themes: default, mono, ascii, plain. Or add "+name+".json to a theme directory")
		}
		return fallback, nil
	}

	tf, err := readFile(path)
	if err != nil {
		return fallback, err
	}

	merged := fallback
	if tf.Style != "" {
		merged.Style = tf.Style
	}
	if len(tf.Caps) > 0 {
		caps := make(map[string]string, len(fallback.Caps)+len(tf.Caps))
		for k, v := range fallback.Caps {
			caps[k] = v
		}
		for k, v := range tf.Caps {
			caps[k] = v
		}
		merged.Caps = caps
	}
	return merged, nil
}

func findFile(name string, dirs []string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, name+".json")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func readFile(path string) (themeFile, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return themeFile{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Theme file is not valid JSON: "+path,
			"Fix or remove the file; the built-in theme is used until then")
	}

	var tf themeFile
	if err := v.Unmarshal(&tf); err != nil {
		return themeFile{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Theme file has the wrong shape: "+path,
			"Expected {\"style\": \"...\", \"caps\": {\"color\": \"false\"}}")
	}
	return tf, nil
}

package term

import (
	"os"
	"strings"
)

// Env is an immutable snapshot of environment variables consulted during
// capability detection. Detection never reads the process environment
// directly, so tests can build arbitrary terminal identities from literals
// without mutating real state.
type Env map[string]string

// OSEnv captures the current process environment as a snapshot.
func OSEnv() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}

// Get returns the value for key, or "" when unset.
func (e Env) Get(key string) string {
	return e[key]
}

// Has reports whether key is set at all, even to an empty value.
// NO_COLOR and similar opt-out variables are honored by presence alone.
func (e Env) Has(key string) bool {
	_, ok := e[key]
	return ok
}

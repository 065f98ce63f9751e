package shell

import (
	"os"
	"strings"
	"sync"
)

// EnvHome is the variable "~" expands to.
const EnvHome = "HOME"

// Env is the variable source used for expansion.
type Env interface {
	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true.
	LookupEnv(key string) (string, bool)
}

// OSEnv reads variables from the process environment.
type OSEnv struct{}

var _ Env = OSEnv{}

// LookupEnv implements Env.LookupEnv.
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// NewMapEnv creates an in-memory environment from "key=value" pairs.
func NewMapEnv(environ ...string) *MapEnv {
	out := &MapEnv{}
	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		out.Setenv(key, value)
	}
	return out
}

// MapEnv implemnts an in-memory Env.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ Env = (*MapEnv)(nil)

// Setenv sets the value of the environment variable named by the key.
func (m *MapEnv) Setenv(key, value string) {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
}

// LookupEnv implements Env.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv returns the value of key, or the empty string if it isn't set.
func Getenv(env Env, key string) string {
	val, _ := env.LookupEnv(key)
	return val
}

// ExpandToken applies tilde expansion followed by variable expansion. The
// home directory substituted for "~" is not itself expanded.
func ExpandToken(tok string, env Env) string {
	if home, ok := tildeHome(tok, env); ok {
		return home + ExpandVars(tok[1:], env)
	}
	return ExpandVars(tok, env)
}

// ExpandTilde replaces a leading "~" or "~/" with $HOME. The token is returned
// unchanged if HOME isn't set.
func ExpandTilde(tok string, env Env) string {
	if home, ok := tildeHome(tok, env); ok {
		return home + tok[1:]
	}
	return tok
}

func tildeHome(tok string, env Env) (string, bool) {
	if tok != "~" && !strings.HasPrefix(tok, "~/") {
		return "", false
	}
	return env.LookupEnv(EnvHome)
}

// ExpandVars replaces $NAME with the variable's value. NAME is the longest run
// of ASCII letters, digits and underscores. Unset variables stay as written,
// and substituted values are never expanded again.
func ExpandVars(tok string, env Env) string {
	if !strings.Contains(tok, "$") {
		return tok
	}

	var out strings.Builder
	for i := 0; i < len(tok); {
		if tok[i] != '$' {
			out.WriteByte(tok[i])
			i++
			continue
		}

		end := i + 1
		for end < len(tok) && isNameByte(tok[end]) {
			end++
		}

		name := tok[i+1 : end]
		val, ok := "", false
		if name != "" {
			val, ok = env.LookupEnv(name)
		}
		if ok {
			out.WriteString(val)
		} else {
			out.WriteString(tok[i:end])
		}
		i = end
	}
	return out.String()
}

func isNameByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

package completion

import (
	"net/http"
	"strings"
)

// Host is the set of capabilities a completion call needs from its environment
type Host interface {
	// Config returns the value for a configuration key and whether it was set
	Config(key string) (string, bool)
	Do(req *http.Request) (*http.Response, error)
	Log(level Level, msg string)
}

// Level is the severity of a host log message
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = map[Level]string{
	LevelOff:   "off",
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel converts a level name to a Level. ok is false for unknown names.
func ParseLevel(s string) (Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == s {
			return l, true
		}
	}
	return LevelOff, false
}

// Configuration keys read from the host
const (
	KeyModel       = "model"
	KeyTemperature = "temperature"
	KeyRole        = "role"
	KeyAPIKey      = "api_key"
)

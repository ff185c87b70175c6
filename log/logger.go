package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Verbosity level, ordered from most to least verbose.
type Level uint8

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Name and backend level for every Level, indexed by Level.
var levels = [...]struct {
	name    string
	backend logging.Level
}{
	Debug:   {"debug", logging.DEBUG},
	Info:    {"info", logging.INFO},
	Notice:  {"notice", logging.NOTICE},
	Warning: {"warning", logging.WARNING},
	Error:   {"error", logging.ERROR},
}

func (l Level) String() string {
	if int(l) < len(levels) {
		return levels[l].name
	}
	return fmt.Sprintf("level(%d)", l)
}

func (l Level) backendLevel() logging.Level {
	if int(l) < len(levels) {
		return levels[l].backend
	}
	return logging.ERROR
}

// Map a level name as used in config files to a Level.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, entry := range levels {
		if entry.name == name {
			return Level(level), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

// [time] [module] [level] message
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	mu      sync.Mutex
	backend logging.LeveledBackend
	current = Notice
)

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Redirect log output to sink. The current verbosity is preserved.
func SetSink(sink io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(current.backendLevel(), "")
	logging.SetBackend(backend)
}

// Set logger verbosity for all modules. Unknown levels map to Error.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	current = level
	backend.SetLevel(level.backendLevel(), "")
}

// Get the current verbosity.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func init() {
	SetSink(os.Stderr)
}

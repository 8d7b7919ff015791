package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
)

const (
	APP        = "APP"
	CACHE      = "CACHE"
	CHAT       = "CHAT"
	CLIENT     = "CLIENT"
	CONFIG     = "CONFIG"
	HANDLER    = "HANDLER"
	MIDDLEWARE = "MIDDLEWARE"
	REDIS      = "REDIS"
	SERVICE    = "SERVICE"
	UI         = "UI"
)

var (
	mu           sync.RWMutex
	currentLevel = getLogLevel()
	base         = newLogger(os.Stderr)
)

func getLogLevel() LogLevel {
	return parseLevel(os.Getenv("LOG_LEVEL"))
}

func parseLevel(level string) LogLevel {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case DEBUG:
		return zerolog.DebugLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel overrides the level read from LOG_LEVEL. It also moves the global
// zerolog level so handlers logging through zerolog/log stay in step.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = parseLevel(level)
	zerolog.SetGlobalLevel(currentLevel.zerolog())
}

// SetOutput redirects every log line, including the zerolog global logger,
// and returns a function restoring the previous sink.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	previousBase := base
	previousGlobal := log.Logger
	base = newLogger(w)
	log.Logger = base
	mu.Unlock()

	return func() {
		mu.Lock()
		base = previousBase
		log.Logger = previousGlobal
		mu.Unlock()
	}
}

func write(level LogLevel, event func(zerolog.Logger) *zerolog.Event, namespace, format string, v ...interface{}) {
	mu.RLock()
	enabled := currentLevel >= level
	l := base
	mu.RUnlock()

	if !enabled {
		return
	}
	event(l).Str("namespace", namespace).Msg(fmt.Sprintf(format, v...))
}

func Debug(namespace, format string, v ...interface{}) {
	write(DEBUG, func(l zerolog.Logger) *zerolog.Event { return l.Debug() }, namespace, format, v...)
}

func Info(namespace, format string, v ...interface{}) {
	write(INFO, func(l zerolog.Logger) *zerolog.Event { return l.Info() }, namespace, format, v...)
}

func Warn(namespace, format string, v ...interface{}) {
	write(WARN, func(l zerolog.Logger) *zerolog.Event { return l.Warn() }, namespace, format, v...)
}

func Error(namespace, format string, v ...interface{}) {
	write(ERROR, func(l zerolog.Logger) *zerolog.Event { return l.Error() }, namespace, format, v...)
}

// Fatal logs at error severity with a fatal marker but does not exit; callers
// decide how to shut down.
func Fatal(namespace, format string, v ...interface{}) {
	write(ERROR, func(l zerolog.Logger) *zerolog.Event { return l.WithLevel(zerolog.FatalLevel) }, namespace, format, v...)
}

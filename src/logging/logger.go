package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lmittmann/tint"
)

// LogLevel represents severity.
type LogLevel = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel = new(slog.LevelVar)

var baseLogger = newLogger(os.Stderr, false)

// clock is swapped by tests to get deterministic TimeTrack durations.
var clock = clockwork.NewRealClock()

func newLogger(w io.Writer, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      currentLevel,
		TimeFormat: time.StampMicro,
		NoColor:    noColor,
	}))
}

// SetLogLevel parses and sets global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return
	}
	currentLevel.Set(l)
}

// GetLogLevel returns current global log level.
func GetLogLevel() LogLevel { return currentLevel.Level() }

// SetClock swaps the time source used by Now and TimeTrack. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now returns the current time from the package clock.
func Now() time.Time { return clock.Now() }

func logf(l LogLevel, format string, args ...interface{}) {
	ctx := context.Background()
	if !baseLogger.Enabled(ctx, l) {
		return
	}
	// Only format when there are args; a message that already went through
	// Sprintf may contain literal % characters.
	if len(args) == 0 {
		baseLogger.Log(ctx, l, format)
		return
	}
	baseLogger.Log(ctx, l, fmt.Sprintf(format, args...))
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs how long a phase took at debug level. Use with defer and Now().
func TimeTrack(start time.Time, label string) {
	dur := clock.Since(start)
	Debugf("%s took %s", label, dur)
}

// Package log is the diagnostic logger for mkicon. Output goes to stderr so
// stdout only carries the result lines.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var diagLog = zerolog.Nop()

// Init configures the logger to write human-readable lines to w. Colour is
// enabled only when w is a terminal. With verbose set, debug events are
// emitted as well.
func Init(w io.Writer, verbose bool) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	diagLog = zerolog.New(consoleWriter).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Logger returns the configured logger for callers that want structured fields.
func Logger() *zerolog.Logger {
	return &diagLog
}

func Infof(format string, args ...any) {
	diagLog.Info().Msg(fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...any) {
	diagLog.Debug().Msg(fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	diagLog.Warn().Msg(fmt.Sprintf(format, args...))
}

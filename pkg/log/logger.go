// Package log configures zerolog for selago and bridges the library's
// warning system into structured log output.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/selago-ml/selago/pkg/errors"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.New(os.Stderr).With().Timestamp().Str("library", "selago").Logger().Level(zerolog.WarnLevel)
)

// SetLevel sets the level of the library-wide logger. Levels follow
// zerolog naming: "debug", "info", "warn", "error".
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = logger.Level(lvl)
	return nil
}

// SetOutput redirects library log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = logger.Output(w)
}

// Logger returns the library-wide logger.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// With returns the library logger tagged with a component name.
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}

func init() {
	// Route errors.Warn through zerolog. Warning types implementing
	// zerolog.LogObjectMarshaler keep their structured fields.
	errors.SetZerologWarnFunc(func(warning error) {
		l := Logger()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			l.Warn().Object("warning", obj).Msg(warning.Error())
			return
		}
		l.Warn().Err(warning).Msg("warning")
	})
}

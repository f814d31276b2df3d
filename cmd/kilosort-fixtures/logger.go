package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	fixtures "github.com/prethora/kilosort-fixtures"
)

// zerologAdapter satisfies fixtures.Logger on top of a zerolog.Logger.
type zerologAdapter struct {
	log zerolog.Logger
}

var _ fixtures.Logger = (*zerologAdapter)(nil)

// newLogger returns a console logger writing to w at the named level.
// Unknown or empty levels fall back to info.
func newLogger(w io.Writer, level string) *zerologAdapter {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05.999 |",
	}
	return &zerologAdapter{
		log: zerolog.New(console).Level(parseLevel(level)).With().Timestamp().Logger(),
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (a *zerologAdapter) Debug(msg string, keysAndValues ...any) {
	a.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, keysAndValues ...any) {
	a.log.Info().Fields(keysAndValues).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, keysAndValues ...any) {
	a.log.Warn().Fields(keysAndValues).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, keysAndValues ...any) {
	a.log.Error().Fields(keysAndValues).Msg(msg)
}

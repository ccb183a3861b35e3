package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger takes a message followed by key/value pairs:
//
//	log.Debug("query sent", "tag", tag, "contract", addr)
type Logger interface {
	Debug(log ...any)
	Info(log ...any)
	Error(log ...any)
}

var consoleOut = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// PrefixedLogger tags every line with the component that wrote it. The zero
// value logs to stderr at debug level.
type PrefixedLogger struct {
	Prefix string
	log    *zerolog.Logger
}

func New(prefix string, level zerolog.Level) PrefixedLogger {
	return NewWithWriter(consoleOut, prefix, level)
}

func NewWithWriter(w io.Writer, prefix string, level zerolog.Level) PrefixedLogger {
	l := zerolog.New(w).
		With().Timestamp().Str("prefix", prefix).Logger().
		Level(level)
	return PrefixedLogger{Prefix: prefix, log: &l}
}

// ParseLevel accepts zerolog level names; an empty string means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func (pl PrefixedLogger) logger() *zerolog.Logger {
	if pl.log == nil {
		l := zerolog.New(consoleOut).With().Timestamp().Str("prefix", pl.Prefix).Logger()
		return &l
	}
	return pl.log
}

func (pl PrefixedLogger) Debug(log ...any) {
	write(pl.logger().Debug(), log)
}

func (pl PrefixedLogger) Info(log ...any) {
	write(pl.logger().Info(), log)
}

func (pl PrefixedLogger) Error(log ...any) {
	write(pl.logger().Error(), log)
}

func write(e *zerolog.Event, log []any) {
	if e == nil || len(log) == 0 {
		return
	}
	msg, ok := log[0].(string)
	if !ok {
		e.Msg(fmt.Sprint(log...))
		return
	}
	rest := log[1:]
	if len(rest)%2 != 0 {
		rest = append(rest, "(MISSING)")
	}
	e.Fields(rest).Msg(msg)
}

var _ Logger = &PrefixedLogger{}

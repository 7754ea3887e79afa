package slogsink

import (
	"context"
	"log/slog"

	"github.com/tracelight/conlog"
)

// Sink bridges the console capability to log/slog: each emission becomes
// one record whose message is the already-rendered line. Uses LogAttrs for
// minimal allocations.
type Sink struct {
	l *slog.Logger
}

func New(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{l: l}
}

// Emit implements conlog.Sink.
func (s *Sink) Emit(t conlog.ConsoleType, line string) {
	s.l.LogAttrs(context.Background(), toSlogLevel(t), line)
}

// toSlogLevel converts a console type to slog.Level. slog's scale is open,
// so default urgency sits between info and warn and fault sits above error.
func toSlogLevel(t conlog.ConsoleType) slog.Level {
	switch t {
	case conlog.TypeDebug:
		return slog.LevelDebug
	case conlog.TypeInfo:
		return slog.LevelInfo
	case conlog.TypeDefault:
		return slog.LevelInfo + 2
	case conlog.TypeError:
		return slog.LevelError
	case conlog.TypeFault:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}

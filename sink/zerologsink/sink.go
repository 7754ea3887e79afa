package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/tracelight/conlog"
)

// Sink bridges the console capability to rs/zerolog: each emission becomes
// one zerolog event whose message is the already-rendered line. Uses
// Logger.WithLevel(...) so no level switch runs at the call site, and so
// fault-class emissions never exit the process (WithLevel does not trigger
// zerolog.Fatal's os.Exit).
type Sink struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l}
}

// Emit implements conlog.Sink.
func (s *Sink) Emit(t conlog.ConsoleType, line string) {
	s.l.WithLevel(toZerologLevel(t)).Msg(line)
}

// toZerologLevel converts a console type to zerolog.Level. zerolog has no
// default/notice tier, so default urgency renders as info; fault maps to
// FatalLevel, which WithLevel logs without exiting.
func toZerologLevel(t conlog.ConsoleType) zerolog.Level {
	switch t {
	case conlog.TypeDebug:
		return zerolog.DebugLevel
	case conlog.TypeInfo:
		return zerolog.InfoLevel
	case conlog.TypeDefault:
		return zerolog.InfoLevel
	case conlog.TypeError:
		return zerolog.ErrorLevel
	case conlog.TypeFault:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tracelight/conlog"
)

// Sink bridges the console capability to go.uber.org/zap: each emission
// becomes one zap entry whose message is the already-rendered line. Uses
// Logger.Check so disabled levels cost nothing.
type Sink struct {
	l *zap.Logger
}

func New(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l}
}

// Emit implements conlog.Sink.
func (s *Sink) Emit(t conlog.ConsoleType, line string) {
	if ce := s.l.Check(toZapLevel(t), line); ce != nil {
		ce.Write()
	}
}

// toZapLevel converts a console type to zapcore.Level. zap has no
// default/notice tier, so default urgency renders as info; fault maps to
// Error rather than Fatal/DPanic so library code never exits the process.
func toZapLevel(t conlog.ConsoleType) zapcore.Level {
	switch t {
	case conlog.TypeDebug:
		return zapcore.DebugLevel
	case conlog.TypeInfo:
		return zapcore.InfoLevel
	case conlog.TypeDefault:
		return zapcore.InfoLevel
	case conlog.TypeError:
		return zapcore.ErrorLevel
	case conlog.TypeFault:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

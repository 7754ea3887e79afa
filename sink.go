package conlog

import (
	"io"
	"os"
	"sync"
)

// ConsoleType is the severity tag understood by the platform console
// facility. It is deliberately narrower than Level: the console knows five
// urgency classes, not six statuses.
type ConsoleType uint8

const (
	TypeDebug ConsoleType = iota + 1
	TypeInfo
	TypeDefault
	TypeError
	TypeFault
)

func (t ConsoleType) String() string {
	switch t {
	case TypeDebug:
		return "debug"
	case TypeInfo:
		return "info"
	case TypeDefault:
		return "default"
	case TypeError:
		return "error"
	case TypeFault:
		return "fault"
	default:
		return "default"
	}
}

// ConsoleType maps a severity onto the platform tag. The thresholds cover
// every level: notice renders at the console's default urgency, warn and
// error both at error urgency, critical at fault.
func (l Level) ConsoleType() ConsoleType {
	switch {
	case l <= LevelDebug:
		return TypeDebug
	case l <= LevelInfo:
		return TypeInfo
	case l <= LevelNotice:
		return TypeDefault
	case l <= LevelError:
		return TypeError
	default:
		return TypeFault
	}
}

// Sink is the platform console facility behind an injected capability
// (Strategy): it accepts a severity tag and a rendered line. Emission is
// fire-and-forget; implementations must be safe for concurrent Emit calls
// and must not fail.
type Sink interface {
	Emit(t ConsoleType, line string)
}

// SinkFunc adapter.
type SinkFunc func(ConsoleType, string)

func (f SinkFunc) Emit(t ConsoleType, line string) { f(t, line) }

// WriterSink serializes lines onto a single io.Writer, one line per
// emission. Write errors are swallowed: the console is a best-effort
// diagnostic channel, not a delivery guarantee.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w; nil falls back to os.Stdout.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = os.Stdout
	}
	return &WriterSink{w: w}
}

func (s *WriterSink) Emit(_ ConsoleType, line string) {
	s.mu.Lock()
	_, _ = io.WriteString(s.w, line)
	_, _ = io.WriteString(s.w, "\n")
	s.mu.Unlock()
}

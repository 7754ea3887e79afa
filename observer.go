package conlog

// Observer pattern

// Emission is a read-only snapshot of one completed console emission: the
// record that was built, the console type it mapped to, and the exact line
// handed to the sink.
type Emission struct {
	Log  Log
	Type ConsoleType
	Line string
}

// Observer receives a notification after each emission, synchronously on
// the writing goroutine. Implementations MUST be concurrency-safe and MUST
// NOT write back into the output they observe.
type Observer interface {
	OnEmit(e Emission)
}

// ObserverFunc adapter.
type ObserverFunc func(Emission)

func (f ObserverFunc) OnEmit(e Emission) { f(e) }

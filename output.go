package conlog

import (
	"os"
	"time"
)

// Output is one destination for write calls.
type Output interface {
	Write(level Level, message string, date time.Time, attributes map[string]any, tags []string)
}

// Config for constructing a ConsoleOutput (Factory data structure).
type Config struct {
	Builder   LogBuilder     // required
	Format    Format         // zero value renders the short format
	Location  *time.Location // display zone for the short format; nil = time.Local
	Sink      Sink           // nil = NewWriterSink(os.Stdout)
	Observers []Observer
}

// ConsoleOutput renders each write into one line and hands it to the console
// sink. The format selector is resolved to a concrete formatter exactly once
// at construction; the write path never branches on it again. The struct is
// immutable after New, so it is safe for concurrent Write whenever its
// builder and sink are.
type ConsoleOutput struct {
	builder   LogBuilder
	formatter Formatter
	sink      Sink
	observers []Observer
}

// New constructs the ConsoleOutput. The only construction failure is a
// missing builder.
func New(cfg Config) (*ConsoleOutput, error) {
	if cfg.Builder == nil {
		return nil, ErrNoBuilder
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	sink := cfg.Sink
	if sink == nil {
		sink = NewWriterSink(os.Stdout)
	}
	var obs []Observer
	if len(cfg.Observers) > 0 {
		obs = make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
	}
	return &ConsoleOutput{
		builder:   cfg.Builder,
		formatter: cfg.Format.resolve(loc),
		sink:      sink,
		observers: obs,
	}, nil
}

// Write runs the full pipeline for one record: build, render, map the
// severity onto its console type, emit. Exactly one Emit per call, nothing
// is buffered, and nothing propagates back to the caller.
func (o *ConsoleOutput) Write(level Level, message string, date time.Time, attributes map[string]any, tags []string) {
	log := o.builder.BuildLog(level, message, date, attributes, tags)
	line := o.formatter.Format(log)
	t := level.ConsoleType()

	o.sink.Emit(t, line)

	for _, ob := range o.observers {
		ob.OnEmit(Emission{Log: log, Type: t, Line: line})
	}
}

// MultiOutput fans each write out to every child in order. Children build
// their own records, so enrichment and formatting stay per-destination.
type MultiOutput struct {
	outputs []Output
}

func NewMultiOutput(outputs ...Output) *MultiOutput {
	return &MultiOutput{outputs: append([]Output(nil), outputs...)}
}

func (m *MultiOutput) Write(level Level, message string, date time.Time, attributes map[string]any, tags []string) {
	for _, o := range m.outputs {
		o.Write(level, message, date, attributes, tags)
	}
}

// NoopOutput discards every write.
type NoopOutput struct{}

func (NoopOutput) Write(Level, string, time.Time, map[string]any, []string) {}

package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tracelight/conlog"
)

// Config is an explicit, code-first configuration for a zerolog-backed
// console output. No envs, no hidden init, one call to Use.
type Config struct {
	Writer    io.Writer         // default: os.Stdout
	Builder   conlog.LogBuilder // default: conlog.NewBuilder()
	Format    conlog.Format     // zero value renders the short format
	Location  *time.Location    // display zone for the short format
	Observers []conlog.Observer
}

// Use builds a ConsoleOutput whose sink is a fresh zerolog logger on
// cfg.Writer. The zerolog side carries no level restriction: the console
// pipeline never filters, so every emission reaches the writer.
func Use(cfg Config) (*conlog.ConsoleOutput, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	b := cfg.Builder
	if b == nil {
		b = conlog.NewBuilder()
	}
	return conlog.New(conlog.Config{
		Builder:   b,
		Format:    cfg.Format,
		Location:  cfg.Location,
		Sink:      New(zerolog.New(w)),
		Observers: cfg.Observers,
	})
}

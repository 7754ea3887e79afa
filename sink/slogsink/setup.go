package slogsink

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tracelight/conlog"
)

// Config is an explicit, code-first configuration for a slog-backed console
// output. No envs, no hidden init, one call to Use.
type Config struct {
	Writer    io.Writer         // default: os.Stdout
	Handler   slog.Handler      // optional; overrides Writer
	Builder   conlog.LogBuilder // default: conlog.NewBuilder()
	Format    conlog.Format     // zero value renders the short format
	Location  *time.Location    // display zone for the short format
	Observers []conlog.Observer
}

// Use builds a ConsoleOutput whose sink is a slog text handler on
// cfg.Writer (or cfg.Handler when set). The handler is opened at debug:
// the console pipeline never filters, so every emission reaches it.
func Use(cfg Config) (*conlog.ConsoleOutput, error) {
	h := cfg.Handler
	if h == nil {
		w := cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	b := cfg.Builder
	if b == nil {
		b = conlog.NewBuilder()
	}
	return conlog.New(conlog.Config{
		Builder:   b,
		Format:    cfg.Format,
		Location:  cfg.Location,
		Sink:      New(slog.New(h)),
		Observers: cfg.Observers,
	})
}

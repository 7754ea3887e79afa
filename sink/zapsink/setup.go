package zapsink

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tracelight/conlog"
)

// Config is an explicit, code-first configuration for a zap-backed console
// output. No envs, no hidden init, one call to Use.
type Config struct {
	Writer        io.Writer             // default: os.Stdout
	Console       bool                  // pretty output via zapcore.NewConsoleEncoder
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	Builder       conlog.LogBuilder     // default: conlog.NewBuilder()
	Format        conlog.Format         // zero value renders the short format
	Location      *time.Location        // display zone for the short format
	Observers     []conlog.Observer
}

// Use builds a ConsoleOutput whose sink is a fresh zap logger on cfg.Writer.
// The zap core is opened at debug: the console pipeline never filters, so
// every emission reaches the writer.
func Use(cfg Config) (*conlog.ConsoleOutput, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Encoder defaults: no zap-injected time field, the rendered line
	// already carries the record's own date.
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))

	b := cfg.Builder
	if b == nil {
		b = conlog.NewBuilder()
	}
	return conlog.New(conlog.Config{
		Builder:   b,
		Format:    cfg.Format,
		Location:  cfg.Location,
		Sink:      New(zl),
		Observers: cfg.Observers,
	})
}

package conlog

import (
	"sort"
	"time"

	"github.com/trickstertwo/xclock"
)

// Canonical attribute keys stamped by Builder enrichment.
const (
	AttrService       = "service"
	AttrLoggerName    = "logger.name"
	AttrLoggerVersion = "logger.version"
)

// LogBuilder assembles the canonical Log for one write call. Implementations
// must be total: every input combination yields a fully formed record. The
// top-level attribute map and tag slice are snapshots; nested attribute
// values stay shared with the caller.
type LogBuilder interface {
	BuildLog(level Level, message string, date time.Time, attributes map[string]any, tags []string) Log
}

// Builder is the default LogBuilder (Builder pattern): enrichment is
// collected fluently up front, records are assembled afterwards. Setters are
// not synchronized; configure before sharing.
type Builder struct {
	attrs map[string]any
	tags  []string
	clock xclock.Clock // optional; defaults to the xclock process default
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithService records the emitting service under the "service" attribute.
func (b *Builder) WithService(name string) *Builder {
	return b.withAttr(AttrService, name)
}

// WithName records the logger name under "logger.name".
func (b *Builder) WithName(name string) *Builder {
	return b.withAttr(AttrLoggerName, name)
}

// WithVersion records the logger version under "logger.version".
func (b *Builder) WithVersion(v string) *Builder {
	return b.withAttr(AttrLoggerVersion, v)
}

// WithAttributes merges constant attributes into every record.
func (b *Builder) WithAttributes(attrs map[string]any) *Builder {
	for k, v := range attrs {
		b.withAttr(k, v)
	}
	return b
}

// WithTags merges constant tags into every record.
func (b *Builder) WithTags(tags ...string) *Builder {
	b.tags = append(b.tags, tags...)
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.clock = c
	return b
}

func (b *Builder) withAttr(k string, v any) *Builder {
	if b.attrs == nil {
		b.attrs = make(map[string]any)
	}
	b.attrs[k] = v
	return b
}

// BuildLog implements LogBuilder. Call-site attributes win over enrichment
// on key collision; tags from both sets are deduplicated and sorted. A zero
// date is stamped from the clock; a non-zero date passes through untouched.
func (b *Builder) BuildLog(level Level, message string, date time.Time, attributes map[string]any, tags []string) Log {
	if date.IsZero() {
		date = b.now()
	}
	attrs := make(map[string]any, len(b.attrs)+len(attributes))
	for k, v := range b.attrs {
		attrs[k] = v
	}
	for k, v := range attributes {
		attrs[k] = v
	}
	return Log{
		Date:       date,
		Status:     level,
		Message:    message,
		Attributes: attrs,
		Tags:       mergeTags(b.tags, tags),
	}
}

// now prefers the bound clock; otherwise the single authoritative timestamp
// comes from the xclock process default so frozen clocks are respected.
func (b *Builder) now() time.Time {
	if b.clock != nil {
		return b.clock.Now()
	}
	return xclock.Now()
}

// mergeTags combines both tag sets into a fresh sorted slice without
// duplicates.
func mergeTags(base, extra []string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)
	sort.Strings(merged)
	out := merged[:0]
	for i, t := range merged {
		if i > 0 && t == merged[i-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

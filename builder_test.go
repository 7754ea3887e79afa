package conlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trickstertwo/xclock"
)

func TestBuilderStampsZeroDate(t *testing.T) {
	// Freeze the process clock for determinism
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	l := NewBuilder().BuildLog(LevelInfo, "boot", time.Time{}, nil, nil)
	assert.True(t, l.Date.Equal(ft), "zero date must be stamped from the clock, got %s", l.Date)
}

func TestBuilderWithClock(t *testing.T) {
	t.Parallel()

	ft := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	b := NewBuilder().WithClock(xclock.NewFrozen(ft))

	l := b.BuildLog(LevelDebug, "tick", time.Time{}, nil, nil)
	assert.True(t, l.Date.Equal(ft))
}

func TestBuilderKeepsExplicitDate(t *testing.T) {
	t.Parallel()

	explicit := time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)
	b := NewBuilder().WithClock(xclock.NewFrozen(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))

	l := b.BuildLog(LevelInfo, "replay", explicit, nil, nil)
	assert.True(t, l.Date.Equal(explicit), "non-zero dates pass through untouched")
}

func TestBuilderEnrichment(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		WithService("checkout").
		WithName("ui").
		WithVersion("1.4.2")

	l := b.BuildLog(LevelNotice, "started", time.Unix(0, 0), map[string]any{"screen": "cart"}, nil)

	assert.Equal(t, map[string]any{
		AttrService:       "checkout",
		AttrLoggerName:    "ui",
		AttrLoggerVersion: "1.4.2",
		"screen":          "cart",
	}, l.Attributes)
	assert.Equal(t, LevelNotice, l.Status)
	assert.Equal(t, "started", l.Message)
}

func TestBuilderCallSiteWinsOnCollision(t *testing.T) {
	t.Parallel()

	b := NewBuilder().
		WithService("checkout").
		WithAttributes(map[string]any{"region": "eu", "tier": "gold"})

	l := b.BuildLog(LevelInfo, "m", time.Unix(0, 0),
		map[string]any{AttrService: "override", "region": "us"}, nil)

	assert.Equal(t, "override", l.Attributes[AttrService])
	assert.Equal(t, "us", l.Attributes["region"])
	assert.Equal(t, "gold", l.Attributes["tier"])
}

func TestBuilderMergesTags(t *testing.T) {
	t.Parallel()

	b := NewBuilder().WithTags("env:prod", "app:demo")

	l := b.BuildLog(LevelInfo, "m", time.Unix(0, 0), nil, []string{"zone:eu", "env:prod"})
	assert.Equal(t, []string{"app:demo", "env:prod", "zone:eu"}, l.Tags,
		"tags are merged, deduplicated and sorted")
}

func TestBuilderCopiesInputs(t *testing.T) {
	t.Parallel()

	attrs := map[string]any{"k": "v"}
	tags := []string{"b", "a"}

	b := NewBuilder()
	l := b.BuildLog(LevelInfo, "m", time.Unix(0, 0), attrs, tags)

	attrs["k"] = "mutated"
	tags[0] = "zz"

	assert.Equal(t, "v", l.Attributes["k"])
	assert.Equal(t, []string{"a", "b"}, l.Tags)
}

func TestBuilderSnapshotsTopLevelOnly(t *testing.T) {
	t.Parallel()

	inner := map[string]any{"state": "up"}
	attrs := map[string]any{"device": inner}

	b := NewBuilder()
	l := b.BuildLog(LevelInfo, "m", time.Unix(0, 0), attrs, nil)

	attrs["device"] = nil
	assert.Equal(t, inner, l.Attributes["device"], "the top-level map is a snapshot")

	inner["state"] = "down"
	assert.Equal(t, "down", l.Attributes["device"].(map[string]any)["state"],
		"nested values stay shared with the caller")
}

func TestBuilderStateIsolation(t *testing.T) {
	t.Parallel()

	b := NewBuilder().WithTags("base")

	first := b.BuildLog(LevelInfo, "one", time.Unix(0, 0), nil, []string{"extra"})
	first.Attributes["poison"] = true

	second := b.BuildLog(LevelInfo, "two", time.Unix(0, 0), nil, nil)
	assert.NotContains(t, second.Attributes, "poison")
	assert.Equal(t, []string{"base"}, second.Tags)
}

package conlog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortFormatterGolden(t *testing.T) {
	t.Parallel()

	f := NewShortFormatter(time.UTC, ">> ")
	l := Log{
		Date:    time.Unix(0, 12345*int64(time.Millisecond)),
		Status:  LevelWarn,
		Message: "boom",
	}

	assert.Equal(t, ">> 00:00:12.345 [WARN] boom", f.Format(l))
}

func TestShortFormatterLevels(t *testing.T) {
	t.Parallel()

	f := NewShortFormatter(time.UTC, "")
	date := time.Date(2024, 6, 1, 9, 8, 7, 60000000, time.UTC)

	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "09:08:07.060 [DEBUG] m"},
		{LevelInfo, "09:08:07.060 [INFO] m"},
		{LevelNotice, "09:08:07.060 [NOTICE] m"},
		{LevelWarn, "09:08:07.060 [WARN] m"},
		{LevelError, "09:08:07.060 [ERROR] m"},
		{LevelCritical, "09:08:07.060 [CRITICAL] m"},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(Log{Date: date, Status: tt.level, Message: "m"}))
		})
	}
}

func TestShortFormatterLocation(t *testing.T) {
	t.Parallel()

	date := time.Unix(0, 12345*int64(time.Millisecond))
	east := time.FixedZone("E1", 3600)

	f := NewShortFormatter(east, "")
	assert.Equal(t, "01:00:12.345 [WARN] boom", f.Format(Log{Date: date, Status: LevelWarn, Message: "boom"}))
}

func TestShortFormatterPrefixOnlyDifference(t *testing.T) {
	t.Parallel()

	l := Log{
		Date:       time.Date(2024, 6, 1, 9, 8, 7, 0, time.UTC),
		Status:     LevelError,
		Message:    "request failed",
		Attributes: map[string]any{"code": 502},
		Tags:       []string{"env:prod"},
	}

	plain := Short().resolve(time.UTC).Format(l)
	prefixed := ShortWith("X: ").resolve(time.UTC).Format(l)

	assert.Equal(t, "X: "+plain, prefixed)
}

func TestShortFormatterOmitsAttributesAndTags(t *testing.T) {
	t.Parallel()

	f := NewShortFormatter(time.UTC, "")
	out := f.Format(Log{
		Date:       time.Date(2024, 6, 1, 9, 8, 7, 0, time.UTC),
		Status:     LevelInfo,
		Message:    "compact",
		Attributes: map[string]any{"user": "u-1"},
		Tags:       []string{"env:prod"},
	})

	assert.False(t, strings.Contains(out, "u-1"))
	assert.False(t, strings.Contains(out, "env:prod"))
}

func TestShortFormatterIdempotent(t *testing.T) {
	t.Parallel()

	f := NewShortFormatter(time.UTC, "| ")
	l := Log{Date: time.Unix(1700000000, 0), Status: LevelNotice, Message: "again"}

	assert.Equal(t, f.Format(l), f.Format(l))
}

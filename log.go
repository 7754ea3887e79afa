package conlog

import (
	"encoding/json"
	"sort"
	"time"
)

// isoMillis is the wire layout for Log.Date: ISO-8601 with millisecond
// precision, always rendered in UTC.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Log is the canonical record of one logging call. A LogBuilder constructs
// it fully formed before any formatter observes it; formatters never mutate
// it, and it is discarded after formatting.
type Log struct {
	Date       time.Time      `json:"date"`
	Status     Level          `json:"status"`
	Message    string         `json:"message"`
	Attributes map[string]any `json:"attributes"`
	Tags       []string       `json:"tags"`
}

// MarshalJSON pins the canonical wire shape: the five keys in fixed order,
// the date normalized to UTC milliseconds, attributes with stdlib map-key
// sorting, and tags sorted. Nil collections encode as empty ones so the
// document shape never varies.
func (l Log) MarshalJSON() ([]byte, error) {
	attrs := l.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	tags := append([]string(nil), l.Tags...)
	if tags == nil {
		tags = []string{}
	}
	sort.Strings(tags)

	return json.Marshal(struct {
		Date       string         `json:"date"`
		Status     Level          `json:"status"`
		Message    string         `json:"message"`
		Attributes map[string]any `json:"attributes"`
		Tags       []string       `json:"tags"`
	}{
		Date:       l.Date.UTC().Format(isoMillis),
		Status:     l.Status,
		Message:    l.Message,
		Attributes: attrs,
		Tags:       tags,
	})
}

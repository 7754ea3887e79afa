package conlog

import "time"

// shortTimeLayout is a presentation-oriented wall-clock pattern; the date
// part is deliberately dropped for console readability.
const shortTimeLayout = "15:04:05.000"

// ShortFormatter renders one compact line per record:
//
//	{prefix}{HH:mm:ss.SSS} [{STATUS}] {message}
//
// Attributes and tags are omitted on purpose; select the JSON format when
// they matter.
type ShortFormatter struct {
	loc    *time.Location
	prefix string
}

// NewShortFormatter renders times in loc; nil falls back to time.Local.
func NewShortFormatter(loc *time.Location, prefix string) *ShortFormatter {
	if loc == nil {
		loc = time.Local
	}
	return &ShortFormatter{loc: loc, prefix: prefix}
}

// Format is deterministic given the configured location and the record's
// date; identical inputs yield identical bytes.
func (f *ShortFormatter) Format(log Log) string {
	b := make([]byte, 0, len(f.prefix)+len(shortTimeLayout)+len(log.Message)+13)
	b = append(b, f.prefix...)
	b = log.Date.In(f.loc).AppendFormat(b, shortTimeLayout)
	b = append(b, " ["...)
	b = append(b, log.Status.upperName()...)
	b = append(b, "] "...)
	b = append(b, log.Message...)
	return string(b)
}

package conlog

import "time"

// Formatter renders a canonical record into its display string (Strategy).
// Implementations must be pure functions of their input: no side effects,
// no mutation of the record, and no failure may escape Format.
type Formatter interface {
	Format(log Log) string
}

type formatKind uint8

const (
	formatShort formatKind = iota
	formatJSON
)

// Format selects how a console output renders records. The zero value is
// the plain short format. The selection is resolved into one concrete
// formatter at output construction and never re-branched per call.
type Format struct {
	kind   formatKind
	prefix string
}

// Short renders "{time} [{STATUS}] {message}".
func Short() Format { return Format{kind: formatShort} }

// ShortWith is Short with a literal prefix prepended to every line.
func ShortWith(prefix string) Format {
	return Format{kind: formatShort, prefix: prefix}
}

// JSON renders the whole record as a pretty-printed JSON document.
func JSON() Format { return Format{kind: formatJSON} }

// JSONWith is JSON with a literal prefix prepended to the document. The
// prefix is not part of the JSON; callers that parse the output must keep
// it empty.
func JSONWith(prefix string) Format {
	return Format{kind: formatJSON, prefix: prefix}
}

// resolve builds the formatter for this selection. loc affects only the
// short format's time rendering.
func (f Format) resolve(loc *time.Location) Formatter {
	if f.kind == formatJSON {
		return NewJSONFormatter(f.prefix)
	}
	return NewShortFormatter(loc, f.prefix)
}

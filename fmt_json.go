package conlog

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter renders the full record as an indented JSON document in the
// canonical five-key shape. The prefix is prepended verbatim and is not
// part of the document.
type JSONFormatter struct {
	prefix string
}

func NewJSONFormatter(prefix string) *JSONFormatter {
	return &JSONFormatter{prefix: prefix}
}

// Format never fails: a record the encoder cannot represent degrades to the
// error's text, and a panicking attribute Marshaler is recovered, so the
// logging path can never take the host application down.
func (f *JSONFormatter) Format(log Log) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("conlog: log encoding panicked: %v", r)
		}
	}()

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return err.Error()
	}
	return f.prefix + string(data)
}

package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Plainer lets a value provide its own rendering for `--format plain`.
type Plainer interface {
	Plain() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - plain
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "plain":
		return WritePlain(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WritePlain writes a human-readable rendering. Values that don't implement
// Plainer fall back to %+v.
func WritePlain(w io.Writer, v any) error {
	if p, ok := v.(Plainer); ok {
		_, err := fmt.Fprintln(w, p.Plain())
		return err
	}
	_, err := fmt.Fprintf(w, "%+v\n", v)
	return err
}

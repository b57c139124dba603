package cmd

import (
	"bytes"
	"strings"

	"github.com/TylerBrock/colorjson"
	"github.com/esimdash/esimdash-cli/internal/api/models"
	jsoniter "github.com/json-iterator/go"
)

// formatJSON prints decoded values with colorjson's colors and indentation.
// colorjson sorts map keys, so objects are walked here to keep each record's
// own key order; only leaf values go through the formatter.
func formatJSON(f *colorjson.Formatter, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(f, &buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(f *colorjson.Formatter, buf *bytes.Buffer, v any, depth int) error {
	switch t := v.(type) {
	case models.Record:
		if len(t.Fields) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{")
		for i, field := range t.Fields {
			if i > 0 {
				buf.WriteString(",")
			}
			newline(f, buf, depth+1)
			key, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(field.Key)
			if err != nil {
				return err
			}
			buf.WriteString(colorKey(f, string(key)))
			buf.WriteString(": ")
			if err := writeJSON(f, buf, field.Value, depth+1); err != nil {
				return err
			}
		}
		newline(f, buf, depth)
		buf.WriteString("}")
	case []models.Record:
		items := make([]any, len(t))
		for i, rec := range t {
			items[i] = rec
		}
		return writeJSON(f, buf, items, depth)
	case []any:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[")
		for i, item := range t {
			if i > 0 {
				buf.WriteString(",")
			}
			newline(f, buf, depth+1)
			if err := writeJSON(f, buf, item, depth+1); err != nil {
				return err
			}
		}
		newline(f, buf, depth)
		buf.WriteString("]")
	default:
		b, err := f.Marshal(t)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

func newline(f *colorjson.Formatter, buf *bytes.Buffer, depth int) {
	if f.Indent == 0 {
		buf.WriteString(" ")
		return
	}
	buf.WriteString("\n")
	buf.WriteString(strings.Repeat(" ", f.Indent*depth))
}

func colorKey(f *colorjson.Formatter, key string) string {
	if f.DisabledColor || f.KeyColor == nil {
		return key
	}
	return f.KeyColor.Sprint(key)
}

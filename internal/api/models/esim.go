package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Shape names the form a list response arrived in.
type Shape int

const (
	// ShapeUnrecognized is a falsy scalar payload: null, false, 0 or "".
	ShapeUnrecognized Shape = iota
	// ShapeList is a bare array of records.
	ShapeList
	// ShapeWrapped is an object carrying the records under "data".
	ShapeWrapped
	// ShapeSingle is a lone record object.
	ShapeSingle
	// ShapeScalar is any other scalar, wrapped as one record.
	ShapeScalar
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeWrapped:
		return "wrapped"
	case ShapeSingle:
		return "single"
	case ShapeScalar:
		return "scalar"
	default:
		return "unrecognized"
	}
}

// ESIMList is a decoded list response. Records is never nil.
type ESIMList struct {
	Shape   Shape
	Records []Record
}

// Len returns the number of records.
func (l *ESIMList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Records)
}

// Field is one key/value pair of a record.
//
// Value holds one of: nil, bool, string, json.Number, []any or Record.
type Field struct {
	Key   string
	Value any
}

// Record is a schema-less ESIM entity with its keys in enumeration order.
type Record struct {
	Fields []Field
}

// Keys returns the record keys in order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Values returns every value stringified, in the record's own key order.
func (r Record) Values() []string {
	values := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		values = append(values, Stringify(f.Value))
	}
	return values
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// set overwrites an existing key in place or appends a new one.
func (r *Record) set(key string, value any) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Stringify renders a decoded value the way a browser's String() would.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case json.Number:
		return formatNumber(t)
	case Record:
		return "[object Object]"
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if item == nil {
				parts = append(parts, "")
				continue
			}
			parts = append(parts, Stringify(item))
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

func formatNumber(n json.Number) string {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return string(n)
	}
	if f == 0 {
		return "0"
	}

	abs := f
	if abs < 0 {
		abs = -abs
	}
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package models

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var jsonConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeESIMList decodes a list response body into its tagged form:
//
//	{"data": [...]}     -> ShapeWrapped
//	[...]               -> ShapeList
//	{...}               -> ShapeSingle
//	"x", 5, true        -> ShapeScalar, one record
//	null, false, 0, ""  -> ShapeUnrecognized, no records
func DecodeESIMList(body []byte) (*ESIMList, error) {
	v, err := DecodeValue(body)
	if err != nil {
		return nil, err
	}
	return Normalize(v), nil
}

// DecodeValue decodes a JSON document keeping object keys in order.
func DecodeValue(body []byte) (any, error) {
	iter := jsonConfig.BorrowIterator(body)
	defer jsonConfig.ReturnIterator(iter)

	if iter.WhatIsNext() == jsoniter.InvalidValue {
		return nil, fmt.Errorf("failed to decode response body: empty or invalid json")
	}

	v := readValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("failed to decode response body: %w", iter.Error)
	}
	// only whitespace may follow; a clean end leaves io.EOF behind
	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return nil, fmt.Errorf("failed to decode response body: unexpected data after top-level value")
	}
	return v, nil
}

// Normalize maps an ordered decoded value onto an ESIMList.
func Normalize(v any) *ESIMList {
	switch t := v.(type) {
	case Record:
		if data, ok := t.Get("data"); ok {
			if items, ok := data.([]any); ok {
				return &ESIMList{Shape: ShapeWrapped, Records: toRecords(items)}
			}
		}
		return &ESIMList{Shape: ShapeSingle, Records: []Record{t}}
	case []any:
		return &ESIMList{Shape: ShapeList, Records: toRecords(t)}
	default:
		if !truthy(t) {
			return &ESIMList{Shape: ShapeUnrecognized, Records: []Record{}}
		}
		return &ESIMList{Shape: ShapeScalar, Records: []Record{asRecord(t)}}
	}
}

func toRecords(items []any) []Record {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		records = append(records, asRecord(item))
	}
	return records
}

// asRecord gives v the own enumerable keys a browser would list for it:
// strings and arrays are keyed by index, numbers and booleans have none.
func asRecord(v any) Record {
	switch t := v.(type) {
	case Record:
		return t
	case string:
		rec := Record{}
		for i, r := range []rune(t) {
			rec.Fields = append(rec.Fields, Field{Key: strconv.Itoa(i), Value: string(r)})
		}
		return rec
	case []any:
		rec := Record{}
		for i, e := range t {
			rec.Fields = append(rec.Fields, Field{Key: strconv.Itoa(i), Value: e})
		}
		return rec
	default:
		return Record{}
	}
}

// truthy reports whether a decoded scalar is truthy in JavaScript.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		return err != nil || f != 0
	default:
		return true
	}
}

func readValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		rec := Record{}
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			rec.set(key, readValue(it))
			return it.Error == nil
		})
		rec.Fields = enumerationOrder(rec.Fields)
		return rec
	case jsoniter.ArrayValue:
		items := []any{}
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			items = append(items, readValue(it))
			return it.Error == nil
		})
		return items
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.NumberValue:
		return iter.ReadNumber()
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	default:
		iter.ReportError("readValue", "unexpected json token")
		return nil
	}
}

// enumerationOrder puts array-index keys first in ascending numeric order,
// followed by the remaining keys in insertion order.
func enumerationOrder(fields []Field) []Field {
	var indexes, names []Field
	for _, f := range fields {
		if _, ok := arrayIndex(f.Key); ok {
			indexes = append(indexes, f)
			continue
		}
		names = append(names, f)
	}
	if len(indexes) == 0 {
		return fields
	}
	sort.SliceStable(indexes, func(i, j int) bool {
		a, _ := arrayIndex(indexes[i].Key)
		b, _ := arrayIndex(indexes[j].Key)
		return a < b
	})
	return append(indexes, names...)
}

func arrayIndex(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == 1<<32-1 {
		return 0, false
	}
	return n, true
}

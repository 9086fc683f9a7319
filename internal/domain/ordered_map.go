package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// OrderedMap is a JSON object that keeps its keys in insertion order.
// Setting an existing key replaces the value in place, like a Python dict.
type OrderedMap[V any] []Entry[V]

type Entry[V any] struct {
	Key   string
	Value V
}

func (m OrderedMap[V]) Get(key string) (V, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}

	var zero V
	return zero, false
}

func (m *OrderedMap[V]) Set(key string, value V) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}

	*m = append(*m, Entry[V]{Key: key, Value: value})
}

func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key)
	}
	return keys
}

func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal key %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := marshalValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal value of %q: %w", e.Key, err)
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	entries := make(OrderedMap[V], 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode value of %q: %w", key, err)
		}

		entries.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = entries
	return nil
}

// marshalValue writes NaN and ±Inf as null.
func marshalValue(v any) ([]byte, error) {
	if f, ok := v.(float64); ok {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return []byte("null"), nil
		}
		return []byte(FormatFloat(f)), nil
	}
	return json.Marshal(v)
}

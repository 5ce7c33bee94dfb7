// Package store provides the flat, dynamically typed key/value state shared
// between widgets and application logic, plus the action dispatch chain
// that lets named events mutate it.
package store

import (
	"strconv"
	"strings"
)

// ValueKind identifies the type held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
)

// Value is a dynamic value stored in the Store: one of null, bool,
// float64 number, or string. The zero Value is null. Values are
// comparable with ==.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number wraps a float64.
func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the value's type tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean and true if the value holds one.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsNumber returns the number and true if the value holds one.
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == KindNumber
}

// AsString returns the string and true if the value holds one.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// ParseNumber returns a float64 for numbers and for strings that parse as
// one. Everything else reports false.
func (v Value) ParseNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.n, true
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// String renders the value for display. Null renders as the empty string;
// integral numbers render without a trailing ".0".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		if v.n == float64(int64(v.n)) {
			return strconv.FormatInt(int64(v.n), 10)
		}
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// Store is a flat map from string keys to dynamic values. It bridges
// widget state and application logic: the reconciliation sweep writes
// input values into it, action handlers transform them, and display
// widgets read them back. There is no ordering guarantee across keys and
// the store is never persisted.
type Store struct {
	data map[string]Value
}

// New creates an empty store.
func New() *Store {
	return &Store{data: make(map[string]Value)}
}

// Get returns the value for key and whether it exists.
func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key string, value Value) {
	s.data[key] = value
}

// Remove deletes key and returns its previous value, if any.
func (s *Store) Remove(key string) (Value, bool) {
	v, ok := s.data[key]
	delete(s.data, key)
	return v, ok
}

// Contains reports whether key exists.
func (s *Store) Contains(key string) bool {
	_, ok := s.data[key]
	return ok
}

// GetStr returns the string stored under key, or "" if the key is missing
// or holds a different type.
func (s *Store) GetStr(key string) string {
	if v, ok := s.data[key]; ok {
		if str, isStr := v.AsString(); isStr {
			return str
		}
	}
	return ""
}

// GetString returns the display rendering of the value under key, or ""
// if the key is missing.
func (s *Store) GetString(key string) string {
	if v, ok := s.data[key]; ok {
		return v.String()
	}
	return ""
}

// GetNumber returns the numeric value under key. Numeric strings parse;
// anything else reports false.
func (s *Store) GetNumber(key string) (float64, bool) {
	if v, ok := s.data[key]; ok {
		return v.ParseNumber()
	}
	return 0, false
}

// GetBool returns the boolean under key, or false if the key is missing
// or holds a different type.
func (s *Store) GetBool(key string) bool {
	if v, ok := s.data[key]; ok {
		if b, isBool := v.AsBool(); isBool {
			return b
		}
	}
	return false
}

// Keys returns all keys in unspecified order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes all entries.
func (s *Store) Clear() {
	clear(s.data)
}

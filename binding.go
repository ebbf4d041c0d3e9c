package sdui

import "time"

// GlobalScope is the record component of binding keys created outside any
// record context, for screen-level fields that belong to no list row.
const GlobalScope = "global"

// BindingKey identifies one bound value: a schema field name scoped to one
// record. Using a struct rather than a joined string means record ids and
// field names can contain any characters without colliding.
type BindingKey struct {
	Field  string
	Record string
}

// BindingKeyFor is the single place binding keys are constructed. A nil
// record scopes the key globally.
func BindingKeyFor(field string, r Record) BindingKey {
	if r == nil {
		return BindingKey{Field: field, Record: GlobalScope}
	}
	return BindingKey{Field: field, Record: r.RecordID()}
}

// BindingStore holds the mutable state behind every input component, typed
// maps keyed by BindingKey. Getters report whether the key was ever written
// so callers can distinguish "empty" from "untouched". Writes overwrite
// silently; last write wins.
//
// The store is not synchronized. Renders and edits happen on the host's
// update loop, matching the single-writer model the engine assumes.
type BindingStore struct {
	text       map[BindingKey]string
	bools      map[BindingKey]bool
	doubles    map[BindingKey]float64
	ints       map[BindingKey]int
	dates      map[BindingKey]time.Time
	selections map[BindingKey]int
}

// NewBindingStore creates an empty binding store.
func NewBindingStore() *BindingStore {
	return &BindingStore{
		text:       make(map[BindingKey]string),
		bools:      make(map[BindingKey]bool),
		doubles:    make(map[BindingKey]float64),
		ints:       make(map[BindingKey]int),
		dates:      make(map[BindingKey]time.Time),
		selections: make(map[BindingKey]int),
	}
}

// Text returns the string value bound to field for the given record.
func (s *BindingStore) Text(field string, r Record) (string, bool) {
	v, ok := s.text[BindingKeyFor(field, r)]
	return v, ok
}

// SetText binds a string value to field for the given record.
func (s *BindingStore) SetText(field string, r Record, v string) {
	s.text[BindingKeyFor(field, r)] = v
}

// Bool returns the bool value bound to field for the given record.
func (s *BindingStore) Bool(field string, r Record) (bool, bool) {
	v, ok := s.bools[BindingKeyFor(field, r)]
	return v, ok
}

// SetBool binds a bool value to field for the given record.
func (s *BindingStore) SetBool(field string, r Record, v bool) {
	s.bools[BindingKeyFor(field, r)] = v
}

// Double returns the float value bound to field for the given record.
func (s *BindingStore) Double(field string, r Record) (float64, bool) {
	v, ok := s.doubles[BindingKeyFor(field, r)]
	return v, ok
}

// SetDouble binds a float value to field for the given record.
func (s *BindingStore) SetDouble(field string, r Record, v float64) {
	s.doubles[BindingKeyFor(field, r)] = v
}

// Int returns the int value bound to field for the given record.
func (s *BindingStore) Int(field string, r Record) (int, bool) {
	v, ok := s.ints[BindingKeyFor(field, r)]
	return v, ok
}

// SetInt binds an int value to field for the given record.
func (s *BindingStore) SetInt(field string, r Record, v int) {
	s.ints[BindingKeyFor(field, r)] = v
}

// Date returns the time value bound to field for the given record.
func (s *BindingStore) Date(field string, r Record) (time.Time, bool) {
	v, ok := s.dates[BindingKeyFor(field, r)]
	return v, ok
}

// SetDate binds a time value to field for the given record.
func (s *BindingStore) SetDate(field string, r Record, v time.Time) {
	s.dates[BindingKeyFor(field, r)] = v
}

// Selection returns the option index bound to field for the given record.
func (s *BindingStore) Selection(field string, r Record) (int, bool) {
	v, ok := s.selections[BindingKeyFor(field, r)]
	return v, ok
}

// SetSelection binds an option index to field for the given record.
func (s *BindingStore) SetSelection(field string, r Record, v int) {
	s.selections[BindingKeyFor(field, r)] = v
}

// Len returns the total number of bound values across all value kinds.
func (s *BindingStore) Len() int {
	return len(s.text) + len(s.bools) + len(s.doubles) +
		len(s.ints) + len(s.dates) + len(s.selections)
}

// Clear drops every bound value.
func (s *BindingStore) Clear() {
	clear(s.text)
	clear(s.bools)
	clear(s.doubles)
	clear(s.ints)
	clear(s.dates)
	clear(s.selections)
}

package staticenum

import (
	"cmp"
	"slices"
)

// Table is the enumerator table of one type: every valid candidate of a
// window, ascending by value. It is read-only once built.
type Table[E Integer] struct {
	window  Window
	entries []Value[E]
}

// BuildTable probes every candidate of w through n and keeps the members.
// The probe loop runs in ascending order, so the entries come out sorted.
// A window without members yields an empty table.
func BuildTable[E Integer](n Namer[E], w Window) *Table[E] {
	entries := make([]Value[E], 0)
	for i := 0; i < w.Size; i++ {
		c := Classify(n, E(w.At(i)))
		if c.Valid {
			entries = append(entries, NewValue(c.Value, c.Name))
		}
	}
	return &Table[E]{window: w, entries: slices.Clip(entries)}
}

// Window returns the window the table was built from.
func (t *Table[E]) Window() Window {
	return t.window
}

// Len returns the number of members.
func (t *Table[E]) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the members.
func (t *Table[E]) Entries() []Value[E] {
	return slices.Clone(t.entries)
}

// Values returns the member values in ascending order.
func (t *Table[E]) Values() []E {
	values := make([]E, len(t.entries))
	for i, e := range t.entries {
		values[i] = e.value
	}
	return values
}

// Names returns the member names, ordered by value.
func (t *Table[E]) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.name
	}
	return names
}

// Find looks v up by binary search.
func (t *Table[E]) Find(v E) (Value[E], bool) {
	i, ok := slices.BinarySearchFunc(t.entries, v, func(e Value[E], target E) int {
		return cmp.Compare(e.value, target)
	})
	if !ok {
		return Value[E]{}, false
	}
	return t.entries[i], true
}

// Contains reports whether v is a member.
func (t *Table[E]) Contains(v E) bool {
	_, ok := t.Find(v)
	return ok
}

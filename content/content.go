// Package content holds the default copy of a landing-page section and the
// override merge that turns it into the text actually rendered.
//
// A [Table] is immutable once built. Callers never edit a table in place; they
// merge an [Override] over it and get a new table with exactly the same keys.
package content

import (
	"fmt"
	"maps"
	"slices"
)

// Entry is a single key/value pair of a [Table].
type Entry struct {
	Key   string
	Value string
}

// Table is an ordered mapping from content key to copy text.
// The zero value is an empty table.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a table from entries in declaration order.
// It panics on a duplicate key: tables are declared at init time and a
// duplicate means two rendered fields would share a tag.
func NewTable(entries ...Entry) Table {
	t := Table{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := t.index[e.Key]; ok {
			panic(fmt.Sprintf("content: duplicate key %q", e.Key))
		}
		t.entries[i] = e
		t.index[e.Key] = i
	}
	return t
}

// Get returns the value for key, or "" when the key is not part of the table.
func (t Table) Get(key string) string {
	if i, ok := t.index[key]; ok {
		return t.entries[i].Value
	}
	return ""
}

// Has reports whether key belongs to the table's keyspace.
func (t Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Len returns the number of keys.
func (t Table) Len() int { return len(t.entries) }

// Keys returns the keys in declaration order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in declaration order.
func (t Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// Merge overlays o on t. For every key of t the result holds o[key] when
// present, else t's value. Keys of o outside t's keyspace are ignored and
// values are taken verbatim.
func (t Table) Merge(o Override) Table {
	merged := Table{
		entries: slices.Clone(t.entries),
		index:   t.index, // keyspace is shared, never written after NewTable
	}
	if len(o) == 0 {
		return merged
	}
	for i, e := range merged.entries {
		if v, ok := o[e.Key]; ok {
			merged.entries[i].Value = v
		}
	}
	return merged
}

// Equal reports whether both tables have the same keys, order and values.
func (t Table) Equal(u Table) bool {
	return slices.Equal(t.entries, u.entries)
}

// Override returns the table as an override covering every key.
func (t Table) Override() Override {
	o := make(Override, len(t.entries))
	for _, e := range t.entries {
		o[e.Key] = e.Value
	}
	return o
}

// Override is a caller supplied partial replacement of a [Table].
// A key that is present overrides the default, even with the empty string.
type Override map[string]string

// Unknown returns the keys of o that t does not define, sorted.
func (o Override) Unknown(t Table) []string {
	var unknown []string
	for k := range o {
		if !t.Has(k) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// Clone returns a shallow copy of o.
func (o Override) Clone() Override {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

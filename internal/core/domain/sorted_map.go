package domain

import (
	"cmp"
	"iter"
	"slices"
)

// SortedMap is a string-keyed map that iterates in byte-wise key order.
// Every map whose iteration feeds text emission or hashing uses it, so output
// never depends on Go's randomized map order.
type SortedMap[V any] struct {
	entries []sortedEntry[V]
}

type sortedEntry[V any] struct {
	key   string
	value V
}

// NewSortedMap creates an empty SortedMap.
func NewSortedMap[V any]() *SortedMap[V] {
	return &SortedMap[V]{}
}

func (m *SortedMap[V]) search(key string) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e sortedEntry[V], k string) int {
		return cmp.Compare(e.key, k)
	})
}

// Get returns the value stored under key.
func (m *SortedMap[V]) Get(key string) (V, bool) {
	if m != nil {
		if i, ok := m.search(key); ok {
			return m.entries[i].value, true
		}
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *SortedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set inserts or replaces the value stored under key.
func (m *SortedMap[V]) Set(key string, value V) {
	i, ok := m.search(key)
	if ok {
		m.entries[i].value = value
		return
	}
	m.entries = slices.Insert(m.entries, i, sortedEntry[V]{key: key, value: value})
}

// Delete removes key and reports whether it was present.
func (m *SortedMap[V]) Delete(key string) bool {
	if m == nil {
		return false
	}
	i, ok := m.search(key)
	if !ok {
		return false
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return true
}

// Clear removes every entry.
func (m *SortedMap[V]) Clear() {
	m.entries = nil
}

// Len returns the number of entries.
func (m *SortedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns the keys in sorted order.
func (m *SortedMap[V]) Keys() []string {
	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// All yields every entry in sorted key order.
func (m *SortedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

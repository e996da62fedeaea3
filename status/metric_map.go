package status

import (
	"slices"
	"strings"
	"sync"
)

// Entry is one registered metric with its exported name
type Entry[T any] struct {
	Key   string
	Name  string
	Value *T
}

// MetricMap holds the metrics of one kind, kept sorted by key for export
// Bind takes the lock once; the returned pointer is then written lock-free
type MetricMap[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T]
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

func compareEntryKey[T any](e Entry[T], key string) int {
	return strings.Compare(e.Key, key)
}

// Bind returns the metric for key, registering it on first use
func (m *MetricMap[T]) Bind(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, found := slices.BinarySearchFunc(m.entries, key, compareEntryKey[T])
	if found {
		return m.entries[i].Value
	}
	e := Entry[T]{Key: key, Name: MetricName(key), Value: new(T)}
	m.entries = slices.Insert(m.entries, i, e)
	return e.Value
}

// Entries returns a key-ordered snapshot of the registered metrics
func (m *MetricMap[T]) Entries() []Entry[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.entries)
}

// Len returns the number of registered metrics
func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

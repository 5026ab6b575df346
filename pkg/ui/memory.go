package ui

import "reflect"

type memoryKey struct {
	typ reflect.Type
	id  ID
}

// Memory is the keyed store that survives across frames.
//
// Entries are keyed by (value type, ID): Data[overlay.State](m, id) and
// Data[collapsibleState](m, id) are distinct entries even for the same id.
// Entries are never evicted; an ID that stops being used leaves its entry
// behind, which bounds growth by the number of distinct IDs ever seen.
type Memory struct {
	data map[memoryKey]any
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{data: make(map[memoryKey]any)}
}

// Data returns the entry of type T for id, inserting a zero value on first
// use. The pointer stays valid across frames until the entry is removed.
func Data[T any](m *Memory, id ID) *T {
	key := memoryKey{typ: reflect.TypeFor[T](), id: id}
	if v, ok := m.data[key]; ok {
		return v.(*T)
	}
	v := new(T)
	m.data[key] = v
	return v
}

// Load returns the entry of type T for id without inserting.
func Load[T any](m *Memory, id ID) (*T, bool) {
	v, ok := m.data[memoryKey{typ: reflect.TypeFor[T](), id: id}]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	return len(m.data)
}

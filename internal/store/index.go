package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/amanerp/amandb/internal/schema"
	"github.com/amanerp/amandb/pkg"
)

type (
	// IndexMap tracks one secondary index:
	// formatted key value -> ids of the rows holding it.
	IndexMap struct {
		locker sync.RWMutex
		Def    schema.Index
		Refs   map[string][]int
	}
	Indexes = pkg.Map[string, *IndexMap]
)

func NewIndexMap(def schema.Index) *IndexMap {
	return &IndexMap{Def: def, Refs: map[string][]int{}}
}

func formatIndexValue(v any) string {
	return fmt.Sprintf("%v", v)
}

// formatIndexKey builds the composite key for an index from row values.
// Compound indexes join their parts with a separator that cannot occur
// in formatted scalar values.
func formatIndexKey(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, formatIndexValue(v))
	}
	return strings.Join(parts, "\x1f")
}

func (m *IndexMap) Ids(key string) []int {
	m.locker.RLock()
	defer m.locker.RUnlock()
	ids := m.Refs[key]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

func (m *IndexMap) HasKey(key string) bool {
	m.locker.RLock()
	defer m.locker.RUnlock()
	return len(m.Refs[key]) > 0
}

// Occupied reports whether key is held by a row other than id.
// Used for unique checks during replace.
func (m *IndexMap) Occupied(key string, id int) bool {
	m.locker.RLock()
	defer m.locker.RUnlock()
	for _, ref := range m.Refs[key] {
		if ref != id {
			return true
		}
	}
	return false
}

func (m *IndexMap) Add(key string, id int) {
	m.locker.Lock()
	defer m.locker.Unlock()
	for _, ref := range m.Refs[key] {
		if ref == id {
			return
		}
	}
	m.Refs[key] = append(m.Refs[key], id)
}

func (m *IndexMap) Remove(key string, id int) {
	m.locker.Lock()
	defer m.locker.Unlock()
	refs := m.Refs[key]
	for i, ref := range refs {
		if ref == id {
			m.Refs[key] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	if len(m.Refs[key]) == 0 {
		delete(m.Refs, key)
	}
}

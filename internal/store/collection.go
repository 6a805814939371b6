package store

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/amanerp/amandb/internal/schema"
)

// Collection is the runtime form of one declared collection: its rows
// ordered by primary key, its secondary index maps, and the tracker the
// auto-increment primary key is drawn from. Ids are never reused after
// delete because the tracker only moves forward.
type Collection struct {
	Def  schema.Collection
	Rows *Rows

	Indexes   Indexes
	IdTracker atomic.Int64
}

func NewCollection(def schema.Collection) *Collection {
	c := &Collection{Def: def, Rows: NewRows(), Indexes: Indexes{}}
	for _, idx := range def.Indexes {
		c.Indexes.Set(idx.Name, NewIndexMap(idx))
	}
	return c
}

func (c *Collection) Name() string { return c.Def.Name }

func (c *Collection) NextId() int { return int(c.IdTracker.Add(1)) }

// indexKey extracts the index key for row under idx. A row missing any
// of the index's fields (or holding nil) is simply not indexed there.
func indexKey(idx schema.Index, row Row) (string, bool) {
	values := make([]any, 0, len(idx.Fields))
	for _, f := range idx.Fields {
		if !row.Has(f) || row.Get(f) == nil {
			return "", false
		}
		values = append(values, row.Get(f))
	}
	return formatIndexKey(values), true
}

// checkUnique rejects row if any unique index key it carries is already
// held by a different row. excludeId skips the row's own entry so a
// replace does not conflict with itself.
func (c *Collection) checkUnique(row Row, excludeId int) error {
	for _, idx := range c.Def.Indexes {
		if !idx.Unique {
			continue
		}
		key, ok := indexKey(idx, row)
		if !ok {
			continue
		}
		if c.Indexes.Get(idx.Name).Occupied(key, excludeId) {
			return &ConflictError{Collection: c.Def.Name, Index: idx.Name, Value: key}
		}
	}
	return nil
}

func (c *Collection) addRefs(row Row, id int) {
	for _, idx := range c.Def.Indexes {
		if key, ok := indexKey(idx, row); ok {
			c.Indexes.Get(idx.Name).Add(key, id)
		}
	}
}

func (c *Collection) removeRefs(row Row, id int) {
	for _, idx := range c.Def.Indexes {
		if key, ok := indexKey(idx, row); ok {
			c.Indexes.Get(idx.Name).Remove(key, id)
		}
	}
}

// Insert stores a new row. A row without a primary key gets the next
// auto-increment id; a row carrying one (reload path) advances the
// tracker past it.
func (c *Collection) Insert(row Row) error {
	id := GetPrimaryKey(row)
	if id == 0 {
		id = c.NextId()
		SetPrimaryKey(row, id)
	} else {
		for {
			cur := c.IdTracker.Load()
			if int64(id) <= cur || c.IdTracker.CompareAndSwap(cur, int64(id)) {
				break
			}
		}
	}

	if err := c.checkUnique(row, id); err != nil {
		return err
	}

	if !c.Rows.Insert(id, row) {
		return fmt.Errorf("%s: primary key %d already exists", c.Def.Name, id)
	}

	c.addRefs(row, id)
	return nil
}

// Replace swaps the row stored under id, keeping every index in step.
func (c *Collection) Replace(id int, row Row) error {
	old, ok := c.Rows.Get(id)
	if !ok {
		return fmt.Errorf("%s: no row with primary key %d", c.Def.Name, id)
	}

	if err := c.checkUnique(row, id); err != nil {
		return err
	}

	SetPrimaryKey(row, id)
	c.removeRefs(old, id)
	c.Rows.Replace(id, row)
	c.addRefs(row, id)
	return nil
}

// Delete removes the row under id. Deleting an absent id is a no-op.
func (c *Collection) Delete(id int) {
	old, ok := c.Rows.Get(id)
	if !ok {
		return
	}
	c.removeRefs(old, id)
	c.Rows.Delete(id)
}

// LookupEq resolves an equality match through a single-field index when
// one covers the field. The second return reports whether an index was
// usable at all; callers fall back to a full scan when it is false.
// Rows come back in primary-key order, same as a full scan would.
func (c *Collection) LookupEq(field string, value any) ([]Row, bool) {
	idx, ok := c.Def.IndexForField(field)
	if !ok {
		return nil, false
	}

	// index refs are kept in insertion order, a replace moves its row
	// to the back
	ids := c.Indexes.Get(idx.Name).Ids(formatIndexValue(value))
	sort.Ints(ids)

	rows := []Row{}
	for _, id := range ids {
		if row, ok := c.Rows.Get(id); ok {
			rows = append(rows, row)
		}
	}
	return rows, true
}

// rebuild re-derives index maps and the id tracker from loaded rows.
func (c *Collection) rebuild() {
	max := 0
	for _, row := range c.Rows.All() {
		id := GetPrimaryKey(row)
		if id > max {
			max = id
		}
		c.addRefs(row, id)
	}
	if int64(max) > c.IdTracker.Load() {
		c.IdTracker.Store(int64(max))
	}
}

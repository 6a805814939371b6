package schema

// Index declares a secondary lookup key on a collection.
// A single-field index has one entry in Fields; a compound index
// spans several fields and matches only when all of them are set.
// Unique indexes reject a second record with the same key.
type Index struct {
	Name   string
	Fields []string
	Unique bool
}

// Collection declares one named record set: its secondary indexes,
// the text fields substring search runs against, an optional prefix
// for human-readable sequence codes stamped on create, and default
// values filled in for fields the caller leaves out of a create.
// The primary key is always an auto-increment int assigned by the store.
type Collection struct {
	Name         string
	Indexes      []Index
	SearchFields []string
	CodePrefix   string
	Defaults     map[string]any
}

func (c Collection) Index(name string) (Index, bool) {
	for _, idx := range c.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index{}, false
}

// IndexForField returns the single-field index covering field, if any.
// Compound indexes are not usable for single-field pushdown.
func (c Collection) IndexForField(field string) (Index, bool) {
	for _, idx := range c.Indexes {
		if len(idx.Fields) == 1 && idx.Fields[0] == field {
			return idx, true
		}
	}
	return Index{}, false
}

// declaration helpers, to keep the migration list readable

func uniq(field string) Index {
	return Index{Name: field, Fields: []string{field}, Unique: true}
}

func idx(field string) Index {
	return Index{Name: field, Fields: []string{field}}
}

func compound(name string, unique bool, fields ...string) Index {
	return Index{Name: name, Fields: fields, Unique: unique}
}

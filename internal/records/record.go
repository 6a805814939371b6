package records

import (
	"errors"
	"sort"
	"time"

	"github.com/amanerp/amandb/internal/store"
	"github.com/amanerp/amandb/pkg"
)

// Record is a flat field map belonging to one collection. The access
// layer stamps the envelope fields; callers own everything else.
type Record = store.Row

// Filters is the conjunction of constraints GetAll applies in memory.
// The reserved "search" key is a case-insensitive substring match over
// the collection's declared search fields; every other key is an exact
// equality match.
type Filters = pkg.Map[string, any]

const (
	FieldId        = store.SYS_PRIMARY_KEY
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldCode      = "code"

	FilterSearch = "search"
)

// ErrNotFound is returned by Update against a missing id. GetById does
// not use it: a missing record there is a nil result, not an error.
var ErrNotFound = errors.New("record not found")

// Timestamp renders t the way envelope fields are stored.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimestamp reads an envelope timestamp back. A field that is
// missing or malformed yields the zero time.
func ParseTimestamp(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func cloneRecord(r Record) Record {
	out := Record{}
	for k, v := range r {
		out.Set(k, v)
	}
	return out
}

// OrderNewestFirst sorts records by createdAt descending, the ordering
// most list screens ask for. Ties fall back to id descending.
func OrderNewestFirst(rows []Record) {
	sort.SliceStable(rows, func(i, j int) bool {
		a := ParseTimestamp(rows[i].Get(FieldCreatedAt))
		b := ParseTimestamp(rows[j].Get(FieldCreatedAt))
		if a.Equal(b) {
			return store.GetPrimaryKey(rows[i]) > store.GetPrimaryKey(rows[j])
		}
		return a.After(b)
	})
}

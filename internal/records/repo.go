package records

import (
	"fmt"
	"time"

	"github.com/amanerp/amandb/internal/schema"
	"github.com/amanerp/amandb/internal/store"
	"github.com/amanerp/amandb/pkg"
)

// Repo is the per-collection record access contract. Every served
// collection gets one instance; they differ only in the declaration
// they are bound to.
type Repo struct {
	manager *store.Manager
	def     schema.Collection

	now func() time.Time
}

// NewRepo binds a repo to a declared collection. An undeclared name is
// a programming error surfaced as ErrNoCollection.
func NewRepo(manager *store.Manager, name string) (*Repo, error) {
	def, ok := schema.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrNoCollection, name)
	}
	return &Repo{manager: manager, def: def, now: time.Now}, nil
}

func (r *Repo) Name() string { return r.def.Name }

func (r *Repo) collection() (*store.Store, *store.Collection, error) {
	s, err := r.manager.Open()
	if err != nil {
		return nil, nil, err
	}
	c, err := s.Collection(r.def.Name)
	if err != nil {
		return nil, nil, err
	}
	return s, c, nil
}

// Create stamps the envelope, fills declared defaults for absent
// fields, assigns the next primary key and inserts. The caller gets the
// stored record back, id attached. A unique index hit fails the insert
// and stores nothing.
func (r *Repo) Create(fields Record) (Record, error) {
	s, c, err := r.collection()
	if err != nil {
		return nil, err
	}

	row := cloneRecord(fields)
	row.Delete(FieldId)

	// a field the caller sets explicitly wins, even when set to the
	// zero value
	for field, value := range r.def.Defaults {
		if !row.Has(field) {
			row.Set(field, value)
		}
	}
	ts := Timestamp(r.now())
	row.Set(FieldCreatedAt, ts)
	row.Set(FieldUpdatedAt, ts)

	if r.def.CodePrefix != "" && !row.Has(FieldCode) {
		// count-then-insert: two concurrent creates can mint the same
		// code. Known defect carried over from the source system.
		row.Set(FieldCode, r.nextCode(c))
	}

	if err := c.Insert(row); err != nil {
		pkg.ErrorLog("create on", r.def.Name, "failed;", err)
		return nil, err
	}

	s.MarkChanged()
	return row, nil
}

func (r *Repo) nextCode(c *store.Collection) string {
	return fmt.Sprintf("%s-%d-%04d", r.def.CodePrefix, r.now().Year(), c.Rows.Len()+1)
}

// GetAll reads the collection and applies filters as a conjunction.
// One equality filter is pushed down to a single-field index when the
// schema declares one; the rest run as an in-memory scan over the full
// result, which is the documented O(n) contract of this layer. Rows
// come back in primary-key order.
func (r *Repo) GetAll(filters Filters) ([]Record, error) {
	_, c, err := r.collection()
	if err != nil {
		return nil, err
	}

	rows, remaining := r.baseRows(c, filters)

	for field, want := range remaining {
		field, want := field, want
		if field == FilterSearch {
			term := fmt.Sprintf("%v", want)
			rows = pkg.Filter(rows, func(row Record) bool { return r.matchSearch(row, term) })
			continue
		}
		rows = pkg.Filter(rows, func(row Record) bool { return matchEq(row, field, want) })
	}

	return rows, nil
}

// baseRows picks the starting row set: an index lookup when some
// equality filter is covered, the whole collection otherwise. The
// returned filter map is what still has to be applied in memory.
func (r *Repo) baseRows(c *store.Collection, filters Filters) ([]Record, Filters) {
	remaining := Filters{}
	for k, v := range filters {
		remaining.Set(k, v)
	}

	for field, want := range filters {
		if field == FilterSearch {
			continue
		}
		if rows, ok := c.LookupEq(field, want); ok {
			remaining.Delete(field)
			return rows, remaining
		}
	}

	return c.Rows.All(), remaining
}

func (r *Repo) matchSearch(row Record, term string) bool {
	for _, field := range r.def.SearchFields {
		if s, ok := row.Get(field).(string); ok && pkg.ContainsFold(s, term) {
			return true
		}
	}
	return false
}

// matchEq compares through the same value formatting the index maps
// use, so a filter decoded from JSON (float64) still matches a stored
// int.
func matchEq(row Record, field string, want any) bool {
	if !row.Has(field) {
		return false
	}
	return fmt.Sprintf("%v", row.Get(field)) == fmt.Sprintf("%v", want)
}

// GetById is a direct primary-key lookup. A missing id yields
// (nil, nil); turning that into a user-visible 404 is the caller's job.
func (r *Repo) GetById(id int) (Record, error) {
	_, c, err := r.collection()
	if err != nil {
		return nil, err
	}

	row, ok := c.Rows.Get(id)
	if !ok {
		return nil, nil
	}
	return row, nil
}

// Update is a read-modify-write: supplied fields shallow-merge over the
// existing record, so omitted fields survive but nested values are
// replaced wholesale. updatedAt is refreshed. Last write wins between
// concurrent updaters.
func (r *Repo) Update(id int, fields Record) (Record, error) {
	s, c, err := r.collection()
	if err != nil {
		return nil, err
	}

	old, ok := c.Rows.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%d", ErrNotFound, r.def.Name, id)
	}

	merged := cloneRecord(old)
	for k, v := range fields {
		if k == FieldId {
			continue
		}
		merged.Set(k, v)
	}
	merged.Set(FieldUpdatedAt, Timestamp(r.now()))

	if err := c.Replace(id, merged); err != nil {
		pkg.ErrorLog("update on", r.def.Name, "failed;", err)
		return nil, err
	}

	s.MarkChanged()
	return merged, nil
}

// Delete hard-deletes by primary key. A missing id is a no-op success;
// dependent records in other collections are left alone.
func (r *Repo) Delete(id int) error {
	s, c, err := r.collection()
	if err != nil {
		return err
	}

	c.Delete(id)
	s.MarkChanged()
	return nil
}

func (r *Repo) Count() (int, error) {
	_, c, err := r.collection()
	if err != nil {
		return 0, err
	}
	return c.Rows.Len(), nil
}

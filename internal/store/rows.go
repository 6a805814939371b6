package store

import (
	"sync"

	sorted "github.com/tobshub/go-sortedmap"

	"github.com/amanerp/amandb/pkg"
)

// Maps record field name to its saved value
type Row = pkg.Map[string, any]

// SYS_PRIMARY_KEY is the field every stored row carries for its
// auto-increment primary key.
const SYS_PRIMARY_KEY = "id"

func GetPrimaryKey(r Row) int {
	return pkg.NumToInt(r.Get(SYS_PRIMARY_KEY))
}

func SetPrimaryKey(r Row, key int) {
	r.Set(SYS_PRIMARY_KEY, key)
}

func rowsComparisonFunc(a, b Row) bool {
	return GetPrimaryKey(a) < GetPrimaryKey(b)
}

// Rows holds a collection's records ordered by primary key.
type Rows struct {
	locker sync.RWMutex
	Map    *sorted.SortedMap[int, Row]
}

func NewRows() *Rows {
	return &Rows{Map: sorted.New[int, Row](0, rowsComparisonFunc)}
}

func (r *Rows) GetLocker() *sync.RWMutex { return &r.locker }

func (r *Rows) Get(id int) (Row, bool) {
	r.locker.RLock()
	defer r.locker.RUnlock()
	return r.Map.Get(id)
}

func (r *Rows) Insert(key int, value Row) bool {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.Map.Insert(key, value)
}

func (r *Rows) Replace(key int, value Row) {
	r.locker.Lock()
	defer r.locker.Unlock()
	r.Map.Replace(key, value)
}

func (r *Rows) Delete(key int) bool {
	r.locker.Lock()
	defer r.locker.Unlock()
	if !r.Map.Has(key) {
		return false
	}
	return r.Map.Delete(key)
}

func (r *Rows) Has(key int) bool {
	r.locker.RLock()
	defer r.locker.RUnlock()
	return r.Map.Has(key)
}

func (r *Rows) Len() int {
	r.locker.RLock()
	defer r.locker.RUnlock()
	return r.Map.Len()
}

// All returns every row in primary-key order.
// IterCh errors on an empty map; that just means no rows.
func (r *Rows) All() []Row {
	rows := []Row{}
	pkg.RLockWrap(r, func() {
		iterCh, err := r.Map.IterCh()
		if err != nil {
			return
		}
		for rec := range iterCh.Records() {
			rows = append(rows, rec.Val)
		}
	})
	return rows
}

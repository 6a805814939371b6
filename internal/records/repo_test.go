package records_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gotest.tools/assert"

	. "github.com/amanerp/amandb/internal/records"
	"github.com/amanerp/amandb/internal/store"
)

func newTestRepo(t *testing.T, collection string) *Repo {
	t.Helper()
	m := store.NewManager(store.NewWriteSettings("", true, 0))
	r, err := NewRepo(m, collection)
	assert.NilError(t, err)
	return r
}

func TestNewRepoRejectsUnknownCollection(t *testing.T) {
	m := store.NewManager(store.NewWriteSettings("", true, 0))
	_, err := NewRepo(m, "notDeclaredAnywhere")
	assert.Assert(t, errors.Is(err, store.ErrNoCollection))
}

// Create a bank, find it back by substring search. isActive is not in
// the input: the declared default fills it in.
func TestCreateAndSearch(t *testing.T) {
	banks := newTestRepo(t, "banks")

	created, err := banks.Create(Record{"bankName": "Kabul Bank", "bankCode": "KB"})
	assert.NilError(t, err)
	assert.Equal(t, created.Get(FieldId), 1)
	assert.Equal(t, created.Get("isActive"), true)
	assert.Assert(t, created.Has(FieldCreatedAt))
	assert.Assert(t, created.Has(FieldUpdatedAt))

	found, err := banks.GetAll(Filters{FilterSearch: "kabul"})
	assert.NilError(t, err)
	assert.Equal(t, len(found), 1)
	assert.Equal(t, found[0].Get("bankCode"), "KB")

	none, err := banks.GetAll(Filters{FilterSearch: "herat"})
	assert.NilError(t, err)
	assert.Equal(t, len(none), 0)
}

func TestCreateAppliesDefaults(t *testing.T) {
	banks := newTestRepo(t, "banks")

	created, err := banks.Create(Record{"bankName": "Kabul Bank", "bankCode": "KB"})
	assert.NilError(t, err)
	assert.Equal(t, created.Get("isActive"), true)

	stored, err := banks.GetById(created.Get(FieldId).(int))
	assert.NilError(t, err)
	assert.Equal(t, stored.Get("isActive"), true)

	// an explicit value wins over the default, zero value included
	closed, err := banks.Create(Record{"bankName": "Defunct Bank", "bankCode": "DB", "isActive": false})
	assert.NilError(t, err)
	assert.Equal(t, closed.Get("isActive"), false)

	// defaults apply on create only; update does not resurrect a
	// deleted field's default
	updated, err := banks.Update(closed.Get(FieldId).(int), Record{"bankName": "Defunct Bank Ltd"})
	assert.NilError(t, err)
	assert.Equal(t, updated.Get("isActive"), false)
}

// Create assigns a fresh id and GetById returns the stored record.
func TestCreateAssignsIdentity(t *testing.T) {
	donors := newTestRepo(t, "donors")

	a, err := donors.Create(Record{"donorName": "ECHO", "donorCode": "ECHO"})
	assert.NilError(t, err)
	b, err := donors.Create(Record{"donorName": "SIDA", "donorCode": "SIDA"})
	assert.NilError(t, err)
	assert.Assert(t, a.Get(FieldId) != b.Get(FieldId))

	got, err := donors.GetById(1)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, a)
}

func TestGetByIdMissingIsNilNotError(t *testing.T) {
	donors := newTestRepo(t, "donors")

	got, err := donors.GetById(42)
	assert.NilError(t, err)
	assert.Assert(t, got == nil)
}

// An update touching a subset of fields leaves the rest alone and
// bumps updatedAt.
func TestUpdatePreservesOmittedFields(t *testing.T) {
	employees := newTestRepo(t, "employees")

	created, err := employees.Create(Record{
		"firstName": "Ahmad", "lastName": "Rahimi", "departmentId": 2, "status": "active",
	})
	assert.NilError(t, err)
	id := created.Get(FieldId).(int)
	before := ParseTimestamp(created.Get(FieldUpdatedAt))

	time.Sleep(2 * time.Millisecond)
	updated, err := employees.Update(id, Record{"status": "on-leave"})
	assert.NilError(t, err)

	assert.Equal(t, updated.Get("status"), "on-leave")
	assert.Equal(t, updated.Get("firstName"), "Ahmad")
	assert.Equal(t, updated.Get("departmentId"), 2)
	assert.Equal(t, updated.Get(FieldCreatedAt), created.Get(FieldCreatedAt))

	after := ParseTimestamp(updated.Get(FieldUpdatedAt))
	assert.Assert(t, after.After(before), "updatedAt must move forward")
}

func TestUpdateMissingIdFails(t *testing.T) {
	employees := newTestRepo(t, "employees")
	_, err := employees.Update(404, Record{"status": "active"})
	assert.Assert(t, errors.Is(err, ErrNotFound))
}

func TestUpdateCannotChangeId(t *testing.T) {
	donors := newTestRepo(t, "donors")
	created, _ := donors.Create(Record{"donorName": "GIZ", "donorCode": "GIZ"})
	id := created.Get(FieldId).(int)

	updated, err := donors.Update(id, Record{FieldId: 99, "country": "Germany"})
	assert.NilError(t, err)
	assert.Equal(t, updated.Get(FieldId), id)
}

// Delete is terminal and tolerant.
func TestDeleteTerminalAndTolerant(t *testing.T) {
	donors := newTestRepo(t, "donors")
	created, _ := donors.Create(Record{"donorName": "ECHO", "donorCode": "ECHO"})
	id := created.Get(FieldId).(int)

	assert.NilError(t, donors.Delete(id))
	got, err := donors.GetById(id)
	assert.NilError(t, err)
	assert.Assert(t, got == nil)

	// deleting again is a no-op success
	assert.NilError(t, donors.Delete(id))
}

// Unique index enforcement through the access layer.
func TestUniqueIndexThroughCreate(t *testing.T) {
	banks := newTestRepo(t, "banks")

	_, err := banks.Create(Record{"bankName": "Afghan International", "bankCode": "AIB"})
	assert.NilError(t, err)
	_, err = banks.Create(Record{"bankName": "Copycat", "bankCode": "AIB"})
	assert.Assert(t, store.IsConflict(err))

	all, err := banks.GetAll(nil)
	assert.NilError(t, err)
	assert.Equal(t, len(all), 1)
}

func TestEqualityFiltersUseConjunction(t *testing.T) {
	employees := newTestRepo(t, "employees")

	mustCreate(t, employees, Record{"firstName": "Ahmad", "departmentId": 1, "status": "active"})
	mustCreate(t, employees, Record{"firstName": "Belqis", "departmentId": 1, "status": "inactive"})
	mustCreate(t, employees, Record{"firstName": "Dawood", "departmentId": 2, "status": "active"})

	rows, err := employees.GetAll(Filters{"departmentId": 1, "status": "active"})
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
	assert.Equal(t, rows[0].Get("firstName"), "Ahmad")

	// a filter decoded from JSON arrives as float64 and still matches
	rows, err = employees.GetAll(Filters{"departmentId": float64(2)})
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
	assert.Equal(t, rows[0].Get("firstName"), "Dawood")
}

func TestSearchCombinesWithEquality(t *testing.T) {
	employees := newTestRepo(t, "employees")

	mustCreate(t, employees, Record{"firstName": "Ahmad", "lastName": "Rahimi", "status": "active"})
	mustCreate(t, employees, Record{"firstName": "Ahmad", "lastName": "Karimi", "status": "inactive"})

	rows, err := employees.GetAll(Filters{FilterSearch: "ahmad", "status": "active"})
	assert.NilError(t, err)
	assert.Equal(t, len(rows), 1)
	assert.Equal(t, rows[0].Get("lastName"), "Rahimi")
}

func TestSequenceCodes(t *testing.T) {
	employees := newTestRepo(t, "employees")

	a := mustCreate(t, employees, Record{"firstName": "Ahmad"})
	b := mustCreate(t, employees, Record{"firstName": "Belqis"})

	year := time.Now().Year()
	assert.Equal(t, a.Get(FieldCode), codeFor("EMP", year, 1))
	assert.Equal(t, b.Get(FieldCode), codeFor("EMP", year, 2))

	// a caller-supplied code is kept
	c := mustCreate(t, employees, Record{"firstName": "Dawood", FieldCode: "EMP-LEGACY-17"})
	assert.Equal(t, c.Get(FieldCode), "EMP-LEGACY-17")
}

// Receipt recorded against a request, then the request status moves
// on; untouched fields survive.
func TestInstallmentRequestFlow(t *testing.T) {
	m := store.NewManager(store.NewWriteSettings("", true, 0))
	requests, err := NewRepo(m, "installmentRequests")
	assert.NilError(t, err)
	receipts, err := NewRepo(m, "installmentReceipts")
	assert.NilError(t, err)

	req, err := requests.Create(Record{
		"projectId": 1, "donorId": 2, "amountRequested": 5000.0,
		"currency": "USD", "status": "pending",
	})
	assert.NilError(t, err)
	reqId := req.Get(FieldId).(int)

	_, err = receipts.Create(Record{
		"requestId": reqId, "bankAccountId": 1,
		"amountReceived": 5000.0, "receivedDate": "2026-09-01",
	})
	assert.NilError(t, err)

	_, err = requests.Update(reqId, Record{"status": "received"})
	assert.NilError(t, err)

	got, err := requests.GetById(reqId)
	assert.NilError(t, err)
	assert.Equal(t, got.Get("status"), "received")
	assert.Equal(t, got.Get("amountRequested"), 5000.0)

	linked, err := receipts.GetAll(Filters{"requestId": reqId})
	assert.NilError(t, err)
	assert.Equal(t, len(linked), 1)
}

// Seeding is guarded by emptiness, not per-record presence.
func TestSeedDefaults(t *testing.T) {
	departments := newTestRepo(t, "departments")

	defaults := []Record{
		{"name": "Programs", "code": "PRG"},
		{"name": "Finance", "code": "FIN"},
		{"name": "Human Resources", "code": "HR"},
		{"name": "Procurement & Logistics", "code": "PROC"},
		{"name": "Monitoring & Evaluation", "code": "ME"},
		{"name": "Administration", "code": "ADM"},
	}

	assert.NilError(t, departments.SeedDefaults(defaults))
	count, _ := departments.Count()
	assert.Equal(t, count, 6)

	// a second pass adds nothing
	assert.NilError(t, departments.SeedDefaults(defaults))
	count, _ = departments.Count()
	assert.Equal(t, count, 6)

	// after deleting one record the collection is no longer empty, so
	// re-seeding does not restore it
	assert.NilError(t, departments.Delete(3))
	assert.NilError(t, departments.SeedDefaults(defaults))
	count, _ = departments.Count()
	assert.Equal(t, count, 5)
}

func TestStatistics(t *testing.T) {
	employees := newTestRepo(t, "employees")

	mustCreate(t, employees, Record{"firstName": "Ahmad", "status": "active"})
	mustCreate(t, employees, Record{"firstName": "Belqis", "status": "active"})
	mustCreate(t, employees, Record{"firstName": "Dawood", "status": "inactive"})

	stats, err := employees.Statistics()
	assert.NilError(t, err)
	assert.Equal(t, stats["total"], 3)
	assert.Equal(t, stats["status:active"], 2)
	assert.Equal(t, stats["status:inactive"], 1)
	assert.Equal(t, stats["createdThisMonth"], 3)
}

func TestOrderNewestFirst(t *testing.T) {
	donors := newTestRepo(t, "donors")

	mustCreate(t, donors, Record{"donorName": "ECHO", "donorCode": "ECHO"})
	time.Sleep(2 * time.Millisecond)
	mustCreate(t, donors, Record{"donorName": "SIDA", "donorCode": "SIDA"})

	rows, err := donors.GetAll(nil)
	assert.NilError(t, err)
	OrderNewestFirst(rows)
	assert.Equal(t, rows[0].Get("donorName"), "SIDA")
	assert.Equal(t, rows[1].Get("donorName"), "ECHO")
}

func mustCreate(t *testing.T, r *Repo, fields Record) Record {
	t.Helper()
	rec, err := r.Create(fields)
	assert.NilError(t, err)
	return rec
}

func codeFor(prefix string, year, n int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, n)
}

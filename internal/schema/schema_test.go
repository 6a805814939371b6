package schema_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gotest.tools/assert"

	. "github.com/amanerp/amandb/internal/schema"
)

func TestValidate(t *testing.T) {
	assert.NilError(t, Validate())
}

func TestAtVersionBounds(t *testing.T) {
	_, err := At(0)
	assert.ErrorContains(t, err, "out of range")

	_, err = At(TargetVersion + 1)
	assert.ErrorContains(t, err, "out of range")
}

func TestTargetCatalog(t *testing.T) {
	catalog := Target()

	// spot checks across chapters
	for _, name := range []string{
		"departments", "employees", "banks", "installmentRequests",
		"vendors", "inventoryItems", "donors", "projects",
		"complianceTasks", "vacancies", "trainingCourses", "leaveRequests",
		"attendanceRecords",
	} {
		assert.Assert(t, catalog.Has(name), "expected collection %s", name)
	}

	// v6 dropped these for good
	assert.Assert(t, !catalog.Has("attendance"))
	assert.Assert(t, !catalog.Has("tempDocuments"))
}

func TestDroppedCollectionsExistBeforeDrop(t *testing.T) {
	catalog, err := At(5)
	assert.NilError(t, err)
	assert.Assert(t, catalog.Has("attendance"))
	assert.Assert(t, catalog.Has("tempDocuments"))
	assert.Assert(t, !catalog.Has("attendanceRecords"))
}

func TestIndexDeclarations(t *testing.T) {
	banks, ok := Lookup("banks")
	assert.Assert(t, ok)
	idx, ok := banks.Index("bankCode")
	assert.Assert(t, ok)
	assert.Assert(t, idx.Unique)

	attendance, ok := Lookup("attendanceRecords")
	assert.Assert(t, ok)
	compound, ok := attendance.Index("employee_date")
	assert.Assert(t, ok)
	assert.Assert(t, compound.Unique)
	assert.DeepEqual(t, compound.Fields, []string{"employeeId", "date"})

	// compound indexes are not usable for single-field pushdown
	_, ok = attendance.IndexForField("employeeId")
	assert.Assert(t, ok, "single-field employeeId index should exist")
	byDate, ok := attendance.IndexForField("date")
	assert.Assert(t, ok)
	assert.Equal(t, len(byDate.Fields), 1)
}

func TestFieldDefaults(t *testing.T) {
	banks, ok := Lookup("banks")
	assert.Assert(t, ok)
	assert.Equal(t, banks.Defaults["isActive"], true)

	accounts, ok := Lookup("bankAccounts")
	assert.Assert(t, ok)
	assert.Equal(t, accounts.Defaults["isActive"], true)
}

func TestSearchFieldsAndCodePrefixes(t *testing.T) {
	employees, ok := Lookup("employees")
	assert.Assert(t, ok)
	assert.Equal(t, employees.CodePrefix, "EMP")
	assert.Assert(t, len(employees.SearchFields) > 0)
}

// Folding must be deterministic and compose: At(v) run twice gives the
// same catalog, and a collection present at v-1 only disappears at v if
// version v drops it.
func TestFoldProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("folding is deterministic", prop.ForAll(
		func(v int) bool {
			a, err := At(v)
			if err != nil {
				return false
			}
			b, err := At(v)
			if err != nil {
				return false
			}
			if len(a.Sorted) != len(b.Sorted) {
				return false
			}
			for i, name := range a.Sorted {
				if b.Sorted[i] != name {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, TargetVersion),
	))

	properties.Property("collections only disappear via an explicit drop", prop.ForAll(
		func(v int) bool {
			if v < 2 {
				return true
			}
			prev, err := At(v - 1)
			if err != nil {
				return false
			}
			cur, err := At(v)
			if err != nil {
				return false
			}

			dropped := map[string]bool{}
			for _, m := range Migrations {
				if m.Version == v {
					for _, name := range m.Drop {
						dropped[name] = true
					}
				}
			}

			for _, name := range prev.Sorted {
				if !cur.Has(name) && !dropped[name] {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, TargetVersion),
	))

	properties.TestingRun(t)
}

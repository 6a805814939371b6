package store_test

import (
	"fmt"
	"testing"

	"gotest.tools/assert"

	. "github.com/amanerp/amandb/internal/store"
)

func TestInsertAssignsSequentialIds(t *testing.T) {
	m := newMemManager()
	s, _ := m.Open()
	vendors, err := s.Collection("vendors")
	assert.NilError(t, err)

	for i := 1; i <= 3; i++ {
		row := Row{"vendorName": "Vendor", "status": "active"}
		assert.NilError(t, vendors.Insert(row))
		assert.Equal(t, GetPrimaryKey(row), i)
	}

	// a deleted id is never handed out again
	vendors.Delete(2)
	row := Row{"vendorName": "Late vendor", "status": "active"}
	assert.NilError(t, vendors.Insert(row))
	assert.Equal(t, GetPrimaryKey(row), 4)
	assert.Equal(t, vendors.Rows.Len(), 3)
}

func TestDeleteAbsentIdIsNoop(t *testing.T) {
	m := newMemManager()
	s, _ := m.Open()
	vendors, _ := s.Collection("vendors")

	vendors.Delete(999)
	assert.Equal(t, vendors.Rows.Len(), 0)
}

func TestReplaceMovesIndexRefs(t *testing.T) {
	m := newMemManager()
	s, _ := m.Open()
	projects, err := s.Collection("projects")
	assert.NilError(t, err)

	row := Row{"projectName": "WASH", "projectCode": "P-1", "donorId": 3, "status": "active"}
	assert.NilError(t, projects.Insert(row))
	id := GetPrimaryKey(row)

	moved := Row{"projectName": "WASH", "projectCode": "P-1", "donorId": 9, "status": "active"}
	assert.NilError(t, projects.Replace(id, moved))

	byOld, _ := projects.LookupEq("donorId", 3)
	assert.Equal(t, len(byOld), 0)
	byNew, _ := projects.LookupEq("donorId", 9)
	assert.Equal(t, len(byNew), 1)
}

func TestLookupEqInPrimaryKeyOrder(t *testing.T) {
	m := newMemManager()
	s, _ := m.Open()
	projects, err := s.Collection("projects")
	assert.NilError(t, err)

	for i := 1; i <= 3; i++ {
		row := Row{"projectName": "WASH", "projectCode": fmt.Sprintf("P-%d", i), "donorId": 3}
		assert.NilError(t, projects.Insert(row))
	}

	// replacing the first row sends its index ref to the back of the
	// donorId entry; the lookup still comes out in primary-key order
	replaced := Row{"projectName": "WASH renamed", "projectCode": "P-1", "donorId": 3}
	assert.NilError(t, projects.Replace(1, replaced))

	rows, ok := projects.LookupEq("donorId", 3)
	assert.Assert(t, ok)
	assert.Equal(t, len(rows), 3)
	for i, row := range rows {
		assert.Equal(t, GetPrimaryKey(row), i+1)
	}
}

func TestRowsAllInPrimaryKeyOrder(t *testing.T) {
	m := newMemManager()
	s, _ := m.Open()
	donors, _ := s.Collection("donors")

	for _, code := range []string{"ECHO", "SIDA", "GIZ"} {
		assert.NilError(t, donors.Insert(Row{"donorName": code, "donorCode": code}))
	}

	all := donors.Rows.All()
	assert.Equal(t, len(all), 3)
	for i, row := range all {
		assert.Equal(t, GetPrimaryKey(row), i+1)
	}
}

func TestRowsWithNilIndexFieldAreNotIndexed(t *testing.T) {
	m := newMemManager()
	s, _ := m.Open()
	projects, _ := s.Collection("projects")

	// no donorId at all: insert fine, simply unindexed there
	assert.NilError(t, projects.Insert(Row{"projectName": "Unassigned", "projectCode": "P-X", "status": "draft"}))

	rows, ok := projects.LookupEq("donorId", 0)
	assert.Assert(t, ok)
	assert.Equal(t, len(rows), 0)
}

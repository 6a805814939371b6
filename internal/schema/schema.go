package schema

import (
	"fmt"

	"github.com/amanerp/amandb/pkg"
)

type Catalog = pkg.InsertSortMap[string, Collection]

// At folds the migration list up to and including version and returns the
// catalog of collections a store at that version must contain. Drops run
// before creates within a version; creating an already-present collection
// is skipped, so folding is idempotent and composes across versions
// (upgrading N -> N+k directly equals k single-version upgrades).
func At(version int) (*Catalog, error) {
	if version < 1 || version > TargetVersion {
		return nil, fmt.Errorf("schema: version %d out of range 1..%d", version, TargetVersion)
	}

	catalog := pkg.NewInsertSortMap[string, Collection]()
	for _, m := range Migrations {
		if m.Version > version {
			break
		}
		for _, name := range m.Drop {
			if catalog.Has(name) {
				catalog.Delete(name)
			}
		}
		for _, c := range m.Create {
			if catalog.Has(c.Name) {
				continue
			}
			catalog.Push(c.Name, c)
		}
	}
	return catalog, nil
}

// Target returns the catalog at TargetVersion. Validate must have passed,
// so folding cannot fail here.
func Target() *Catalog {
	catalog, err := At(TargetVersion)
	if err != nil {
		panic(err)
	}
	return catalog
}

// Lookup finds a collection declaration in the target catalog.
func Lookup(name string) (Collection, bool) {
	catalog := Target()
	if !catalog.Has(name) {
		return Collection{}, false
	}
	return catalog.Get(name), true
}

// Validate checks the migration list is well formed: contiguous versions
// starting at 1, no duplicate collection within a version, no empty or
// duplicate index declarations, and drops that reference collections
// which existed at the previous version.
func Validate() error {
	if len(Migrations) == 0 {
		return fmt.Errorf("schema: no migrations declared")
	}

	for i, m := range Migrations {
		if m.Version != i+1 {
			return fmt.Errorf("schema: migration %d out of order (want version %d)", m.Version, i+1)
		}

		seen := pkg.Map[string, bool]{}
		for _, c := range m.Create {
			if seen.Has(c.Name) {
				return fmt.Errorf("schema: duplicate collection %s in version %d", c.Name, m.Version)
			}
			seen.Set(c.Name, true)

			if err := validateCollection(c); err != nil {
				return fmt.Errorf("schema: version %d: %w", m.Version, err)
			}
		}

		if m.Version > 1 && len(m.Drop) > 0 {
			prev, err := At(m.Version - 1)
			if err != nil {
				return err
			}
			for _, name := range m.Drop {
				if !prev.Has(name) {
					return fmt.Errorf(
						"schema: version %d drops %s which did not exist at version %d",
						m.Version, name, m.Version-1)
				}
			}
		}
	}

	if Migrations[len(Migrations)-1].Version != TargetVersion {
		return fmt.Errorf("schema: last migration is version %d, TargetVersion is %d",
			Migrations[len(Migrations)-1].Version, TargetVersion)
	}

	_, err := At(TargetVersion)
	return err
}

func validateCollection(c Collection) error {
	if c.Name == "" {
		return fmt.Errorf("collection with empty name")
	}

	for field := range c.Defaults {
		if field == "" {
			return fmt.Errorf("collection %s has a default for an empty field", c.Name)
		}
	}

	names := pkg.Map[string, bool]{}
	for _, idx := range c.Indexes {
		if idx.Name == "" || len(idx.Fields) == 0 {
			return fmt.Errorf("collection %s has a malformed index", c.Name)
		}
		if names.Has(idx.Name) {
			return fmt.Errorf("collection %s has duplicate index %s", c.Name, idx.Name)
		}
		names.Set(idx.Name, true)

		fields := pkg.Map[string, bool]{}
		for _, f := range idx.Fields {
			if f == "" {
				return fmt.Errorf("collection %s index %s has an empty field", c.Name, idx.Name)
			}
			if fields.Has(f) {
				return fmt.Errorf("collection %s index %s repeats field %s", c.Name, idx.Name, f)
			}
			fields.Set(f, true)
		}
	}
	return nil
}

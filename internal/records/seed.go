package records

import "github.com/amanerp/amandb/pkg"

// SeedDefaults inserts the baseline dataset iff the collection is
// empty. The guard is on emptiness, not per-record presence: a record
// deleted later is deliberately not re-added by a re-seed. Safe to call
// on every start.
func (r *Repo) SeedDefaults(defaults []Record) error {
	count, err := r.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, fields := range defaults {
		if _, err := r.Create(fields); err != nil {
			return err
		}
	}

	pkg.InfoLog("seeded", len(defaults), "default records into", r.def.Name)
	return nil
}

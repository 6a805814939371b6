package records

import (
	"fmt"
	"time"
)

const statusField = "status"

// Statistics reduces the full collection into aggregate counts: total,
// one count per status value, and how many records were created since
// the start of the current month. O(n), recomputed fresh on every call.
func (r *Repo) Statistics() (map[string]int, error) {
	_, c, err := r.collection()
	if err != nil {
		return nil, err
	}

	now := r.now()
	month_start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := map[string]int{"total": 0, "createdThisMonth": 0}
	for _, row := range c.Rows.All() {
		stats["total"]++

		if status, ok := row.Get(statusField).(string); ok && status != "" {
			stats[fmt.Sprintf("status:%s", status)]++
		}

		created := ParseTimestamp(row.Get(FieldCreatedAt))
		if !created.IsZero() && !created.Before(month_start) {
			stats["createdThisMonth"]++
		}
	}

	return stats, nil
}

package transform

import (
	"sort"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

// Merge combines two exports into one reading set. Every primary reading
// is kept; a secondary reading survives only when no primary reading
// shares its timestamp. This models overlapping utility exports where the
// newer export is authoritative for the range it covers and the older one
// only fills gaps outside it.
func Merge(primary, secondary []models.Reading) []models.Reading {
	seen := make(map[int64]bool, len(primary))
	for _, r := range primary {
		seen[r.Start] = true
	}

	merged := make([]models.Reading, 0, len(primary)+len(secondary))
	merged = append(merged, primary...)
	for _, r := range secondary {
		if !seen[r.Start] {
			merged = append(merged, r)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Start < merged[j].Start
	})

	return merged
}

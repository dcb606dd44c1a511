package domain

import "sort"

// GroupByOrder groups a flat event feed by order in a single pass,
// preserving the input's relative order per group, then sorts each
// group chronologically. Duplicate IDs are kept as-is.
func GroupByOrder(entries []TrackingEntry) map[string][]TrackingEntry {
	grouped := make(map[string][]TrackingEntry)
	for _, e := range entries {
		grouped[e.OrderID] = append(grouped[e.OrderID], e)
	}
	for _, history := range grouped {
		SortHistory(history)
	}
	return grouped
}

// SortHistory orders a single order's history by CreatedAt ascending.
// Timestamp ties keep their input order.
func SortHistory(history []TrackingEntry) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})
}

// LatestStatus returns the status of the chronologically last entry,
// or fallback when the history is empty. The history is assumed
// already sorted.
func LatestStatus(history []TrackingEntry, fallback Status) Status {
	if len(history) == 0 {
		return fallback
	}
	return history[len(history)-1].Status
}

// LatestLocation returns the address of the chronologically last entry
// that carries one, or nil when no entry does.
func LatestLocation(history []TrackingEntry) *string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].AddressDisplay != nil {
			return history[i].AddressDisplay
		}
	}
	return nil
}

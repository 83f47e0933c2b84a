package model

// Mismatch is the signed difference between reserved and running capacity per
// instance type and availability zone: negative means more reserved capacity
// is needed there, positive means reserved capacity sits idle. Entries with a
// zero difference are never stored.
type Mismatch map[InstanceKey]int

// Keys returns the mismatch keys sorted by instance type and then
// availability zone.
func (m Mismatch) Keys() []InstanceKey {
	keys := make([]InstanceKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sortInstanceKeys(keys)
	return keys
}

// Clone returns an independent copy of the mismatch.
func (m Mismatch) Clone() Mismatch {
	out := make(Mismatch, len(m))
	for key, diff := range m {
		out[key] = diff
	}
	return out
}

// Recommendations carries the two advisory outputs of a reconciliation run:
// instances running in zones the reservation pool does not cover, and the
// per-type surplus or deficit aggregated across all zones.
type Recommendations struct {
	// UnsupportedZoneInventory lists on-demand instances that should migrate
	// into a supported zone before reservations can cover them.
	UnsupportedZoneInventory Inventory

	// Imbalance maps instance type to its overall surplus (positive) or
	// deficit (negative); balanced types are omitted.
	Imbalance map[string]int
}

// Empty reports whether there is nothing to recommend.
func (r Recommendations) Empty() bool {
	return len(r.UnsupportedZoneInventory) == 0 && len(r.Imbalance) == 0
}

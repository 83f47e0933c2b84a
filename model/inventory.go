package model

import "sort"

// InstanceKey identifies a capacity pool as the pair of instance type and
// availability zone.
type InstanceKey struct {
	InstanceType     string
	AvailabilityZone string
}

// Inventory counts running instances or reserved capacity per instance type
// and availability zone. Counts are never negative.
type Inventory map[InstanceKey]int

// AccountInventory holds one instance inventory per account id.
type AccountInventory map[string]Inventory

// Add increments the count for key by n, creating the entry if needed.
func (inv Inventory) Add(key InstanceKey, n int) {
	inv[key] += n
}

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for key, count := range inv {
		out[key] = count
	}
	return out
}

// Total returns the sum of all counts.
func (inv Inventory) Total() int {
	total := 0
	for _, count := range inv {
		total += count
	}
	return total
}

// Keys returns the inventory keys sorted by instance type and then
// availability zone. Map iteration order is not stable, so everything that
// walks an inventory goes through this to keep output reproducible.
func (inv Inventory) Keys() []InstanceKey {
	keys := make([]InstanceKey, 0, len(inv))
	for key := range inv {
		keys = append(keys, key)
	}
	sortInstanceKeys(keys)
	return keys
}

// AccountIDs returns the account ids sorted lexically.
func (accounts AccountInventory) AccountIDs() []string {
	ids := make([]string, 0, len(accounts))
	for id := range accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortInstanceKeys(keys []InstanceKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].InstanceType != keys[j].InstanceType {
			return keys[i].InstanceType < keys[j].InstanceType
		}
		return keys[i].AvailabilityZone < keys[j].AvailabilityZone
	})
}

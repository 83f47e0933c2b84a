package reconciler

import (
	"github.com/elC0mpa/ri-doctor/model"
)

func NewService() *service {
	return &service{}
}

// AggregateInventory sums the per-account inventories into one. The merge is
// commutative, so account iteration order does not matter.
func (s *service) AggregateInventory(byAccount model.AccountInventory) model.Inventory {
	total := make(model.Inventory)
	for _, inventory := range byAccount {
		for key, count := range inventory {
			total.Add(key, count)
		}
	}
	return total
}

// ComputeMismatch diffs reserved capacity against running instances per
// instance type and availability zone. Keys present in either input show up
// in the result; a key only in running yields a pure deficit. Balanced
// entries are dropped.
func (s *service) ComputeMismatch(reserved, running model.Inventory) model.Mismatch {
	mismatch := make(model.Mismatch, len(reserved)+len(running))
	for key, count := range reserved {
		mismatch[key] = count
	}
	for key, count := range running {
		mismatch[key] -= count
	}
	for key, diff := range mismatch {
		if diff == 0 {
			delete(mismatch, key)
		}
	}
	return mismatch
}

// PartitionMismatch splits the mismatch by zone coverage. Entries in
// supported zones come back as the clean mismatch; the rest are returned as
// an inventory of instances that should migrate into a supported zone. A
// mismatch outside the pool's zones is by construction pure demand, so its
// sign is inverted into a positive instance count.
func (s *service) PartitionMismatch(mismatch model.Mismatch, supportedZones []string) (model.Mismatch, model.Inventory) {
	supported := make(map[string]struct{}, len(supportedZones))
	for _, zone := range supportedZones {
		supported[zone] = struct{}{}
	}

	clean := make(model.Mismatch)
	eliminated := make(model.Inventory)
	for key, diff := range mismatch {
		if _, ok := supported[key.AvailabilityZone]; ok {
			clean[key] = diff
		} else {
			eliminated[key] = -diff
		}
	}
	return clean, eliminated
}

// SurplusByType rolls the clean mismatch up to one signed total per instance
// type, dropping the zone dimension. Types whose diffs cancel out stay in the
// result with a zero total; filtering those away is a presentation concern,
// see Imbalance.
func (s *service) SurplusByType(clean model.Mismatch) map[string]int {
	surplus := make(map[string]int)
	for key, diff := range clean {
		surplus[key.InstanceType] += diff
	}
	return surplus
}

// Imbalance filters a surplus map down to the types that are actually out of
// balance.
func (s *service) Imbalance(surplus map[string]int) map[string]int {
	imbalance := make(map[string]int, len(surplus))
	for instanceType, diff := range surplus {
		if diff != 0 {
			imbalance[instanceType] = diff
		}
	}
	return imbalance
}

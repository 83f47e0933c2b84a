package reconciler

import (
	"github.com/elC0mpa/ri-doctor/model"
)

type service struct{}

// ReconcilerService turns raw inventories into the cleaned mismatch and
// surplus views the planner and reports work from. Every method is a pure
// data transformation; none of them performs I/O.
type ReconcilerService interface {
	AggregateInventory(byAccount model.AccountInventory) model.Inventory
	ComputeMismatch(reserved, running model.Inventory) model.Mismatch
	PartitionMismatch(mismatch model.Mismatch, supportedZones []string) (clean model.Mismatch, eliminated model.Inventory)
	SurplusByType(clean model.Mismatch) map[string]int
	Imbalance(surplus map[string]int) map[string]int
}

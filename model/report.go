package model

import "time"

// UtilizationInfo is the reservation utilization summary for a billing
// period, as reported by Cost Explorer.
type UtilizationInfo struct {
	Start              string
	End                string
	UtilizationPercent float64
	PurchasedHours     float64
	UsedHours          float64
}

// Report is the complete outcome of one reconciliation run. It is assembled
// fresh per run and handed to presentation code read-only.
type Report struct {
	Region      string
	GeneratedAt time.Time

	Account *AccountInfo

	InstanceInventory  Inventory
	InventoryByAccount AccountInventory
	RIInventory        Inventory
	SupportedZones     []string

	ProcessingModifications []ModificationStatus

	CleanMismatch   Mismatch
	Recommendations Recommendations
	Surplus         map[string]int

	Plan            Plan
	Mode            ExecutionMode
	ModificationIDs []string

	Utilization *UtilizationInfo

	// Warnings carries non-fatal degradations: in-flight modifications
	// forcing dry-run, metrics publishing failures, and the like.
	Warnings []string
}

// ModificationsInFlight reports whether previous modifications were still
// processing when the run started.
func (r *Report) ModificationsInFlight() bool {
	return len(r.ProcessingModifications) > 0
}

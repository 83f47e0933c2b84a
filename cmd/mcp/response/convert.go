package response

import (
	"github.com/elC0mpa/ri-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertInventory converts model.Inventory to sorted response entries
func ConvertInventory(inventory model.Inventory) []InventoryEntry {
	entries := make([]InventoryEntry, 0, len(inventory))
	for _, key := range inventory.Keys() {
		entries = append(entries, InventoryEntry{
			InstanceType:     key.InstanceType,
			AvailabilityZone: key.AvailabilityZone,
			Count:            inventory[key],
		})
	}
	return entries
}

// ConvertMismatch converts model.Mismatch to sorted response entries
func ConvertMismatch(mismatch model.Mismatch) []MismatchEntry {
	entries := make([]MismatchEntry, 0, len(mismatch))
	for _, key := range mismatch.Keys() {
		entries = append(entries, MismatchEntry{
			InstanceType:     key.InstanceType,
			AvailabilityZone: key.AvailabilityZone,
			Diff:             mismatch[key],
		})
	}
	return entries
}

// ConvertModifications converts []model.ModificationStatus to response format
func ConvertModifications(modifications []model.ModificationStatus) []Modification {
	result := make([]Modification, 0, len(modifications))
	for _, modification := range modifications {
		result = append(result, Modification{
			ID:     modification.ID,
			Status: modification.Status,
		})
	}
	return result
}

// ConvertPlan converts model.Plan to response format
func ConvertPlan(plan model.Plan) []MoveAction {
	moves := make([]MoveAction, 0, len(plan))
	for _, action := range plan {
		moves = append(moves, MoveAction{
			InstanceType:    action.InstanceType,
			SourceZone:      action.SourceZone,
			DestinationZone: action.DestZone,
			Count:           action.Count,
		})
	}
	return moves
}

// ConvertBatches converts []model.ModificationBatch to response format
func ConvertBatches(batches []model.ModificationBatch) []ModificationBatch {
	result := make([]ModificationBatch, 0, len(batches))
	for _, batch := range batches {
		targets := make([]TargetConfig, 0, len(batch.Targets))
		for _, target := range batch.Targets {
			targets = append(targets, TargetConfig{
				AvailabilityZone: target.AvailabilityZone,
				Count:            target.Count,
			})
		}
		result = append(result, ModificationBatch{
			GroupID: batch.GroupID,
			Targets: targets,
		})
	}
	return result
}

// ConvertUtilization converts model.UtilizationInfo to response format
func ConvertUtilization(info *model.UtilizationInfo) *Utilization {
	if info == nil {
		return nil
	}
	return &Utilization{
		Start:              info.Start,
		End:                info.End,
		UtilizationPercent: info.UtilizationPercent,
		PurchasedHours:     info.PurchasedHours,
		UsedHours:          info.UsedHours,
	}
}

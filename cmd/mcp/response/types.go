package response

// AccountInfo identifies the inspected AWS account
type AccountInfo struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// InventoryEntry is one instance type / availability zone capacity count
type InventoryEntry struct {
	InstanceType     string `json:"instance_type"`
	AvailabilityZone string `json:"availability_zone"`
	Count            int    `json:"count"`
}

// InstanceInventory lists the running on-demand instances of the account
type InstanceInventory struct {
	Region  string           `json:"region"`
	Entries []InventoryEntry `json:"entries"`
	Total   int              `json:"total"`
}

// Modification is one reserved-capacity modification tracked by the API
type Modification struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ReservationInventory lists the active reserved capacity of the account
type ReservationInventory struct {
	Region                  string           `json:"region"`
	Entries                 []InventoryEntry `json:"entries"`
	Total                   int              `json:"total"`
	SupportedZones          []string         `json:"supported_zones"`
	ProcessingModifications []Modification   `json:"processing_modifications"`
}

// MismatchEntry is the signed reserved-minus-running difference for one
// instance type and availability zone
type MismatchEntry struct {
	InstanceType     string `json:"instance_type"`
	AvailabilityZone string `json:"availability_zone"`
	Diff             int    `json:"diff"`
}

// MismatchReport is the reconciliation outcome before planning
type MismatchReport struct {
	Region                   string           `json:"region"`
	Mismatches               []MismatchEntry  `json:"mismatches"`
	UnsupportedZoneInstances []InventoryEntry `json:"unsupported_zone_instances"`
	Imbalance                map[string]int   `json:"imbalance"`
}

// MoveAction is one planned reserved-capacity move
type MoveAction struct {
	InstanceType    string `json:"instance_type"`
	SourceZone      string `json:"source_zone"`
	DestinationZone string `json:"destination_zone"`
	Count           int    `json:"count"`
}

// TargetConfig is one capacity slice of a modification batch
type TargetConfig struct {
	AvailabilityZone string `json:"availability_zone"`
	Count            int    `json:"count"`
}

// ModificationBatch is the planned modification call for one reserved group
type ModificationBatch struct {
	GroupID string         `json:"group_id"`
	Targets []TargetConfig `json:"targets"`
}

// RedistributionPlan is a read-only preview of the moves and the modification
// batches they would produce
type RedistributionPlan struct {
	Region  string              `json:"region"`
	Moves   []MoveAction        `json:"moves"`
	Batches []ModificationBatch `json:"batches"`
	Note    string              `json:"note"`
}

// Utilization is the current month reservation utilization summary
type Utilization struct {
	Start              string  `json:"start"`
	End                string  `json:"end"`
	UtilizationPercent float64 `json:"utilization_percent"`
	PurchasedHours     float64 `json:"purchased_hours"`
	UsedHours          float64 `json:"used_hours"`
}

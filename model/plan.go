package model

// MoveAction orders Count reserved instances of InstanceType moved from
// SourceZone to DestZone. An action is not yet bound to a specific reserved
// group; the executor does that binding.
type MoveAction struct {
	InstanceType string
	SourceZone   string
	DestZone     string
	Count        int
}

// Plan is the ordered list of moves produced by the planner.
type Plan []MoveAction

// TargetConfig is one slice of a reserved group's future capacity layout.
type TargetConfig struct {
	AvailabilityZone string
	Count            int
}

// ModificationBatch gathers every capacity slice for a single donor group.
// The targets must account for the group's full capacity: moved slices plus
// the remainder staying in the source zone. The modification API accepts only
// one pending request per group, so a batch maps to exactly one call.
type ModificationBatch struct {
	GroupID string
	Targets []TargetConfig
}

// TotalCount returns the capacity summed across all targets of the batch.
func (b ModificationBatch) TotalCount() int {
	total := 0
	for _, target := range b.Targets {
		total += target.Count
	}
	return total
}

// ExecutionMode selects whether plan execution submits real modifications.
type ExecutionMode int

const (
	ModeDryRun ExecutionMode = iota
	ModeLive
)

func (m ExecutionMode) String() string {
	if m == ModeLive {
		return "LIVE"
	}
	return "DRY-RUN"
}

// DryRunModificationID is the sentinel returned in place of a modification id
// for batches executed in dry-run mode.
const DryRunModificationID = "rimod-<DRY-RUN>"

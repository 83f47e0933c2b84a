package planner

import (
	"github.com/elC0mpa/ri-doctor/model"
)

func NewService() *service {
	return &service{}
}

// BuildPlan greedily matches zones that need reserved capacity against zones
// holding spare capacity of the same instance type. Recipients and donors are
// both visited in sorted (instance type, availability zone) order so the plan
// is reproducible run to run; no donor gives away more than its surplus and
// no recipient receives more than its deficit. Greedy means a single pass
// without backtracking: the plan is feasible, not minimal in the number of
// moves. If total surplus of a type cannot cover its deficits, the shortfall
// is simply left unplanned; it stays visible through the surplus report.
func (s *service) BuildPlan(clean model.Mismatch) model.Plan {
	remaining := make(map[model.InstanceKey]int)
	var donorKeys, recipientKeys []model.InstanceKey
	for _, key := range clean.Keys() {
		diff := clean[key]
		if diff > 0 {
			remaining[key] = diff
			donorKeys = append(donorKeys, key)
		} else if diff < 0 {
			recipientKeys = append(recipientKeys, key)
		}
	}

	plan := model.Plan{}
	for _, recipient := range recipientKeys {
		deficit := -clean[recipient]
		for _, donor := range donorKeys {
			if deficit == 0 {
				break
			}
			if donor.InstanceType != recipient.InstanceType || remaining[donor] == 0 {
				continue
			}
			move := min(deficit, remaining[donor])
			plan = append(plan, model.MoveAction{
				InstanceType: donor.InstanceType,
				SourceZone:   donor.AvailabilityZone,
				DestZone:     recipient.AvailabilityZone,
				Count:        move,
			})
			remaining[donor] -= move
			deficit -= move
		}
	}

	return plan
}

package planner

import (
	"github.com/elC0mpa/ri-doctor/model"
)

type service struct{}

// PlannerService builds a redistribution plan from a cleaned mismatch. Pure
// computation, no I/O.
type PlannerService interface {
	BuildPlan(clean model.Mismatch) model.Plan
}

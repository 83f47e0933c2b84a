package executor

import (
	"context"

	"github.com/elC0mpa/ri-doctor/model"
	svc "github.com/elC0mpa/ri-doctor/service"
)

type service struct {
	modificationService svc.ModificationService
}

// ExecutorService turns a redistribution plan into per-group modification
// batches and, in live mode, submits them.
type ExecutorService interface {
	BuildBatches(plan model.Plan, groups []model.ReservedGroup) []model.ModificationBatch
	Execute(ctx context.Context, plan model.Plan, groups []model.ReservedGroup, mode model.ExecutionMode) ([]string, error)
}

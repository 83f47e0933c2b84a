package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/elC0mpa/ri-doctor/model"
	svc "github.com/elC0mpa/ri-doctor/service"
)

func NewService(modificationService svc.ModificationService) *service {
	return &service{
		modificationService: modificationService,
	}
}

// BuildBatches binds plan actions to concrete reserved groups. Active groups
// matching an action's instance type and source zone are drained in listed
// order, splitting an action across groups when one is too small. All slices
// taken from the same donor group end up in a single batch, because the
// modification API needs a group's entire future layout in one request; a
// remainder target keeps whatever capacity was not moved in the group's own
// zone, so every batch accounts for the group's full original capacity.
//
// Capacity bookkeeping happens on a local copy; the caller's groups are
// never touched.
func (s *service) BuildBatches(plan model.Plan, groups []model.ReservedGroup) []model.ModificationBatch {
	working := make([]model.ReservedGroup, len(groups))
	copy(working, groups)

	batches := []model.ModificationBatch{}
	batchIndex := make(map[string]int)

	for _, action := range plan {
		count := action.Count
		for i := range working {
			if count == 0 {
				break
			}
			group := &working[i]
			if group.State != model.ReservedGroupStateActive ||
				group.InstanceType != action.InstanceType ||
				group.AvailabilityZone != action.SourceZone ||
				group.Count == 0 {
				continue
			}

			move := min(count, group.Count)
			idx, ok := batchIndex[group.ID]
			if !ok {
				idx = len(batches)
				batchIndex[group.ID] = idx
				batches = append(batches, model.ModificationBatch{GroupID: group.ID})
			}
			batches[idx].Targets = append(batches[idx].Targets, model.TargetConfig{
				AvailabilityZone: action.DestZone,
				Count:            move,
			})
			group.Count -= move
			count -= move
		}
	}

	for i := range working {
		group := working[i]
		idx, ok := batchIndex[group.ID]
		if !ok || group.Count == 0 {
			continue
		}
		batches[idx].Targets = append(batches[idx].Targets, model.TargetConfig{
			AvailabilityZone: group.AvailabilityZone,
			Count:            group.Count,
		})
	}

	return batches
}

// Execute runs the plan. In dry-run mode every batch yields the sentinel id
// and no modification call is made. In live mode each batch is submitted
// once, sequentially, with a fresh idempotency token; the first submission
// error aborts execution and is returned along with the ids gathered so far.
func (s *service) Execute(ctx context.Context, plan model.Plan, groups []model.ReservedGroup, mode model.ExecutionMode) ([]string, error) {
	batches := s.BuildBatches(plan, groups)

	ids := make([]string, 0, len(batches))
	for _, batch := range batches {
		if mode != model.ModeLive {
			ids = append(ids, model.DryRunModificationID)
			continue
		}

		id, err := s.modificationService.SubmitModification(ctx, batch.GroupID, batch.Targets, uuid.NewString())
		if err != nil {
			return ids, fmt.Errorf("submit modification for group %s: %w", batch.GroupID, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

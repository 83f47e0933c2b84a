package orchestrator

import (
	"context"

	"github.com/elC0mpa/ri-doctor/model"
	"github.com/elC0mpa/ri-doctor/service"
	"github.com/elC0mpa/ri-doctor/service/executor"
	"github.com/elC0mpa/ri-doctor/service/planner"
	"github.com/elC0mpa/ri-doctor/service/reconciler"
)

type orchestratorService struct {
	instanceServices   map[string]service.InstanceService
	reservationService service.ReservationService
	executorService    executor.ExecutorService
	metricsService     service.MetricsService
	identityService    service.IdentityService
	utilizationService service.UtilizationService
	storageService     service.ReportStorageService

	reconcilerService reconciler.ReconcilerService
	plannerService    planner.PlannerService
}

// OrchestratorService drives one reconciliation run end to end.
type OrchestratorService interface {
	// Reconcile collects inventories, computes mismatch and plan, executes
	// the plan (dry-run unless optimize is set and nothing is in flight)
	// and publishes surplus metrics. The returned report carries every
	// output of the run.
	Reconcile(ctx context.Context, flags model.Flags) (*model.Report, error)

	// Orchestrate is the console workflow: Reconcile plus table rendering,
	// CSV report and optional upload.
	Orchestrate(flags model.Flags) error
}

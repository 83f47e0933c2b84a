package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/elC0mpa/ri-doctor/model"
	"github.com/elC0mpa/ri-doctor/service"
	"github.com/elC0mpa/ri-doctor/service/executor"
	"github.com/elC0mpa/ri-doctor/service/planner"
	"github.com/elC0mpa/ri-doctor/service/reconciler"
	"github.com/elC0mpa/ri-doctor/utils"
)

func NewService(
	instanceServices map[string]service.InstanceService,
	reservationService service.ReservationService,
	executorService executor.ExecutorService,
	metricsService service.MetricsService,
	identityService service.IdentityService,
	utilizationService service.UtilizationService,
	storageService service.ReportStorageService,
) *orchestratorService {
	return &orchestratorService{
		instanceServices:   instanceServices,
		reservationService: reservationService,
		executorService:    executorService,
		metricsService:     metricsService,
		identityService:    identityService,
		utilizationService: utilizationService,
		storageService:     storageService,
		reconcilerService:  reconciler.NewService(),
		plannerService:     planner.NewService(),
	}
}

func (s *orchestratorService) Reconcile(ctx context.Context, flags model.Flags) (*model.Report, error) {
	report := &model.Report{
		Region:      flags.Region,
		GeneratedAt: time.Now().UTC(),
		Mode:        model.ModeDryRun,
	}

	account, err := s.identityService.GetAccountInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve reservation holding account: %w", err)
	}
	report.Account = account

	byAccount, err := s.collectInstanceInventories(ctx)
	if err != nil {
		return nil, err
	}
	report.InventoryByAccount = byAccount
	report.InstanceInventory = s.reconcilerService.AggregateInventory(byAccount)

	report.RIInventory, err = s.reservationService.GetReservedInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reserved inventory: %w", err)
	}

	// Fails the run if any zone of the holding account is not available.
	report.SupportedZones, err = s.reservationService.GetSupportedZones(ctx)
	if err != nil {
		return nil, err
	}

	report.ProcessingModifications, err = s.reservationService.GetProcessingModifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("list in-flight modifications: %w", err)
	}

	mismatch := s.reconcilerService.ComputeMismatch(report.RIInventory, report.InstanceInventory)
	clean, eliminated := s.reconcilerService.PartitionMismatch(mismatch, report.SupportedZones)
	surplus := s.reconcilerService.SurplusByType(clean)

	report.CleanMismatch = clean
	report.Surplus = surplus
	report.Recommendations = model.Recommendations{
		UnsupportedZoneInventory: eliminated,
		Imbalance:                s.reconcilerService.Imbalance(surplus),
	}

	report.Plan = s.plannerService.BuildPlan(clean)
	if len(report.Plan) > 0 {
		mode := model.ModeDryRun
		if flags.Optimize {
			if report.ModificationsInFlight() {
				report.Warnings = append(report.Warnings,
					"previous modifications are still processing; plan executed in dry-run mode")
			} else {
				mode = model.ModeLive
			}
		}
		report.Mode = mode

		groups, err := s.reservationService.GetActiveReservedGroups(ctx)
		if err != nil {
			return nil, fmt.Errorf("list reserved groups: %w", err)
		}
		report.ModificationIDs, err = s.executorService.Execute(ctx, report.Plan, groups, mode)
		if err != nil {
			return nil, err
		}
	}

	if flags.PublishMetrics {
		if err := s.metricsService.PublishSurplus(ctx, flags.Region, surplus); err != nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("failed to publish surplus metrics: %v", err))
		}
	}

	utilization, err := s.utilizationService.GetCurrentMonthUtilization(ctx)
	if err != nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("failed to fetch reservation utilization: %v", err))
	} else {
		report.Utilization = utilization
	}

	return report, nil
}

// collectInstanceInventories fans out one inventory call per linked account.
// All accounts are queried even when some fail; any failure fails the run,
// since a partial inventory would understate demand and produce bad moves.
func (s *orchestratorService) collectInstanceInventories(ctx context.Context) (model.AccountInventory, error) {
	var mu sync.Mutex
	var wg sync.WaitGroup

	byAccount := make(model.AccountInventory, len(s.instanceServices))
	failures := make(map[string]error)

	for accountID, instanceService := range s.instanceServices {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inventory, err := instanceService.GetRunningInstanceInventory(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[accountID] = err
				return
			}
			byAccount[accountID] = inventory
		}()
	}
	wg.Wait()

	if len(failures) > 0 {
		ids := make([]string, 0, len(failures))
		for id := range failures {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		errs := make([]error, 0, len(ids))
		for _, id := range ids {
			errs = append(errs, fmt.Errorf("account %s: %w", id, failures[id]))
		}
		return nil, fmt.Errorf("instance inventory collection: %w", errors.Join(errs...))
	}

	return byAccount, nil
}

func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	report, err := s.Reconcile(context.Background(), flags)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawReportHeader(report)
	utils.DrawAccountInventoryTable(report.InventoryByAccount)
	utils.DrawInventoryTable("Aggregate Instance Inventory", report.InstanceInventory)
	utils.DrawInventoryTable("RI Inventory", report.RIInventory)
	utils.DrawSupportedZones(report.SupportedZones)
	utils.DrawProcessingWarning(report.ProcessingModifications)
	utils.DrawMismatchTable(report.CleanMismatch)
	utils.DrawRecommendations(report.Recommendations)
	utils.DrawImbalanceChart(report.Recommendations.Imbalance)
	utils.DrawPlan(report, flags.Optimize)
	utils.DrawUtilization(report.Utilization)
	utils.DrawWarnings(report.Warnings)

	csvReport, err := utils.RenderCSVReport(report)
	if err != nil {
		return fmt.Errorf("render csv report: %w", err)
	}

	fileName := utils.ReportFileName(report)
	filePath := filepath.Join(flags.CSVDir, fileName)
	if err := os.WriteFile(filePath, csvReport, 0o644); err != nil {
		return fmt.Errorf("write csv report: %w", err)
	}
	fmt.Printf("\nCSV report written to %s\n", filePath)

	if flags.UploadReport {
		bucket := flags.ReportBucket
		if bucket == "" {
			bucket = fmt.Sprintf("ri-doctor-reports-%s", report.Account.AccountID)
		}
		if err := s.storageService.UploadReport(context.Background(), bucket, fileName, csvReport); err != nil {
			return fmt.Errorf("upload csv report: %w", err)
		}
		fmt.Printf("Report uploaded to s3://%s/%s\n", bucket, fileName)
	}

	return nil
}

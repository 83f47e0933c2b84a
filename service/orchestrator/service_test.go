package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elC0mpa/ri-doctor/model"
	"github.com/elC0mpa/ri-doctor/service"
	"github.com/elC0mpa/ri-doctor/service/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIdentityService struct {
	info *model.AccountInfo
	err  error
}

func (f *fakeIdentityService) GetAccountInfo(context.Context) (*model.AccountInfo, error) {
	return f.info, f.err
}

type fakeInstanceService struct {
	inventory model.Inventory
	err       error
}

func (f *fakeInstanceService) GetRunningInstanceInventory(context.Context) (model.Inventory, error) {
	return f.inventory, f.err
}

type fakeReservationService struct {
	reserved   model.Inventory
	groups     []model.ReservedGroup
	zones      []string
	zonesErr   error
	processing []model.ModificationStatus
}

func (f *fakeReservationService) GetReservedInventory(context.Context) (model.Inventory, error) {
	return f.reserved, nil
}

func (f *fakeReservationService) GetActiveReservedGroups(context.Context) ([]model.ReservedGroup, error) {
	return f.groups, nil
}

func (f *fakeReservationService) GetSupportedZones(context.Context) ([]string, error) {
	return f.zones, f.zonesErr
}

func (f *fakeReservationService) GetProcessingModifications(context.Context) ([]model.ModificationStatus, error) {
	return f.processing, nil
}

type fakeExecutorService struct {
	ids     []string
	err     error
	calls   int
	gotPlan model.Plan
	gotMode model.ExecutionMode
}

var _ executor.ExecutorService = (*fakeExecutorService)(nil)

func (f *fakeExecutorService) BuildBatches(model.Plan, []model.ReservedGroup) []model.ModificationBatch {
	return nil
}

func (f *fakeExecutorService) Execute(_ context.Context, plan model.Plan, _ []model.ReservedGroup, mode model.ExecutionMode) ([]string, error) {
	f.calls++
	f.gotPlan = plan
	f.gotMode = mode
	return f.ids, f.err
}

type fakeMetricsService struct {
	err        error
	calls      int
	gotRegion  string
	gotSurplus map[string]int
}

func (f *fakeMetricsService) PublishSurplus(_ context.Context, region string, surplus map[string]int) error {
	f.calls++
	f.gotRegion = region
	f.gotSurplus = surplus
	return f.err
}

type fakeUtilizationService struct {
	info *model.UtilizationInfo
	err  error
}

func (f *fakeUtilizationService) GetCurrentMonthUtilization(context.Context) (*model.UtilizationInfo, error) {
	return f.info, f.err
}

type fakeStorageService struct {
	err    error
	calls  int
	bucket string
	key    string
	body   []byte
}

func (f *fakeStorageService) UploadReport(_ context.Context, bucket, key string, body []byte) error {
	f.calls++
	f.bucket = bucket
	f.key = key
	f.body = body
	return f.err
}

// fixture wires an orchestrator whose default state produces one move:
// 10 reserved m4.large in us-east-1a, demand split 4/6 across 1a and 1b.
type fixture struct {
	identity    *fakeIdentityService
	instances   map[string]service.InstanceService
	reservation *fakeReservationService
	executor    *fakeExecutorService
	metrics     *fakeMetricsService
	utilization *fakeUtilizationService
	storage     *fakeStorageService
}

func newFixture() *fixture {
	return &fixture{
		identity: &fakeIdentityService{info: &model.AccountInfo{AccountID: "999999999999", AccountName: "ri-holding"}},
		instances: map[string]service.InstanceService{
			"111111111111": &fakeInstanceService{inventory: model.Inventory{
				{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}: 4,
			}},
			"222222222222": &fakeInstanceService{inventory: model.Inventory{
				{InstanceType: "m4.large", AvailabilityZone: "us-east-1b"}: 6,
			}},
		},
		reservation: &fakeReservationService{
			reserved: model.Inventory{
				{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}: 10,
			},
			groups: []model.ReservedGroup{{
				ID:               "g-1",
				InstanceType:     "m4.large",
				AvailabilityZone: "us-east-1a",
				Count:            10,
				State:            model.ReservedGroupStateActive,
			}},
			zones: []string{"us-east-1a", "us-east-1b"},
		},
		executor:    &fakeExecutorService{ids: []string{"rimod-0001"}},
		metrics:     &fakeMetricsService{},
		utilization: &fakeUtilizationService{info: &model.UtilizationInfo{UtilizationPercent: 97.5}},
		storage:     &fakeStorageService{},
	}
}

func (f *fixture) build() *orchestratorService {
	return NewService(f.instances, f.reservation, f.executor, f.metrics, f.identity, f.utilization, f.storage)
}

func TestReconcileDryRunByDefault(t *testing.T) {
	f := newFixture()

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.NoError(t, err)

	assert.Equal(t, model.ModeDryRun, report.Mode)
	assert.Equal(t, model.ModeDryRun, f.executor.gotMode)
	assert.Equal(t, []string{"rimod-0001"}, report.ModificationIDs)
	assert.Zero(t, f.metrics.calls)
}

func TestReconcileReportContents(t *testing.T) {
	f := newFixture()

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", report.Region)
	assert.Equal(t, "999999999999", report.Account.AccountID)
	assert.Equal(t, model.Inventory{
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}: 4,
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1b"}: 6,
	}, report.InstanceInventory)
	assert.Len(t, report.InventoryByAccount, 2)
	assert.Equal(t, model.Mismatch{
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}: 6,
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1b"}: -6,
	}, report.CleanMismatch)
	assert.Equal(t, map[string]int{"m4.large": 0}, report.Surplus)
	assert.Empty(t, report.Recommendations.Imbalance)
	assert.Equal(t, model.Plan{
		{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1b", Count: 6},
	}, report.Plan)
	assert.Equal(t, 97.5, report.Utilization.UtilizationPercent)
}

func TestReconcileLiveWhenOptimizeSet(t *testing.T) {
	f := newFixture()

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1", Optimize: true})
	require.NoError(t, err)

	assert.Equal(t, model.ModeLive, report.Mode)
	assert.Equal(t, model.ModeLive, f.executor.gotMode)
	assert.Empty(t, report.Warnings)
}

func TestReconcileForcesDryRunWhileModificationsProcess(t *testing.T) {
	f := newFixture()
	f.reservation.processing = []model.ModificationStatus{
		{ID: "rimod-old", Status: model.ModificationStatusProcessing},
	}

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1", Optimize: true})
	require.NoError(t, err)

	assert.Equal(t, model.ModeDryRun, report.Mode)
	assert.Equal(t, model.ModeDryRun, f.executor.gotMode)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "still processing")
}

func TestReconcileSkipsExecutorWhenBalanced(t *testing.T) {
	f := newFixture()
	f.instances = map[string]service.InstanceService{
		"111111111111": &fakeInstanceService{inventory: model.Inventory{
			{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}: 10,
		}},
	}

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1", Optimize: true})
	require.NoError(t, err)

	assert.Empty(t, report.Plan)
	assert.Zero(t, f.executor.calls)
	assert.Equal(t, model.ModeDryRun, report.Mode)
	assert.Empty(t, report.ModificationIDs)
}

func TestReconcileFailsWhenAccountInventoryFails(t *testing.T) {
	f := newFixture()
	f.instances["222222222222"] = &fakeInstanceService{err: errors.New("throttled")}

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "account 222222222222")
	assert.Contains(t, err.Error(), "throttled")
}

func TestReconcileFailsWhenZoneUnavailable(t *testing.T) {
	f := newFixture()
	zoneErr := errors.New(`zone "us-east-1c" is in state "impaired", not "available"`)
	f.reservation.zonesErr = zoneErr

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.ErrorIs(t, err, zoneErr)
	assert.Nil(t, report)
}

func TestReconcileFailsWhenIdentityFails(t *testing.T) {
	f := newFixture()
	idErr := errors.New("expired token")
	f.identity = &fakeIdentityService{err: idErr}

	_, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.ErrorIs(t, err, idErr)
}

func TestReconcilePropagatesExecutorError(t *testing.T) {
	f := newFixture()
	execErr := errors.New("api unavailable")
	f.executor.err = execErr

	_, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1", Optimize: true})
	require.ErrorIs(t, err, execErr)
}

func TestReconcilePublishesSurplusPerType(t *testing.T) {
	f := newFixture()

	_, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1", PublishMetrics: true})
	require.NoError(t, err)

	require.Equal(t, 1, f.metrics.calls)
	assert.Equal(t, "us-east-1", f.metrics.gotRegion)
	assert.Equal(t, map[string]int{"m4.large": 0}, f.metrics.gotSurplus)
}

func TestReconcileMetricsFailureIsWarningOnly(t *testing.T) {
	f := newFixture()
	f.metrics.err = errors.New("access denied")

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1", PublishMetrics: true})
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "publish surplus metrics")
	assert.Contains(t, report.Warnings[0], "access denied")
}

func TestReconcileUtilizationFailureIsWarningOnly(t *testing.T) {
	f := newFixture()
	f.utilization = &fakeUtilizationService{err: errors.New("cost explorer disabled")}

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.NoError(t, err)

	assert.Nil(t, report.Utilization)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "utilization")
}

func TestReconcileInvertsUnsupportedZoneDemand(t *testing.T) {
	f := newFixture()
	f.instances["111111111111"] = &fakeInstanceService{inventory: model.Inventory{
		{InstanceType: "m4.large", AvailabilityZone: "us-east-1a"}:  4,
		{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1d"}: 2,
	}}

	report, err := f.build().Reconcile(context.Background(), model.Flags{Region: "us-east-1"})
	require.NoError(t, err)

	assert.Equal(t, model.Inventory{
		{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1d"}: 2,
	}, report.Recommendations.UnsupportedZoneInventory)
	_, inMismatch := report.CleanMismatch[model.InstanceKey{InstanceType: "c4.xlarge", AvailabilityZone: "us-east-1d"}]
	assert.False(t, inMismatch)
}

func TestOrchestrateWritesCSVReport(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()

	err := f.build().Orchestrate(model.Flags{Region: "us-east-1", CSVDir: dir})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	name := entries[0].Name()
	assert.True(t, strings.HasPrefix(name, "ri_doctor_report_us-east-1_"), name)
	assert.True(t, strings.HasSuffix(name, ".csv"), name)

	body, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Contains(t, string(body), "m4.large")
	assert.Zero(t, f.storage.calls)
}

func TestOrchestrateUploadsReportWhenRequested(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()

	err := f.build().Orchestrate(model.Flags{Region: "us-east-1", CSVDir: dir, UploadReport: true})
	require.NoError(t, err)

	require.Equal(t, 1, f.storage.calls)
	assert.Equal(t, "ri-doctor-reports-999999999999", f.storage.bucket)
	assert.True(t, strings.HasPrefix(f.storage.key, "ri_doctor_report_us-east-1_"), f.storage.key)
	assert.NotEmpty(t, f.storage.body)
}

func TestOrchestrateUsesConfiguredBucket(t *testing.T) {
	f := newFixture()
	dir := t.TempDir()

	err := f.build().Orchestrate(model.Flags{
		Region:       "us-east-1",
		CSVDir:       dir,
		UploadReport: true,
		ReportBucket: "my-report-archive",
	})
	require.NoError(t, err)

	assert.Equal(t, "my-report-archive", f.storage.bucket)
}

package service

import (
	"context"

	"github.com/elC0mpa/ri-doctor/model"
)

// IdentityService provides account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// InstanceService inventories the running on-demand instances of one account
type InstanceService interface {
	GetRunningInstanceInventory(ctx context.Context) (model.Inventory, error)
}

// ReservationService exposes the reservation holding account's pool
type ReservationService interface {
	// GetReservedInventory aggregates active reserved groups per instance
	// type and availability zone.
	GetReservedInventory(ctx context.Context) (model.Inventory, error)

	// GetActiveReservedGroups lists the individual active reservation lots.
	GetActiveReservedGroups(ctx context.Context) ([]model.ReservedGroup, error)

	// GetSupportedZones lists the zones of the holding account. It fails if
	// any zone is not in the available state.
	GetSupportedZones(ctx context.Context) ([]string, error)

	// GetProcessingModifications lists earlier modifications the API is
	// still working on.
	GetProcessingModifications(ctx context.Context) ([]model.ModificationStatus, error)
}

// ModificationService submits reserved-capacity modifications
type ModificationService interface {
	// SubmitModification reconfigures one reserved group into the given
	// target layout. clientToken deduplicates retried submissions. Returns
	// the modification id assigned by the API.
	SubmitModification(ctx context.Context, groupID string, targets []model.TargetConfig, clientToken string) (string, error)
}

// MetricsService publishes reservation surplus metrics; failures must not
// abort a reconciliation run
type MetricsService interface {
	PublishSurplus(ctx context.Context, region string, surplus map[string]int) error
}

// UtilizationService reports how well reserved capacity is being used
type UtilizationService interface {
	GetCurrentMonthUtilization(ctx context.Context) (*model.UtilizationInfo, error)
}

// ReportStorageService persists rendered reports
type ReportStorageService interface {
	UploadReport(ctx context.Context, bucket, key string, body []byte) error
}

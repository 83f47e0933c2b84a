package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/ri-doctor/model"
)

type service struct {
	client *ec2.Client
}

type EC2Service interface {
	// Linked account side
	GetRunningInstanceInventory(ctx context.Context) (model.Inventory, error)

	// Reservation holding account side
	GetReservedInventory(ctx context.Context) (model.Inventory, error)
	GetActiveReservedGroups(ctx context.Context) ([]model.ReservedGroup, error)
	GetSupportedZones(ctx context.Context) ([]string, error)
	GetProcessingModifications(ctx context.Context) ([]model.ModificationStatus, error)
	SubmitModification(ctx context.Context, groupID string, targets []model.TargetConfig, clientToken string) (string, error)
}

package awsec2

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/ri-doctor/model"
)

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetRunningInstanceInventory implements service.InstanceService
func (s *service) GetRunningInstanceInventory(ctx context.Context) (model.Inventory, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"running"},
			},
		},
	}

	inventory := make(model.Inventory)
	paginator := ec2.NewDescribeInstancesPaginator(s.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				if instance.Placement == nil {
					continue
				}
				inventory.Add(model.InstanceKey{
					InstanceType:     string(instance.InstanceType),
					AvailabilityZone: aws.ToString(instance.Placement.AvailabilityZone),
				}, 1)
			}
		}
	}

	return inventory, nil
}

// GetReservedInventory implements service.ReservationService
func (s *service) GetReservedInventory(ctx context.Context) (model.Inventory, error) {
	reserved, err := s.listActiveReservedInstances(ctx)
	if err != nil {
		return nil, err
	}

	inventory := make(model.Inventory)
	for _, group := range reserved {
		// Regional scope reservations have no zone and cannot be moved
		// between zones.
		if aws.ToString(group.AvailabilityZone) == "" {
			continue
		}
		inventory.Add(model.InstanceKey{
			InstanceType:     string(group.InstanceType),
			AvailabilityZone: aws.ToString(group.AvailabilityZone),
		}, int(aws.ToInt32(group.InstanceCount)))
	}

	return inventory, nil
}

// GetActiveReservedGroups implements service.ReservationService
func (s *service) GetActiveReservedGroups(ctx context.Context) ([]model.ReservedGroup, error) {
	reserved, err := s.listActiveReservedInstances(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]model.ReservedGroup, 0, len(reserved))
	for _, group := range reserved {
		if aws.ToString(group.AvailabilityZone) == "" {
			continue
		}
		groups = append(groups, model.ReservedGroup{
			ID:               aws.ToString(group.ReservedInstancesId),
			InstanceType:     string(group.InstanceType),
			AvailabilityZone: aws.ToString(group.AvailabilityZone),
			Count:            int(aws.ToInt32(group.InstanceCount)),
			State:            string(group.State),
		})
	}

	// The API does not guarantee an order; sort so plans bind to groups the
	// same way on every run.
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].InstanceType != groups[j].InstanceType {
			return groups[i].InstanceType < groups[j].InstanceType
		}
		if groups[i].AvailabilityZone != groups[j].AvailabilityZone {
			return groups[i].AvailabilityZone < groups[j].AvailabilityZone
		}
		return groups[i].ID < groups[j].ID
	})

	return groups, nil
}

func (s *service) listActiveReservedInstances(ctx context.Context) ([]types.ReservedInstances, error) {
	input := &ec2.DescribeReservedInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("state"),
				Values: []string{model.ReservedGroupStateActive},
			},
		},
	}

	output, err := s.client.DescribeReservedInstances(ctx, input)
	if err != nil {
		return nil, err
	}

	return output.ReservedInstances, nil
}

// GetSupportedZones implements service.ReservationService
func (s *service) GetSupportedZones(ctx context.Context) ([]string, error) {
	output, err := s.client.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{})
	if err != nil {
		return nil, err
	}

	zones := make([]string, 0, len(output.AvailabilityZones))
	for _, zone := range output.AvailabilityZones {
		if string(zone.State) != model.ZoneStateAvailable {
			return nil, fmt.Errorf("zone %s is in state %s, not %s",
				aws.ToString(zone.ZoneName), zone.State, model.ZoneStateAvailable)
		}
		zones = append(zones, aws.ToString(zone.ZoneName))
	}

	return zones, nil
}

// GetProcessingModifications implements service.ReservationService
func (s *service) GetProcessingModifications(ctx context.Context) ([]model.ModificationStatus, error) {
	input := &ec2.DescribeReservedInstancesModificationsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("status"),
				Values: []string{model.ModificationStatusProcessing},
			},
		},
	}

	var modifications []model.ModificationStatus
	paginator := ec2.NewDescribeReservedInstancesModificationsPaginator(s.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, modification := range output.ReservedInstancesModifications {
			modifications = append(modifications, model.ModificationStatus{
				ID:     aws.ToString(modification.ReservedInstancesModificationId),
				Status: aws.ToString(modification.Status),
			})
		}
	}

	return modifications, nil
}

// SubmitModification implements service.ModificationService
func (s *service) SubmitModification(ctx context.Context, groupID string, targets []model.TargetConfig, clientToken string) (string, error) {
	configurations := make([]types.ReservedInstancesConfiguration, 0, len(targets))
	for _, target := range targets {
		configurations = append(configurations, types.ReservedInstancesConfiguration{
			AvailabilityZone: aws.String(target.AvailabilityZone),
			InstanceCount:    aws.Int32(int32(target.Count)),
		})
	}

	input := &ec2.ModifyReservedInstancesInput{
		ClientToken:          aws.String(clientToken),
		ReservedInstancesIds: []string{groupID},
		TargetConfigurations: configurations,
	}

	output, err := s.client.ModifyReservedInstances(ctx, input)
	if err != nil {
		return "", err
	}

	return aws.ToString(output.ReservedInstancesModificationId), nil
}

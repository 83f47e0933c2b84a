package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/ri-doctor/model"
)

type service struct {
	client *costexplorer.Client
}

type UtilizationService interface {
	GetCurrentMonthUtilization(ctx context.Context) (*model.UtilizationInfo, error)
}

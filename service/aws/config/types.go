package awsconfig

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/ri-doctor/model"
)

type service struct{}

type ConfigService interface {
	GetAWSCfg(ctx context.Context, region, profile string) (aws.Config, error)
	GetAWSCfgWithCredentials(ctx context.Context, region string, credentials model.AccountCredentials) (aws.Config, error)
}

package awscloudwatch

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
)

type service struct {
	client *cloudwatch.Client
}

type CloudWatchService interface {
	PublishSurplus(ctx context.Context, region string, surplus map[string]int) error
}

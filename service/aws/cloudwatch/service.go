package awscloudwatch

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

func NewService(awsconfig aws.Config) *service {
	client := cloudwatch.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// PublishSurplus implements service.MetricsService. Each instance type gets
// one datapoint in the RI-usage-<region> namespace, zero surpluses included,
// so dashboards can tell "balanced" from "not reported".
func (s *service) PublishSurplus(ctx context.Context, region string, surplus map[string]int) error {
	if len(surplus) == 0 {
		return nil
	}

	instanceTypes := make([]string, 0, len(surplus))
	for instanceType := range surplus {
		instanceTypes = append(instanceTypes, instanceType)
	}
	sort.Strings(instanceTypes)

	now := time.Now().UTC()
	data := make([]types.MetricDatum, 0, len(instanceTypes))
	for _, instanceType := range instanceTypes {
		data = append(data, types.MetricDatum{
			MetricName: aws.String(fmt.Sprintf("%s-available-RIs", instanceType)),
			Value:      aws.Float64(float64(surplus[instanceType])),
			Timestamp:  aws.Time(now),
			Unit:       types.StandardUnitCount,
		})
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(fmt.Sprintf("RI-usage-%s", region)),
		MetricData: data,
	}

	_, err := s.client.PutMetricData(ctx, input)
	return err
}

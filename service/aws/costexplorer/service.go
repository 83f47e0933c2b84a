package awscostexplorer

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/ri-doctor/model"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetCurrentMonthUtilization implements service.UtilizationService
func (s *service) GetCurrentMonthUtilization(ctx context.Context) (*model.UtilizationInfo, error) {
	start := s.getFirstDayOfMonth(time.Now())
	end := time.Now()
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")
	// Cost Explorer rejects empty intervals; on the first of the month query
	// a single day.
	if endStr == startStr {
		endStr = start.AddDate(0, 0, 1).Format("2006-01-02")
	}

	input := &costexplorer.GetReservationUtilizationInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(startStr),
			End:   aws.String(endStr),
		},
	}

	output, err := s.client.GetReservationUtilization(ctx, input)
	if err != nil {
		return nil, err
	}
	if output.Total == nil {
		return nil, fmt.Errorf("no reservation utilization data between %s and %s", startStr, endStr)
	}

	return &model.UtilizationInfo{
		Start:              startStr,
		End:                endStr,
		UtilizationPercent: parseAmount(output.Total.UtilizationPercentage),
		PurchasedHours:     parseAmount(output.Total.PurchasedHours),
		UsedHours:          parseAmount(output.Total.TotalActualHours),
	}, nil
}

func (s *service) getFirstDayOfMonth(month time.Time) time.Time {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
}

func parseAmount(amount *string) float64 {
	if amount == nil {
		return 0
	}
	parsed, _ := strconv.ParseFloat(*amount, 64)
	return parsed
}

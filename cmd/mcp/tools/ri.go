package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/ri-doctor/cmd/mcp/response"
	"github.com/elC0mpa/ri-doctor/model"
	awsconfig "github.com/elC0mpa/ri-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/ri-doctor/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/ri-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/ri-doctor/service/aws/sts"
	"github.com/elC0mpa/ri-doctor/service/executor"
	"github.com/elC0mpa/ri-doctor/service/planner"
	"github.com/elC0mpa/ri-doctor/service/reconciler"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterRITools registers all reserved-capacity tools with the MCP server.
// Every tool is read-only; modifications are never submitted from here.
func RegisterRITools(s *server.MCPServer, region, profile string) {
	// Account info
	s.AddTool(
		mcp.NewTool("ri_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeRIAccountInfoHandler(region, profile),
	)

	// Running instance inventory
	s.AddTool(
		mcp.NewTool("ri_get_instance_inventory",
			mcp.WithDescription("List running on-demand EC2 instances grouped by instance type and availability zone"),
		),
		makeRIInstanceInventoryHandler(region, profile),
	)

	// Reserved capacity inventory
	s.AddTool(
		mcp.NewTool("ri_get_reservation_inventory",
			mcp.WithDescription("List active Reserved Instances grouped by instance type and availability zone, plus supported zones and in-flight modifications"),
		),
		makeRIReservationInventoryHandler(region, profile),
	)

	// Mismatch between on-demand and reserved capacity
	s.AddTool(
		mcp.NewTool("ri_get_mismatch",
			mcp.WithDescription("Diff reserved capacity against running instances per instance type and availability zone. Positive means idle RIs, negative means uncovered on-demand usage"),
		),
		makeRIMismatchHandler(region, profile),
	)

	// Redistribution plan preview
	s.AddTool(
		mcp.NewTool("ri_get_redistribution_plan",
			mcp.WithDescription("Preview the zone moves that would rebalance Reserved Instances to match running on-demand usage. Read-only: no modifications are submitted"),
		),
		makeRIRedistributionPlanHandler(region, profile),
	)

	// Reservation utilization
	s.AddTool(
		mcp.NewTool("ri_get_utilization",
			mcp.WithDescription("Get Reserved Instance utilization for the current month from Cost Explorer"),
		),
		makeRIUtilizationHandler(region, profile),
	)
}

func makeRIAccountInfoHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		stsSvc := awssts.NewService(awsCfg)
		info, err := stsSvc.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRIInstanceInventoryHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		ec2Svc := awsec2.NewService(awsCfg)
		inventory, err := ec2Svc.GetRunningInstanceInventory(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get instance inventory: %v", err)), nil
		}

		resp := response.InstanceInventory{
			Region:  region,
			Entries: response.ConvertInventory(inventory),
			Total:   inventory.Total(),
		}

		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRIReservationInventoryHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		ec2Svc := awsec2.NewService(awsCfg)

		inventory, err := ec2Svc.GetReservedInventory(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get RI inventory: %v", err)), nil
		}

		zones, err := ec2Svc.GetSupportedZones(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get supported zones: %v", err)), nil
		}

		modifications, err := ec2Svc.GetProcessingModifications(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get processing modifications: %v", err)), nil
		}

		resp := response.ReservationInventory{
			Region:                  region,
			Entries:                 response.ConvertInventory(inventory),
			Total:                   inventory.Total(),
			SupportedZones:          zones,
			ProcessingModifications: response.ConvertModifications(modifications),
		}

		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRIMismatchHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		ec2Svc := awsec2.NewService(awsCfg)

		clean, eliminated, imbalance, err := reconcile(ctx, ec2Svc)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to reconcile: %v", err)), nil
		}

		resp := response.MismatchReport{
			Region:                   region,
			Mismatches:               response.ConvertMismatch(clean),
			UnsupportedZoneInstances: response.ConvertInventory(eliminated),
			Imbalance:                imbalance,
		}

		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRIRedistributionPlanHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		ec2Svc := awsec2.NewService(awsCfg)

		clean, _, _, err := reconcile(ctx, ec2Svc)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to reconcile: %v", err)), nil
		}

		plan := planner.NewService().BuildPlan(clean)

		groups, err := ec2Svc.GetActiveReservedGroups(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get reserved groups: %v", err)), nil
		}
		batches := executor.NewService(ec2Svc).BuildBatches(plan, groups)

		resp := response.RedistributionPlan{
			Region:  region,
			Moves:   response.ConvertPlan(plan),
			Batches: response.ConvertBatches(batches),
			Note:    "Preview only. Run ri-doctor with -optimize to submit these modifications.",
		}

		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRIUtilizationHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		configSvc := awsconfig.NewService()
		awsCfg, err := configSvc.GetAWSCfg(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		utilizationSvc := awscostexplorer.NewService(awsCfg)
		info, err := utilizationSvc.GetCurrentMonthUtilization(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get utilization: %v", err)), nil
		}

		resp := response.ConvertUtilization(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

// reconcile runs the mismatch pipeline against a single account: its own
// running instances vs the reserved capacity it holds.
func reconcile(ctx context.Context, ec2Svc awsec2.EC2Service) (clean model.Mismatch, eliminated model.Inventory, imbalance map[string]int, err error) {
	running, err := ec2Svc.GetRunningInstanceInventory(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("instance inventory: %w", err)
	}

	reserved, err := ec2Svc.GetReservedInventory(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("RI inventory: %w", err)
	}

	zones, err := ec2Svc.GetSupportedZones(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("supported zones: %w", err)
	}

	reconcilerSvc := reconciler.NewService()
	mismatch := reconcilerSvc.ComputeMismatch(reserved, running)
	clean, eliminated = reconcilerSvc.PartitionMismatch(mismatch, zones)
	imbalance = reconcilerSvc.Imbalance(reconcilerSvc.SurplusByType(clean))

	return clean, eliminated, imbalance, nil
}

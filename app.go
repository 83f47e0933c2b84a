package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/ri-doctor/model"
	"github.com/elC0mpa/ri-doctor/service"
	awscloudwatch "github.com/elC0mpa/ri-doctor/service/aws/cloudwatch"
	awsconfig "github.com/elC0mpa/ri-doctor/service/aws/config"
	awscostexplorer "github.com/elC0mpa/ri-doctor/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/ri-doctor/service/aws/ec2"
	awss3 "github.com/elC0mpa/ri-doctor/service/aws/s3"
	awssts "github.com/elC0mpa/ri-doctor/service/aws/sts"
	"github.com/elC0mpa/ri-doctor/service/executor"
	"github.com/elC0mpa/ri-doctor/service/flag"
	"github.com/elC0mpa/ri-doctor/service/orchestrator"
	"github.com/elC0mpa/ri-doctor/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	utils.StartSpinner()

	ctx := context.Background()
	cfgService := awsconfig.NewService()

	riCfg, instanceServices, err := buildClients(ctx, cfgService, flags)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}

	ec2Service := awsec2.NewService(riCfg)

	orchestratorService := orchestrator.NewService(
		instanceServices,
		ec2Service,
		executor.NewService(ec2Service),
		awscloudwatch.NewService(riCfg),
		awssts.NewService(riCfg),
		awscostexplorer.NewService(riCfg),
		awss3.NewService(riCfg),
	)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		utils.StopSpinner()
		panic(err)
	}
}

// buildClients resolves the reservation holding account config and one EC2
// client per linked account, from either shared config profiles or a static
// credentials file.
func buildClients(ctx context.Context, cfgService awsconfig.ConfigService, flags model.Flags) (aws.Config, map[string]service.InstanceService, error) {
	if flags.AccountsFile != "" {
		return buildClientsFromAccountsFile(ctx, cfgService, flags)
	}
	return buildClientsFromProfiles(ctx, cfgService, flags)
}

func buildClientsFromProfiles(ctx context.Context, cfgService awsconfig.ConfigService, flags model.Flags) (aws.Config, map[string]service.InstanceService, error) {
	instanceServices := make(map[string]service.InstanceService, len(flags.Profiles))
	for _, profile := range flags.Profiles {
		cfg, err := cfgService.GetAWSCfg(ctx, flags.Region, profile)
		if err != nil {
			return aws.Config{}, nil, fmt.Errorf("load profile %s: %w", profile, err)
		}
		info, err := awssts.NewService(cfg).GetAccountInfo(ctx)
		if err != nil {
			return aws.Config{}, nil, fmt.Errorf("resolve account of profile %s: %w", profile, err)
		}
		instanceServices[info.AccountID] = awsec2.NewService(cfg)
	}

	riCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.RIProfile)
	if err != nil {
		return aws.Config{}, nil, fmt.Errorf("load RI holding account profile: %w", err)
	}

	return riCfg, instanceServices, nil
}

func buildClientsFromAccountsFile(ctx context.Context, cfgService awsconfig.ConfigService, flags model.Flags) (aws.Config, map[string]service.InstanceService, error) {
	raw, err := os.ReadFile(flags.AccountsFile)
	if err != nil {
		return aws.Config{}, nil, fmt.Errorf("read accounts file: %w", err)
	}

	var accounts map[string]model.AccountCredentials
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return aws.Config{}, nil, fmt.Errorf("parse accounts file %s: %w", flags.AccountsFile, err)
	}

	riCredentials, ok := accounts[flags.RIAccount]
	if !ok {
		return aws.Config{}, nil, fmt.Errorf("account %s not present in %s", flags.RIAccount, flags.AccountsFile)
	}

	instanceServices := make(map[string]service.InstanceService, len(accounts))
	for accountID, credentials := range accounts {
		cfg, err := cfgService.GetAWSCfgWithCredentials(ctx, flags.Region, credentials)
		if err != nil {
			return aws.Config{}, nil, fmt.Errorf("configure account %s: %w", accountID, err)
		}
		instanceServices[accountID] = awsec2.NewService(cfg)
	}

	riCfg, err := cfgService.GetAWSCfgWithCredentials(ctx, flags.Region, riCredentials)
	if err != nil {
		return aws.Config{}, nil, fmt.Errorf("configure RI holding account %s: %w", flags.RIAccount, err)
	}

	return riCfg, instanceServices, nil
}

package flag

import (
	"flag"
	"fmt"
	"strings"

	"github.com/elC0mpa/ri-doctor/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	region := flag.String("region", "us-east-1", "AWS region to reconcile")
	riProfile := flag.String("ri-profile", "", "AWS profile of the reservation holding account")
	profiles := flag.String("profiles", "", "Comma-separated AWS profiles of the linked accounts")
	accountsFile := flag.String("accounts-file", "", "JSON file mapping account ids to static credentials")
	riAccount := flag.String("ri-account", "", "Account id of the reservation holding account in -accounts-file")
	optimize := flag.Bool("optimize", false, "Execute the redistribution plan instead of a dry-run")
	publishMetrics := flag.Bool("publish-metrics", true, "Publish reservation surplus metrics to CloudWatch")
	uploadReport := flag.Bool("upload-report", false, "Upload the CSV report to S3")
	reportBucket := flag.String("report-bucket", "", "S3 bucket for report uploads (defaults to ri-doctor-reports-<account-id>)")
	csvDir := flag.String("csv-dir", ".", "Directory the CSV report is written to")

	flag.Parse()

	flags := model.Flags{
		Region:         *region,
		RIProfile:      *riProfile,
		Profiles:       splitProfiles(*profiles),
		AccountsFile:   *accountsFile,
		RIAccount:      *riAccount,
		Optimize:       *optimize,
		PublishMetrics: *publishMetrics,
		UploadReport:   *uploadReport,
		ReportBucket:   *reportBucket,
		CSVDir:         *csvDir,
	}

	if flags.AccountsFile == "" && len(flags.Profiles) == 0 {
		return model.Flags{}, fmt.Errorf("either -profiles or -accounts-file is required")
	}
	if flags.AccountsFile != "" && flags.RIAccount == "" {
		return model.Flags{}, fmt.Errorf("-ri-account is required when -accounts-file is used")
	}
	if flags.AccountsFile == "" && flags.RIAccount != "" {
		return model.Flags{}, fmt.Errorf("-ri-account only applies with -accounts-file")
	}

	return flags, nil
}

func splitProfiles(list string) []string {
	if list == "" {
		return nil
	}
	var profiles []string
	for _, profile := range strings.Split(list, ",") {
		if profile = strings.TrimSpace(profile); profile != "" {
			profiles = append(profiles, profile)
		}
	}
	return profiles
}

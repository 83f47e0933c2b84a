package model

type Flags struct {
	// AWS access
	Region    string
	RIProfile string
	Profiles  []string

	// Static credential alternative to profiles
	AccountsFile string
	RIAccount    string

	// Run behavior
	Optimize       bool
	PublishMetrics bool

	// Reporting
	UploadReport bool
	ReportBucket string
	CSVDir       string
}

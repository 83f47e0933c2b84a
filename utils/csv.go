package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/elC0mpa/ri-doctor/model"
)

// ReportFileName derives the CSV file name from region and generation time,
// with characters safe for both filesystems and S3 keys.
func ReportFileName(report *model.Report) string {
	timestamp := report.GeneratedAt.Format("2006-01-02_15-04-05")
	return fmt.Sprintf("ri_doctor_report_%s_%s.csv", report.Region, timestamp)
}

// RenderCSVReport renders the reconciliation outcome as a sectioned CSV
// document: instance inventory by account, RI inventory, mismatches, the
// redistribution plan and the kicked off modifications.
func RenderCSVReport(report *model.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	write := func(record ...string) {
		_ = writer.Write(record)
	}
	blank := func() {
		_ = writer.Write(nil)
	}

	write(fmt.Sprintf("Report for region %s at %s", report.Region, report.GeneratedAt.Format("2006-01-02 15:04:05")))

	blank()
	write("Instance Inventory")
	write("Account ID", "Instance Type", "Availability Zone", "Count")
	for _, accountID := range report.InventoryByAccount.AccountIDs() {
		inventory := report.InventoryByAccount[accountID]
		for _, key := range inventory.Keys() {
			write(accountID, key.InstanceType, key.AvailabilityZone, strconv.Itoa(inventory[key]))
		}
	}

	blank()
	write("RI Inventory")
	write("Instance Type", "Availability Zone", "Count")
	for _, key := range report.RIInventory.Keys() {
		write(key.InstanceType, key.AvailabilityZone, strconv.Itoa(report.RIInventory[key]))
	}

	blank()
	write("On-demand/RI inventory mismatches per each availability zone")
	write("Instance Type", "Availability Zone", "Diff")
	for _, key := range report.CleanMismatch.Keys() {
		write(key.InstanceType, key.AvailabilityZone, strconv.Itoa(report.CleanMismatch[key]))
	}

	blank()
	write("RI modification plan")
	write("Instance Type", "Source AZ", "Destination AZ", "Count")
	for _, action := range report.Plan {
		write(action.InstanceType, action.SourceZone, action.DestZone, strconv.Itoa(action.Count))
	}

	blank()
	write("Kicked off RI modifications")
	write("Modification ID")
	for _, id := range report.ModificationIDs {
		write(id)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

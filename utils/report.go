package utils

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/elC0mpa/ri-doctor/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func DrawReportHeader(report *model.Report) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺 RI DOCTOR CHECKUP"))
	fmt.Printf(" Region: %s\n", text.FgBlue.Sprint(report.Region))
	if report.Account != nil {
		fmt.Printf(" RI holding account: %s\n", text.FgBlue.Sprint(report.Account.AccountID))
	}
	fmt.Printf(" Generated at: %s\n", text.FgBlue.Sprint(report.GeneratedAt.Format(time.RFC3339)))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))
}

func DrawAccountInventoryTable(byAccount model.AccountInventory) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Instance Inventory by Account")
	tw.AppendHeader(table.Row{"Account ID", "Instance Type", "Availability Zone", "Count"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})

	for i, accountID := range byAccount.AccountIDs() {
		if i > 0 {
			tw.AppendSeparator()
		}
		inventory := byAccount[accountID]
		if len(inventory) == 0 {
			tw.AppendRow(table.Row{text.FgBlue.Sprint(accountID), "-", "-", 0})
			continue
		}
		for j, key := range inventory.Keys() {
			accountCell := ""
			if j == 0 {
				accountCell = text.FgBlue.Sprint(accountID)
			}
			tw.AppendRow(table.Row{accountCell, key.InstanceType, key.AvailabilityZone, inventory[key]})
		}
	}

	tw.Render()
}

func DrawInventoryTable(title string, inventory model.Inventory) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Instance Type", "Availability Zone", "Count"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	if len(inventory) == 0 {
		tw.AppendRow(table.Row{"-", "-", 0})
	}
	for _, key := range inventory.Keys() {
		tw.AppendRow(table.Row{key.InstanceType, key.AvailabilityZone, inventory[key]})
	}

	tw.Render()
}

func DrawSupportedZones(zones []string) {
	fmt.Printf("\n Supported RI zones: %s\n", text.FgHiCyan.Sprint(strings.Join(zones, ", ")))
}

func DrawProcessingWarning(modifications []model.ModificationStatus) {
	if len(modifications) == 0 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiRed.Sprint(" ======--- WARNING ---======"))
	fmt.Println(text.FgHiRed.Sprint(" Previous modifications are still processing:"))
	for _, modification := range modifications {
		fmt.Printf("   modification id: %s, status: %s\n",
			text.FgHiYellow.Sprint(modification.ID), modification.Status)
	}
	fmt.Println(text.FgHiRed.Sprint(" !!! Optimizations cannot be performed until previous modifications complete"))
	fmt.Println(text.FgHiRed.Sprint(" !!! RI inventory and recommendations may also be incorrect"))
}

func DrawMismatchTable(clean model.Mismatch) {
	if len(clean) == 0 {
		fmt.Printf("\n %s\n", text.FgHiGreen.Sprint("✅ No On-Demand/RI mismatches detected in any availability zone"))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("On-Demand/RI Mismatches per Availability Zone")
	tw.AppendHeader(table.Row{"Instance Type", "Availability Zone", "Diff"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	for _, key := range clean.Keys() {
		diff := clean[key]
		diffCell := text.FgHiYellow.Sprintf("%+d", diff)
		if diff < 0 {
			diffCell = text.FgHiRed.Sprintf("%+d", diff)
		}
		tw.AppendRow(table.Row{key.InstanceType, key.AvailabilityZone, diffCell})
	}

	tw.Render()
}

func DrawRecommendations(recommendations model.Recommendations) {
	if recommendations.Empty() {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💊 RECOMMENDATIONS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(recommendations.UnsupportedZoneInventory) > 0 {
		fmt.Println(text.FgHiYellow.Sprint(" On-demand instances running in zones not supported by RIs."))
		fmt.Println(text.FgHiYellow.Sprint(" Migrate them to supported zones:"))
		DrawInventoryTable("Instances in Unsupported Zones", recommendations.UnsupportedZoneInventory)
	}

	if len(recommendations.Imbalance) > 0 {
		fmt.Println(text.FgHiYellow.Sprint(" On-Demand/RI imbalance detected!"))
		fmt.Println(" Negative numbers mean additional RIs are needed; positive ones mean RIs")
		fmt.Println(" are underutilized and more instances can be launched:")

		instanceTypes := make([]string, 0, len(recommendations.Imbalance))
		for instanceType := range recommendations.Imbalance {
			instanceTypes = append(instanceTypes, instanceType)
		}
		sort.Strings(instanceTypes)

		for _, instanceType := range instanceTypes {
			diff := recommendations.Imbalance[instanceType]
			diffCell := text.FgHiYellow.Sprintf("%+d", diff)
			if diff < 0 {
				diffCell = text.FgHiRed.Sprintf("%+d", diff)
			}
			fmt.Printf("   %s: %s\n", instanceType, diffCell)
		}
	}
}

func DrawPlan(report *model.Report, optimize bool) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🔀 RI REDISTRIBUTION PLAN"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(report.Plan) == 0 {
		fmt.Printf(" %s\n", text.FgHiGreen.Sprint("✅ No RI redistribution is possible"))
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Planned Moves")
	tw.AppendHeader(table.Row{"Instance Type", "Source AZ", "Destination AZ", "Count"})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})
	for _, action := range report.Plan {
		tw.AppendRow(table.Row{action.InstanceType, action.SourceZone, action.DestZone, action.Count})
	}
	tw.Render()

	switch {
	case report.Mode == model.ModeLive:
		fmt.Printf(" %s\n", text.FgHiGreen.Sprint("Optimize option selected, modifications kicked off"))
	case optimize:
		fmt.Printf(" %s\n", text.FgHiYellow.Sprint("Previous modifications still processing, plan executed in DRY-RUN mode only"))
	default:
		fmt.Printf(" %s\n", text.FgHiYellow.Sprint("Optimize flag not set, plan executed in DRY-RUN mode only (re-run with -optimize)"))
	}

	if len(report.ModificationIDs) > 0 {
		fmt.Println(" Initiated modifications:")
		for _, id := range report.ModificationIDs {
			fmt.Printf("   %s\n", text.FgHiCyan.Sprint(id))
		}
	}
}

func DrawUtilization(info *model.UtilizationInfo) {
	if info == nil {
		return
	}

	utilization := text.FgHiGreen.Sprintf("%.2f%%", info.UtilizationPercent)
	if info.UtilizationPercent < 80 {
		utilization = text.FgHiRed.Sprintf("%.2f%%", info.UtilizationPercent)
	} else if info.UtilizationPercent < 95 {
		utilization = text.FgHiYellow.Sprintf("%.2f%%", info.UtilizationPercent)
	}

	fmt.Printf("\n RI utilization %s to %s: %s (%.0f of %.0f purchased hours used)\n",
		info.Start, info.End, utilization, info.UsedHours, info.PurchasedHours)
}

func DrawWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Println()
	for _, warning := range warnings {
		fmt.Printf(" %s %s\n", text.FgHiRed.Sprint("⚠"), text.FgYellow.Sprint(warning))
	}
}

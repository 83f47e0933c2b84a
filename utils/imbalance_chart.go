package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorDeficit = "#d73027"
	ColorSurplus = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawImbalanceChart renders the per-type surplus/deficit as a bar chart.
// Bars show magnitude; the sign lives in the label and the color, since the
// chart cannot draw below the axis.
func DrawImbalanceChart(imbalance map[string]int) {
	if len(imbalance) == 0 {
		return
	}

	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊 RI IMBALANCE BY INSTANCE TYPE"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	instanceTypes := make([]string, 0, len(imbalance))
	for instanceType := range imbalance {
		instanceTypes = append(instanceTypes, instanceType)
	}
	sort.Strings(instanceTypes)

	bc := barchart.New(80, 15)

	for _, instanceType := range instanceTypes {
		diff := imbalance[instanceType]
		color := ColorSurplus
		magnitude := diff
		if diff < 0 {
			color = ColorDeficit
			magnitude = -diff
		}

		data := barchart.BarData{
			Label: fmt.Sprintf("%s (%+d)", instanceType, diff),
			Values: []barchart.BarValue{
				{
					Value: float64(magnitude),
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
				},
			},
		}

		bc.Push(data)
	}

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)
}

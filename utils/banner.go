package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var reportSpinner *spinner.Spinner

func DrawBanner() {
	banner := figure.NewColorFigure("ri-doctor", "", "cyan", true)
	banner.Print()
}

func StartSpinner() {
	reportSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	reportSpinner.Suffix = " Reconciling reserved capacity..."
	_ = reportSpinner.Color("cyan")
	reportSpinner.Start()
}

func StopSpinner() {
	if reportSpinner != nil {
		reportSpinner.Stop()
	}
}

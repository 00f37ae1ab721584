package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/seamcarve/seamcarve"
	"github.com/seamcarve/seamcarve/utils"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┌─┐┌┬┐┌─┐┌─┐┬─┐┬  ┬┌─┐
└─┐├┤ ├─┤│││├─┘├─┤├┬┘└┐┌┘├┤
└─┘└─┘┴ ┴┴ ┴└─┘┴ ┴┴└─ └┘ └─┘

Content aware image reduction by seam carving.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// progressWidth is the number of characters of the progress bar.
const progressWidth = 50

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pipeName, "Source image, directory or `-` for stdin")
	destination = flag.String("out", "", "Destination (defaults to <name>_resized<ext>, stdout for a stdin source)")
	newWidth    = flag.Int("width", 0, "New width (0 keeps the source width)")
	newHeight   = flag.Int("height", 0, "New height (0 keeps the source height)")
	percentage  = flag.Bool("perc", false, "Interpret width and height as a percentage of the source")
	energyPath  = flag.String("energy", "", "Save the energy heat map of the source image")
	heatLow     = flag.String("heat-low", seamcarve.HeatmapLow, "Heat map color of the lowest energy")
	heatHigh    = flag.String("heat-high", seamcarve.HeatmapHigh, "Heat map color of the highest energy")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")
	progress    = flag.Bool("progress", true, "Show the progress bar")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *newWidth == 0 && *newHeight == 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a width or height for image rescaling!", utils.ErrorMessage))
	}

	proc := &seamcarve.Processor{
		NewWidth:    *newWidth,
		NewHeight:   *newHeight,
		Percentage:  *percentage,
		EnergyPath:  *energyPath,
		HeatmapLow:  *heatLow,
		HeatmapHigh: *heatHigh,
	}

	op := &seamcarve.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
	}

	if *progress && term.IsTerminal(int(os.Stderr.Fd())) {
		bar := utils.NewProgressBar(os.Stderr, progressWidth, true)
		proc.Progress = bar.Update
		op.Interrupt = bar.RestoreCursor
	}

	fmt.Fprintf(os.Stderr, "%s %s\n",
		utils.DecorateText("✂ SEAMCARVE", utils.StatusMessage),
		utils.DecorateText("⇢ carving image (be patient, it may take a while)...", utils.DefaultMessage),
	)

	if err := proc.Execute(op); err != nil {
		log.Fatalf("%s %s",
			utils.DecorateText("\nError resizing the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}

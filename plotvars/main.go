package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"

	"github.com/rdx-hep/rdxplot"
)

var (
	treeName = flag.String("t", "", "tree name in the input ntuples")
	varName  = flag.String("var", "q2", "branch name of the variable to plot")
	binSpec  = flag.String("range", "(80,-3,12)", "number of bins and x range as \"(bins,min,max)\"")
	title    = flag.String("title", "", "plot title")
	output   = flag.String("output", "out.png", "output file")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <ntuple-input-files>...

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 || *treeName == "" {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	rng, err := rdxplot.ParseBinRange(*binSpec)
	if err != nil {
		log.Fatal(err)
	}

	p := hplot.New()
	p.Title.Text = *title
	p.X.Label.Text = *varName
	p.X.Tick.Marker = rdxplot.PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = rdxplot.PreciseTicks{NSuggestedTicks: 5}

	for i, filename := range flag.Args() {
		hist := makeHist(filename, *treeName, *varName, rng)

		lineColor := color.RGBA{A: 255}
		switch i {
		case 1:
			lineColor = color.RGBA{G: 255, A: 255}
		case 2:
			lineColor = color.RGBA{B: 255, A: 255}
		case 3:
			lineColor = color.RGBA{R: 255, B: 127, G: 127, A: 255}
		}

		h := hplot.NewH1D(hist)
		h.FillColor = nil
		h.LineStyle.Color = lineColor
		if flag.NArg() == 1 {
			h.Infos.Style = hplot.HInfoSummary
		}

		p.Add(h)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, *output); err != nil {
		log.Fatal(err)
	}
}

func makeHist(filename, treeName, varName string, rng rdxplot.BinRange) *hbook.H1D {
	hist := hbook.NewH1D(rng.Bins, rng.Min, rng.Max)

	tree, closeFile, err := rdxplot.OpenTree(filename, treeName)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	err = rdxplot.ScanVar(tree, varName, 0, 0, func(_ rdxplot.EventID, v float64) error {
		hist.Fill(v, 1)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	return hist
}

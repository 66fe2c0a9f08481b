package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rdx-hep/rdxplot"
)

var (
	outputPath   string
	dataNtuple   string
	weightNtuple string
	dataTree     string
	weightTree   string
	ffWeight     string
	firstEntry   int64
	maxEntries   int64

	vars      = rdxplot.StringArrayFlags{Array: []string{"q2", "mm2", "el"}}
	binRanges = rdxplot.BinRangeArrayFlags{Array: []rdxplot.BinRange{
		{Bins: 80, Min: -3, Max: 12},
		{Bins: 80, Min: -3, Max: 12},
		{Bins: 80, Min: -0.5, Max: 3.5},
	}}
	upYMin   = rdxplot.FloatArrayFlags{Array: []float64{0, 0, 0}}
	upYMax   = rdxplot.FloatArrayFlags{Array: []float64{80, 180, 200}}
	downYMin = rdxplot.FloatArrayFlags{Array: []float64{0.5, 0.5, 0.5}}
	downYMax = rdxplot.FloatArrayFlags{Array: []float64{1.2, 1.2, 1.2}}
)

func init() {
	flag.StringVar(&outputPath, "o", "./gen", "output path for plots")
	flag.StringVar(&outputPath, "output-path", "./gen", "output path for plots")
	flag.StringVar(&dataNtuple, "d", "", "path to ntuple that contains fit variables")
	flag.StringVar(&dataNtuple, "data-ntuple", "", "path to ntuple that contains fit variables")
	flag.StringVar(&weightNtuple, "w", "", "path to ntuple that contains FF weights")
	flag.StringVar(&weightNtuple, "weight-ntuple", "", "path to ntuple that contains FF weights")
	flag.StringVar(&dataTree, "t", "", "tree name in fit-variable ntuple")
	flag.StringVar(&dataTree, "data-tree", "", "tree name in fit-variable ntuple")
	flag.StringVar(&weightTree, "T", "", "tree name in weight ntuple")
	flag.StringVar(&weightTree, "weight-tree", "", "tree name in weight ntuple")
	flag.StringVar(&ffWeight, "ff-weight", "w_ff", "branch name of the FF weight")
	flag.Int64Var(&firstEntry, "first-entry", 20000, "first data-tree entry to histogram")
	flag.Int64Var(&maxEntries, "max-entries", 50000, "maximum number of entries to histogram (0 for all)")
	flag.Var(&vars, "vars", "variable to plot (repeatable)")
	flag.Var(&binRanges, "bin-ranges", "number of bins and x range as \"(bins,min,max)\" (repeatable)")
	flag.Var(&upYMin, "up-y-min", "up plot min y (repeatable)")
	flag.Var(&upYMax, "up-y-max", "up plot max y (repeatable)")
	flag.Var(&downYMin, "down-y-min", "down plot min y (repeatable)")
	flag.Var(&downYMax, "down-y-max", "down plot max y (repeatable)")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options]

Plot fit variables of R(D(*)) with and without FF reweighting.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if dataNtuple == "" || weightNtuple == "" || dataTree == "" || weightTree == "" {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	wTree, wClose, err := rdxplot.OpenTree(weightNtuple, weightTree)
	if err != nil {
		log.Fatal(err)
	}
	idx, err := rdxplot.BuildWeightIndex(wTree, ffWeight)
	if err != nil {
		log.Fatal(err)
	}
	wClose()

	dTree, dClose, err := rdxplot.OpenTree(dataNtuple, dataTree)
	if err != nil {
		log.Fatal(err)
	}
	defer dClose()

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		log.Fatal(err)
	}

	// Per-variable options pair up zip-wise: the shortest list caps
	// the number of plots.
	n := len(vars.Array)
	for _, l := range []int{
		len(binRanges.Array),
		len(upYMin.Array), len(upYMax.Array),
		len(downYMin.Array), len(downYMax.Array),
	} {
		if l < n {
			n = l
		}
	}

	for i := 0; i < n; i++ {
		name := vars.Array[i]

		raw, weighted, err := rdxplot.FillPair(dTree, name, idx, binRanges.Array[i], firstEntry, maxEntries)
		if err != nil {
			log.Fatal(err)
		}

		cfg := rdxplot.RatioConfig{
			XLabel:   name,
			UpYMin:   upYMin.Array[i],
			UpYMax:   upYMax.Array[i],
			DownYMin: downYMin.Array[i],
			DownYMax: downYMax.Array[i],
		}
		out := filepath.Join(outputPath, name+".png")
		if err := rdxplot.WriteRatioPlot(out, raw, weighted, cfg); err != nil {
			log.Fatal(err)
		}
	}
}

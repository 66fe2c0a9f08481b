package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/profile"
	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/rdx-hep/rdxplot"
)

var (
	treeName    = flag.String("t", "mc_dst_tau_aux", "tree name in the truth ntuple")
	outTreeName = flag.String("T", "mc_dst_tau_fit_vars", "tree name in the output ntuple")
	cpuProfile  = flag.Bool("cpuprofile", false, "profile CPU usage")
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <truth-ntuple> <output-ntuple>

Compute the true fit variables (q2, mm2, el) of B0 -> D* Tau Nu from
decay-truth four-momenta and write them to a new ntuple keyed by
(runNumber, eventNumber).

options:
`,
	)
	flag.PrintDefaults()
}

// truthRow mirrors the MC-truth branches, momenta in MeV.
type truthRow struct {
	Run   uint32 `groot:"runNumber"`
	Event uint64 `groot:"eventNumber"`

	BPE float64 `groot:"b_true_pe"`
	BPX float64 `groot:"b_true_px"`
	BPY float64 `groot:"b_true_py"`
	BPZ float64 `groot:"b_true_pz"`

	DstPE float64 `groot:"dst_true_pe"`
	DstPX float64 `groot:"dst_true_px"`
	DstPY float64 `groot:"dst_true_py"`
	DstPZ float64 `groot:"dst_true_pz"`

	MuPE float64 `groot:"mu_true_pe"`
	MuPX float64 `groot:"mu_true_px"`
	MuPY float64 `groot:"mu_true_py"`
	MuPZ float64 `groot:"mu_true_pz"`

	NuTauPE float64 `groot:"nu_tau_true_pe"`
	NuTauPX float64 `groot:"nu_tau_true_px"`
	NuTauPY float64 `groot:"nu_tau_true_py"`
	NuTauPZ float64 `groot:"nu_tau_true_pz"`

	ANuTauPE float64 `groot:"anu_tau_true_pe"`
	ANuTauPX float64 `groot:"anu_tau_true_px"`
	ANuTauPY float64 `groot:"anu_tau_true_py"`
	ANuTauPZ float64 `groot:"anu_tau_true_pz"`

	ANuMuPE float64 `groot:"anu_mu_true_pe"`
	ANuMuPX float64 `groot:"anu_mu_true_px"`
	ANuMuPY float64 `groot:"anu_mu_true_py"`
	ANuMuPZ float64 `groot:"anu_mu_true_pz"`
}

type fitRow struct {
	Run   uint32  `groot:"runNumber"`
	Event uint64  `groot:"eventNumber"`
	Q2    float64 `groot:"q2_true"`
	MM2   float64 `groot:"mm2_true"`
	El    float64 `groot:"el_true"`
}

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 2 {
		printUsage()
		log.Fatal("Invalid arguments")
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	tree, closeFile, err := rdxplot.OpenTree(flag.Arg(0), *treeName)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	out, err := groot.Create(flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	var (
		in  truthRow
		fit fitRow
	)

	w, err := rtree.NewWriter(out, *outTreeName, rtree.WriteVarsFromStruct(&fit))
	if err != nil {
		log.Fatal(err)
	}

	r, err := rtree.NewReader(tree, rtree.ReadVarsFromStruct(&in))
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	err = r.Read(func(ctx rtree.RCtx) error {
		b := fmom.NewPxPyPzE(in.BPX, in.BPY, in.BPZ, in.BPE)
		dst := fmom.NewPxPyPzE(in.DstPX, in.DstPY, in.DstPZ, in.DstPE)
		mu := fmom.NewPxPyPzE(in.MuPX, in.MuPY, in.MuPZ, in.MuPE)
		nuTau := fmom.NewPxPyPzE(in.NuTauPX, in.NuTauPY, in.NuTauPZ, in.NuTauPE)
		anuTau := fmom.NewPxPyPzE(in.ANuTauPX, in.ANuTauPY, in.ANuTauPZ, in.ANuTauPE)
		anuMu := fmom.NewPxPyPzE(in.ANuMuPX, in.ANuMuPY, in.ANuMuPZ, in.ANuMuPE)

		fit.Run = in.Run
		fit.Event = in.Event
		fit.Q2 = rdxplot.Q2True(b, dst)
		fit.MM2 = rdxplot.MM2True(nuTau, anuTau, anuMu)
		fit.El = rdxplot.ElTrue(b, mu)

		_, err := w.Write()
		return err
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := w.Close(); err != nil {
		log.Fatal(err)
	}
}

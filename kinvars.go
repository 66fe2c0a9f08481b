package rdxplot

import (
	"go-hep.org/x/hep/fmom"
	"gonum.org/v1/gonum/spatial/r3"
)

// True fit variables of the R(D(*)) analysis, computed from MC-truth
// four-momenta in MeV. Results are in GeV (energies) and GeV^2
// (invariant masses squared).

// Q2True is the squared four-momentum transfer (p_B - p_D*)^2.
func Q2True(b, dst fmom.PxPyPzE) float64 {
	q := fmom.NewPxPyPzE(
		b.Px()-dst.Px(),
		b.Py()-dst.Py(),
		b.Pz()-dst.Pz(),
		b.E()-dst.E(),
	)
	return q.M2() / 1e6
}

// ElTrue is the lepton energy in the B rest frame.
func ElTrue(b, mu fmom.PxPyPzE) float64 {
	beta := fmom.BoostOf(&b)
	rest := fmom.Boost(&mu, r3.Scale(-1, beta))
	return rest.E() / 1e3
}

// MM2True is the missing-mass squared of the neutrino system.
func MM2True(nus ...fmom.PxPyPzE) float64 {
	var tot fmom.PxPyPzE
	for i := range nus {
		tot = fmom.NewPxPyPzE(
			tot.Px()+nus[i].Px(),
			tot.Py()+nus[i].Py(),
			tot.Pz()+nus[i].Pz(),
			tot.E()+nus[i].E(),
		)
	}
	return tot.M2() / 1e6
}

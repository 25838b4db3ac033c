package decay

import (
	"math"
	"math/cmplx"
)

// numeratorAFB is the angular-asymmetric part of the double
// differential width, integrated over the forward minus the backward
// hemisphere.
func (d *PseudoscalarLeptonNeutrino) numeratorAFB(q2 float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	return -4.0 * a.nf * a.p * (real(a.h0*cmplx.Conj(a.htS))*(1.0-a.v) -
		4.0*math.Sqrt(1.0-a.v)*real(a.hT*cmplx.Conj(a.htS))), nil
}

// DifferentialAFB is the leptonic forward-backward asymmetry at fixed
// q2.
func (d *PseudoscalarLeptonNeutrino) DifferentialAFB(q2 float64) (float64, error) {
	num, err := d.numeratorAFB(q2)
	if err != nil {
		return 0, err
	}

	denom, err := d.NormalizedDifferentialWidth(q2)
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// IntegratedAFB is the ratio of the separately integrated numerator
// and width.
func (d *PseudoscalarLeptonNeutrino) IntegratedAFB(q2Min, q2Max float64) (float64, error) {
	num, err := d.integrate(d.numeratorAFB, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	denom, err := d.integrate(d.NormalizedDifferentialWidth, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// numeratorFlatTerm follows DDS2014 eq. 12 with the flat-term
// definition of BHP2007 eq. 1.2.
func (d *PseudoscalarLeptonNeutrino) numeratorFlatTerm(q2 float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	return a.nf * a.p * ((norm(a.h0)+norm(a.htS))*(1.0-a.v) +
		16.0*norm(a.hT) -
		8.0*math.Sqrt(1.0-a.v)*real(a.hT*cmplx.Conj(a.h0))), nil
}

// DifferentialFlatTerm is the flat term F_H(q2) of the angular
// distribution.
func (d *PseudoscalarLeptonNeutrino) DifferentialFlatTerm(q2 float64) (float64, error) {
	num, err := d.numeratorFlatTerm(q2)
	if err != nil {
		return 0, err
	}

	denom, err := d.NormalizedDifferentialWidth(q2)
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// IntegratedFlatTerm is the ratio of the separately integrated
// numerator and width.
func (d *PseudoscalarLeptonNeutrino) IntegratedFlatTerm(q2Min, q2Max float64) (float64, error) {
	num, err := d.integrate(d.numeratorFlatTerm, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	denom, err := d.integrate(d.NormalizedDifferentialWidth, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// numeratorLeptonPolarization is dGamma(+) - dGamma(-) of STTW2013
// eqs. 49a-49b.
func (d *PseudoscalarLeptonNeutrino) numeratorLeptonPolarization(q2 float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	dGPlus := (norm(a.h0)+3.0*norm(a.ht))*(1.0-a.v)/2.0 +
		3.0/2.0*norm(a.hS) +
		8.0*norm(a.hT) -
		math.Sqrt(1.0-a.v)*real(3.0*a.ht*cmplx.Conj(a.hS)+4.0*a.h0*cmplx.Conj(a.hT))

	dGMinus := norm(a.h0) +
		16.0*norm(a.hT)*(1.0-a.v) -
		8.0*math.Sqrt(1.0-a.v)*real(a.h0*cmplx.Conj(a.hT))

	return 8.0 / 3.0 * a.nf * a.p * (dGPlus - dGMinus), nil
}

// DifferentialLeptonPolarization is the longitudinal polarization of
// the charged lepton at fixed q2.
func (d *PseudoscalarLeptonNeutrino) DifferentialLeptonPolarization(q2 float64) (float64, error) {
	num, err := d.numeratorLeptonPolarization(q2)
	if err != nil {
		return 0, err
	}

	denom, err := d.NormalizedDifferentialWidth(q2)
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// IntegratedLeptonPolarization is the ratio of the separately
// integrated numerator and width.
func (d *PseudoscalarLeptonNeutrino) IntegratedLeptonPolarization(q2Min, q2Max float64) (float64, error) {
	num, err := d.integrate(d.numeratorLeptonPolarization, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	denom, err := d.integrate(d.NormalizedDifferentialWidth, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// PDFQ2 is the q2 probability density of the decay, normalized over
// the physical phase space.
func (d *PseudoscalarLeptonNeutrino) PDFQ2(q2 float64) (float64, error) {
	num, err := d.NormalizedDifferentialBranchingRatio(q2)
	if err != nil {
		return 0, err
	}

	denom, err := d.integrate(d.NormalizedDifferentialBranchingRatio, d.Q2Min(), d.Q2Max())
	if err != nil {
		return 0, err
	}

	return num / denom, nil
}

// PDFW is the probability density in the recoil variable
// w = (m_D^2 + m_P^2 - q2) / (2 m_D m_P).
func (d *PseudoscalarLeptonNeutrino) PDFW(w float64) (float64, error) {
	mD := d.mD.Value()
	mP := d.mP.Value()
	q2 := mD*mD + mP*mP - 2.0*mD*mP*w

	pdf, err := d.PDFQ2(q2)
	if err != nil {
		return 0, err
	}

	return 2.0 * mD * mP * pdf, nil
}

// IntegratedPDFQ2 is the phase-space fraction in [q2Min, q2Max],
// averaged over the bin width.
func (d *PseudoscalarLeptonNeutrino) IntegratedPDFQ2(q2Min, q2Max float64) (float64, error) {
	num, err := d.integrate(d.NormalizedDifferentialBranchingRatio, q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	denom, err := d.integrate(d.NormalizedDifferentialBranchingRatio, d.Q2Min(), d.Q2Max())
	if err != nil {
		return 0, err
	}

	return num / denom / (q2Max - q2Min), nil
}

// IntegratedPDFW is the bin-averaged density in the recoil variable.
func (d *PseudoscalarLeptonNeutrino) IntegratedPDFW(wMin, wMax float64) (float64, error) {
	mD := d.mD.Value()
	mP := d.mP.Value()
	q2Max := mD*mD + mP*mP - 2.0*mD*mP*wMin
	q2Min := mD*mD + mP*mP - 2.0*mD*mP*wMax

	pdf, err := d.IntegratedPDFQ2(q2Min, q2Max)
	if err != nil {
		return 0, err
	}

	return pdf * (q2Max - q2Min) / (wMax - wMin), nil
}

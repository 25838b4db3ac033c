package dtopi

import "fmt"

// The q2-dependent rescaling of the Borel parameter keeps the mean
// momentum fraction <u> of the leading-order correlator at its q2 = 0
// value. Each factor is a double ratio of first-moment and norm
// integrals of the twist-2 plus twist-3 integrands.

func (ff *FormFactor) noRescaleFactor(float64) (float64, error) {
	return 1.0, nil
}

// momentRatio integrates f and u*f over (u0Zero, 1) at q2 = 0 and over
// (u0Q2, 1) at q2, and returns <u>(0) / <u>(q2).
func (ff *FormFactor) momentRatio(fZero, fQ2 func(u float64) float64, u0Zero, u0Q2 float64) (float64, error) {
	numeratorZero, err := ff.integrator.Integrate(func(u float64) float64 { return u * fZero(u) }, u0Zero, 1.0)
	if err != nil {
		return 0, fmt.Errorf("borel rescale factor: %w", err)
	}

	numeratorQ2, err := ff.integrator.Integrate(func(u float64) float64 { return u * fQ2(u) }, u0Q2, 1.0)
	if err != nil {
		return 0, fmt.Errorf("borel rescale factor: %w", err)
	}

	denominatorZero, err := ff.integrator.Integrate(fZero, u0Zero, 1.0)
	if err != nil {
		return 0, fmt.Errorf("borel rescale factor: %w", err)
	}

	denominatorQ2, err := ff.integrator.Integrate(fQ2, u0Q2, 1.0)
	if err != nil {
		return 0, fmt.Errorf("borel rescale factor: %w", err)
	}

	return numeratorZero / numeratorQ2 / denominatorZero * denominatorQ2, nil
}

func (ff *FormFactor) rescaleFactorP(q2 float64) (float64, error) {
	k := ff.kin()
	m2 := ff.M2()

	fZero := func(u float64) float64 {
		return ff.fLoTw2Integrand(k, u, 0.0, m2, 0.0) + ff.fLoTw3Integrand(k, u, 0.0, m2, 0.0)
	}
	fQ2 := func(u float64) float64 {
		return ff.fLoTw2Integrand(k, u, q2, m2, 0.0) + ff.fLoTw3Integrand(k, u, q2, m2, 0.0)
	}

	u0Zero := u0(k.mc2, 0.0, ff.s0D(q2))
	u0Q2 := u0(k.mc2, q2, ff.s0D(q2))

	return ff.momentRatio(fZero, fQ2, u0Zero, u0Q2)
}

func (ff *FormFactor) rescaleFactor0(q2 float64) (float64, error) {
	k := ff.kin()
	m2 := ff.M2()
	mD := ff.mD.Value()
	mD2 := mD * mD

	fZero := func(u float64) float64 {
		return ff.fLoTw2Integrand(k, u, 0.0, m2, 0.0) + ff.fLoTw3Integrand(k, u, 0.0, m2, 0.0)
	}
	fQ2 := func(u float64) float64 {
		f := ff.fLoTw2Integrand(k, u, q2, m2, 0.0) + ff.fLoTw3Integrand(k, u, q2, m2, 0.0)
		fTil := ff.fTilLoTw3Integrand(k, u, q2, m2, 0.0)

		return 2.0*q2/(mD2-k.mpi2)*fTil + (1.0-q2/(mD2-k.mpi))*f
	}

	u0Zero := u0(k.mc2, 0.0, ff.s0TilD(q2))
	u0Q2 := u0(k.mc2, q2, ff.s0TilD(q2))

	return ff.momentRatio(fZero, fQ2, u0Zero, u0Q2)
}

func (ff *FormFactor) rescaleFactorT(q2 float64) (float64, error) {
	k := ff.kin()
	m2 := ff.M2()

	fZero := func(u float64) float64 {
		return ff.fTLoTw2Integrand(k, u, 0.0, m2, 0.0) + ff.fTLoTw3Integrand(k, u, 0.0, m2, 0.0)
	}
	fQ2 := func(u float64) float64 {
		return ff.fTLoTw2Integrand(k, u, q2, m2, 0.0) + ff.fTLoTw3Integrand(k, u, q2, m2, 0.0)
	}

	u0Zero := u0(k.mc2, 0.0, ff.s0TD(q2))
	u0Q2 := u0(k.mc2, q2, ff.s0TD(q2))

	return ff.momentRatio(fZero, fQ2, u0Zero, u0Q2)
}

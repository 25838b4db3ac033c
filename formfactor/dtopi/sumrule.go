package dtopi

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hep/internal/specfun"
)

// rho1 is the O(alpha_s) spectral density of the two-point correlator
// of two pseudoscalar heavy-light currents.
func rho1(s, mc, mu float64) float64 {
	mc2 := mc * mc
	x := mc2 / s
	lnx := math.Log(x)
	ln1mx := math.Log(1.0 - x)
	reLi2x := specfun.Dilog(x)
	lnmumc := math.Log(mu / mc)

	return s / 2.0 * (1.0 - x) * ((1.0-x)*(4.0*reLi2x+2.0*lnx*ln1mx-(5.0-2.0*x)*ln1mx) +
		(1.0-2.0*x)*(3.0-x)*lnx + 3.0*(1.0-3.0*x)*2.0*lnmumc + (17.0-33.0*x)/2.0)
}

// delta1 is the O(alpha_s) correction to the quark-condensate term of
// the Borel-transformed two-point correlator.
func delta1(mc, mu, mPrime2 float64) float64 {
	mc2 := mc * mc
	mu2 := mu * mu
	gamma := specfun.E1(mc2 / mPrime2)

	return -3.0 / 2.0 * (gamma*math.Exp(mc2/mPrime2) - 1.0 -
		(1.0-mc2/mPrime2)*(math.Log(mu2/mc2)+4.0/3.0))
}

// delta1M2Deriv is the derivative of the quark-condensate correction
// with respect to -1/M'^2.
func delta1M2Deriv(mc, mu, mPrime2 float64) float64 {
	mc2 := mc * mc
	mu2 := mu * mu
	gamma := specfun.E1(mc2 / mPrime2)

	return -3.0 / 2.0 * (mPrime2 - mc2*gamma*math.Exp(mc2/mPrime2) -
		mc2*(math.Log(mu2/mc2)+4.0/3.0))
}

// DecayConstant returns the D-meson decay constant f_D from the
// two-point sum rule at O(alpha_s).
func (ff *FormFactor) DecayConstant() (float64, error) {
	const eps = 1.0e-10

	mD := ff.mD.Value()
	mD2 := mD * mD
	mD4 := mD2 * mD2
	mu := ff.mu.Value()
	mc := ff.model.MCMSbar(mu)
	mc2 := mc * mc
	mc4 := mc2 * mc2
	mPrime2 := ff.mPrime2.Value()
	mPrime4 := mPrime2 * mPrime2
	fpi := ff.fPi.Value()

	condQQMu := -fpi * fpi * ff.pion.MuPi(mu) / 2.0
	condQQ1 := -fpi * fpi * ff.pion.MuPi(1.0) / 2.0

	alphaSMu := ff.model.AlphaS(mu)
	alphaS1 := ff.model.AlphaS(1.0)

	integrand := func(s float64) float64 {
		return math.Exp(-s/mPrime2) * ((s-mc2)*(s-mc2)/s + 4.0*alphaSMu/(3.0*math.Pi)*rho1(s, mc, mu))
	}

	integral, err := ff.integrator.Integrate(integrand, mc2+eps, ff.sPrime0B.Value())
	if err != nil {
		return 0, fmt.Errorf("two-point sum rule: %w", err)
	}

	result := math.Exp(mD2/mPrime2) / mD4 * (3.0*mc2/(8.0*math.Pi*math.Pi)*integral +
		mc2*math.Exp(-mc2/mPrime2)*(-mc*condQQMu*(1.0+4.0*alphaSMu/(3.0*math.Pi)*delta1(mc, mu, mPrime2))-
			mc*condQQ1*ff.m02.Value()/(2.0*mPrime2)*(1.0-mc2/(2.0*mPrime2))+
			ff.condGG.Value()/12.0-
			16.0*math.Pi*alphaS1*condQQ1*condQQ1*ff.rVac.Value()/(27.0*mPrime2)*(1.0-mc2/(4.0*mPrime2)-mc4/(12.0*mPrime4))))

	return math.Sqrt(result), nil
}

// SVZMass returns the D mass reproduced by the two-point sum rule,
// from the ratio of the Borel-derivative and plain correlators.
func (ff *FormFactor) SVZMass() (float64, error) {
	const eps = 1.0e-10

	mu := ff.mu.Value()
	mc := ff.model.MCMSbar(mu)
	mc2 := mc * mc
	mc4 := mc2 * mc2
	mPrime2 := ff.mPrime2.Value()
	mPrime4 := mPrime2 * mPrime2
	fpi := ff.fPi.Value()

	condQQMu := -fpi * fpi * ff.pion.MuPi(mu) / 2.0
	condQQ1 := -fpi * fpi * ff.pion.MuPi(1.0) / 2.0

	alphaSMu := ff.model.AlphaS(mu)
	alphaS1 := ff.model.AlphaS(1.0)

	integrandNumerator := func(s float64) float64 {
		return math.Exp(-s/mPrime2) * ((s-mc2)*(s-mc2) + 4.0*s*alphaSMu/(3.0*math.Pi)*rho1(s, mc, mu))
	}

	integralNumerator, err := ff.integrator.Integrate(integrandNumerator, mc2+eps, ff.sPrime0B.Value())
	if err != nil {
		return 0, fmt.Errorf("two-point sum rule: %w", err)
	}

	integrandDenominator := func(s float64) float64 {
		return math.Exp(-s/mPrime2) * ((s-mc2)*(s-mc2)/s + 4.0*alphaSMu/(3.0*math.Pi)*rho1(s, mc, mu))
	}

	integralDenominator, err := ff.integrator.Integrate(integrandDenominator, mc2+eps, ff.sPrime0B.Value())
	if err != nil {
		return 0, fmt.Errorf("two-point sum rule: %w", err)
	}

	m02 := ff.m02.Value()

	numerator := 3.0*mc2/(8.0*math.Pi*math.Pi)*integralNumerator +
		mc4*math.Exp(-mc2/mPrime2)*(-mc*condQQMu*(1.0+4.0*alphaSMu/(3.0*math.Pi)*delta1(mc, mu, mPrime2))-
			mc*condQQ1*m02/(2.0*mPrime2)*(1.0-mc2/(2.0*mPrime2))+
			ff.condGG.Value()/12.0-
			16.0*math.Pi*alphaS1*condQQ1*condQQ1/(27.0*mPrime2)*(1.0-mc2/(4.0*mPrime2)-mc4/(12.0*mPrime4))) +
		mc2*math.Exp(-mc2/mPrime2)*(-mc*condQQMu*4.0*alphaSMu/(3.0*math.Pi)*delta1(mc, mu, mPrime2)-
			mc*condQQ1*m02/(2.0*mPrime2)*(mc2-mPrime2)+
			16.0*math.Pi*alphaS1*condQQ1*condQQ1/(27.0*4.0*mPrime4)*(4.0*mPrime4-2.0*mPrime2*mc2-mc4))

	denominator := 3.0*mc2/(8.0*math.Pi*math.Pi)*integralDenominator +
		mc2*math.Exp(-mc2/mPrime2)*(-mc*condQQMu*(1.0+4.0*alphaSMu/(3.0*math.Pi)*delta1(mc, mu, mPrime2))-
			mc*condQQ1*m02/(2.0*mPrime2)*(1.0-mc2/(2.0*mPrime2))+
			ff.condGG.Value()/12.0-
			16.0*math.Pi*alphaS1*condQQ1*condQQ1/(27.0*mPrime2)*(1.0-mc2/(4.0*mPrime2)-mc4/(12.0*mPrime4)))

	return math.Sqrt(numerator / denominator), nil
}

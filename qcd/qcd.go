// Package qcd provides the Standard-Model inputs consumed by the
// sum-rule and decay packages: the running strong coupling, running
// MSbar quark masses and CKM matrix elements. The coupling and masses
// are evolved by fourth-order Runge-Kutta integration of the
// renormalization-group equations with flavor-threshold matching at
// the charm and bottom scales.
package qcd

import (
	"math"

	"github.com/cwbudde/algo-hep/params"
)

const (
	zeta3 = 1.2020569031595943
	zeta4 = 1.0823232337111382
	zeta5 = 1.0369277551433699

	// rkStep is the Runge-Kutta step in t = ln(mu^2).
	rkStep = 0.01
)

// Model evaluates running QCD quantities from live parameter values.
type Model struct {
	alphaSMZ params.Handle
	mZ       params.Handle
	mCharm   params.Handle // m_c(m_c)
	mBottom  params.Handle // m_b(m_b)
	mUp      params.Handle // m_u(2 GeV)
	mDown    params.Handle // m_d(2 GeV)
	mStrange params.Handle // m_s(2 GeV)
	vcd      params.Handle
	vcs      params.Handle
	gFermi   params.Handle
}

// NewModel binds a model to the given parameter store.
func NewModel(store *params.Store) (*Model, error) {
	m := &Model{}

	for _, b := range []struct {
		dst  *params.Handle
		name string
	}{
		{&m.alphaSMZ, "QCD::alpha_s(MZ)"},
		{&m.mZ, "mass::Z"},
		{&m.mCharm, "mass::c(MSbar)"},
		{&m.mBottom, "mass::b(MSbar)"},
		{&m.mUp, "mass::u(2GeV)"},
		{&m.mDown, "mass::d(2GeV)"},
		{&m.mStrange, "mass::s(2GeV)"},
		{&m.vcd, "CKM::|V_cd|"},
		{&m.vcs, "CKM::|V_cs|"},
		{&m.gFermi, "WET::G_Fermi"},
	} {
		h, err := store.Handle(b.name)
		if err != nil {
			return nil, err
		}

		*b.dst = h
	}

	return m, nil
}

// beta returns the four-loop MSbar beta-function coefficients for nf
// active flavors, in the convention da/dt = -a^2 (b0 + b1 a + ...)
// with a = alpha_s / (4 pi) and t = ln(mu^2).
func beta(nf float64) (b0, b1, b2, b3 float64) {
	b0 = 11.0 - 2.0*nf/3.0
	b1 = 102.0 - 38.0*nf/3.0
	b2 = 2857.0/2.0 - 5033.0*nf/18.0 + 325.0*nf*nf/54.0
	b3 = 149753.0/6.0 + 3564.0*zeta3 -
		(1078361.0/162.0+6508.0*zeta3/27.0)*nf +
		(50065.0/162.0+6472.0*zeta3/81.0)*nf*nf +
		1093.0*nf*nf*nf/729.0

	return b0, b1, b2, b3
}

// gammaM returns the four-loop MSbar mass anomalous-dimension
// coefficients for nf active flavors, in the convention
// d(ln m)/dt = -(g0 a + g1 a^2 + ...).
func gammaM(nf float64) (g0, g1, g2, g3 float64) {
	g0 = 4.0
	g1 = 202.0/3.0 - 20.0*nf/9.0
	g2 = 1249.0 - (2216.0/27.0+160.0*zeta3/3.0)*nf - 140.0*nf*nf/81.0
	g3 = 4603055.0/162.0 + 135680.0*zeta3/27.0 - 8800.0*zeta5 -
		(91723.0/27.0+34192.0*zeta3/9.0-880.0*zeta4-18400.0*zeta5/9.0)*nf +
		(5242.0/243.0+800.0*zeta3/9.0-160.0*zeta4/3.0)*nf*nf -
		(332.0/243.0-64.0*zeta3/27.0)*nf*nf*nf

	return g0, g1, g2, g3
}

// nfAt returns the number of active flavors at scale mu.
func (m *Model) nfAt(mu float64) float64 {
	switch {
	case mu >= m.mBottom.Value():
		return 5
	case mu >= m.mCharm.Value():
		return 4
	default:
		return 3
	}
}

// runCoupling evolves a = alpha_s/(4 pi) from t0 to t1 at fixed nf.
func runCoupling(a, t0, t1, nf float64) float64 {
	b0, b1, b2, b3 := beta(nf)
	deriv := func(a float64) float64 {
		return -a * a * (b0 + a*(b1+a*(b2+a*b3)))
	}

	return rk4(a, t0, t1, deriv)
}

// rk4 integrates da/dt = f(a) from t0 to t1 with fixed steps.
func rk4(a, t0, t1 float64, f func(float64) float64) float64 {
	span := t1 - t0
	n := int(math.Ceil(math.Abs(span)/rkStep)) + 1
	h := span / float64(n)

	for i := 0; i < n; i++ {
		k1 := f(a)
		k2 := f(a + 0.5*h*k1)
		k3 := f(a + 0.5*h*k2)
		k4 := f(a + h*k3)
		a += h / 6.0 * (k1 + 2.0*k2 + 2.0*k3 + k4)
	}

	return a
}

// AlphaS returns the running strong coupling alpha_s(mu), evolved from
// alpha_s(MZ) with flavor thresholds at m_b(m_b) and m_c(m_c).
func (m *Model) AlphaS(mu float64) float64 {
	a := m.alphaSMZ.Value() / (4.0 * math.Pi)
	from := m.mZ.Value()

	for _, threshold := range []float64{m.mBottom.Value(), m.mCharm.Value()} {
		if mu >= threshold {
			break
		}

		a = runCoupling(a, math.Log(from*from), math.Log(threshold*threshold), m.nfAt(from))
		from = threshold
	}

	a = runCoupling(a, math.Log(from*from), math.Log(mu*mu), m.nfAt(math.Max(mu, math.Nextafter(from, 0))))

	return a * 4.0 * math.Pi
}

// runMass evolves the pair (a, m) from mu0 to mu1 at fixed nf, where a
// enters the mass anomalous dimension.
func runMass(a, mass, mu0, mu1, nf float64) (float64, float64) {
	b0, b1, b2, b3 := beta(nf)
	g0, g1, g2, g3 := gammaM(nf)

	t0 := math.Log(mu0 * mu0)
	t1 := math.Log(mu1 * mu1)
	span := t1 - t0
	n := int(math.Ceil(math.Abs(span)/rkStep)) + 1
	h := span / float64(n)

	da := func(a float64) float64 {
		return -a * a * (b0 + a*(b1+a*(b2+a*b3)))
	}
	dlnm := func(a float64) float64 {
		return -a * (g0 + a*(g1+a*(g2+a*g3)))
	}

	lnm := math.Log(mass)

	for i := 0; i < n; i++ {
		a1, l1 := da(a), dlnm(a)
		a2, l2 := da(a+0.5*h*a1), dlnm(a+0.5*h*a1)
		a3, l3 := da(a+0.5*h*a2), dlnm(a+0.5*h*a2)
		a4, l4 := da(a+h*a3), dlnm(a+h*a3)

		lnm += h / 6.0 * (l1 + 2.0*l2 + 2.0*l3 + l4)
		a += h / 6.0 * (a1 + 2.0*a2 + 2.0*a3 + a4)
	}

	return a, math.Exp(lnm)
}

// runMassSegmented evolves a mass from mu0 to mu1 crossing flavor
// thresholds as needed.
func (m *Model) runMassSegmented(mass, mu0, mu1 float64) float64 {
	a := m.AlphaS(mu0) / (4.0 * math.Pi)
	mc, mb := m.mCharm.Value(), m.mBottom.Value()

	mu := mu0
	for mu != mu1 {
		next := mu1

		if mu1 > mu {
			// upward crossings
			for _, th := range []float64{mc, mb} {
				if mu < th && th < next {
					next = th
				}
			}
		} else {
			for _, th := range []float64{mb, mc} {
				if mu > th && th > next {
					next = th
				}
			}
		}

		mid := math.Sqrt(mu * next)
		a, mass = runMass(a, mass, mu, next, m.nfAt(mid))
		mu = next
	}

	return mass
}

// MCMSbar returns the running charm mass m_c(mu) in the MSbar scheme,
// with the reference value m_c(m_c).
func (m *Model) MCMSbar(mu float64) float64 {
	mc := m.mCharm.Value()
	return m.runMassSegmented(mc, mc, mu)
}

// MBMSbar returns the running bottom mass m_b(mu) in the MSbar scheme,
// with the reference value m_b(m_b).
func (m *Model) MBMSbar(mu float64) float64 {
	mb := m.mBottom.Value()
	return m.runMassSegmented(mb, mb, mu)
}

// MUMSbar returns the running up-quark mass m_u(mu), referenced at 2 GeV.
func (m *Model) MUMSbar(mu float64) float64 {
	return m.runMassSegmented(m.mUp.Value(), 2.0, mu)
}

// MDMSbar returns the running down-quark mass m_d(mu), referenced at 2 GeV.
func (m *Model) MDMSbar(mu float64) float64 {
	return m.runMassSegmented(m.mDown.Value(), 2.0, mu)
}

// MSMSbar returns the running strange-quark mass m_s(mu), referenced at 2 GeV.
func (m *Model) MSMSbar(mu float64) float64 {
	return m.runMassSegmented(m.mStrange.Value(), 2.0, mu)
}

// VCD returns |V_cd|.
func (m *Model) VCD() float64 { return m.vcd.Value() }

// VCS returns |V_cs|.
func (m *Model) VCS() float64 { return m.vcs.Value() }

// GFermi returns the Fermi constant in GeV^-2.
func (m *Model) GFermi() float64 { return m.gFermi.Value() }

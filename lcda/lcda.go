// Package lcda provides light-cone distribution amplitudes of light
// pseudoscalar mesons up to twist four. Gegenbauer moments and
// twist-three/four couplings are read from the parameter store at their
// 1 GeV reference scale and evolved to the requested scale at leading
// logarithmic order.
package lcda

import (
	"math"

	"github.com/cwbudde/algo-hep/params"
	"github.com/cwbudde/algo-hep/qcd"
)

// Pion holds the pion distribution-amplitude inputs bound to a
// parameter store.
type Pion struct {
	model *qcd.Model

	a2     params.Handle // Gegenbauer moment a_2 at 1 GeV
	a4     params.Handle // Gegenbauer moment a_4 at 1 GeV
	f3     params.Handle // twist-3 coupling f_3pi at 1 GeV
	omega3 params.Handle
	omega4 params.Handle
	delta2 params.Handle // twist-4 coupling delta^2 at 1 GeV

	mPi params.Handle
	fPi params.Handle
}

// NewPion binds the pion distribution amplitudes to the given store and
// QCD model.
func NewPion(store *params.Store, model *qcd.Model) (*Pion, error) {
	p := &Pion{model: model}

	for _, b := range []struct {
		dst  *params.Handle
		name string
	}{
		{&p.a2, "pi::a2@1GeV"},
		{&p.a4, "pi::a4@1GeV"},
		{&p.f3, "pi::f3@1GeV"},
		{&p.omega3, "pi::omega3@1GeV"},
		{&p.omega4, "pi::omega4@1GeV"},
		{&p.delta2, "pi::delta^2@1GeV"},
		{&p.mPi, "mass::pi^+"},
		{&p.fPi, "decay-constant::pi"},
	} {
		h, err := store.Handle(b.name)
		if err != nil {
			return nil, err
		}

		*b.dst = h
	}

	return p, nil
}

// crge is the leading-log evolution variable (alpha_s(mu)/alpha_s(1 GeV))
// raised to 1/beta_0 with three active flavors.
func (p *Pion) crge(mu float64) float64 {
	return math.Pow(p.model.AlphaS(mu)/p.model.AlphaS(1.0), 1.0/9.0)
}

// A2 returns the second Gegenbauer moment at scale mu.
func (p *Pion) A2(mu float64) float64 {
	return p.a2.Value() * math.Pow(p.crge(mu), 50.0/9.0)
}

// A4 returns the fourth Gegenbauer moment at scale mu.
func (p *Pion) A4(mu float64) float64 {
	return p.a4.Value() * math.Pow(p.crge(mu), 364.0/45.0)
}

// F3 returns the twist-3 coupling f_3pi at scale mu.
func (p *Pion) F3(mu float64) float64 {
	return p.f3.Value() * math.Pow(p.crge(mu), 55.0/9.0)
}

// Omega3 returns the twist-3 parameter omega_3 at scale mu.
func (p *Pion) Omega3(mu float64) float64 {
	return p.omega3.Value() * math.Pow(p.crge(mu), 49.0/9.0)
}

// Omega4 returns the twist-4 parameter omega_4 at scale mu.
func (p *Pion) Omega4(mu float64) float64 {
	return p.omega4.Value() * math.Pow(p.crge(mu), -2.0/9.0)
}

// Delta2 returns the twist-4 coupling delta^2 at scale mu.
func (p *Pion) Delta2(mu float64) float64 {
	return p.delta2.Value() * math.Pow(p.crge(mu), 32.0/9.0)
}

// MuPi returns the twist-3 normalization mu_pi(mu) = m_pi^2 / (m_u + m_d).
func (p *Pion) MuPi(mu float64) float64 {
	mPi := p.mPi.Value()
	return mPi * mPi / (p.model.MUMSbar(mu) + p.model.MDMSbar(mu))
}

// FPi returns the pion decay constant.
func (p *Pion) FPi() float64 { return p.fPi.Value() }

// eta3 and rho2 are the derived twist-3 parameters entering phi3p and
// phi3s.
func (p *Pion) eta3(mu float64) float64 {
	return p.F3(mu) / (p.fPi.Value() * p.MuPi(mu))
}

func (p *Pion) rho2(mu float64) float64 {
	mPi := p.mPi.Value()
	muPi := p.MuPi(mu)

	return mPi * mPi / (muPi * muPi)
}

// Phi returns the leading-twist distribution amplitude at momentum
// fraction u and scale mu, expanded in Gegenbauer polynomials through
// fourth order.
func (p *Pion) Phi(u, mu float64) float64 {
	xi := 2.0*u - 1.0
	xi2 := xi * xi
	c2 := 1.5 * (5.0*xi2 - 1.0)
	c4 := 15.0 / 8.0 * (21.0*xi2*xi2 - 14.0*xi2 + 1.0)

	return 6.0 * u * (1.0 - u) * (1.0 + p.A2(mu)*c2 + p.A4(mu)*c4)
}

// Phi3p returns the two-particle twist-3 pseudoscalar amplitude.
func (p *Pion) Phi3p(u, mu float64) float64 {
	xi := 2.0*u - 1.0
	xi2 := xi * xi
	c2 := 0.5 * (3.0*xi2 - 1.0)
	c4 := (35.0*xi2*xi2 - 30.0*xi2 + 3.0) / 8.0

	eta3 := p.eta3(mu)
	rho2 := p.rho2(mu)

	return 1.0 +
		(30.0*eta3-2.5*rho2)*c2 +
		(-3.0*eta3*p.Omega3(mu)-27.0/20.0*rho2-81.0/10.0*rho2*p.A2(mu))*c4
}

// phi3sCoeff is the C_2^{3/2} coefficient of the twist-3 tensor
// amplitude.
func (p *Pion) phi3sCoeff(mu float64) float64 {
	eta3 := p.eta3(mu)
	rho2 := p.rho2(mu)

	return 5.0*eta3 - 0.5*eta3*p.Omega3(mu) - 7.0/20.0*rho2 - 3.0/5.0*rho2*p.A2(mu)
}

// Phi3s returns the two-particle twist-3 tensor amplitude.
func (p *Pion) Phi3s(u, mu float64) float64 {
	xi := 2.0*u - 1.0
	c2 := 1.5 * (5.0*xi*xi - 1.0)

	return 6.0 * u * (1.0 - u) * (1.0 + p.phi3sCoeff(mu)*c2)
}

// Phi3sD1 returns the first derivative of Phi3s with respect to u.
func (p *Pion) Phi3sD1(u, mu float64) float64 {
	xi := 2.0*u - 1.0
	c2 := 1.5 * (5.0*xi*xi - 1.0)
	kappa := p.phi3sCoeff(mu)

	return 6.0*(1.0-2.0*u)*(1.0+kappa*c2) + 6.0*u*(1.0-u)*kappa*30.0*xi
}

// Psi4 returns the two-particle twist-4 amplitude psi_4.
func (p *Pion) Psi4(u, mu float64) float64 {
	xi := 2.0*u - 1.0
	return 10.0 / 3.0 * p.Delta2(mu) * (3.0*xi*xi - 1.0)
}

// Psi4I returns the integral of Psi4 from 0 to u.
func (p *Pion) Psi4I(u, mu float64) float64 {
	xi := 2.0*u - 1.0
	return 10.0 / 3.0 * p.Delta2(mu) * ((xi*xi*xi+1.0)/2.0 - u)
}

// phi4LogTerm and its derivatives carry the u^3 ln(u) structure of the
// twist-4 amplitude phi_4.
func phi4LogTerm(u float64) float64 {
	return u * u * u * (10.0 - 15.0*u + 6.0*u*u) * math.Log(u)
}

func phi4LogTermD1(u float64) float64 {
	ub := 1.0 - u
	return 30.0*u*u*ub*ub*math.Log(u) + u*u*(10.0-15.0*u+6.0*u*u)
}

func phi4LogTermD2(u float64) float64 {
	ub := 1.0 - u
	return 60.0*u*ub*(1.0-2.0*u)*math.Log(u) + 30.0*u*ub*ub + 20.0*u - 45.0*u*u + 24.0*u*u*u
}

// Phi4 returns the two-particle twist-4 amplitude phi_4.
func (p *Pion) Phi4(u, mu float64) float64 {
	ub := 1.0 - u
	uub := u * ub
	delta2 := p.Delta2(mu)

	return 200.0/3.0*delta2*uub*uub +
		8.0*delta2*p.Omega4(mu)*(uub*(2.0+13.0*uub)+2.0*phi4LogTerm(u)+2.0*phi4LogTerm(ub))
}

// Phi4D1 returns the first derivative of Phi4 with respect to u.
func (p *Pion) Phi4D1(u, mu float64) float64 {
	ub := 1.0 - u
	uub := u * ub
	xi := 1.0 - 2.0*u
	delta2 := p.Delta2(mu)

	return 200.0/3.0*delta2*2.0*uub*xi +
		8.0*delta2*p.Omega4(mu)*(xi*(2.0+26.0*uub)+2.0*phi4LogTermD1(u)-2.0*phi4LogTermD1(ub))
}

// Phi4D2 returns the second derivative of Phi4 with respect to u.
func (p *Pion) Phi4D2(u, mu float64) float64 {
	ub := 1.0 - u
	uub := u * ub
	xi := 1.0 - 2.0*u
	delta2 := p.Delta2(mu)

	poly := -2.0*(2.0+26.0*uub) + 26.0*xi*xi

	return 200.0/3.0*delta2*2.0*(1.0-6.0*uub) +
		8.0*delta2*p.Omega4(mu)*(poly+2.0*phi4LogTermD2(u)+2.0*phi4LogTermD2(ub))
}

// Package decay computes observables of the semileptonic decays
// D -> P l nu, where P is a pseudoscalar meson. The helicity-amplitude
// decomposition follows DDS2014; form factors are taken from a
// formfactor.PToP implementation selected at construction.
package decay

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-hep/formfactor"
	"github.com/cwbudde/algo-hep/formfactor/dtopi"
	"github.com/cwbudde/algo-hep/internal/quadrature"
	"github.com/cwbudde/algo-hep/params"
	"github.com/cwbudde/algo-hep/qcd"
)

// ErrUnsupportedProcess is returned when the (Q, q, I) option
// combination does not identify a known transition.
var ErrUnsupportedProcess = errors.New("decay: unsupported process combination")

// Option specifications of the D -> P l nu observables.
var (
	// LeptonOption selects the charged-lepton flavor.
	LeptonOption = params.OptionSpec{
		Name:    "l",
		Allowed: []string{"e", "mu", "tau"},
		Default: "mu",
	}

	// QOption selects the down-type quark of the c -> Q transition.
	QOption = params.OptionSpec{
		Name:    "Q",
		Allowed: []string{"s", "d"},
		Default: "s",
	}

	// SpectatorOption selects the spectator-quark flavor.
	SpectatorOption = params.OptionSpec{
		Name:    "q",
		Allowed: []string{"u", "d", "s"},
		Default: "d",
	}

	// IsospinOption selects the total isospin of the daughter meson.
	IsospinOption = params.OptionSpec{
		Name:    "I",
		Allowed: []string{"1", "0", "1/2"},
		Default: "1/2",
	}

	// FormFactorsOption selects the form-factor family.
	FormFactorsOption = params.OptionSpec{
		Name:    "form-factors",
		Allowed: []string{"BSZ2015", "KKMO2009"},
		Default: "BSZ2015",
	}
)

// Couplings are additional effective couplings of the charged-current
// c -> Q l nu Lagrangian beyond the V-A current. The zero value is the
// Standard Model.
type Couplings struct {
	GV complex128 // vector
	GS complex128 // scalar
	GT complex128 // tensor
}

type processKey struct {
	q1 string // c -> Q transition
	q2 string // spectator
	i  string // daughter isospin
}

type processEntry struct {
	label   string // form-factor process
	dMeson  string
	pMeson  string
	isospin float64
}

// (Q, q, I) -> transition. The neutral pion carries a 1/sqrt(2)
// isospin projection; the charged modes do not.
var processTable = map[processKey]processEntry{
	{"d", "u", "1"}:   {"D->pi", "D_u", "pi^+", 1.0},
	{"d", "d", "1"}:   {"D->pi", "D_d", "pi^0", 1.0 / math.Sqrt2},
	{"d", "s", "1/2"}: {"D_s->K", "D_s", "K_d", 1.0},
	{"s", "u", "1/2"}: {"D->K", "D_u", "K_u", 1.0},
	{"s", "d", "1/2"}: {"D->K", "D_d", "K_d", 1.0},
}

var bszProcesses = map[string]formfactor.PToPProcess{
	"D->pi":  formfactor.DToPi,
	"D->K":   formfactor.DToK,
	"D_s->K": formfactor.DsToK,
}

// PseudoscalarLeptonNeutrino evaluates the decay D -> P l nu for one
// (Q, q, I, l) configuration.
type PseudoscalarLeptonNeutrino struct {
	// Couplings may be set to nonzero values to probe effective
	// couplings beyond the V-A current.
	Couplings Couplings

	model *qcd.Model
	ff    formfactor.PToP

	mD     params.Handle
	mP     params.Handle
	mL     params.Handle
	tauD   params.Handle
	gFermi params.Handle
	hbar   params.Handle
	mu     params.Handle

	isospin float64

	mQMSbar func(mu float64) float64
	vCQ     func() float64

	integrator *quadrature.Integrator
}

// New binds the observable to the given parameter store. The options
// "Q", "q" and "I" identify the transition, "l" the lepton flavor, and
// "form-factors" the hadronic input.
func New(store *params.Store, options params.Options) (*PseudoscalarLeptonNeutrino, error) {
	model, err := qcd.NewModel(store)
	if err != nil {
		return nil, err
	}

	q1, err := options.Select(QOption)
	if err != nil {
		return nil, err
	}

	q2, err := options.Select(SpectatorOption)
	if err != nil {
		return nil, err
	}

	isospin, err := options.Select(IsospinOption)
	if err != nil {
		return nil, err
	}

	lepton, err := options.Select(LeptonOption)
	if err != nil {
		return nil, err
	}

	family, err := options.Select(FormFactorsOption)
	if err != nil {
		return nil, err
	}

	entry, ok := processTable[processKey{q1, q2, isospin}]
	if !ok {
		return nil, fmt.Errorf("%w: Q=%s, q=%s, I=%s", ErrUnsupportedProcess, q1, q2, isospin)
	}

	d := &PseudoscalarLeptonNeutrino{
		model:   model,
		isospin: entry.isospin,
	}

	switch family {
	case "KKMO2009":
		if entry.label != "D->pi" {
			return nil, fmt.Errorf("%w: form-factors=KKMO2009 covers D->pi only, got %s", ErrUnsupportedProcess, entry.label)
		}

		d.ff, err = dtopi.New(store, options)
	default:
		d.ff, err = formfactor.NewBSZPToP(store, bszProcesses[entry.label])
	}
	if err != nil {
		return nil, err
	}

	for _, b := range []struct {
		dst  *params.Handle
		name string
	}{
		{&d.mD, "mass::" + entry.dMeson},
		{&d.mP, "mass::" + entry.pMeson},
		{&d.mL, "mass::" + lepton},
		{&d.tauD, "life_time::" + entry.dMeson},
		{&d.gFermi, "WET::G_Fermi"},
		{&d.hbar, "QM::hbar"},
		{&d.mu, "c" + q1 + "lnu::mu"},
	} {
		h, err := store.Handle(b.name)
		if err != nil {
			return nil, err
		}

		*b.dst = h
	}

	if q1 == "d" {
		d.mQMSbar = model.MDMSbar
		d.vCQ = model.VCD
	} else {
		d.mQMSbar = model.MSMSbar
		d.vCQ = model.VCS
	}

	cfg := quadrature.DefaultConfig()
	cfg.EpsRel = 0.5e-3
	d.integrator = quadrature.New(cfg)

	return d, nil
}

// Q2Min is the lower end of the physical phase space.
func (d *PseudoscalarLeptonNeutrino) Q2Min() float64 {
	ml := d.mL.Value()

	return ml * ml
}

// Q2Max is the upper end of the physical phase space.
func (d *PseudoscalarLeptonNeutrino) Q2Max() float64 {
	diff := d.mD.Value() - d.mP.Value()

	return diff * diff
}

// amplitude collects the helicity amplitudes of DDS2014 eqs. 13-14
// together with the shared kinematic factors.
type amplitude struct {
	h0  complex128
	ht  complex128
	hS  complex128
	hT  complex128
	htS complex128

	v  float64 // lepton velocity in the dilepton rest frame
	p  float64 // daughter momentum in the D rest frame
	nf float64
}

func norm(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

func (d *PseudoscalarLeptonNeutrino) amplitudes(q2 float64) (amplitude, error) {
	mD := d.mD.Value()
	mD2 := mD * mD
	mP := d.mP.Value()
	mP2 := mP * mP
	ml := d.mL.Value()

	if q2 < ml*ml || q2 > (mD-mP)*(mD-mP) {
		// outside the physical phase space; v is kept away from 1
		// so sqrt(1 - v) stays defined
		return amplitude{v: 0.99}, nil
	}

	fp, err := d.ff.FPlus(q2)
	if err != nil {
		return amplitude{}, err
	}

	f0, err := d.ff.FZero(q2)
	if err != nil {
		return amplitude{}, err
	}

	fT, err := d.ff.FT(q2)
	if err != nil {
		return amplitude{}, err
	}

	mu := d.mu.Value()
	mc := d.model.MCMSbar(mu)
	mQ := d.mQMSbar(mu)

	lam := formfactor.Lambda(mD2, mP2, q2)
	p := math.Sqrt(lam) / (2.0 * mD)

	v := 1.0 - ml*ml/q2
	mlHat := math.Sqrt(1.0 - v)
	gf := d.gFermi.Value()
	nf := v * v * q2 * gf * gf / (256.0 * math.Pi * math.Pi * math.Pi * mD2)

	iso := complex(d.isospin, 0)
	sqrtS := complex(math.Sqrt(q2), 0)

	a := amplitude{
		h0: iso * complex(2.0*mD*p*fp, 0) * (1.0 + d.Couplings.GV) / sqrtS,
		ht: iso * (1.0 + d.Couplings.GV) * complex((mD2-mP2)*f0, 0) / sqrtS,
		hS: -iso * d.Couplings.GS * complex((mD2-mP2)*f0/(mc-mQ), 0),
		hT: -iso * d.Couplings.GT * complex(2.0*mD*p*fT/(mD+mP), 0),

		v:  v,
		p:  p,
		nf: nf,
	}
	a.htS = a.ht - a.hS/complex(mlHat, 0)

	return a, nil
}

// TwoFoldDifferentialWidth is the normalized (|V_cQ| = 1) double
// differential width d^2 Gamma / dq2 dcos(theta_l), cf. DDS2014
// eq. 13.
func (d *PseudoscalarLeptonNeutrino) TwoFoldDifferentialWidth(q2, cThetaL float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	cThl2 := cThetaL * cThetaL
	sThl2 := 1.0 - cThl2
	c2Thl := 2.0*cThl2 - 1.0

	return 2.0 * a.nf * a.p * (norm(a.h0)*sThl2 +
		(1.0-a.v)*norm(a.h0*complex(cThetaL, 0)-a.htS) +
		8.0*(((2.0-a.v)+a.v*c2Thl)*norm(a.hT)-
			math.Sqrt(1.0-a.v)*real(a.hT*(cmplx.Conj(a.h0)-cmplx.Conj(a.htS)*complex(cThetaL, 0))))), nil
}

// NormalizedDifferentialWidth is dGamma/dq2 at |V_cQ| = 1, cf. DDS2014
// eq. 12.
func (d *PseudoscalarLeptonNeutrino) NormalizedDifferentialWidth(q2 float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	return 4.0 / 3.0 * a.nf * a.p * (norm(a.h0)*(3.0-a.v) +
		3.0*norm(a.htS)*(1.0-a.v) +
		16.0*norm(a.hT)*(3.0-2.0*a.v) -
		24.0*math.Sqrt(1.0-a.v)*real(a.hT*cmplx.Conj(a.h0))), nil
}

// normalizedDifferentialWidthP is the longitudinal-vector piece of the
// normalized width.
func (d *PseudoscalarLeptonNeutrino) normalizedDifferentialWidthP(q2 float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	return 4.0 / 3.0 * a.nf * a.p * norm(a.h0) * (3.0 - a.v), nil
}

// normalizedDifferentialWidth0 is the timelike piece of the normalized
// width.
func (d *PseudoscalarLeptonNeutrino) normalizedDifferentialWidth0(q2 float64) (float64, error) {
	a, err := d.amplitudes(q2)
	if err != nil {
		return 0, err
	}

	return 4.0 * a.nf * a.p * norm(a.ht) * (1.0 - a.v), nil
}

// DifferentialWidth is dGamma/dq2 including |V_cQ|^2.
func (d *PseudoscalarLeptonNeutrino) DifferentialWidth(q2 float64) (float64, error) {
	w, err := d.NormalizedDifferentialWidth(q2)
	if err != nil {
		return 0, err
	}

	v := d.vCQ()

	return w * v * v, nil
}

// DifferentialBranchingRatio is dBR/dq2.
func (d *PseudoscalarLeptonNeutrino) DifferentialBranchingRatio(q2 float64) (float64, error) {
	w, err := d.DifferentialWidth(q2)
	if err != nil {
		return 0, err
	}

	return w * d.tauD.Value() / d.hbar.Value(), nil
}

// NormalizedDifferentialBranchingRatio is dBR/dq2 at |V_cQ| = 1.
func (d *PseudoscalarLeptonNeutrino) NormalizedDifferentialBranchingRatio(q2 float64) (float64, error) {
	w, err := d.NormalizedDifferentialWidth(q2)
	if err != nil {
		return 0, err
	}

	return w * d.tauD.Value() / d.hbar.Value(), nil
}

// integrate runs the adaptive integrator over an error-returning
// integrand, propagating the first inner error.
func (d *PseudoscalarLeptonNeutrino) integrate(f func(float64) (float64, error), a, b float64) (float64, error) {
	var inner error

	result, err := d.integrator.Integrate(func(x float64) float64 {
		y, ferr := f(x)
		if ferr != nil {
			if inner == nil {
				inner = ferr
			}

			return 0.0
		}

		return y
	}, a, b)

	if inner != nil {
		return 0, inner
	}
	if err != nil {
		return 0, fmt.Errorf("decay width integral: %w", err)
	}

	return result, nil
}

// IntegratedBranchingRatio integrates dBR/dq2 over [q2Min, q2Max].
func (d *PseudoscalarLeptonNeutrino) IntegratedBranchingRatio(q2Min, q2Max float64) (float64, error) {
	return d.integrate(d.DifferentialBranchingRatio, q2Min, q2Max)
}

// NormalizedIntegratedBranchingRatio integrates dBR/dq2 at |V_cQ| = 1.
func (d *PseudoscalarLeptonNeutrino) NormalizedIntegratedBranchingRatio(q2Min, q2Max float64) (float64, error) {
	return d.integrate(d.NormalizedDifferentialBranchingRatio, q2Min, q2Max)
}

// NormalizedIntegratedWidth integrates the normalized width.
func (d *PseudoscalarLeptonNeutrino) NormalizedIntegratedWidth(q2Min, q2Max float64) (float64, error) {
	return d.integrate(d.NormalizedDifferentialWidth, q2Min, q2Max)
}

// NormalizedIntegratedWidthP integrates the longitudinal-vector piece.
func (d *PseudoscalarLeptonNeutrino) NormalizedIntegratedWidthP(q2Min, q2Max float64) (float64, error) {
	return d.integrate(d.normalizedDifferentialWidthP, q2Min, q2Max)
}

// NormalizedIntegratedWidth0 integrates the timelike piece.
func (d *PseudoscalarLeptonNeutrino) NormalizedIntegratedWidth0(q2Min, q2Max float64) (float64, error) {
	return d.integrate(d.normalizedDifferentialWidth0, q2Min, q2Max)
}

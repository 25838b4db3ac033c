// Package dtopi calculates the D -> pi form factors f_+, f_0 and f_T
// from QCD light-cone sum rules with pion distribution amplitudes,
// following the KKMO2009 analysis. The correlation functions are
// evaluated to twist four at leading order and to twist three at
// next-to-leading order in the strong coupling; the D-meson decay
// constant entering the sum rules is obtained from a two-point sum
// rule at the same order.
package dtopi

import (
	"math"

	"github.com/cwbudde/algo-hep/internal/quadrature"
	"github.com/cwbudde/algo-hep/lcda"
	"github.com/cwbudde/algo-hep/params"
	"github.com/cwbudde/algo-hep/qcd"
)

// RescaleBorelOption switches the q2-dependent rescaling of the Borel
// parameter on ("1", default) or off ("0").
var RescaleBorelOption = params.OptionSpec{
	Name:    "rescale-borel",
	Allowed: []string{"1", "0"},
	Default: "1",
}

// FormFactor evaluates the D -> pi light-cone sum rules. All parameter
// reads go through handles, so the host may mutate the store between
// calls.
type FormFactor struct {
	model *qcd.Model
	pion  *lcda.Pion

	mD  params.Handle
	mPi params.Handle
	fPi params.Handle

	m2       params.Handle // Borel parameter of the light-cone sum rule
	mPrime2  params.Handle // Borel parameter of the two-point sum rule
	s0Plus   [3]params.Handle
	s0Zero   [3]params.Handle
	s0T      [3]params.Handle
	sPrime0B params.Handle
	mu       params.Handle
	zetaNNLO params.Handle

	m02    params.Handle
	condGG params.Handle
	rVac   params.Handle

	rescaleP func(q2 float64) (float64, error)
	rescale0 func(q2 float64) (float64, error)
	rescaleT func(q2 float64) (float64, error)

	integrator *quadrature.Integrator
}

// New binds a sum-rule calculator to the given parameter store. The
// "rescale-borel" option selects between the rescaled and the fixed
// Borel parameter.
func New(store *params.Store, options params.Options) (*FormFactor, error) {
	model, err := qcd.NewModel(store)
	if err != nil {
		return nil, err
	}

	pion, err := lcda.NewPion(store, model)
	if err != nil {
		return nil, err
	}

	ff := &FormFactor{
		model: model,
		pion:  pion,
	}

	for _, b := range []struct {
		dst  *params.Handle
		name string
	}{
		{&ff.mD, "mass::D_d"},
		{&ff.mPi, "mass::pi^+"},
		{&ff.fPi, "decay-constant::pi"},
		{&ff.m2, "D->pi::M^2@KKMO2009"},
		{&ff.mPrime2, "D->pi::Mp^2@KKMO2009"},
		{&ff.s0Plus[0], "D->pi::s_0^+(0)@KKMO2009"},
		{&ff.s0Plus[1], "D->pi::s_0^+'(0)@KKMO2009"},
		{&ff.s0Plus[2], "D->pi::s_0^+''(0)@KKMO2009"},
		{&ff.s0Zero[0], "D->pi::s_0^0(0)@KKMO2009"},
		{&ff.s0Zero[1], "D->pi::s_0^0'(0)@KKMO2009"},
		{&ff.s0Zero[2], "D->pi::s_0^0''(0)@KKMO2009"},
		{&ff.s0T[0], "D->pi::s_0^T(0)@KKMO2009"},
		{&ff.s0T[1], "D->pi::s_0^T'(0)@KKMO2009"},
		{&ff.s0T[2], "D->pi::s_0^T''(0)@KKMO2009"},
		{&ff.sPrime0B, "D->pi::sp_0^B@KKMO2009"},
		{&ff.mu, "D->pi::mu@KKMO2009"},
		{&ff.zetaNNLO, "D->pi::zeta(NNLO)@KKMO2009"},
		{&ff.m02, "QCD::m_0^2"},
		{&ff.condGG, "QCD::cond_GG"},
		{&ff.rVac, "QCD::r_vac"},
	} {
		h, err := store.Handle(b.name)
		if err != nil {
			return nil, err
		}

		*b.dst = h
	}

	cfg := quadrature.DefaultConfig()
	cfg.EpsRel = 1e-3
	ff.integrator = quadrature.New(cfg)

	rescale, err := options.Select(RescaleBorelOption)
	if err != nil {
		return nil, err
	}

	if rescale == "1" {
		ff.rescaleP = ff.rescaleFactorP
		ff.rescale0 = ff.rescaleFactor0
		ff.rescaleT = ff.rescaleFactorT
	} else {
		ff.rescaleP = ff.noRescaleFactor
		ff.rescale0 = ff.noRescaleFactor
		ff.rescaleT = ff.noRescaleFactor
	}

	return ff, nil
}

// kinematics is a per-call snapshot of the scale-dependent inputs.
type kinematics struct {
	mu   float64
	mc   float64
	mc2  float64
	mpi  float64
	mpi2 float64
	mpi4 float64
	fpi  float64
}

func (ff *FormFactor) kin() kinematics {
	mu := ff.mu.Value()
	mc := ff.model.MCMSbar(mu)
	mpi := ff.mPi.Value()

	return kinematics{
		mu:   mu,
		mc:   mc,
		mc2:  mc * mc,
		mpi:  mpi,
		mpi2: mpi * mpi,
		mpi4: mpi * mpi * mpi * mpi,
		fpi:  ff.fPi.Value(),
	}
}

// Effective duality thresholds, expanded to second order in q2.
func threshold(h [3]params.Handle, q2 float64) float64 {
	return h[0].Value() + h[1].Value()*q2 + 0.5*h[2].Value()*q2*q2
}

func (ff *FormFactor) s0D(q2 float64) float64    { return threshold(ff.s0Plus, q2) }
func (ff *FormFactor) s0TilD(q2 float64) float64 { return threshold(ff.s0Zero, q2) }
func (ff *FormFactor) s0TD(q2 float64) float64   { return threshold(ff.s0T, q2) }

// u0 is the lower end of the momentum-fraction integration, clamped
// away from zero.
func u0(mc2, q2, s0 float64) float64 {
	return math.Max(1e-10, (mc2-q2)/(s0-q2))
}

// M2 returns the Borel parameter of the light-cone sum rule.
func (ff *FormFactor) M2() float64 { return ff.m2.Value() }

// FPlus returns the vector form factor f_+(q2).
func (ff *FormFactor) FPlus(q2 float64) (float64, error) {
	k := ff.kin()
	mD := ff.mD.Value()
	mD2 := mD * mD

	rescale, err := ff.rescaleP(q2)
	if err != nil {
		return 0, err
	}

	m2 := ff.M2() * rescale

	fLo, err := ff.loSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	fNlo, err := ff.nloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	// the NNLO term is estimated assuming |F_nnlo / F_nlo| =
	// |F_nlo / F_lo|, scaled by zeta in [-1, +1]
	fNnlo := fNlo * fNlo / fLo * ff.zetaNNLO.Value()

	alphaS := ff.model.AlphaS(k.mu)
	fD, err := ff.DecayConstant()
	if err != nil {
		return 0, err
	}

	return math.Exp(mD2/m2) / (2.0 * mD2 * fD) *
		(fLo + alphaS/(3.0*math.Pi)*fNlo + alphaS*alphaS/(9.0*math.Pi*math.Pi)*fNnlo), nil
}

// FZero returns the scalar form factor f_0(q2). At q2 = 0 it
// coincides with f_+ exactly, so small q2 fall back to FPlus.
func (ff *FormFactor) FZero(q2 float64) (float64, error) {
	if math.Abs(q2) < 1e-6 {
		return ff.FPlus(q2)
	}

	k := ff.kin()
	mD := ff.mD.Value()
	mD2 := mD * mD

	rescale, err := ff.rescale0(q2)
	if err != nil {
		return 0, err
	}

	m2 := ff.M2() * rescale

	fLo, err := ff.loSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	fNlo, err := ff.nloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	tilLo, err := ff.tilLoSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	tilNlo, err := ff.tilNloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	alphaS := ff.model.AlphaS(k.mu)
	fD, err := ff.DecayConstant()
	if err != nil {
		return 0, err
	}

	// the asymmetric mass term in the second propagator weight is
	// kept exactly as in the KKMO2009 fit
	return math.Exp(mD2/m2) / (2.0 * mD2 * fD) *
		(2.0*q2/(mD2-k.mpi2)*(tilLo+alphaS/(3.0*math.Pi)*tilNlo) +
			(1.0-q2/(mD2-k.mpi))*(fLo+alphaS/(3.0*math.Pi)*fNlo)), nil
}

// FT returns the tensor form factor f_T(q2).
func (ff *FormFactor) FT(q2 float64) (float64, error) {
	k := ff.kin()
	mD := ff.mD.Value()
	mD2 := mD * mD

	rescale, err := ff.rescaleT(q2)
	if err != nil {
		return 0, err
	}

	m2 := ff.M2() * rescale

	tLo, err := ff.tLoSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	tNlo, err := ff.tNloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	alphaS := ff.model.AlphaS(k.mu)
	fD, err := ff.DecayConstant()
	if err != nil {
		return 0, err
	}

	return math.Exp(mD2/m2) / (2.0 * mD2 * fD) * (mD + k.mpi) *
		(tLo + alphaS/(3.0*math.Pi)*tNlo), nil
}

// FPlusT is not provided by this sum rule.
func (ff *FormFactor) FPlusT(float64) (float64, error) {
	return 0.0, nil
}

// loSum adds the leading-order twists of the f_+ correlator.
func (ff *FormFactor) loSum(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	tw2, err := ff.fLoTw2(k, q2, m2, selectWeight, 0.0)
	if err != nil {
		return 0, err
	}

	tw3, err := ff.fLoTw3(k, q2, m2, selectWeight, 0.0)
	if err != nil {
		return 0, err
	}

	tw4, err := ff.fLoTw4(k, q2, m2, selectWeight, 0.0)
	if err != nil {
		return 0, err
	}

	return tw2 + tw3 + tw4, nil
}

func (ff *FormFactor) nloSum(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	tw2, err := ff.fNloTw2(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	tw3, err := ff.fNloTw3(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	return tw2 + tw3, nil
}

func (ff *FormFactor) tilLoSum(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	tw3, err := ff.fTilLoTw3(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	tw4, err := ff.fTilLoTw4(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	return tw3 + tw4, nil
}

func (ff *FormFactor) tilNloSum(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	tw2, err := ff.fTilNloTw2(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	tw3, err := ff.fTilNloTw3(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	return tw2 + tw3, nil
}

func (ff *FormFactor) tLoSum(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	tw2, err := ff.fTLoTw2(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	tw3, err := ff.fTLoTw3(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	tw4, err := ff.fTLoTw4(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	return tw2 + tw3 + tw4, nil
}

func (ff *FormFactor) tNloSum(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	tw2, err := ff.fTNloTw2(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	tw3, err := ff.fTNloTw3(k, q2, m2, selectWeight)
	if err != nil {
		return 0, err
	}

	return tw2 + tw3, nil
}

// DualityMassPlus returns the D mass reproduced by the f_+ sum rule as
// the ratio of the Borel-derivative and plain correlators. Returns 0
// if the ratio turns negative.
func (ff *FormFactor) DualityMassPlus(q2 float64) (float64, error) {
	k := ff.kin()

	rescale, err := ff.rescaleP(q2)
	if err != nil {
		return 0, err
	}

	m2 := ff.M2() * rescale
	alphaS := ff.model.AlphaS(k.mu)

	lo, err := ff.loSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	loD1, err := ff.loSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	nlo, err := ff.nloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	nloD1, err := ff.nloSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	f := lo + alphaS/(3.0*math.Pi)*nlo
	fD1 := loD1 + alphaS/(3.0*math.Pi)*nloD1

	mD2 := fD1 / f
	if mD2 < 0.0 {
		return 0.0, nil
	}

	return math.Sqrt(mD2), nil
}

// DualityMassZero returns the D mass reproduced by the f_0 sum rule.
// Small |q2| is clamped to 1e-3 to keep the scalar correlator away
// from its kinematic zero.
func (ff *FormFactor) DualityMassZero(q2 float64) (float64, error) {
	if math.Abs(q2) < 1e-3 {
		q2 = 1e-3
	}

	k := ff.kin()
	mD := ff.mD.Value()
	mD2 := mD * mD

	rescale, err := ff.rescale0(q2)
	if err != nil {
		return 0, err
	}

	m2 := ff.M2() * rescale
	alphaS := ff.model.AlphaS(k.mu)

	// the F correlator is cut at the scalar-channel threshold here
	loF := func(selectWeight float64) (float64, error) {
		tw2, err := ff.fLoTw2(k, q2, m2, selectWeight, 1.0)
		if err != nil {
			return 0, err
		}

		tw3, err := ff.fLoTw3(k, q2, m2, selectWeight, 1.0)
		if err != nil {
			return 0, err
		}

		tw4, err := ff.fLoTw4(k, q2, m2, selectWeight, 1.0)
		if err != nil {
			return 0, err
		}

		return tw2 + tw3 + tw4, nil
	}

	lo, err := loF(0.0)
	if err != nil {
		return 0, err
	}

	loD1, err := loF(1.0)
	if err != nil {
		return 0, err
	}

	nlo, err := ff.nloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	nloD1, err := ff.nloSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	tilLo, err := ff.tilLoSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	tilLoD1, err := ff.tilLoSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	tilNlo, err := ff.tilNloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	tilNloD1, err := ff.tilNloSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	f := lo + alphaS/(3.0*math.Pi)*nlo
	fD1 := loD1 + alphaS/(3.0*math.Pi)*nloD1
	til := tilLo + alphaS/(3.0*math.Pi)*tilNlo
	tilD1 := tilLoD1 + alphaS/(3.0*math.Pi)*tilNloD1

	denom := 2.0*q2/(mD2-k.mpi2)*til + (1.0-q2/(mD2-k.mpi))*f
	num := 2.0*q2/(mD2-k.mpi2)*tilD1 + (1.0-q2/(mD2-k.mpi))*fD1

	ratio := num / denom
	if ratio < 0.0 {
		return 0.0, nil
	}

	return math.Sqrt(ratio), nil
}

// DualityMassT returns the D mass reproduced by the f_T sum rule.
func (ff *FormFactor) DualityMassT(q2 float64) (float64, error) {
	k := ff.kin()

	rescale, err := ff.rescaleP(q2)
	if err != nil {
		return 0, err
	}

	m2 := ff.M2() * rescale
	alphaS := ff.model.AlphaS(k.mu)

	lo, err := ff.tLoSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	loD1, err := ff.tLoSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	nlo, err := ff.tNloSum(k, q2, m2, 0.0)
	if err != nil {
		return 0, err
	}

	nloD1, err := ff.tNloSum(k, q2, m2, 1.0)
	if err != nil {
		return 0, err
	}

	f := lo + alphaS/(3.0*math.Pi)*nlo
	fD1 := loD1 + alphaS/(3.0*math.Pi)*nloD1

	mD2 := fD1 / f
	if mD2 < 0.0 {
		return 0.0, nil
	}

	return math.Sqrt(mD2), nil
}

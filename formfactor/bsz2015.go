package formfactor

import (
	"math"

	"github.com/cwbudde/algo-hep/params"
)

// BSZPToP parametrizes the P -> P form factors as a simplified series
// expansion in the conformal variable z, truncated after the quadratic
// term, with a simple resonance pole factored out of each form factor.
// The scalar series borrows its leading coefficient from the vector
// series so that f_0(0) = f_+(0) holds exactly.
type BSZPToP struct {
	process PToPProcess

	aFP [3]params.Handle
	aFT [3]params.Handle
	aFZ [2]params.Handle

	tauP float64
	tau0 float64
	z0   float64
}

// zVariable maps q2 onto the unit disk given the pair-production
// threshold tau_p and the expansion point tau_0.
func zVariable(q2, tauP, tau0 float64) float64 {
	sp := math.Sqrt(tauP - q2)
	s0 := math.Sqrt(tauP - tau0)

	return (sp - s0) / (sp + s0)
}

// optimalTau0 minimizes the maximum of |z| over the semileptonic
// region.
func optimalTau0(mB, mP float64) float64 {
	tauP := (mB + mP) * (mB + mP)
	tauM := (mB - mP) * (mB - mP)

	return tauP * (1.0 - math.Sqrt(1.0-tauM/tauP))
}

// NewBSZPToP binds the series coefficients of the given process to the
// parameter store. Coefficients are named
// "<label>::alpha^<ff>_<k>@BSZ2015".
func NewBSZPToP(store *params.Store, process PToPProcess) (*BSZPToP, error) {
	ff := &BSZPToP{process: process}

	ff.tauP = (process.MB + process.MP) * (process.MB + process.MP)
	ff.tau0 = optimalTau0(process.MB, process.MP)
	ff.z0 = zVariable(0.0, ff.tauP, ff.tau0)

	parName := func(name string) string {
		return process.Label + "::alpha^" + name + "@BSZ2015"
	}

	for _, b := range []struct {
		dst  *params.Handle
		name string
	}{
		{&ff.aFP[0], parName("f+_0")},
		{&ff.aFP[1], parName("f+_1")},
		{&ff.aFP[2], parName("f+_2")},
		{&ff.aFT[0], parName("fT_0")},
		{&ff.aFT[1], parName("fT_1")},
		{&ff.aFT[2], parName("fT_2")},
		{&ff.aFZ[1-1], parName("f0_1")},
		{&ff.aFZ[2-1], parName("f0_2")},
	} {
		h, err := store.Handle(b.name)
		if err != nil {
			return nil, err
		}

		*b.dst = h
	}

	return ff, nil
}

// series evaluates the pole-times-polynomial form at q2.
func (ff *BSZPToP) series(q2, m2R, a0, a1, a2 float64) float64 {
	dz := zVariable(q2, ff.tauP, ff.tau0) - ff.z0

	return (a0 + a1*dz + a2*dz*dz) / (1.0 - q2/m2R)
}

// Z returns the conformal variable z(q2) of this transition.
func (ff *BSZPToP) Z(q2 float64) float64 {
	return zVariable(q2, ff.tauP, ff.tau0)
}

// Z0 returns the value of z at q2 = 0.
func (ff *BSZPToP) Z0() float64 { return ff.z0 }

// FPlus returns the vector form factor f_+(q2).
func (ff *BSZPToP) FPlus(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OneMinus,
		ff.aFP[0].Value(), ff.aFP[1].Value(), ff.aFP[2].Value()), nil
}

// FZero returns the scalar form factor f_0(q2). The equation of motion
// fixes f_0(0) = f_+(0), so the leading coefficient is taken from the
// f_+ series.
func (ff *BSZPToP) FZero(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2ZeroPlus,
		ff.aFP[0].Value(), ff.aFZ[1-1].Value(), ff.aFZ[2-1].Value()), nil
}

// FT returns the tensor form factor f_T(q2).
func (ff *BSZPToP) FT(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OneMinus,
		ff.aFT[0].Value(), ff.aFT[1].Value(), ff.aFT[2].Value()), nil
}

// FPlusT returns f_T(q2) q2 / (m_B (m_B + m_P)).
func (ff *BSZPToP) FPlusT(q2 float64) (float64, error) {
	ft, err := ff.FT(q2)
	if err != nil {
		return 0, err
	}

	return ft * q2 / ff.process.MB / (ff.process.MB + ff.process.MP), nil
}

// BSZPToV parametrizes the P -> V form factors in the same series
// expansion. Two constraints remove coefficients: A_12(0) is tied to
// A_0(0) by the exact kinematic relation at q2 = 0, and T_2(0) = T_1(0).
type BSZPToV struct {
	process PToVProcess

	aA0  [3]params.Handle
	aA1  [3]params.Handle
	aV   [3]params.Handle
	aT1  [3]params.Handle
	aT23 [3]params.Handle
	aA12 [2]params.Handle
	aT2  [2]params.Handle

	kinFactor float64
	tauP      float64
	tau0      float64
	z0        float64
}

// NewBSZPToV binds the series coefficients of the given process to the
// parameter store.
func NewBSZPToV(store *params.Store, process PToVProcess) (*BSZPToV, error) {
	ff := &BSZPToV{process: process}

	mB2 := process.MB * process.MB
	mV2 := process.MV * process.MV
	ff.kinFactor = (mB2 - mV2) / (8.0 * process.MB * process.MV)
	ff.tauP = (process.MB + process.MV) * (process.MB + process.MV)
	ff.tau0 = optimalTau0(process.MB, process.MV)
	ff.z0 = zVariable(0.0, ff.tauP, ff.tau0)

	parName := func(name string) string {
		return process.Label + "::alpha^" + name + "@BSZ2015"
	}

	for _, b := range []struct {
		dst  *params.Handle
		name string
	}{
		{&ff.aA0[0], parName("A0_0")},
		{&ff.aA0[1], parName("A0_1")},
		{&ff.aA0[2], parName("A0_2")},
		{&ff.aA1[0], parName("A1_0")},
		{&ff.aA1[1], parName("A1_1")},
		{&ff.aA1[2], parName("A1_2")},
		{&ff.aV[0], parName("V_0")},
		{&ff.aV[1], parName("V_1")},
		{&ff.aV[2], parName("V_2")},
		{&ff.aT1[0], parName("T1_0")},
		{&ff.aT1[1], parName("T1_1")},
		{&ff.aT1[2], parName("T1_2")},
		{&ff.aT23[0], parName("T23_0")},
		{&ff.aT23[1], parName("T23_1")},
		{&ff.aT23[2], parName("T23_2")},
		{&ff.aA12[1-1], parName("A12_1")},
		{&ff.aA12[2-1], parName("A12_2")},
		{&ff.aT2[1-1], parName("T2_1")},
		{&ff.aT2[2-1], parName("T2_2")},
	} {
		h, err := store.Handle(b.name)
		if err != nil {
			return nil, err
		}

		*b.dst = h
	}

	return ff, nil
}

func (ff *BSZPToV) series(q2, m2R, a0, a1, a2 float64) float64 {
	dz := zVariable(q2, ff.tauP, ff.tau0) - ff.z0

	return (a0 + a1*dz + a2*dz*dz) / (1.0 - q2/m2R)
}

// V returns the vector form factor V(q2).
func (ff *BSZPToV) V(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OneMinus,
		ff.aV[0].Value(), ff.aV[1].Value(), ff.aV[2].Value()), nil
}

// A0 returns the axial form factor A_0(q2).
func (ff *BSZPToV) A0(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2ZeroMinus,
		ff.aA0[0].Value(), ff.aA0[1].Value(), ff.aA0[2].Value()), nil
}

// A1 returns the axial form factor A_1(q2).
func (ff *BSZPToV) A1(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OnePlus,
		ff.aA1[0].Value(), ff.aA1[1].Value(), ff.aA1[2].Value()), nil
}

// A12 returns the helicity form factor A_12(q2). Its q2 = 0 value is
// fixed by A_0(0) times a kinematic factor, so the leading coefficient
// is borrowed from the A_0 series.
func (ff *BSZPToV) A12(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OnePlus,
		ff.kinFactor*ff.aA0[0].Value(), ff.aA12[1-1].Value(), ff.aA12[2-1].Value()), nil
}

// A2 returns the axial form factor A_2(q2), reconstructed from A_1 and
// A_12.
func (ff *BSZPToV) A2(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	mB2, mV2 := mB*mB, mV*mV
	lambda := Lambda(mB2, mV2, q2)

	a1, err := ff.A1(q2)
	if err != nil {
		return 0, err
	}

	a12, err := ff.A12(q2)
	if err != nil {
		return 0, err
	}

	return ((mB+mV)*(mB+mV)*(mB2-mV2-q2)*a1 - 16.0*mB*mV2*(mB+mV)*a12) / lambda, nil
}

// T1 returns the tensor form factor T_1(q2).
func (ff *BSZPToV) T1(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OneMinus,
		ff.aT1[0].Value(), ff.aT1[1].Value(), ff.aT1[2].Value()), nil
}

// T2 returns the tensor form factor T_2(q2). The identity
// T_2(0) = T_1(0) fixes its leading coefficient.
func (ff *BSZPToV) T2(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OnePlus,
		ff.aT1[0].Value(), ff.aT2[1-1].Value(), ff.aT2[2-1].Value()), nil
}

// T23 returns the helicity tensor form factor T_23(q2).
func (ff *BSZPToV) T23(q2 float64) (float64, error) {
	return ff.series(q2, ff.process.MR2OnePlus,
		ff.aT23[0].Value(), ff.aT23[1].Value(), ff.aT23[2].Value()), nil
}

// T3 returns the tensor form factor T_3(q2), reconstructed from T_2
// and T_23.
func (ff *BSZPToV) T3(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	mB2, mV2 := mB*mB, mV*mV
	lambda := Lambda(mB2, mV2, q2)

	t2, err := ff.T2(q2)
	if err != nil {
		return 0, err
	}

	t23, err := ff.T23(q2)
	if err != nil {
		return 0, err
	}

	return ((mB2-mV2)*(mB2+3.0*mV2-q2)*t2 - 8.0*mB*mV2*(mB-mV)*t23) / lambda, nil
}

// FPerp returns the transversity form factor f_perp(q2).
func (ff *BSZPToV) FPerp(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	lambda := Lambda(mB*mB, mV*mV, q2)

	v, err := ff.V(q2)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(2.0*lambda) / mB / (mB + mV) * v, nil
}

// FPara returns the transversity form factor f_para(q2).
func (ff *BSZPToV) FPara(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV

	a1, err := ff.A1(q2)
	if err != nil {
		return 0, err
	}

	return math.Sqrt2 * (mB + mV) / mB * a1, nil
}

// FLong returns the longitudinal form factor f_long(q2).
func (ff *BSZPToV) FLong(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	mB2, mV2 := mB*mB, mV*mV
	lambda := Lambda(mB2, mV2, q2)

	a1, err := ff.A1(q2)
	if err != nil {
		return 0, err
	}

	a2, err := ff.A2(q2)
	if err != nil {
		return 0, err
	}

	return ((mB2-mV2-q2)*(mB+mV)*(mB+mV)*a1 - lambda*a2) / (2.0 * mV * mB2 * (mB + mV)), nil
}

// FPerpT returns the transversity tensor form factor f_perp^T(q2).
func (ff *BSZPToV) FPerpT(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	mB2 := mB * mB
	lambda := Lambda(mB2, mV*mV, q2)

	t1, err := ff.T1(q2)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(2.0*lambda) / mB2 * t1, nil
}

// FParaT returns the transversity tensor form factor f_para^T(q2).
func (ff *BSZPToV) FParaT(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	mB2, mV2 := mB*mB, mV*mV

	t2, err := ff.T2(q2)
	if err != nil {
		return 0, err
	}

	return math.Sqrt2 * (mB2 - mV2) / mB2 * t2, nil
}

// FLongT returns the longitudinal tensor form factor f_long^T(q2).
func (ff *BSZPToV) FLongT(q2 float64) (float64, error) {
	mB, mV := ff.process.MB, ff.process.MV
	mB2, mV2 := mB*mB, mV*mV
	lambda := Lambda(mB2, mV2, q2)

	t2, err := ff.T2(q2)
	if err != nil {
		return 0, err
	}

	t3, err := ff.T3(q2)
	if err != nil {
		return 0, err
	}

	return q2*(mB2+3.0*mV2-q2)/(2.0*mB2*mB*mV)*t2 -
		q2*lambda/(2.0*mB2*mB*mV*(mB2-mV2))*t3, nil
}

package formfactor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-hep/params"
)

func newPToP(t *testing.T, process PToPProcess) *BSZPToP {
	t.Helper()

	store := params.NewStore()
	ff, err := NewBSZPToP(store, process)
	require.NoError(t, err)

	return ff
}

func declarePToVCoefficients(store *params.Store, label string) {
	for _, name := range []string{
		"A0_0", "A0_1", "A0_2",
		"A1_0", "A1_1", "A1_2",
		"V_0", "V_1", "V_2",
		"T1_0", "T1_1", "T1_2",
		"T23_0", "T23_1", "T23_2",
		"A12_1", "A12_2",
		"T2_1", "T2_2",
	} {
		store.Declare(label+"::alpha^"+name+"@BSZ2015", 0.5)
	}
}

func newPToV(t *testing.T) *BSZPToV {
	t.Helper()

	store := params.NewStore()
	declarePToVCoefficients(store, DToKstar.Label)

	ff, err := NewBSZPToV(store, DToKstar)
	require.NoError(t, err)

	return ff
}

func TestLambda(t *testing.T) {
	// lambda(a, b, 0) = (a - b)^2
	require.InDelta(t, 9.0, Lambda(4.0, 1.0, 0.0), 1e-12)
	// fully symmetric
	require.Equal(t, Lambda(1.0, 2.0, 3.0), Lambda(3.0, 1.0, 2.0))
}

func TestPToP_ZAtZeroEqualsZ0(t *testing.T) {
	ff := newPToP(t, DToPi)

	require.InDelta(t, ff.Z0(), ff.Z(0.0), 1e-15)
}

func TestPToP_ZShrinksTowardsTau0(t *testing.T) {
	ff := newPToP(t, DToPi)

	// z vanishes at the expansion point and stays small over the
	// semileptonic region
	require.InDelta(t, 0.0, ff.Z(ff.tau0), 1e-12)

	tauM := (DToPi.MB - DToPi.MP) * (DToPi.MB - DToPi.MP)
	for _, q2 := range []float64{0.0, 0.5 * tauM, tauM} {
		z := ff.Z(q2)
		if z < -0.5 || z > 0.5 {
			t.Fatalf("z(%v) = %v outside expansion region", q2, z)
		}
	}
}

func TestPToP_FPlusAtZeroIsLeadingCoefficient(t *testing.T) {
	ff := newPToP(t, DToPi)

	fp, err := ff.FPlus(0.0)
	require.NoError(t, err)
	require.InDelta(t, 0.6117, fp, 1e-12)
}

func TestPToP_FZeroEqualsFPlusAtZero(t *testing.T) {
	for _, process := range []PToPProcess{DToPi, DToK} {
		ff := newPToP(t, process)

		fp, err := ff.FPlus(0.0)
		require.NoError(t, err)
		f0, err := ff.FZero(0.0)
		require.NoError(t, err)

		require.InDelta(t, fp, f0, 1e-12, "process %s", process.Label)
	}
}

func TestPToP_FPlusTVanishesAtZero(t *testing.T) {
	ff := newPToP(t, DToPi)

	fpt, err := ff.FPlusT(0.0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, fpt, 1e-15)
}

func TestPToP_FPlusTTracksFT(t *testing.T) {
	ff := newPToP(t, DToPi)

	const q2 = 1.5
	ft, err := ff.FT(q2)
	require.NoError(t, err)
	fpt, err := ff.FPlusT(q2)
	require.NoError(t, err)

	want := ft * q2 / DToPi.MB / (DToPi.MB + DToPi.MP)
	require.InDelta(t, want, fpt, 1e-12)
}

func TestPToP_PoleEnhancesFPlus(t *testing.T) {
	ff := newPToP(t, DToPi)

	fp0, err := ff.FPlus(0.0)
	require.NoError(t, err)
	fp2, err := ff.FPlus(2.0)
	require.NoError(t, err)

	require.Greater(t, fp2, fp0)
}

func TestPToP_LiveParameterRead(t *testing.T) {
	store := params.NewStore()
	ff, err := NewBSZPToP(store, DToPi)
	require.NoError(t, err)

	require.NoError(t, store.Set("D->pi::alpha^f+_0@BSZ2015", 0.7))

	fp, err := ff.FPlus(0.0)
	require.NoError(t, err)
	require.InDelta(t, 0.7, fp, 1e-12)
}

func TestPToP_MissingCoefficient(t *testing.T) {
	store := params.NewStore()

	bogus := DToPi
	bogus.Label = "D->rho"

	_, err := NewBSZPToP(store, bogus)
	require.ErrorIs(t, err, params.ErrUnknownParameter)
}

func TestPToV_T2EqualsT1AtZero(t *testing.T) {
	ff := newPToV(t)

	t1, err := ff.T1(0.0)
	require.NoError(t, err)
	t2, err := ff.T2(0.0)
	require.NoError(t, err)

	require.InDelta(t, t1, t2, 1e-12)
}

func TestPToV_A12ConstraintAtZero(t *testing.T) {
	ff := newPToV(t)

	mB, mV := DToKstar.MB, DToKstar.MV
	a0, err := ff.A0(0.0)
	require.NoError(t, err)
	a12, err := ff.A12(0.0)
	require.NoError(t, err)

	want := (mB*mB - mV*mV) / (8.0 * mB * mV) * a0
	require.InDelta(t, want, a12, 1e-12)
}

func TestPToV_A2ConsistentWithA12(t *testing.T) {
	ff := newPToV(t)

	// reconstruct A_12 from A_1 and A_2 and compare
	const q2 = 0.3
	mB, mV := DToKstar.MB, DToKstar.MV
	mB2, mV2 := mB*mB, mV*mV
	lambda := Lambda(mB2, mV2, q2)

	a1, err := ff.A1(q2)
	require.NoError(t, err)
	a2, err := ff.A2(q2)
	require.NoError(t, err)
	a12, err := ff.A12(q2)
	require.NoError(t, err)

	want := ((mB+mV)*(mB+mV)*(mB2-mV2-q2)*a1 - lambda*a2) / (16.0 * mB * mV2 * (mB + mV))
	require.InDelta(t, want, a12, 1e-10)
}

func TestPToV_FLongTVanishesAtZero(t *testing.T) {
	ff := newPToV(t)

	fl, err := ff.FLongT(0.0)
	require.NoError(t, err)
	require.InDelta(t, 0.0, fl, 1e-12)
}

func TestPToV_DefaultCoefficients(t *testing.T) {
	// D->K^* works against an unmodified store
	ff, err := NewBSZPToV(params.NewStore(), DToKstar)
	require.NoError(t, err)

	v, err := ff.V(0.0)
	require.NoError(t, err)
	require.InDelta(t, 1.03, v, 1e-12)

	a1, err := ff.A1(0.0)
	require.NoError(t, err)
	require.InDelta(t, 0.60, a1, 1e-12)
}

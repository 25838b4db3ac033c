package decay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-hep/params"
)

func newDecay(t *testing.T, options params.Options) *PseudoscalarLeptonNeutrino {
	t.Helper()

	store := params.NewStore()
	d, err := New(store, options)
	require.NoError(t, err)

	return d
}

func TestDefaultIsCabibboFavored(t *testing.T) {
	d := newDecay(t, nil)

	// D_d -> K_d with a muon
	require.InDelta(t, 0.1056583745*0.1056583745, d.Q2Min(), 1e-12)

	diff := 1.86966 - 0.497611
	require.InDelta(t, diff*diff, d.Q2Max(), 1e-12)
}

func TestUnsupportedCombination(t *testing.T) {
	store := params.NewStore()

	_, err := New(store, params.Options{"Q": "s", "q": "s", "I": "0"})
	require.ErrorIs(t, err, ErrUnsupportedProcess)
}

func TestInvalidLeptonOption(t *testing.T) {
	store := params.NewStore()

	_, err := New(store, params.Options{"l": "x"})
	require.ErrorIs(t, err, params.ErrInvalidOption)
}

func TestSumRuleFormFactorsCoverPionOnly(t *testing.T) {
	store := params.NewStore()

	_, err := New(store, params.Options{"form-factors": "KKMO2009"})
	require.ErrorIs(t, err, ErrUnsupportedProcess)

	_, err = New(store, params.Options{
		"form-factors": "KKMO2009",
		"Q":            "d",
		"q":            "d",
		"I":            "1",
	})
	require.NoError(t, err)
}

func TestWidthVanishesOutsidePhaseSpace(t *testing.T) {
	d := newDecay(t, nil)

	w, err := d.NormalizedDifferentialWidth(d.Q2Max() + 0.5)
	require.NoError(t, err)
	require.Zero(t, w)

	w, err = d.NormalizedDifferentialWidth(0.5 * d.Q2Min())
	require.NoError(t, err)
	require.Zero(t, w)

	w2, err := d.TwoFoldDifferentialWidth(d.Q2Max()+0.5, 0.3)
	require.NoError(t, err)
	require.Zero(t, w2)
}

func TestTwoFoldIntegratesToSingleDifferential(t *testing.T) {
	d := newDecay(t, nil)

	// the cos(theta_l) dependence is quadratic, so Simpson's rule
	// is exact
	for _, q2 := range []float64{0.2, 0.8, 1.5} {
		fm, err := d.TwoFoldDifferentialWidth(q2, -1.0)
		require.NoError(t, err)
		f0, err := d.TwoFoldDifferentialWidth(q2, 0.0)
		require.NoError(t, err)
		fp, err := d.TwoFoldDifferentialWidth(q2, 1.0)
		require.NoError(t, err)

		simpson := (fm + 4.0*f0 + fp) / 3.0

		w, err := d.NormalizedDifferentialWidth(q2)
		require.NoError(t, err)
		require.InEpsilon(t, w, simpson, 1e-10, "q2 = %v", q2)
	}
}

func TestElectronModeIsHelicitySuppressed(t *testing.T) {
	d := newDecay(t, params.Options{"l": "e"})

	afb, err := d.DifferentialAFB(1.0)
	require.NoError(t, err)
	require.Less(t, math.Abs(afb), 1e-4)

	fh, err := d.DifferentialFlatTerm(1.0)
	require.NoError(t, err)
	require.Less(t, math.Abs(fh), 1e-4)

	pol, err := d.DifferentialLeptonPolarization(1.0)
	require.NoError(t, err)
	require.InDelta(t, -1.0, pol, 1e-3)
}

func TestTauModeIsClosed(t *testing.T) {
	d := newDecay(t, params.Options{"l": "tau"})

	// m_tau^2 exceeds (m_D - m_K)^2
	require.Greater(t, d.Q2Min(), d.Q2Max())

	w, err := d.NormalizedDifferentialWidth(1.0)
	require.NoError(t, err)
	require.Zero(t, w)
}

func TestBranchingRatioMagnitude(t *testing.T) {
	d := newDecay(t, nil)

	br, err := d.IntegratedBranchingRatio(d.Q2Min(), d.Q2Max())
	require.NoError(t, err)

	// D -> K mu nu sits at roughly 9 percent
	require.Greater(t, br, 0.04)
	require.Less(t, br, 0.15)
}

func TestElectronWidthExceedsMuonWidth(t *testing.T) {
	de := newDecay(t, params.Options{"l": "e"})
	dmu := newDecay(t, params.Options{"l": "mu"})

	we, err := de.NormalizedIntegratedWidth(de.Q2Min(), de.Q2Max())
	require.NoError(t, err)

	wmu, err := dmu.NormalizedIntegratedWidth(dmu.Q2Min(), dmu.Q2Max())
	require.NoError(t, err)

	require.Greater(t, we, wmu)
	require.Greater(t, wmu, 0.0)
}

func TestNeutralPionIsospinFactor(t *testing.T) {
	charged := newDecay(t, params.Options{"Q": "d", "q": "u", "I": "1"})
	neutral := newDecay(t, params.Options{"Q": "d", "q": "d", "I": "1"})

	wc, err := charged.NormalizedDifferentialWidth(1.0)
	require.NoError(t, err)

	wn, err := neutral.NormalizedDifferentialWidth(1.0)
	require.NoError(t, err)

	// amplitude ratio sqrt(2), width ratio 2 up to small isospin
	// breaking in the masses
	require.InEpsilon(t, 2.0, wc/wn, 0.05)
}

func TestVectorCouplingScalesWidth(t *testing.T) {
	d := newDecay(t, nil)

	w0, err := d.NormalizedDifferentialWidth(1.0)
	require.NoError(t, err)

	d.Couplings.GV = 1.0

	w1, err := d.NormalizedDifferentialWidth(1.0)
	require.NoError(t, err)

	// h_0 and h_t both scale with (1 + gV)
	require.InEpsilon(t, 4.0*w0, w1, 1e-12)
}

func TestScalarCouplingBreaksHelicitySuppression(t *testing.T) {
	d := newDecay(t, params.Options{"l": "e"})

	d.Couplings.GS = 0.1

	fh, err := d.DifferentialFlatTerm(1.0)
	require.NoError(t, err)
	require.Greater(t, fh, 1e-3)
}

func TestPDFNormalization(t *testing.T) {
	d := newDecay(t, nil)

	width := d.Q2Max() - d.Q2Min()
	pdf, err := d.IntegratedPDFQ2(d.Q2Min(), d.Q2Max())
	require.NoError(t, err)
	require.InDelta(t, 1.0, pdf*width, 1e-12)
}

func TestPDFWJacobian(t *testing.T) {
	d := newDecay(t, nil)

	mD := 1.86966
	mP := 0.497611
	w := 1.2
	q2 := mD*mD + mP*mP - 2.0*mD*mP*w

	pdfW, err := d.PDFW(w)
	require.NoError(t, err)

	pdfQ2, err := d.PDFQ2(q2)
	require.NoError(t, err)

	require.InEpsilon(t, 2.0*mD*mP*pdfQ2, pdfW, 1e-12)
}

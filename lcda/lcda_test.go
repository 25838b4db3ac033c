package lcda

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-hep/params"
	"github.com/cwbudde/algo-hep/qcd"
)

func newTestPion(t *testing.T) *Pion {
	t.Helper()

	store := params.NewStore()
	model, err := qcd.NewModel(store)
	require.NoError(t, err)

	pion, err := NewPion(store, model)
	require.NoError(t, err)

	return pion
}

// simpson integrates f over [0, 1] with 2n panels.
func simpson(f func(float64) float64, n int) float64 {
	h := 1.0 / float64(2*n)
	sum := f(0.0) + f(1.0)

	for i := 1; i < 2*n; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}

		sum += w * f(h*float64(i))
	}

	return sum * h / 3.0
}

func TestPhi_Normalization(t *testing.T) {
	pion := newTestPion(t)

	for _, mu := range []float64{1.0, 1.5, 3.0} {
		got := simpson(func(u float64) float64 { return pion.Phi(u, mu) }, 400)
		require.InDelta(t, 1.0, got, 1e-8, "mu = %v", mu)
	}
}

func TestPhi_EndpointsVanish(t *testing.T) {
	pion := newTestPion(t)

	require.InDelta(t, 0.0, pion.Phi(0.0, 3.0), 1e-15)
	require.InDelta(t, 0.0, pion.Phi(1.0, 3.0), 1e-15)
}

func TestPhi_Symmetric(t *testing.T) {
	pion := newTestPion(t)

	for _, u := range []float64{0.1, 0.25, 0.4} {
		require.InDelta(t, pion.Phi(u, 3.0), pion.Phi(1.0-u, 3.0), 1e-13)
	}
}

func TestPhi3s_Normalization(t *testing.T) {
	pion := newTestPion(t)

	got := simpson(func(u float64) float64 { return pion.Phi3s(u, 3.0) }, 400)
	require.InDelta(t, 1.0, got, 1e-8)
}

func TestPhi3sD1_MatchesFiniteDifference(t *testing.T) {
	pion := newTestPion(t)

	const h = 1e-6
	for _, u := range []float64{0.2, 0.5, 0.8} {
		numeric := (pion.Phi3s(u+h, 3.0) - pion.Phi3s(u-h, 3.0)) / (2 * h)
		require.InDelta(t, numeric, pion.Phi3sD1(u, 3.0), 1e-5)
	}
}

func TestPsi4I_DerivativeIsPsi4(t *testing.T) {
	pion := newTestPion(t)

	const h = 1e-6
	for _, u := range []float64{0.2, 0.5, 0.8} {
		numeric := (pion.Psi4I(u+h, 3.0) - pion.Psi4I(u-h, 3.0)) / (2 * h)
		require.InDelta(t, pion.Psi4(u, 3.0), numeric, 1e-5)
	}
}

func TestPsi4I_VanishesAtEndpoints(t *testing.T) {
	pion := newTestPion(t)

	require.InDelta(t, 0.0, pion.Psi4I(0.0, 3.0), 1e-15)
	require.InDelta(t, 0.0, pion.Psi4I(1.0, 3.0), 1e-15)
}

func TestPhi4_DerivativesMatchFiniteDifference(t *testing.T) {
	pion := newTestPion(t)

	const h = 1e-5
	for _, u := range []float64{0.2, 0.35, 0.5, 0.65, 0.8} {
		d1 := (pion.Phi4(u+h, 3.0) - pion.Phi4(u-h, 3.0)) / (2 * h)
		require.InDelta(t, d1, pion.Phi4D1(u, 3.0), 1e-4, "d1 at u = %v", u)

		d2 := (pion.Phi4(u+h, 3.0) - 2*pion.Phi4(u, 3.0) + pion.Phi4(u-h, 3.0)) / (h * h)
		require.InDelta(t, d2, pion.Phi4D2(u, 3.0), 1e-3, "d2 at u = %v", u)
	}
}

func TestMoments_EvolveDownward(t *testing.T) {
	pion := newTestPion(t)

	// Gegenbauer moments shrink with increasing scale
	require.Less(t, pion.A2(3.0), pion.A2(1.0))
	require.Less(t, pion.A4(3.0), pion.A4(1.0))
	require.Less(t, pion.F3(3.0), pion.F3(1.0))

	// omega4 carries a negative anomalous-dimension exponent
	require.Greater(t, pion.Omega4(3.0), pion.Omega4(1.0))
}

func TestMoments_ReferenceScaleIdentity(t *testing.T) {
	pion := newTestPion(t)

	require.InDelta(t, 0.17, pion.A2(1.0), 1e-10)
	require.InDelta(t, 0.06, pion.A4(1.0), 1e-10)
	require.InDelta(t, 0.18, pion.Delta2(1.0), 1e-10)
}

func TestMuPi_GrowsWithScale(t *testing.T) {
	pion := newTestPion(t)

	// light-quark masses run down, so mu_pi runs up
	require.Greater(t, pion.MuPi(3.0), pion.MuPi(2.0))
	require.Greater(t, pion.MuPi(2.0), 1.0)
}

package qcd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-hep/params"
)

func newTestModel(t *testing.T) (*params.Store, *Model) {
	t.Helper()

	store := params.NewStore()
	model, err := NewModel(store)
	require.NoError(t, err)

	return store, model
}

func TestAlphaS_ReferenceScale(t *testing.T) {
	_, model := newTestModel(t)

	// zero evolution span reproduces the input
	require.InDelta(t, 0.1179, model.AlphaS(91.1876), 1e-10)
}

func TestAlphaS_Monotone(t *testing.T) {
	_, model := newTestModel(t)

	scales := []float64{1.0, 1.5, 2.0, 3.0, 4.18, 5.0, 10.0, 50.0, 91.1876}
	for i := 1; i < len(scales); i++ {
		lo := model.AlphaS(scales[i])
		hi := model.AlphaS(scales[i-1])
		if hi <= lo {
			t.Fatalf("alpha_s(%v) = %v not above alpha_s(%v) = %v",
				scales[i-1], lo, scales[i], hi)
		}
	}
}

func TestAlphaS_CharmScaleWindow(t *testing.T) {
	_, model := newTestModel(t)

	// alpha_s(3 GeV) with alpha_s(MZ) = 0.1179 comes out near 0.25
	a := model.AlphaS(3.0)
	require.Greater(t, a, 0.23)
	require.Less(t, a, 0.28)
}

func TestAlphaS_ThresholdContinuity(t *testing.T) {
	store, model := newTestModel(t)

	mb, err := store.Get("mass::b(MSbar)")
	require.NoError(t, err)

	below := model.AlphaS(mb * (1 - 1e-8))
	above := model.AlphaS(mb * (1 + 1e-8))
	require.InDelta(t, above, below, 1e-6)
}

func TestMCMSbar_ReferenceScale(t *testing.T) {
	store, model := newTestModel(t)

	mc, err := store.Get("mass::c(MSbar)")
	require.NoError(t, err)
	require.InDelta(t, mc, model.MCMSbar(mc), 1e-10)
}

func TestMCMSbar_RunsDownWithScale(t *testing.T) {
	_, model := newTestModel(t)

	// m_c(3 GeV) sits below m_c(m_c)
	m3 := model.MCMSbar(3.0)
	require.Greater(t, m3, 0.90)
	require.Less(t, m3, 1.10)
	require.Less(t, m3, model.MCMSbar(1.5))
}

func TestMBMSbar_ReferenceScale(t *testing.T) {
	store, model := newTestModel(t)

	mb, err := store.Get("mass::b(MSbar)")
	require.NoError(t, err)
	require.InDelta(t, mb, model.MBMSbar(mb), 1e-10)
}

func TestLightMass_LinearInReferenceValue(t *testing.T) {
	store, model := newTestModel(t)

	base := model.MDMSbar(3.0)

	require.NoError(t, store.Set("mass::d(2GeV)", 2*0.0047))
	require.InDelta(t, 2*base, model.MDMSbar(3.0), 1e-10)
}

func TestLightMass_LeadingOrderExponent(t *testing.T) {
	_, model := newTestModel(t)

	// between 2 and 3 GeV the mass ratio tracks
	// (alpha_s(3)/alpha_s(2))^(gamma_0/beta_0) up to higher orders
	ratio := model.MDMSbar(3.0) / model.MDMSbar(2.0)
	lo := math.Pow(model.AlphaS(3.0)/model.AlphaS(2.0), 12.0/25.0)
	require.InDelta(t, lo, ratio, 0.02)
}

func TestModel_Accessors(t *testing.T) {
	store := params.NewStore()
	model, err := NewModel(store)
	require.NoError(t, err)
	require.NotNil(t, model)

	require.Equal(t, 0.22486, model.VCD())
	require.Equal(t, 0.97349, model.VCS())
	require.Equal(t, 1.1663787e-5, model.GFermi())
}

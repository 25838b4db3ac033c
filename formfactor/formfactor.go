// Package formfactor defines hadronic form factors for semileptonic
// heavy-meson transitions. It provides the transition interfaces used
// by the decay package together with a simplified series expansion
// parametrization; the light-cone sum-rule calculation lives in the
// dtopi subpackage.
package formfactor

// PToP exposes the form factors of a pseudoscalar-to-pseudoscalar
// transition. All form factors are functions of the momentum transfer
// squared q2 in GeV^2.
type PToP interface {
	// FPlus is the vector form factor f_+(q2).
	FPlus(q2 float64) (float64, error)
	// FZero is the scalar form factor f_0(q2).
	FZero(q2 float64) (float64, error)
	// FT is the tensor form factor f_T(q2).
	FT(q2 float64) (float64, error)
	// FPlusT is the combination f_T(q2) q2 / (m_B (m_B + m_P)).
	FPlusT(q2 float64) (float64, error)
}

// PToV exposes the form factors of a pseudoscalar-to-vector
// transition.
type PToV interface {
	V(q2 float64) (float64, error)
	A0(q2 float64) (float64, error)
	A1(q2 float64) (float64, error)
	A2(q2 float64) (float64, error)
	A12(q2 float64) (float64, error)
	T1(q2 float64) (float64, error)
	T2(q2 float64) (float64, error)
	T23(q2 float64) (float64, error)
	T3(q2 float64) (float64, error)

	FPerp(q2 float64) (float64, error)
	FPara(q2 float64) (float64, error)
	FLong(q2 float64) (float64, error)
	FPerpT(q2 float64) (float64, error)
	FParaT(q2 float64) (float64, error)
	FLongT(q2 float64) (float64, error)
}

// Lambda is the Kaellen triangle function lambda(a, b, c).
func Lambda(a, b, c float64) float64 {
	return a*a + b*b + c*c - 2.0*(a*b+a*c+b*c)
}

// PToPProcess collects the static inputs of a pseudoscalar-to-
// pseudoscalar transition: the external masses and the squared masses
// of the subthreshold resonances appearing as simple poles.
type PToPProcess struct {
	Label string

	MB float64 // decaying meson mass [GeV]
	MP float64 // final-state meson mass [GeV]

	MR2OneMinus float64 // 1^- resonance mass squared [GeV^2]
	MR2ZeroPlus float64 // 0^+ resonance mass squared [GeV^2]
}

// PToVProcess collects the static inputs of a pseudoscalar-to-vector
// transition.
type PToVProcess struct {
	Label string

	MB float64
	MV float64

	MR2ZeroMinus float64
	MR2OneMinus  float64
	MR2OnePlus   float64
}

// Predefined charm transitions. Resonance masses follow the PDG.
var (
	DToPi = PToPProcess{
		Label:       "D->pi",
		MB:          1.86966,
		MP:          0.13957,
		MR2OneMinus: 2.01026 * 2.01026, // D*(2010)
		MR2ZeroPlus: 2.343 * 2.343,     // D*_0(2300)
	}

	DToK = PToPProcess{
		Label:       "D->K",
		MB:          1.86966,
		MP:          0.493677,
		MR2OneMinus: 2.1122 * 2.1122, // D*_s
		MR2ZeroPlus: 2.317 * 2.317,   // D*_s0(2317)
	}

	DsToK = PToPProcess{
		Label:       "D_s->K",
		MB:          1.96835,
		MP:          0.497611,
		MR2OneMinus: 2.01026 * 2.01026, // D*(2010)
		MR2ZeroPlus: 2.343 * 2.343,     // D*_0(2300)
	}

	DToKstar = PToVProcess{
		Label:        "D->K^*",
		MB:           1.86966,
		MV:           0.89555,
		MR2ZeroMinus: 1.96835 * 1.96835, // D_s
		MR2OneMinus:  2.1122 * 2.1122,   // D*_s
		MR2OnePlus:   2.4595 * 2.4595,   // D_s1(2460)
	}
)

package params

// defaults holds the central values of all parameters known to the
// store. Masses and lifetimes follow the PDG, sum-rule and condensate
// inputs follow the KKMO2009 light-cone sum-rule analysis.
var defaults = map[string]float64{
	// meson masses [GeV]
	"mass::D_d":  1.86966,
	"mass::D_u":  1.86484,
	"mass::D_s":  1.96835,
	"mass::pi^+": 0.13957,
	"mass::pi^0": 0.134977,
	"mass::K_u":  0.493677,
	"mass::K_d":  0.497611,

	// quark masses [GeV]: heavy quarks at their own scale, light
	// quarks in the MSbar scheme at 2 GeV
	"mass::c(MSbar)": 1.27,
	"mass::b(MSbar)": 4.18,
	"mass::u(2GeV)":  0.0022,
	"mass::d(2GeV)":  0.0047,
	"mass::s(2GeV)":  0.0935,
	"mass::Z":        91.1876,

	// lepton masses [GeV]
	"mass::e":   5.10998946e-4,
	"mass::mu":  0.1056583745,
	"mass::tau": 1.77686,

	// decay constants [GeV]
	"decay-constant::pi": 0.1302,

	// meson lifetimes [s]
	"life_time::D_d": 1.033e-12,
	"life_time::D_u": 4.103e-13,
	"life_time::D_s": 5.012e-13,

	// CKM matrix elements (absolute values)
	"CKM::|V_cd|": 0.22486,
	"CKM::|V_cs|": 0.97349,

	// electroweak inputs
	"WET::G_Fermi": 1.1663787e-5,

	// hbar [GeV s], converts widths to rates
	"QM::hbar": 6.582119569e-25,

	// renormalization scales of the c -> Q l nu matrix elements [GeV]
	"cdlnu::mu": 2.0,
	"cslnu::mu": 2.0,

	// strong coupling
	"QCD::alpha_s(MZ)": 0.1179,

	// QCD condensates
	"QCD::m_0^2":   0.8,
	"QCD::cond_GG": 0.012,
	"QCD::r_vac":   1.0,

	// pion light-cone distribution amplitude moments at 1 GeV
	"pi::a2@1GeV":      0.17,
	"pi::a4@1GeV":      0.06,
	"pi::f3@1GeV":      0.0045,
	"pi::omega3@1GeV":  -1.5,
	"pi::omega4@1GeV":  0.2,
	"pi::delta^2@1GeV": 0.18,

	// D -> pi light-cone sum-rule inputs
	"D->pi::M^2@KKMO2009":        4.5,
	"D->pi::Mp^2@KKMO2009":       1.5,
	"D->pi::s_0^+(0)@KKMO2009":   7.0,
	"D->pi::s_0^+'(0)@KKMO2009":  0.0,
	"D->pi::s_0^+''(0)@KKMO2009": 0.0,
	"D->pi::s_0^0(0)@KKMO2009":   7.0,
	"D->pi::s_0^0'(0)@KKMO2009":  0.0,
	"D->pi::s_0^0''(0)@KKMO2009": 0.0,
	"D->pi::s_0^T(0)@KKMO2009":   7.0,
	"D->pi::s_0^T'(0)@KKMO2009":  0.0,
	"D->pi::s_0^T''(0)@KKMO2009": 0.0,
	"D->pi::sp_0^B@KKMO2009":     6.0,
	"D->pi::mu@KKMO2009":         1.5,
	"D->pi::zeta(NNLO)@KKMO2009": 0.0,

	// D -> pi series-expansion coefficients
	"D->pi::alpha^f+_0@BSZ2015": 0.6117,
	"D->pi::alpha^f+_1@BSZ2015": -1.985,
	"D->pi::alpha^f+_2@BSZ2015": 1.391,
	"D->pi::alpha^f0_1@BSZ2015": 0.761,
	"D->pi::alpha^f0_2@BSZ2015": 0.522,
	"D->pi::alpha^fT_0@BSZ2015": 0.5063,
	"D->pi::alpha^fT_1@BSZ2015": -1.10,
	"D->pi::alpha^fT_2@BSZ2015": 2.04,

	// D -> K series-expansion coefficients
	"D->K::alpha^f+_0@BSZ2015": 0.7647,
	"D->K::alpha^f+_1@BSZ2015": -0.066,
	"D->K::alpha^f+_2@BSZ2015": -1.605,
	"D->K::alpha^f0_1@BSZ2015": 0.775,
	"D->K::alpha^f0_2@BSZ2015": 0.508,
	"D->K::alpha^fT_0@BSZ2015": 0.6871,
	"D->K::alpha^fT_1@BSZ2015": -0.92,
	"D->K::alpha^fT_2@BSZ2015": 0.75,

	// D_s -> K series-expansion coefficients
	"D_s->K::alpha^f+_0@BSZ2015": 0.6200,
	"D_s->K::alpha^f+_1@BSZ2015": -1.80,
	"D_s->K::alpha^f+_2@BSZ2015": 1.2,
	"D_s->K::alpha^f0_1@BSZ2015": 0.70,
	"D_s->K::alpha^f0_2@BSZ2015": 0.45,
	"D_s->K::alpha^fT_0@BSZ2015": 0.5200,
	"D_s->K::alpha^fT_1@BSZ2015": -1.00,
	"D_s->K::alpha^fT_2@BSZ2015": 1.8,

	// D -> K^* series-expansion coefficients
	"D->K^*::alpha^A0_0@BSZ2015":  0.76,
	"D->K^*::alpha^A0_1@BSZ2015":  -2.2,
	"D->K^*::alpha^A0_2@BSZ2015":  1.5,
	"D->K^*::alpha^A1_0@BSZ2015":  0.60,
	"D->K^*::alpha^A1_1@BSZ2015":  0.45,
	"D->K^*::alpha^A1_2@BSZ2015":  0.9,
	"D->K^*::alpha^A12_1@BSZ2015": 0.35,
	"D->K^*::alpha^A12_2@BSZ2015": 0.6,
	"D->K^*::alpha^V_0@BSZ2015":   1.03,
	"D->K^*::alpha^V_1@BSZ2015":   -3.0,
	"D->K^*::alpha^V_2@BSZ2015":   2.3,
	"D->K^*::alpha^T1_0@BSZ2015":  0.67,
	"D->K^*::alpha^T1_1@BSZ2015":  -2.4,
	"D->K^*::alpha^T1_2@BSZ2015":  1.7,
	"D->K^*::alpha^T2_1@BSZ2015":  0.55,
	"D->K^*::alpha^T2_2@BSZ2015":  0.9,
	"D->K^*::alpha^T23_0@BSZ2015": 1.20,
	"D->K^*::alpha^T23_1@BSZ2015": 0.1,
	"D->K^*::alpha^T23_2@BSZ2015": 1.2,
}

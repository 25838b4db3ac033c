package dtopi

// Diagnostic is a single named intermediate result of the sum rule
// evaluation, intended for comparison against published numbers.
type Diagnostic struct {
	Value       float64
	Description string
}

// Diagnostics evaluates the spectral density, the decay constant, the
// Borel rescale factors and the duality masses at reference points.
func (ff *FormFactor) Diagnostics() ([]Diagnostic, error) {
	results := []Diagnostic{
		{rho1(6.5, 1.27, 1.4), "rho_1(s = 6.5, m_c = 1.27, mu = 1.4) [KKMO2009]"},
		{rho1(7.0, 1.27, 1.4), "rho_1(s = 7.0, m_c = 1.27, mu = 1.4) [KKMO2009]"},
		{rho1(7.5, 1.27, 1.4), "rho_1(s = 7.5, m_c = 1.27, mu = 1.4) [KKMO2009]"},
	}

	fD, err := ff.DecayConstant()
	if err != nil {
		return nil, err
	}
	results = append(results, Diagnostic{fD, "f_D [KKMO2009]"})

	probes := []struct {
		fn     func(float64) (float64, error)
		format [2]string
	}{
		{ff.rescaleP, [2]string{"rescale factor (f_+, q2 = 0.0) [KKMO2009]", "rescale factor (f_+, q2 = 1.0) [KKMO2009]"}},
		{ff.rescale0, [2]string{"rescale factor (f_0, q2 = 0.0) [KKMO2009]", "rescale factor (f_0, q2 = 1.0) [KKMO2009]"}},
		{ff.rescaleT, [2]string{"rescale factor (f_T, q2 = 0.0) [KKMO2009]", "rescale factor (f_T, q2 = 1.0) [KKMO2009]"}},
		{ff.DualityMassPlus, [2]string{"M_D(f_+, q2 = 0.0) [KKMO2009]", "M_D(f_+, q2 = 1.0) [KKMO2009]"}},
		{ff.DualityMassZero, [2]string{"M_D(f_0, q2 = 0.0) [KKMO2009]", "M_D(f_0, q2 = 1.0) [KKMO2009]"}},
		{ff.DualityMassT, [2]string{"M_D(f_T, q2 = 0.0) [KKMO2009]", "M_D(f_T, q2 = 1.0) [KKMO2009]"}},
	}

	for _, probe := range probes {
		for i, q2 := range [2]float64{0.0, 1.0} {
			value, err := probe.fn(q2)
			if err != nil {
				return nil, err
			}
			results = append(results, Diagnostic{value, probe.format[i]})
		}
	}

	return results, nil
}

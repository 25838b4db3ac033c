package dtopi

// Per-twist contributions to the correlators, evaluated with the
// rescaled Borel parameter of the respective channel. These are mainly
// useful for inspecting the convergence of the twist expansion.

func (ff *FormFactor) borelP(q2 float64) (float64, error) {
	rescale, err := ff.rescaleP(q2)
	if err != nil {
		return 0, err
	}

	return ff.M2() * rescale, nil
}

func (ff *FormFactor) borel0(q2 float64) (float64, error) {
	rescale, err := ff.rescale0(q2)
	if err != nil {
		return 0, err
	}

	return ff.M2() * rescale, nil
}

func (ff *FormFactor) borelT(q2 float64) (float64, error) {
	rescale, err := ff.rescaleT(q2)
	if err != nil {
		return 0, err
	}

	return ff.M2() * rescale, nil
}

// FLoTw2 is the twist-2 leading-order part of the f_+ correlator.
func (ff *FormFactor) FLoTw2(q2 float64) (float64, error) {
	m2, err := ff.borelP(q2)
	if err != nil {
		return 0, err
	}

	return ff.fLoTw2(ff.kin(), q2, m2, 0.0, 0.0)
}

// FLoTw3 is the twist-3 leading-order part of the f_+ correlator.
func (ff *FormFactor) FLoTw3(q2 float64) (float64, error) {
	m2, err := ff.borelP(q2)
	if err != nil {
		return 0, err
	}

	return ff.fLoTw3(ff.kin(), q2, m2, 0.0, 0.0)
}

// FLoTw4 is the twist-4 leading-order part of the f_+ correlator.
func (ff *FormFactor) FLoTw4(q2 float64) (float64, error) {
	m2, err := ff.borelP(q2)
	if err != nil {
		return 0, err
	}

	return ff.fLoTw4(ff.kin(), q2, m2, 0.0, 0.0)
}

// FNloTw2 is the twist-2 gluon correction to the f_+ correlator.
func (ff *FormFactor) FNloTw2(q2 float64) (float64, error) {
	m2, err := ff.borelP(q2)
	if err != nil {
		return 0, err
	}

	return ff.fNloTw2(ff.kin(), q2, m2, 0.0)
}

// FNloTw3 is the twist-3 gluon correction to the f_+ correlator.
func (ff *FormFactor) FNloTw3(q2 float64) (float64, error) {
	m2, err := ff.borelP(q2)
	if err != nil {
		return 0, err
	}

	return ff.fNloTw3(ff.kin(), q2, m2, 0.0)
}

// FTilLoTw3 is the twist-3 leading-order part of the f_0 correlator.
func (ff *FormFactor) FTilLoTw3(q2 float64) (float64, error) {
	m2, err := ff.borel0(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTilLoTw3(ff.kin(), q2, m2, 0.0)
}

// FTilLoTw4 is the twist-4 leading-order part of the f_0 correlator.
func (ff *FormFactor) FTilLoTw4(q2 float64) (float64, error) {
	m2, err := ff.borel0(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTilLoTw4(ff.kin(), q2, m2, 0.0)
}

// FTilNloTw2 is the twist-2 gluon correction to the f_0 correlator.
func (ff *FormFactor) FTilNloTw2(q2 float64) (float64, error) {
	m2, err := ff.borel0(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTilNloTw2(ff.kin(), q2, m2, 0.0)
}

// FTilNloTw3 is the twist-3 gluon correction to the f_0 correlator.
func (ff *FormFactor) FTilNloTw3(q2 float64) (float64, error) {
	m2, err := ff.borel0(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTilNloTw3(ff.kin(), q2, m2, 0.0)
}

// FTLoTw2 is the twist-2 leading-order part of the f_T correlator.
func (ff *FormFactor) FTLoTw2(q2 float64) (float64, error) {
	m2, err := ff.borelT(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTLoTw2(ff.kin(), q2, m2, 0.0)
}

// FTLoTw3 is the twist-3 leading-order part of the f_T correlator.
func (ff *FormFactor) FTLoTw3(q2 float64) (float64, error) {
	m2, err := ff.borelT(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTLoTw3(ff.kin(), q2, m2, 0.0)
}

// FTLoTw4 is the twist-4 leading-order part of the f_T correlator.
func (ff *FormFactor) FTLoTw4(q2 float64) (float64, error) {
	m2, err := ff.borelT(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTLoTw4(ff.kin(), q2, m2, 0.0)
}

// FTNloTw2 is the twist-2 gluon correction to the f_T correlator.
func (ff *FormFactor) FTNloTw2(q2 float64) (float64, error) {
	m2, err := ff.borelT(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTNloTw2(ff.kin(), q2, m2, 0.0)
}

// FTNloTw3 is the twist-3 gluon correction to the f_T correlator.
func (ff *FormFactor) FTNloTw3(q2 float64) (float64, error) {
	m2, err := ff.borelT(q2)
	if err != nil {
		return 0, err
	}

	return ff.fTNloTw3(ff.kin(), q2, m2, 0.0)
}

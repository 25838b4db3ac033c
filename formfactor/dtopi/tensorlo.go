package dtopi

import (
	"fmt"
	"math"
)

// FT correlator, leading order. Note the single power of the charm
// mass in the prefactor.

func (ff *FormFactor) fTLoTw2Integrand(k kinematics, u, q2, m2, selectWeight float64) float64 {
	weight, exp := borelWeight(k, u, q2, m2, selectWeight)

	return weight * exp / u * ff.pion.Phi(u, k.mu)
}

func (ff *FormFactor) fTLoTw2(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	integral, err := ff.integrator.Integrate(func(u float64) float64 {
		return ff.fTLoTw2Integrand(k, u, q2, m2, selectWeight)
	}, u0(k.mc2, q2, ff.s0TD(q2)), 1.0)
	if err != nil {
		return 0, fmt.Errorf("tensor twist-2 leading order: %w", err)
	}

	return k.mc * k.fpi * integral, nil
}

func (ff *FormFactor) fTLoTw3Integrand(k kinematics, u, q2, m2, selectWeight float64) float64 {
	mupi := ff.pion.MuPi(k.mu)
	u2 := u * u
	d := k.mc2 - q2 + u2*k.mpi2

	weight, exp := borelWeight(k, u, q2, m2, selectWeight)

	return -k.mc * mupi * weight * exp *
		(ff.pion.Phi3sD1(u, k.mu) - 2.0*u*k.mpi2*ff.pion.Phi3s(u, k.mu)/d) / (3.0 * d)
}

func (ff *FormFactor) fTLoTw3(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	integral, err := ff.integrator.Integrate(func(u float64) float64 {
		return ff.fTLoTw3Integrand(k, u, q2, m2, selectWeight)
	}, u0(k.mc2, q2, ff.s0TD(q2)), 1.0)
	if err != nil {
		return 0, fmt.Errorf("tensor twist-3 leading order: %w", err)
	}

	return k.mc * k.fpi * integral, nil
}

func (ff *FormFactor) fTLoTw4(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	a2 := ff.pion.A2(k.mu)
	delta2 := ff.pion.Delta2(k.mu)
	omega4 := ff.pion.Omega4(k.mu)
	mpi2, mpi4 := k.mpi2, k.mpi4

	i4T := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u
		u4 := u2 * u2
		u5 := u4 * u
		ubar := 1.0 - u
		ubar2 := ubar * ubar
		atanh := math.Atanh(1.0 - 2.0*u)

		return 1.0 / 40.0 * (mpi2*((90.0*u5-225.0*u4+90.0*u3+90.0*u2-45.0*u)+
			9.0*a2*(70.0*u5-227.0*u4+254.0*u3-94.0*u2-3.0*u+
				16.0*(6.0*u2-15.0*u+10.0)*u3*atanh-8.0*math.Log(ubar))) +
			10.0*(40.0*u2*ubar2-
				21.0*(-40.0*u5+87.0*u4-54.0*u3+9.0*u2-2.0*u+
					4.0*(6.0*u2-15.0*u+10.0)*u3*atanh-2.0*math.Log(ubar))*omega4)*delta2)
	}
	i4TD1 := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u
		u4 := u3 * u
		ubar := 1.0 - u
		ubar2 := ubar * ubar
		atanh := math.Atanh(1.0 - 2.0*u)

		return 1.0 / 8.0 * (mpi2*((90.0*u4-180.0*u3+54.0*u2+36.0*u-9.0)+
			9.0*a2*(70.0*u4-172.0*u3+138.0*u2-36.0*u+1.0+96.0*ubar2*u2*atanh)) +
			40.0*u*(4.0*(1.0-3.0*u+2.0*u2)+
				21.0*ubar*(-1.0+8.0*u-10.0*u2-6.0*ubar*u*atanh)*omega4)*delta2)
	}

	integrand := func(u float64) float64 {
		u2 := u * u
		d := k.mc2 - q2 + u2*mpi2

		tw4phi1 := (ff.pion.Phi4D1(u, k.mu) - 2.0*u*mpi2*ff.pion.Phi4(u, k.mu)/d) / 4.0
		tw4phi2 := -k.mc2 * u * (ff.pion.Phi4D2(u, k.mu) -
			6.0*u*mpi2*ff.pion.Phi4D1(u, k.mu)/d +
			12.0*u*mpi4*ff.pion.Phi4(u, k.mu)/(d*d)) / (4.0 * d)
		tw4I4T := -(i4TD1(u) - 2.0*u*mpi2*i4T(u)/d)

		weight, exp := borelWeight(k, u, q2, m2, selectWeight)

		return weight * exp * (tw4phi1 + tw4phi2 + tw4I4T) / d
	}

	integral, err := ff.integrator.Integrate(integrand, u0(k.mc2, q2, ff.s0TD(q2)), 1.0-1e-10)
	if err != nil {
		return 0, fmt.Errorf("tensor twist-4 leading order: %w", err)
	}

	return k.mc * k.fpi * integral, nil
}

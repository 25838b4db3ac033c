package dtopi

import (
	"fmt"
)

// Leading-order contributions to the scalar-channel correlator Ftil
// entering f_0. Twist two does not contribute at leading order.

func (ff *FormFactor) fTilLoTw3Integrand(k kinematics, u, q2, m2, selectWeight float64) float64 {
	mupi := ff.pion.MuPi(k.mu)
	omega3 := ff.pion.Omega3(k.mu)

	i3Til := func(u float64) float64 {
		u2 := u * u
		ubar2 := (1.0 - u) * (1.0 - u)

		return 5.0 / 2.0 * u2 * ubar2 * (28.0*u2*omega3 - 2.0*u*(17.0*omega3+12.0) + 9.0*(omega3+4.0))
	}
	i3TilD1 := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u

		return 15.0 * u * (u - 1.0) * (28.0*u3*omega3 - u2*(47.0*omega3+20.0) + u*(23.0*omega3+36.0) - 3.0*(omega3+4.0))
	}

	u2 := u * u
	d := k.mc2 - q2 + u2*k.mpi2

	tw3a := ff.pion.Phi3p(u, k.mu)/u + ff.pion.Phi3sD1(u, k.mu)/(6.0*u)
	tw3b := k.mpi2 / d * (i3TilD1(u) - (2.0*u*k.mpi2)/d*i3Til(u))

	weight, exp := borelWeight(k, u, q2, m2, selectWeight)

	return exp * weight * (mupi/k.mc*tw3a + ff.pion.F3(k.mu)/(k.mc*k.fpi)*tw3b)
}

func (ff *FormFactor) fTilLoTw3(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	integral, err := ff.integrator.Integrate(func(u float64) float64 {
		return ff.fTilLoTw3Integrand(k, u, q2, m2, selectWeight)
	}, u0(k.mc2, q2, ff.s0TilD(q2)), 1.0)
	if err != nil {
		return 0, fmt.Errorf("scalar twist-3 leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

func (ff *FormFactor) fTilLoTw4(k kinematics, q2, m2, selectWeight float64) (float64, error) {
	a2 := ff.pion.A2(k.mu)
	delta2 := ff.pion.Delta2(k.mu)
	omega4 := ff.pion.Omega4(k.mu)
	mpi2, mpi4 := k.mpi2, k.mpi4

	i4Bar := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u
		ubar := 1.0 - u

		return 1.0 / 48.0 * u * ubar * (mpi2*(-(54.0*u3-81.0*u2-27.0*u+27.0)+
			27.0*a2*(32.0*u3-43.0*u2+11.0*u+1.0)) -
			20.0*u*((12.0-20.0*u)+(378.0*u2-567.0*u+189.0)*omega4)*delta2)
	}
	i4BarI := func(u float64) float64 {
		u2 := u * u
		ubar := 1.0 - u
		ubar2 := ubar * ubar

		return 1.0 / 96.0 * u2 * ubar2 * (mpi2*(9.0*(3.0+2.0*ubar*u)+
			9.0*a2*(32.0*u2-26.0*u-3.0)) +
			40.0*u*(4.0+63.0*ubar*omega4)*delta2)
	}
	i4BarD1 := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u
		u4 := u2 * u2

		return 1.0 / 48.0 * (27.0*mpi2*((10.0*u4-20.0*u3+6.0*u2+4.0*u-1.0)-
			a2*(160.0*u4-300.0*u3+162.0*u2-20.0*u-1.0)) +
			40.0*u*((-40.0*u2+48.0*u-12.0)+
				189.0*(5.0*u3-10.0*u2+6.0*u-1.0)*omega4)*delta2)
	}

	integrand := func(u float64) float64 {
		u2 := u * u
		d := k.mc2 - q2 + u2*mpi2

		tw4psi := ff.pion.Psi4(u, k.mu) - (2.0*u*mpi2)/d*ff.pion.Psi4I(u, k.mu)
		tw4I4bar := (-i4BarD1(u) + (6.0*u*mpi2)/d*i4Bar(u) + (12.0*u2*mpi4)/(d*d)*i4BarI(u)) * 2.0 * u * mpi2 / d

		weight, exp := borelWeight(k, u, q2, m2, selectWeight)

		return exp * weight * (tw4psi + tw4I4bar) / d
	}

	integral, err := ff.integrator.Integrate(integrand, u0(k.mc2, q2, ff.s0TilD(q2)), 1.0-1e-10)
	if err != nil {
		return 0, fmt.Errorf("scalar twist-4 leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

package dtopi

import (
	"fmt"
	"math"
)

// Leading-order contributions to the light-cone sum rules, organized
// by twist. All integrands are functions of the momentum fraction u of
// the quark inside the pion; selectWeight switches between the plain
// Borel-transformed correlator (0) and its derivative with respect to
// -1/M^2 (1), selectCorr blends the duality threshold of the vector
// channel into the scalar one.

// borelWeight evaluates the Borel exponential together with the
// optional derivative weight.
func borelWeight(k kinematics, u, q2, m2, selectWeight float64) (weight, exp float64) {
	d := k.mc2 - q2*(1.0-u) + k.mpi2*u*(1.0-u)

	weight = (1.0 - selectWeight) + selectWeight*d/u
	exp = math.Exp(-d / (u * m2))

	return weight, exp
}

func (ff *FormFactor) fLoTw2Integrand(k kinematics, u, q2, m2, selectWeight float64) float64 {
	weight, exp := borelWeight(k, u, q2, m2, selectWeight)

	return weight * exp / u * ff.pion.Phi(u, k.mu)
}

func (ff *FormFactor) fLoTw2(k kinematics, q2, m2, selectWeight, selectCorr float64) (float64, error) {
	s0 := ff.s0D(q2)*(1.0-selectCorr) + ff.s0TilD(q2)*selectCorr

	integral, err := ff.integrator.Integrate(func(u float64) float64 {
		return ff.fLoTw2Integrand(k, u, q2, m2, selectWeight)
	}, u0(k.mc2, q2, s0), 1.0)
	if err != nil {
		return 0, fmt.Errorf("twist-2 leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

func (ff *FormFactor) fLoTw3Integrand(k kinematics, u, q2, m2, selectWeight float64) float64 {
	mupi := ff.pion.MuPi(k.mu)
	omega3 := ff.pion.Omega3(k.mu)

	i3 := func(u float64) float64 {
		u3 := u * u * u
		ubar2 := (1.0 - u) * (1.0 - u)

		return 5.0 / 2.0 * u3 * ubar2 * (12.0 + (7.0*u-4.0)*omega3)
	}
	i3D1 := func(u float64) float64 {
		u2 := u * u
		ubar := 1.0 - u

		return 15.0 * u2 * ubar * (6.0 - 10.0*u - (2.0-8.0*u+7.0*u2)*omega3)
	}
	i3Bar := func(u float64) float64 {
		u3 := u * u * u
		ubar2 := (1.0 - u) * (1.0 - u)

		return 5.0 / 2.0 * u3 * ubar2 * (24.0*u + 6.0*u*omega3 - 3.0*(omega3+4.0))
	}
	i3BarD1 := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u

		return 15.0 / 2.0 * u2 * (12.0*u3 - 25.0*u2 + 16.0*u - 3.0) * (omega3 + 4.0)
	}

	u2 := u * u
	d := k.mc2 - q2 + u2*k.mpi2

	tw3a := ff.pion.Phi3p(u, k.mu) +
		(ff.pion.Phi3s(u, k.mu)/u-
			(k.mc2+q2-u2*k.mpi2)/(2.0*d)*ff.pion.Phi3sD1(u, k.mu)-
			(2.0*u*k.mpi2*k.mc2)/(d*d)*ff.pion.Phi3s(u, k.mu))/3.0
	tw3b := 2.0 / u * (k.mc2 - q2 - u2*k.mpi2) / d *
		(i3D1(u) - (2.0*u*k.mpi2)/d*i3(u))
	tw3c := 3.0 * k.mpi2 / d *
		(i3BarD1(u) - (2.0*u*k.mpi2)/d*i3Bar(u))

	weight, exp := borelWeight(k, u, q2, m2, selectWeight)

	return exp * weight * (mupi/k.mc*tw3a - ff.pion.F3(k.mu)/(k.mc*k.fpi)*(tw3b+tw3c))
}

func (ff *FormFactor) fLoTw3(k kinematics, q2, m2, selectWeight, selectCorr float64) (float64, error) {
	s0 := ff.s0D(q2)*(1.0-selectCorr) + ff.s0TilD(q2)*selectCorr

	integral, err := ff.integrator.Integrate(func(u float64) float64 {
		return ff.fLoTw3Integrand(k, u, q2, m2, selectWeight)
	}, u0(k.mc2, q2, s0), 1.0)
	if err != nil {
		return 0, fmt.Errorf("twist-3 leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

func (ff *FormFactor) fLoTw4(k kinematics, q2, m2, selectWeight, selectCorr float64) (float64, error) {
	s0 := ff.s0D(q2)*(1.0-selectCorr) + ff.s0TilD(q2)*selectCorr
	a2 := ff.pion.A2(k.mu)
	delta2 := ff.pion.Delta2(k.mu)
	omega4 := ff.pion.Omega4(k.mu)
	mpi2, mpi4 := k.mpi2, k.mpi4

	i4 := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u
		ubar := 1.0 - u

		return -1.0 / 24.0 * u * ubar * (mpi2*(54.0*u3-81.0*u2+27.0*ubar+27.0*a2*(16.0*u3-29.0*u2+13.0*u-1.0)) +
			16.0*u*(20.0*u-30.0)*delta2)
	}
	i4D1 := func(u float64) float64 {
		u2 := u * u
		u3 := u2 * u
		u4 := u2 * u2

		return 1.0 / 24.0 * (27.0*mpi2*((10.0*u4-20.0*u3+6.0*u2+4.0*u-1.0)+
			a2*(80.0*u4-180.0*u3+126.0*u2-28.0*u+1.0)) +
			160.0*u*(6.0-15.0*u+8.0*u2)*delta2)
	}
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

		tw4psi := u*ff.pion.Psi4(u, k.mu) + (k.mc2-q2-u2*mpi2)/d*ff.pion.Psi4I(u, k.mu)
		tw4phi := (ff.pion.Phi4D2(u, k.mu) -
			6.0*u*mpi2/d*ff.pion.Phi4D1(u, k.mu) +
			12.0*u*mpi4/(d*d)*ff.pion.Phi4(u, k.mu)) * k.mc2 * u / (4.0 * d)
		tw4I4 := i4D1(u) - 2.0*u*mpi2/d*i4(u)
		tw4I4bar1 := (u*i4BarD1(u) + (k.mc2-q2-3.0*u2*mpi2)/d*i4Bar(u)) * 2.0 * u * mpi2 / d
		tw4I4bar2 := (i4Bar(u) + 6.0*u*mpi2/d*i4BarI(u)) * 2.0 * u * mpi2 * (k.mc2 - q2 - u2*mpi2) / d

		weight, exp := borelWeight(k, u, q2, m2, selectWeight)

		return exp * weight * (tw4psi - tw4phi - tw4I4 - tw4I4bar1 - tw4I4bar2) / d
	}

	integral, err := ff.integrator.Integrate(integrand, u0(k.mc2, q2, s0), 1.0-1e-10)
	if err != nil {
		return 0, fmt.Errorf("twist-4 leading order: %w", err)
	}

	return k.mc2 * k.fpi * integral, nil
}

// Package quadrature provides adaptive one-dimensional integration with
// relative-error control on top of fixed Gauss-Legendre rules.
package quadrature

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// ErrNoConvergence is returned when the requested relative accuracy
// cannot be reached within the interval budget.
var ErrNoConvergence = errors.New("quadrature: relative accuracy not reached")

// NoConvergenceError carries the integration bounds and the best
// estimate obtained before giving up. It unwraps to ErrNoConvergence.
type NoConvergenceError struct {
	Lower    float64
	Upper    float64
	Estimate float64
	AbsError float64
}

func (e *NoConvergenceError) Error() string {
	return fmt.Sprintf("quadrature: relative accuracy not reached on [%g, %g] (estimate %g, error %g)",
		e.Lower, e.Upper, e.Estimate, e.AbsError)
}

func (e *NoConvergenceError) Unwrap() error { return ErrNoConvergence }

// Config controls the adaptive integrator.
type Config struct {
	// EpsRel is the target relative accuracy. Defaults to 1e-3.
	EpsRel float64
	// MaxIntervals bounds the number of bisections. Defaults to 256.
	MaxIntervals int
}

// DefaultConfig returns the configuration used by the sum-rule packages.
func DefaultConfig() Config {
	return Config{EpsRel: 1e-3, MaxIntervals: 256}
}

// Integrator evaluates definite integrals by adaptive bisection, using
// nested 10- and 21-point Gauss-Legendre rules on each subinterval.
type Integrator struct {
	epsRel float64
	maxIv  int
}

// New creates an Integrator from cfg, applying defaults for zero fields.
func New(cfg Config) *Integrator {
	if cfg.EpsRel <= 0 {
		cfg.EpsRel = 1e-3
	}

	if cfg.MaxIntervals <= 0 {
		cfg.MaxIntervals = 256
	}

	return &Integrator{epsRel: cfg.EpsRel, maxIv: cfg.MaxIntervals}
}

type interval struct {
	a, b     float64
	estimate float64
	absErr   float64
}

// Integrate computes the integral of f over [a, b]. On failure the
// returned error unwraps to ErrNoConvergence and carries the bounds.
func (in *Integrator) Integrate(f func(float64) float64, a, b float64) (float64, error) {
	if a == b {
		return 0, nil
	}

	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	ivs := make([]interval, 1, in.maxIv)
	ivs[0] = evaluate(f, a, b)

	for len(ivs) < in.maxIv {
		sum, errSum := 0.0, 0.0
		worst := 0

		for i, iv := range ivs {
			sum += iv.estimate
			errSum += iv.absErr

			if iv.absErr > ivs[worst].absErr {
				worst = i
			}
		}

		if errSum <= in.epsRel*math.Abs(sum) || errSum == 0 {
			return sign * sum, nil
		}

		w := ivs[worst]

		mid := 0.5 * (w.a + w.b)
		if mid <= w.a || mid >= w.b {
			// Interval exhausted at machine precision.
			break
		}

		ivs[worst] = evaluate(f, w.a, mid)
		ivs = append(ivs, evaluate(f, mid, w.b))
	}

	sum, errSum := 0.0, 0.0
	for _, iv := range ivs {
		sum += iv.estimate
		errSum += iv.absErr
	}

	if errSum <= in.epsRel*math.Abs(sum) {
		return sign * sum, nil
	}

	return sign * sum, &NoConvergenceError{Lower: a, Upper: b, Estimate: sign * sum, AbsError: errSum}
}

// evaluate estimates the integral over one subinterval with the 21-point
// rule and takes the difference to the 10-point rule as error estimate.
func evaluate(f func(float64) float64, a, b float64) interval {
	coarse := quad.Fixed(f, a, b, 10, nil, 0)
	fine := quad.Fixed(f, a, b, 21, nil, 0)

	return interval{a: a, b: b, estimate: fine, absErr: math.Abs(fine - coarse)}
}

// Package specfun provides the real dilogarithm and the exponential
// integral E1 shared by the sum-rule packages.
package specfun

import "math"

const (
	pi2Over6 = math.Pi * math.Pi / 6.0
	euler    = 0.57721566490153286060651209008240243
)

// Dilog computes the real part of the dilogarithm Li2(x) for real x.
// For x > 1 the imaginary part is discarded.
func Dilog(x float64) float64 {
	switch {
	case x > 1:
		// Re Li2(x) = pi^2/3 - ln^2(x)/2 - Li2(1/x)
		l := math.Log(x)
		return 2*pi2Over6 - 0.5*l*l - li2Unit(1/x)
	case x < -1:
		// Li2(x) = -Li2(1/x) - pi^2/6 - ln^2(-x)/2
		l := math.Log(-x)
		return -li2Unit(1/x) - pi2Over6 - 0.5*l*l
	default:
		return li2Unit(x)
	}
}

// li2Unit evaluates Li2 on [-1, 1], reflecting arguments outside the
// series region |x| <= 1/2.
func li2Unit(x float64) float64 {
	switch {
	case x == 1:
		return pi2Over6
	case x > 0.5:
		// Li2(x) = pi^2/6 - ln(x)ln(1-x) - Li2(1-x)
		return pi2Over6 - math.Log(x)*math.Log1p(-x) - li2Series(1-x)
	case x >= -0.5:
		return li2Series(x)
	default:
		// Li2(x) = -Li2(x/(x-1)) - ln^2(1-x)/2, with x/(x-1) in (1/3, 1/2]
		l := math.Log1p(-x)
		return -li2Series(x/(x-1)) - 0.5*l*l
	}
}

// li2Series sums Li2(x) = sum_{k>=1} x^k / k^2 for |x| <= 1/2.
func li2Series(x float64) float64 {
	sum := 0.0
	term := 1.0

	for k := 1; k <= 64; k++ {
		term *= x
		dk := float64(k)
		t := term / (dk * dk)
		sum += t

		if math.Abs(t) < 1e-17*math.Abs(sum) {
			break
		}
	}

	return sum
}

// E1 computes the exponential integral E1(x) = Gamma(0, x) for x > 0,
// using the convergent series for small arguments and a Lentz continued
// fraction for large ones.
func E1(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}

	if x <= 1 {
		// E1(x) = -gamma - ln x + sum (-1)^{n+1} x^n / (n * n!)
		sum := 0.0
		term := 1.0

		for n := 1; n <= 40; n++ {
			term *= -x / float64(n)
			t := -term / float64(n)
			sum += t

			if math.Abs(t) < 1e-17*math.Abs(sum) {
				break
			}
		}

		return -euler - math.Log(x) + sum
	}

	// Modified Lentz evaluation of the continued fraction
	// E1(x) = exp(-x) / (x + 1/(1 + 1/(x + 2/(1 + 2/(x + ...))))).
	const tiny = 1e-300

	b := x + 1
	c := 1 / tiny
	d := 1 / b
	h := d

	for n := 1; n <= 200; n++ {
		a := -float64(n) * float64(n)
		b += 2
		d = 1 / (a*d + b)
		c = b + a/c
		delta := c * d
		h *= delta

		if math.Abs(delta-1) < 1e-16 {
			break
		}
	}

	return h * math.Exp(-x)
}

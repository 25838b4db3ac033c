package quadrature

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(valA, valB, tol float64) bool {
	if valA == valB {
		return true
	}

	diff := math.Abs(valA - valB)
	if tol > 0 && tol < 1 {
		mag := math.Max(math.Abs(valA), math.Abs(valB))
		if mag > 1 {
			return diff/mag < tol
		}
	}

	return diff < tol
}

func TestIntegrate_Polynomial(t *testing.T) {
	in := New(Config{EpsRel: 1e-10})

	got, err := in.Integrate(func(x float64) float64 { return x * x }, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(got, 1.0/3.0, 1e-12) {
		t.Errorf("integral of x^2 on [0,1] = %v, want 1/3", got)
	}
}

func TestIntegrate_Sine(t *testing.T) {
	in := New(DefaultConfig())

	got, err := in.Integrate(math.Sin, 0, math.Pi)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(got, 2.0, 1e-9) {
		t.Errorf("integral of sin on [0,pi] = %v, want 2", got)
	}
}

func TestIntegrate_LogEndpointSingularity(t *testing.T) {
	in := New(Config{EpsRel: 1e-8, MaxIntervals: 2048})

	got, err := in.Integrate(func(x float64) float64 {
		if x == 0 {
			return 0
		}

		return math.Log(x)
	}, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(got, -1.0, 1e-7) {
		t.Errorf("integral of ln(x) on [0,1] = %v, want -1", got)
	}
}

func TestIntegrate_ExpDamped(t *testing.T) {
	in := New(Config{EpsRel: 1e-9})

	// int_0^10 exp(-x) dx = 1 - exp(-10)
	got, err := in.Integrate(func(x float64) float64 { return math.Exp(-x) }, 0, 10)
	if err != nil {
		t.Fatal(err)
	}

	want := 1 - math.Exp(-10)
	if !almostEqual(got, want, 1e-10) {
		t.Errorf("integral = %v, want %v", got, want)
	}
}

func TestIntegrate_ReversedBounds(t *testing.T) {
	in := New(DefaultConfig())

	fwd, err := in.Integrate(math.Cos, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	rev, err := in.Integrate(math.Cos, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(fwd, -rev, 1e-12) {
		t.Errorf("reversed bounds: %v vs %v", fwd, rev)
	}
}

func TestIntegrate_EmptyInterval(t *testing.T) {
	in := New(DefaultConfig())

	got, err := in.Integrate(func(x float64) float64 { return 1 / x }, 2, 2)
	if err != nil || got != 0 {
		t.Errorf("empty interval: got %v, %v", got, err)
	}
}

func TestIntegrate_NoConvergence(t *testing.T) {
	in := New(Config{EpsRel: 1e-14, MaxIntervals: 4})

	// 1/sqrt(x) is integrable but needs far more than 4 intervals at
	// this accuracy.
	_, err := in.Integrate(func(x float64) float64 {
		if x == 0 {
			return 0
		}

		return 1 / math.Sqrt(x)
	}, 0, 1)
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}

	var nce *NoConvergenceError
	if !errors.As(err, &nce) {
		t.Fatal("expected *NoConvergenceError")
	}

	if nce.Lower != 0 || nce.Upper != 1 {
		t.Errorf("bounds not carried: [%v, %v]", nce.Lower, nce.Upper)
	}
}

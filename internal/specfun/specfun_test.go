package specfun

import (
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

func TestDilog_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0, 0},
		{"one", 1, math.Pi * math.Pi / 6},
		{"minus one", -1, -math.Pi * math.Pi / 12},
		{"half", 0.5, math.Pi*math.Pi/12 - 0.5*math.Ln2*math.Ln2},
		{"quarter", 0.25, 0.2676526390827326},
		{"two", 2, math.Pi * math.Pi / 4},
		{"minus two", -2, -1.4367463668836808},
		{"minus ten", -10, -4.198277886858104},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dilog(tt.x)
			if !almostEqual(got, tt.want, 1e-13) {
				t.Errorf("Dilog(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestDilog_LandenIdentity(t *testing.T) {
	// Li2(x) + Li2(x/(x-1)) = -ln^2(1-x)/2 for x < 1
	for _, x := range []float64{-5, -1.5, -0.9, -0.3, 0.2, 0.7, 0.95} {
		lhs := Dilog(x) + Dilog(x/(x-1))
		l := math.Log1p(-x)
		rhs := -0.5 * l * l

		if !almostEqual(lhs, rhs, 1e-12) {
			t.Errorf("x=%v: Li2(x)+Li2(x/(x-1)) = %v, want %v", x, lhs, rhs)
		}
	}
}

func TestDilog_ReflectionIdentity(t *testing.T) {
	// Li2(x) + Li2(1-x) = pi^2/6 - ln(x)ln(1-x) for 0 < x < 1
	for _, x := range []float64{0.1, 0.25, 0.5, 0.6, 0.85, 0.99} {
		lhs := Dilog(x) + Dilog(1-x)
		rhs := math.Pi*math.Pi/6 - math.Log(x)*math.Log1p(-x)

		if !almostEqual(lhs, rhs, 1e-12) {
			t.Errorf("x=%v: Li2(x)+Li2(1-x) = %v, want %v", x, lhs, rhs)
		}
	}
}

func TestE1_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"tenth", 0.1, 1.8229239584193906},
		{"half", 0.5, 0.5597735947761608},
		{"one", 1, 0.21938393439552026},
		{"two", 2, 0.04890051070806112},
		{"five", 5, 0.001148295591275326},
		{"ten", 10, 4.156968929685325e-06},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := E1(tt.x)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("E1(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestE1_NonPositiveIsInf(t *testing.T) {
	if !math.IsInf(E1(0), 1) || !math.IsInf(E1(-1), 1) {
		t.Error("E1 should diverge for non-positive arguments")
	}
}

func TestE1_Monotone(t *testing.T) {
	prev := math.Inf(1)
	for x := 0.05; x < 20; x += 0.35 {
		v := E1(x)
		if v >= prev || v <= 0 {
			t.Fatalf("E1 not strictly decreasing and positive at x=%v: %v >= %v", x, v, prev)
		}

		prev = v
	}
}

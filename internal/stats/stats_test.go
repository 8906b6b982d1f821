package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"several", []float64{1, 2, 3, 4}, 2.5},
		{"negative", []float64{-2, 2}, 0},
	}
	for _, tt := range tests {
		if got := Mean(tt.xs); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Mean = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float64{7}, 0},
		{"constant", []float64{3, 3, 3, 3}, 0},
		{"simple", []float64{1, 3}, 1},
		{"spread", []float64{2, 4, 4, 4, 5, 5, 7, 9}, 4},
	}
	for _, tt := range tests {
		got := Variance(tt.xs)
		if got < 0 {
			t.Errorf("%s: variance must be non-negative, got %v", tt.name, got)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Variance = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPearsonCorrelation_Degenerate(t *testing.T) {
	if r := PearsonCorrelation([]float64{1}, []float64{2}); r != 0 {
		t.Errorf("single pair: expected 0, got %v", r)
	}
	if r := PearsonCorrelation([]float64{1, 2, 3}, []float64{1, 2}); r != 0 {
		t.Errorf("length mismatch: expected 0, got %v", r)
	}
	if r := PearsonCorrelation([]float64{5, 5, 5}, []float64{1, 2, 3}); r != 0 {
		t.Errorf("constant xs: expected 0, got %v", r)
	}
	if r := PearsonCorrelation([]float64{1, 2, 3}, []float64{4, 4, 4}); r != 0 {
		t.Errorf("constant ys: expected 0, got %v", r)
	}
}

func TestPearsonCorrelation_SelfCorrelation(t *testing.T) {
	xs := []float64{1, 4, 2, 8, 5, 7}
	if r := PearsonCorrelation(xs, xs); math.Abs(r-1) > 1e-9 {
		t.Errorf("self correlation: expected ~1, got %v", r)
	}
}

func TestPearsonCorrelation_Bounded(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6}
	ys := []float64{9, 2, 7, 1, 8, 3}
	r := PearsonCorrelation(xs, ys)
	if r < -1 || r > 1 {
		t.Errorf("correlation out of [-1,1]: %v", r)
	}

	inverse := []float64{6, 5, 4, 3, 2, 1}
	if r := PearsonCorrelation(xs, inverse); math.Abs(r+1) > 1e-9 {
		t.Errorf("perfect inverse: expected ~-1, got %v", r)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{50, 50, 100, 50},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

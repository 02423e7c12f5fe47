package modislib

import "testing"

func TestLinspaceEndpoints(t *testing.T) {
	start, stop := -10007554.677, -8895604.157333
	xs := linspace(start, stop, GridSize)
	if len(xs) != GridSize {
		t.Fatalf("wrong length: %d", len(xs))
	}
	if xs[0] != start || xs[GridSize-1] != stop {
		t.Fatalf("endpoints not exact: %f, %f", xs[0], xs[GridSize-1])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("not increasing at %d: %f <= %f", i, xs[i], xs[i-1])
		}
	}
}

func TestLinspaceDescending(t *testing.T) {
	start, stop := 4447802.078667, 3335851.559
	ys := linspace(start, stop, GridSize)
	if ys[0] != start || ys[GridSize-1] != stop {
		t.Fatalf("endpoints not exact: %f, %f", ys[0], ys[GridSize-1])
	}
	for i := 1; i < len(ys); i++ {
		if ys[i] >= ys[i-1] {
			t.Fatalf("not decreasing at %d: %f >= %f", i, ys[i], ys[i-1])
		}
	}
}

func TestLinspaceTwoPoints(t *testing.T) {
	xs := linspace(1, 2, 2)
	if xs[0] != 1 || xs[1] != 2 {
		t.Fatalf("wrong sequence: %v", xs)
	}
}

func TestRowInGeographicRange(t *testing.T) {
	if !rowInGeographicRange([]float64{-180, 0, 180}, []float64{-90, 0, 90}) {
		t.Fatal("valid degree row rejected")
	}
	// untransformed projection meters must never pass for a grid row
	if rowInGeographicRange([]float64{-10007554.677, -10007091.364}, []float64{4447802.078667, 4447802.078667}) {
		t.Fatal("projection meters accepted as degrees")
	}
	if rowInGeographicRange([]float64{0, 0}, []float64{0, 90.000001}) {
		t.Fatal("out of range latitude accepted")
	}
	if rowInGeographicRange([]float64{-180.000001, 0}, []float64{0, 0}) {
		t.Fatal("out of range longitude accepted")
	}
}

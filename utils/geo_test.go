package utils

import (
	"math"
	"testing"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64 // km
		tol                    float64
	}{
		{"same point", 22.3039, 70.8022, 22.3039, 70.8022, 0, 0.001},
		{"rajkot to ahmedabad", 22.3039, 70.8022, 23.0225, 72.5714, 197, 5},
		{"across the equator", -1, 0, 1, 0, 222.4, 1},
	}
	for _, tt := range tests {
		got := HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("%s: HaversineKm = %.2f, want %.2f ± %.2f", tt.name, got, tt.want, tt.tol)
		}
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := HaversineKm(22.30, 70.80, 19.07, 72.87)
	b := HaversineKm(19.07, 72.87, 22.30, 70.80)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", a, b)
	}
}

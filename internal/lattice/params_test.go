package lattice

import (
	"errors"
	"testing"
)

func TestResolveParams(t *testing.T) {
	tests := []struct {
		name  string
		r     []float64
		nodes int
		want  []float64
	}{
		{"broadcast scalar", []float64{4}, 3, []float64{4, 4, 4}},
		{"full vector", []float64{3.6, 3.8, 4.0}, 3, []float64{3.6, 3.8, 4.0}},
		{"single node", []float64{3.9}, 1, []float64{3.9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveParams(tt.r, tt.nodes)
			if err != nil {
				t.Fatalf("ResolveParams failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveParams_Mismatch(t *testing.T) {
	for _, r := range [][]float64{nil, {}, {4, 4}, {4, 4, 4, 4}} {
		_, err := ResolveParams(r, 3)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("ResolveParams(%v, 3) error = %v, want ErrDimensionMismatch", r, err)
		}
	}
}

func TestResolveParams_Copies(t *testing.T) {
	r := []float64{3.6, 3.8}
	got, err := ResolveParams(r, 2)
	if err != nil {
		t.Fatalf("ResolveParams failed: %v", err)
	}
	r[0] = 0
	if got[0] != 3.6 {
		t.Error("resolved parameters share backing storage with caller input")
	}
}

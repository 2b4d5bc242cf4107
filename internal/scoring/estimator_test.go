package scoring

import (
	"math"
	"testing"
)

func TestEstimateThetaNoResponses(t *testing.T) {
	if got := EstimateTheta(nil); got != 0 {
		t.Errorf("theta = %g, want 0", got)
	}
	if got := EstimateTheta([]KeyedResponse{}); got != 0 {
		t.Errorf("theta = %g, want 0", got)
	}
}

func TestEstimateThetaSingleResponseClampsToBound(t *testing.T) {
	// One positive response carries unbounded evidence: the ML estimate
	// runs off to +inf and the clamp catches it at the upper bound.
	got := EstimateTheta([]KeyedResponse{{A: 1.0, B: 0.0, U: 1}})
	if got != ThetaMax {
		t.Errorf("theta = %g, want %g", got, ThetaMax)
	}

	got = EstimateTheta([]KeyedResponse{{A: 1.0, B: 0.0, U: 0}})
	if got != ThetaMin {
		t.Errorf("theta = %g, want %g", got, ThetaMin)
	}
}

func TestEstimateThetaBalancedPair(t *testing.T) {
	// Two identical items answered in opposite directions: the gradient
	// is zero at the origin, so the estimate stays there.
	responses := []KeyedResponse{
		{A: 1.2, B: 0.0, U: 1},
		{A: 1.2, B: 0.0, U: 0},
	}
	if got := EstimateTheta(responses); got != 0 {
		t.Errorf("theta = %g, want 0", got)
	}
}

func TestEstimateThetaAlwaysInRange(t *testing.T) {
	patterns := [][]KeyedResponse{
		{{A: 1.9, B: -1.6, U: 1}, {A: 1.8, B: -1.5, U: 1}, {A: 1.7, B: -1.4, U: 1}},
		{{A: 1.9, B: 1.6, U: 0}, {A: 1.8, B: 1.5, U: 0}},
		{{A: 0.6, B: 0.0, U: 1}, {A: 0.6, B: 0.1, U: 0}, {A: 0.6, B: -0.1, U: 1}},
		{{A: 1.5, B: 2.0, U: 1}},
		{{A: 0.5, B: -2.0, U: 0}},
	}
	for i, responses := range patterns {
		theta := EstimateTheta(responses)
		if theta < ThetaMin || theta > ThetaMax {
			t.Errorf("pattern %d: theta = %g, outside [%g, %g]", i, theta, ThetaMin, ThetaMax)
		}
	}
}

func TestEstimateThetaMonotoneInResponses(t *testing.T) {
	// Flipping any single response from negative to positive pole must
	// never decrease the estimate.
	base := []KeyedResponse{
		{A: 1.3, B: -0.4, U: 0},
		{A: 1.0, B: 0.2, U: 1},
		{A: 1.5, B: -0.1, U: 0},
		{A: 0.9, B: 0.6, U: 1},
		{A: 1.2, B: -0.7, U: 0},
		{A: 1.1, B: 0.1, U: 0},
	}

	for i := range base {
		if base[i].U == 1 {
			continue
		}
		flipped := make([]KeyedResponse, len(base))
		copy(flipped, base)
		flipped[i].U = 1

		before := EstimateTheta(base)
		after := EstimateTheta(flipped)
		if after < before {
			t.Errorf("flipping response %d decreased theta: %g -> %g", i, before, after)
		}
	}
}

func TestEstimateThetaDeterministic(t *testing.T) {
	responses := []KeyedResponse{
		{A: 1.3, B: -0.4, U: 1},
		{A: 1.0, B: 0.2, U: 0},
		{A: 1.5, B: -0.1, U: 1},
	}
	first := EstimateTheta(responses)
	for range 10 {
		if got := EstimateTheta(responses); got != first {
			t.Fatalf("theta varied across calls: %g vs %g", got, first)
		}
	}
}

func TestResponseProbability(t *testing.T) {
	tests := []struct {
		theta, a, b float64
		want        float64
	}{
		{0, 1, 0, 0.5},
		{1, 1, 1, 0.5},
		{3, 1, 0, 0.952574},
		{-3, 1, 0, 0.047426},
		{0, 2, -1, 0.880797},
	}
	for _, tt := range tests {
		got := ResponseProbability(tt.theta, tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-5 {
			t.Errorf("P(%g; a=%g, b=%g) = %g, want %g", tt.theta, tt.a, tt.b, got, tt.want)
		}
		if got <= 0 || got >= 1 {
			t.Errorf("P(%g; a=%g, b=%g) = %g, outside (0,1)", tt.theta, tt.a, tt.b, got)
		}
	}
}

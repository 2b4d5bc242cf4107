package scoring

import "math"

const (
	// ThetaMin and ThetaMax bound the latent trait estimate. The
	// Newton-Raphson step is clamped to this interval every iteration,
	// which keeps extreme or degenerate response patterns from
	// diverging.
	ThetaMin = -3.0
	ThetaMax = 3.0

	// maxIterations bounds the Newton-Raphson solve.
	maxIterations = 20

	// convergenceTol stops iteration once the step size drops below it.
	convergenceTol = 0.0001

	// flatTol halts the solve when the curvature is effectively zero:
	// the likelihood is flat and further steps are meaningless.
	flatTol = 1e-9
)

// KeyedResponse is one answered item reduced to the inputs the
// estimator needs: the item's calibration constants and the scored
// direction of the respondent's choice (1 = positive pole).
type KeyedResponse struct {
	A float64
	B float64
	U int
}

// EstimateTheta computes the maximum-likelihood latent trait estimate
// for one dichotomy from the respondent's keyed responses, jointly
// over all answered items. With no responses there is no information,
// and the estimate is 0.
func EstimateTheta(responses []KeyedResponse) float64 {
	if len(responses) == 0 {
		return 0
	}

	theta := 0.0
	for range maxIterations {
		var g, h float64
		for _, r := range responses {
			p := ResponseProbability(theta, r.A, r.B)
			g += r.A * (float64(r.U) - p)
			h += -r.A * r.A * p * (1 - p)
		}

		if math.Abs(h) < flatTol {
			break
		}

		next := clampTheta(theta - g/h)
		delta := math.Abs(next - theta)
		theta = next
		if delta < convergenceTol {
			break
		}
	}

	return theta
}

func clampTheta(theta float64) float64 {
	if theta < ThetaMin {
		return ThetaMin
	}
	if theta > ThetaMax {
		return ThetaMax
	}
	return theta
}

package scoring

import "math"

// ResponseProbability is the 2-parameter logistic model: the
// probability of a positive-pole response at latent trait theta for an
// item with discrimination a and location b. Total over all real
// theta; the result is in (0, 1) exclusive. Overflow is a non-issue
// because the estimator clamps theta to [-3, 3].
func ResponseProbability(theta, a, b float64) float64 {
	return 1.0 / (1.0 + math.Exp(-a*(theta-b)))
}

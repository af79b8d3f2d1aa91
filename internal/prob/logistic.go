package prob

import (
	"fmt"
	"math"

	"github.com/born-ml/probkit/internal/tensor"
)

// DefaultTemperature is the temperature at which Logistic and Softmax
// reduce to the standard sigmoid and softmax.
const DefaultTemperature = 1.0

func checkTemperature(temperature float64) error {
	if temperature < 0 || math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidTemperature, temperature)
	}
	return nil
}

// LogisticScalar evaluates the logistic function of x at the given
// temperature. The temperature must be finite and non-negative.
//
// At temperature 0 it is the step function 1 (x > 0), 0.5 (x == 0), 0 (x < 0).
// Otherwise z = x/temperature and the sigmoid is computed as 1/(1+exp(-z))
// for z >= 0 and exp(z)/(1+exp(z)) for z < 0, so exp never sees a positive
// argument.
func LogisticScalar(x, temperature float64) float64 {
	if temperature == 0 {
		switch {
		case x > 0:
			return 1
		case x == 0:
			return 0.5
		default:
			return 0
		}
	}

	z := x / temperature
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// Logistic applies the temperature-scaled logistic function element-wise.
//
// The result has the shape of x and values in [0, 1]; it is exactly 0.5
// where x is 0. NaN inputs yield NaN for positive temperatures and 0 at
// temperature 0.
func Logistic(x *tensor.Tensor, temperature float64) (*tensor.Tensor, error) {
	if err := checkTemperature(temperature); err != nil {
		return nil, fmt.Errorf("logistic: %w", err)
	}

	out := tensor.ZerosLike(x)
	dst := out.Data()
	for i, v := range x.Data() {
		dst[i] = LogisticScalar(v, temperature)
	}
	return out, nil
}

package sizing

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType identifies the mathematical shape of a fitted model.
type ModelType int

const (
	// ModelTypeHyperbolic represents y = a + b/x.
	ModelTypeHyperbolic ModelType = iota
	// ModelTypeLogarithmic represents y = a + b*ln(x).
	ModelTypeLogarithmic
	// ModelTypePower represents y = a * x^b.
	ModelTypePower
	// ModelTypeExponential represents y = a * e^(b*x).
	ModelTypeExponential
	// ModelTypePolynomial represents y = a + b*x + c*x^2.
	ModelTypePolynomial
)

var modelTypeNames = map[ModelType]string{
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

func (mt ModelType) String() string {
	if name, ok := modelTypeNames[mt]; ok {
		return name
	}
	return "unknown"
}

var modelTypeFromString = map[string]ModelType{
	"hyperbolic":  ModelTypeHyperbolic,
	"logarithmic": ModelTypeLogarithmic,
	"power":       ModelTypePower,
	"exponential": ModelTypeExponential,
	"polynomial":  ModelTypePolynomial,
}

// ModelTypeFromString returns the ModelType for a given string name, or
// ModelType(-1) if the name is unrecognized.
func ModelTypeFromString(name string) ModelType {
	if mt, ok := modelTypeFromString[strings.ToLower(name)]; ok {
		return mt
	}
	return ModelType(-1)
}

// curveShape is everything that distinguishes one candidate model from
// another: how many coefficients it takes and how to turn them plus an x
// into a prediction. The five models in this package differ only in this
// function, so rather than five near-identical estimator types, there is
// one Estimator driven by a table of these.
type curveShape struct {
	numCoeffs int
	evaluate  func(coeffs []float64, x float64) float64
}

var curveShapes = map[ModelType]curveShape{
	ModelTypeHyperbolic: {
		numCoeffs: 2,
		evaluate:  func(c []float64, x float64) float64 { return c[0] + c[1]/x },
	},
	ModelTypeLogarithmic: {
		numCoeffs: 2,
		evaluate:  func(c []float64, x float64) float64 { return c[0] + c[1]*math.Log(x) },
	},
	ModelTypePower: {
		numCoeffs: 2,
		evaluate:  func(c []float64, x float64) float64 { return c[0] * math.Pow(x, c[1]) },
	},
	ModelTypeExponential: {
		numCoeffs: 2,
		evaluate:  func(c []float64, x float64) float64 { return c[0] * math.Exp(c[1]*x) },
	},
	ModelTypePolynomial: {
		numCoeffs: 3,
		evaluate:  func(c []float64, x float64) float64 { return c[0] + c[1]*x + c[2]*x*x },
	},
}

// Estimator predicts bytes-per-element for a given element count, using the
// curve shape and fitted coefficients of one of the ModelType candidates.
type Estimator struct {
	mt     ModelType
	coeffs []float64
}

// newEstimator builds an Estimator for mt, validating that coeffs has the
// length mt's curve shape requires.
func newEstimator(mt ModelType, coeffs []float64) (*Estimator, error) {
	shape, ok := curveShapes[mt]
	if !ok {
		return nil, fmt.Errorf("sizing: unknown model type %s", mt)
	}
	if len(coeffs) != shape.numCoeffs {
		return nil, fmt.Errorf("%s model expects exactly %d coefficients, got %d", mt, shape.numCoeffs, len(coeffs))
	}
	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)
	return &Estimator{mt: mt, coeffs: cp}, nil
}

// Estimate returns bytes-per-element for x elements. x <= 0 is out of every
// curve's domain (ln(x), 1/x, and x^b are all undefined or meaningless
// there) and reports positive infinity rather than an arbitrary value.
func (e *Estimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.Inf(1)
	}
	return curveShapes[e.mt].evaluate(e.coeffs, x)
}

// Type returns the model's mathematical shape.
func (e *Estimator) Type() ModelType { return e.mt }

// Coefficients returns the fitted coefficients, in the order Estimate
// expects them.
func (e *Estimator) Coefficients() []float64 { return e.coeffs }

// SetCoefficients replaces the estimator's coefficients in place, letting a
// caller update a fitted model without reallocating it.
func (e *Estimator) SetCoefficients(coeffs []float64) error {
	shape := curveShapes[e.mt]
	if len(coeffs) != shape.numCoeffs {
		return fmt.Errorf("%s model expects exactly %d coefficients, got %d", e.mt, shape.numCoeffs, len(coeffs))
	}
	copy(e.coeffs, coeffs)
	return nil
}

// NewEstimator creates an estimator by model name and coefficients.
func NewEstimator(name string, coeffs []float64) (*Estimator, error) {
	mt := ModelTypeFromString(name)
	if mt == ModelType(-1) {
		var names []string
		for _, n := range modelTypeNames {
			names = append(names, n)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(names, ", "))
	}
	return newEstimator(mt, coeffs)
}

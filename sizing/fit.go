package sizing

import (
	"errors"
	"fmt"
	"math"

	"github.com/lmpynix/minimp/errs"
	"github.com/lmpynix/minimp/internal/options"
)

var defaultModelTypes = []ModelType{
	ModelTypeHyperbolic,
	ModelTypeLogarithmic,
	ModelTypePower,
	ModelTypeExponential,
	ModelTypePolynomial,
}

type analyzeConfig struct {
	modelTypes []ModelType
}

// AnalyzeOption configures a call to Analyze.
type AnalyzeOption = options.Option[*analyzeConfig]

// WithModelTypes restricts Analyze to fitting only the given candidate
// models instead of all five. Useful when the caller already knows the
// shape of their growth curve (e.g. a fixed-width encoding is known to be
// linear, so only ModelTypePolynomial is worth fitting).
func WithModelTypes(types ...ModelType) AnalyzeOption {
	return options.NoError(func(c *analyzeConfig) {
		c.modelTypes = types
	})
}

// Sample is one observed (element count, encoded byte count) pair, as
// produced by encoding a representative batch of elements and recording how
// many bytes it took.
type Sample struct {
	Count int
	Bytes int
}

// Analyze fits every candidate model to samples and returns the best fit by
// R² alongside every candidate, ranked best first.
//
// Each sample is converted to an (x, y) point where x is Count and y is
// bytes-per-element (Bytes/Count), mirroring how a caller would query
// Result.EstimateBytes later.
func Analyze(samples []Sample, opts ...AnalyzeOption) (*Result, error) {
	if len(samples) == 0 {
		return nil, errs.ErrNoSamples
	}

	cfg := &analyzeConfig{modelTypes: defaultModelTypes}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if len(cfg.modelTypes) == 0 {
		cfg.modelTypes = defaultModelTypes
	}

	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.Count <= 0 {
			continue
		}
		xs = append(xs, float64(s.Count))
		ys = append(ys, float64(s.Bytes)/float64(s.Count))
	}
	if len(xs) < 2 {
		return nil, errors.New("sizing: need at least 2 samples with positive count")
	}

	var models []*Model
	for _, mt := range cfg.modelTypes {
		m, err := fitModel(mt, xs, ys)
		if err != nil {
			continue
		}
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil, errors.New("sizing: no model could be fit to the given samples")
	}

	sortModelsByRSquared(models)
	return &Result{BestFit: models[0], AllModels: models}, nil
}

func sortModelsByRSquared(models []*Model) {
	for i := 1; i < len(models); i++ {
		m := models[i]
		j := i - 1
		for j >= 0 && models[j].RSquared < m.RSquared {
			models[j+1] = models[j]
			j--
		}
		models[j+1] = m
	}
}

func fitModel(mt ModelType, xs, ys []float64) (*Model, error) {
	var coeffs []float64
	var formula string

	switch mt {
	case ModelTypeHyperbolic:
		// y = a + b*(1/x): ordinary linear regression of y against 1/x.
		tx := transform(xs, func(x float64) float64 { return 1 / x })
		a, b := linearFit(tx, ys)
		coeffs = []float64{a, b}
		formula = fmt.Sprintf("y = %.4f + %.4f/x", a, b)
	case ModelTypeLogarithmic:
		tx := transform(xs, math.Log)
		a, b := linearFit(tx, ys)
		coeffs = []float64{a, b}
		formula = fmt.Sprintf("y = %.4f + %.4f*ln(x)", a, b)
	case ModelTypePower:
		// ln(y) = ln(a) + b*ln(x): linear regression in log-log space.
		if !allPositive(ys) {
			return nil, errors.New("sizing: power model requires strictly positive y values")
		}
		tx := transform(xs, math.Log)
		ty := transform(ys, math.Log)
		lna, b := linearFit(tx, ty)
		a := math.Exp(lna)
		coeffs = []float64{a, b}
		formula = fmt.Sprintf("y = %.4f * x^%.4f", a, b)
	case ModelTypeExponential:
		// ln(y) = ln(a) + b*x: linear regression against raw x.
		if !allPositive(ys) {
			return nil, errors.New("sizing: exponential model requires strictly positive y values")
		}
		ty := transform(ys, math.Log)
		lna, b := linearFit(xs, ty)
		a := math.Exp(lna)
		coeffs = []float64{a, b}
		formula = fmt.Sprintf("y = %.4f * e^(%.4f*x)", a, b)
	case ModelTypePolynomial:
		a, b, c := quadraticFit(xs, ys)
		coeffs = []float64{a, b, c}
		formula = fmt.Sprintf("y = %.4f + %.4f*x + %.4f*x^2", a, b, c)
	default:
		return nil, fmt.Errorf("sizing: unsupported model type %s", mt)
	}

	est, err := newEstimator(mt, coeffs)
	if err != nil {
		return nil, err
	}

	rs, rmse := goodnessOfFit(est, xs, ys)
	return &Model{
		Type:         mt,
		Coefficients: est.Coefficients(),
		RSquared:     rs,
		RMSE:         rmse,
		Formula:      formula,
		Estimator:    est,
	}, nil
}

func transform(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func allPositive(xs []float64) bool {
	for _, x := range xs {
		if x <= 0 {
			return false
		}
	}
	return true
}

// linearFit returns (a, b) minimizing sum((y - (a + b*x))^2) via the closed
// form ordinary least squares solution.
func linearFit(xs, ys []float64) (a, b float64) {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return sumY / n, 0
	}
	b = (n*sumXY - sumX*sumY) / denom
	a = (sumY - b*sumX) / n
	return a, b
}

// quadraticFit fits y = a + b*x + c*x^2 by solving the 3x3 normal equations
// with solve3x3.
func quadraticFit(xs, ys []float64) (a, b, c float64) {
	n := float64(len(xs))
	var sx, sx2, sx3, sx4, sy, sxy, sx2y float64
	for i := range xs {
		x, y := xs[i], ys[i]
		x2 := x * x
		sx += x
		sx2 += x2
		sx3 += x2 * x
		sx4 += x2 * x2
		sy += y
		sxy += x * y
		sx2y += x2 * y
	}

	m := [3][4]float64{
		{n, sx, sx2, sy},
		{sx, sx2, sx3, sxy},
		{sx2, sx3, sx4, sx2y},
	}
	sol, ok := solve3x3(m)
	if !ok {
		return sy / n, 0, 0
	}
	return sol[0], sol[1], sol[2]
}

// solve3x3 solves a 3-equation linear system given as an augmented matrix
// via Gaussian elimination with partial pivoting.
func solve3x3(m [3][4]float64) ([3]float64, bool) {
	for col := 0; col < 3; col++ {
		pivot := col
		for r := col + 1; r < 3; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		m[col], m[pivot] = m[pivot], m[col]
		if math.Abs(m[col][col]) < 1e-12 {
			return [3]float64{}, false
		}
		for r := 0; r < 3; r++ {
			if r == col {
				continue
			}
			factor := m[r][col] / m[col][col]
			for k := col; k < 4; k++ {
				m[r][k] -= factor * m[col][k]
			}
		}
	}
	return [3]float64{m[0][3] / m[0][0], m[1][3] / m[1][1], m[2][3] / m[2][2]}, true
}

func goodnessOfFit(est *Estimator, xs, ys []float64) (rSquared, rmse float64) {
	n := float64(len(ys))
	var meanY float64
	for _, y := range ys {
		meanY += y
	}
	meanY /= n

	var ssRes, ssTot, sqErr float64
	for i, x := range xs {
		pred := est.Estimate(x)
		if math.IsInf(pred, 0) || math.IsNaN(pred) {
			return 0, math.Inf(1)
		}
		residual := ys[i] - pred
		ssRes += residual * residual
		sqErr += residual * residual
		diff := ys[i] - meanY
		ssTot += diff * diff
	}

	rmse = math.Sqrt(sqErr / n)
	if ssTot == 0 {
		if ssRes == 0 {
			return 1, rmse
		}
		return 0, rmse
	}
	return 1 - ssRes/ssTot, rmse
}

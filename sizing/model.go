package sizing

import "fmt"

// Model represents a fitted model along with the statistics describing how
// well it fits the observed samples.
type Model struct {
	// Type is the model's mathematical shape.
	Type ModelType
	// Coefficients holds the fitted parameters.
	Coefficients []float64
	// RSquared is the coefficient of determination (0-1, higher is better).
	RSquared float64
	// RMSE is the root mean square error (lower is better).
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator makes predictions using the fitted coefficients.
	Estimator *Estimator
}

// String returns a human-readable summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result is the outcome of fitting every candidate model to a sample set.
type Result struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains every candidate, ranked by R² (best first).
	AllModels []*Model
}

// String returns a human-readable summary of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}
	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}", r.BestFit, len(r.AllModels))
}

// EstimateBytes returns the best-fit model's prediction of encoded byte
// count for the given element count.
func (r *Result) EstimateBytes(elementCount int) int {
	if r.BestFit == nil || r.BestFit.Estimator == nil {
		return 0
	}
	bpp := r.BestFit.Estimator.Estimate(float64(elementCount))
	return int(bpp * float64(elementCount))
}

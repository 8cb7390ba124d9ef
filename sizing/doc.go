// Package sizing fits a curve to observed (element count, encoded byte
// count) samples so callers can pre-size an encode buffer for a given
// element count without walking the data twice.
//
// Analyze takes a set of samples gathered from real encodes — typically by
// calling Element.ByteSize or measuring actual EncodeAt output at a few
// representative sizes — and fits several candidate models (hyperbolic,
// logarithmic, power, exponential, polynomial), returning the best fit by
// R² alongside every candidate for comparison.
package sizing

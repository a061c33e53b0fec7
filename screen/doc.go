// Package screen ranks candidate features by linear association with a
// set of target features, using the maximum absolute entry of the sample
// inner-product matrix Σ = XᵀX/n as a cheap screening signal.
//
// What
//
//   - MaxAbsCorrelation(X, targets): for each target feature, the
//     largest |Σ[t, j]| over all other features j ≠ t, in target order.
//   - AbsCorrelationMatrix(X): the shared |Σ| matrix with a zeroed
//     diagonal, exported so callers screening many target sets can reuse
//     a single pass.
//   - StrongestCorrelate(X, target): the feature attaining the maximum,
//     together with its value.
//
// Why
//
//	Before paying for local graph restriction and extraction, a caller
//	can rank or filter target features by how strongly anything at all
//	correlates with them; features with no strong correlate rarely carry
//	interesting local structure.
//
// Precondition
//
//	No centering or scaling of X is performed here. Σ = XᵀX/n equals the
//	Pearson correlation matrix only when the caller has standardized the
//	columns of X (zero mean, unit variance) beforehand, e.g.:
//
//		n, p := X.Dims()
//		for j := 0; j < p; j++ {
//			col := mat.Col(nil, j, X)
//			mu, sigma := stat.MeanStdDev(col, nil)
//			// subtract mu, divide by sigma, write back
//		}
//
//	Without standardization the values are raw scaled inner products;
//	they are still usable as a relative screening signal.
//
// Complexity (n samples, p features)
//
//   - Time:   O(n·p²) for the Σ product, O(p) per target afterwards.
//   - Memory: O(p²) for the screening matrix.
//
// Errors
//
//   - ErrNilMatrix            if X is nil.
//   - ErrNoSamples            if X has no rows.
//   - core.ErrIndexOutOfRange if a target index falls outside [0, p).
package screen

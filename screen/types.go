// This file declares the sentinel errors of the screen package.
package screen

import "errors"

// Sentinel errors for correlation screening.
var (
	// ErrNilMatrix indicates a nil data matrix was supplied.
	ErrNilMatrix = errors.New("screen: data matrix is nil")

	// ErrNoSamples indicates the data matrix has no rows.
	ErrNoSamples = errors.New("screen: data matrix must have at least one sample")
)

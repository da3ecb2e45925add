package domain

import "errors"

// Error kinds surfaced by the pipeline. Wrap with fmt.Errorf("%w: ...") and
// test with errors.Is.
var (
	// ErrConfig marks invalid configuration: bad threshold, unordered
	// n-gram range, missing stop-word file.
	ErrConfig = errors.New("invalid configuration")

	// ErrDependency marks an external segmentation or vectorization
	// engine that is unavailable or failed.
	ErrDependency = errors.New("dependency failure")

	// ErrInput marks unusable input: empty document, or a corpus whose
	// vocabulary is empty after cleaning and filtering.
	ErrInput = errors.New("invalid input")
)

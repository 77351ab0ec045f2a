package orchestrator

import "errors"

var (
	// ErrSizeLimitExceeded is returned when a successfully encoded payload
	// is larger than the configured maximum. The render result is still
	// populated so the caller can report the oversized payload.
	ErrSizeLimitExceeded = errors.New("orchestrator: output exceeds size limit")

	// ErrRenderFailure is returned for unexpected pipeline failures.
	// The original diagnostic detail is logged, not surfaced.
	ErrRenderFailure = errors.New("orchestrator: render failed")
)

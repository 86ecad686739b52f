package resizer

import (
	"github.com/GunmeetS/rotate-resize-image/internal/transform"
	"github.com/pkg/errors"
)

// Error kinds. All are terminal for the call that returns them; use
// errors.Is to branch on the kind.
var (
	// ErrDecode means the input bytes are not a loadable image.
	ErrDecode = transform.ErrDecode

	// ErrRenderingUnavailable means no drawing surface could be allocated,
	// for instance when the fitted image collapses to zero pixels.
	ErrRenderingUnavailable = transform.ErrRenderingUnavailable

	// ErrRead means the raw bytes could not be read.
	ErrRead = errors.New("failed to read file")

	// ErrInvalidTarget means a target size was not a positive number.
	ErrInvalidTarget = errors.New("target size must be positive")
)

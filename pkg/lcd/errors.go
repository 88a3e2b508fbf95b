package lcd

import "errors"

// Failure classes surfaced by the open paths.
var (
	// ErrNoDisplay means no known device node was present and writable.
	ErrNoDisplay = errors.New("lcd: no display device available")

	// ErrUnsupportedDepth means the hardware reported a color depth
	// outside {4, 16, 32} bits per pixel.
	ErrUnsupportedDepth = errors.New("lcd: unsupported bits per pixel")
)

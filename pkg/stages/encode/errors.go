package encode

import "errors"

// ErrNoFrames is returned when the encoder is invoked with an empty
// frame sequence. It indicates an internal contract violation upstream,
// not a user error.
var ErrNoFrames = errors.New("encode: no frames to encode")

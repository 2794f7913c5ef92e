package auth

import "errors"

// ErrUnsupportedKDF is returned for a KdfVersion value outside the known set.
var ErrUnsupportedKDF = errors.New("unsupported kdf")

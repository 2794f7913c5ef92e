package lz4block

import "errors"

// ErrDecompression is returned when an LZ4 block cannot be decompressed,
// wrapping whatever the underlying decoder reported.
var ErrDecompression = errors.New("decompression")

package lz4block

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// maxAttempts bounds the buffer-growth retry loop so a truly corrupt
// block fails instead of growing the output buffer without limit.
const maxAttempts = 16

// Decompress decodes a single framing-less LZ4 block. It starts with an
// output buffer sized at max(1, len(c)*12) and doubles it whenever the
// decoder reports the output buffer was too small, at most maxAttempts
// times; the decoder does not report the size it needed. Empty input
// returns empty output.
func Decompress(c []byte) ([]byte, error) {
	if len(c) == 0 {
		return []byte{}, nil
	}

	size := len(c) * 12
	if size < 1 {
		size = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		dst := make([]byte, size)
		n, err := lz4.UncompressBlock(c, dst)
		if err == nil {
			return dst[:n], nil
		}
		if !isOutputTooSmall(err) {
			return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
		}
		size *= 2
	}
	return nil, fmt.Errorf("%w: output buffer exceeded retry limit", ErrDecompression)
}

// isOutputTooSmall reports whether err is the decoder's "invalid source
// or destination buffer too short" error, the only case retried with a
// larger buffer. The decoder returns that same error for a corrupt
// block, so a corrupt block is retried until maxAttempts is reached.
func isOutputTooSmall(err error) bool {
	return err == lz4.ErrInvalidSourceShortBuffer
}

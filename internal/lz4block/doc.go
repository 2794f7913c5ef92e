// Package lz4block decompresses framing-less LZ4 blocks with a growing
// output buffer, since the server never tells the client the decompressed
// size up front.
package lz4block

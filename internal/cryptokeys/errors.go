package cryptokeys

import "errors"

var (
	// ErrInvalidKeySize is returned when a plain key is neither 16 nor 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidEncryptedKeySize is returned when an encrypted key's byte
	// length matches none of the known variants (16, 32, 65).
	ErrInvalidEncryptedKeySize = errors.New("invalid encrypted key size")
)

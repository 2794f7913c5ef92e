package symcrypto

import "errors"

var (
	// ErrHMACVerification is returned when an authenticated ciphertext's
	// MAC does not match the derived MAC subkey.
	ErrHMACVerification = errors.New("HMAC verification")

	// ErrCiphertextTooShort is returned when a ciphertext is too short to
	// contain an IV plus at least one cipher block.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidPadding is returned when Pkcs7 unpadding finds a malformed
	// padding trailer.
	ErrInvalidPadding = errors.New("invalid padding")
)

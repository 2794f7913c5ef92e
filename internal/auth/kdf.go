package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/tutaexport/tuta-export/internal/cryptokeys"
	"github.com/tutaexport/tuta-export/internal/wire"
)

const (
	argon2Time    = 4
	argon2MemKiB  = 32 * 1024
	argon2Threads = 1
	argon2KeyLen  = 32
)

// DerivePassphraseKey turns a password and the server's KDF parameters
// into the user's passphrase key.
func DerivePassphraseKey(version wire.KdfVersion, password string, salt []byte) (cryptokeys.Key, error) {
	switch version {
	case wire.KdfBcrypt:
		return deriveBcryptKey(password, salt)
	case wire.KdfArgon2id:
		return deriveArgon2idKey(password, salt)
	default:
		return cryptokeys.Key{}, fmt.Errorf("derive passphrase key: %w: %v", ErrUnsupportedKDF, version)
	}
}

// deriveBcryptKey SHA-256-prehashes the password to 32 bytes, then runs
// bcrypt with cost 8 under the server salt; the passphrase key is the
// first 16 bytes of the 24-byte bcrypt digest.
func deriveBcryptKey(password string, salt []byte) (cryptokeys.Key, error) {
	prehash := sha256.Sum256([]byte(password))
	digest, err := rawBcrypt(bcryptCost, salt, prehash[:])
	if err != nil {
		return cryptokeys.Key{}, fmt.Errorf("bcrypt kdf: %w", err)
	}
	return cryptokeys.NewKey128(digest[:16])
}

// deriveArgon2idKey runs Argon2id with the server salt directly (no
// password prehash) to produce a 32-byte Aes256 passphrase key.
func deriveArgon2idKey(password string, salt []byte) (cryptokeys.Key, error) {
	digest := argon2.IDKey([]byte(password), salt, argon2Time, argon2MemKiB, argon2Threads, argon2KeyLen)
	return cryptokeys.NewKey256(digest)
}

// AuthVerifier is the SHA-256 digest of the passphrase key, sent to the
// session service to prove knowledge of the password.
func AuthVerifier(passphraseKey cryptokeys.Key) []byte {
	sum := sha256.Sum256(passphraseKey.Bytes())
	return sum[:]
}

// AuthVerifierString renders AuthVerifier as URL-safe base64 without
// padding, the form it takes as a standalone string in tests and logs.
func AuthVerifierString(passphraseKey cryptokeys.Key) string {
	return base64.RawURLEncoding.EncodeToString(AuthVerifier(passphraseKey))
}

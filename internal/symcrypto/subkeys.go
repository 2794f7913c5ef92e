package symcrypto

import (
	"crypto/sha256"
	"crypto/sha512"

	"github.com/tutaexport/tuta-export/internal/cryptokeys"
)

// subkeys is the encryption/MAC key pair derived from an outer key before
// verifying and decrypting an authenticated ciphertext.
type subkeys struct {
	encKey []byte
	macKey []byte
}

// deriveSubkeys hashes the outer key and splits the digest in half: SHA-256
// for an Aes128 outer key (32 bytes -> 16/16), SHA-512 for an Aes256 outer
// key (64 bytes -> 32/32).
func deriveSubkeys(outer cryptokeys.Key) subkeys {
	raw := outer.Bytes()
	switch outer.Kind() {
	case cryptokeys.Aes256:
		digest := sha512.Sum512(raw)
		return subkeys{
			encKey: append([]byte(nil), digest[:32]...),
			macKey: append([]byte(nil), digest[32:]...),
		}
	default:
		digest := sha256.Sum256(raw)
		return subkeys{
			encKey: append([]byte(nil), digest[:16]...),
			macKey: append([]byte(nil), digest[16:]...),
		}
	}
}

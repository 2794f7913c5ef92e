package symcrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"

	"github.com/tutaexport/tuta-export/internal/cryptokeys"
)

// constantKeyIV is the fixed 16-byte IV used to unwrap Aes128NoMac and
// Aes256NoMac encrypted keys: every byte equals 0x88 (128 + 8).
var constantKeyIV = [16]byte{
	0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88,
	0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x88,
}

// DecryptValue decrypts an opaque byte payload, returning plaintext with
// Pkcs7 padding removed. Empty input returns empty output.
func DecryptValue(key cryptokeys.Key, value []byte) ([]byte, error) {
	if len(value) == 0 {
		return []byte{}, nil
	}
	return decryptPayload(key, value, true)
}

// DecryptKey unwraps an EncryptedKey under an outer key, returning the
// plain Key it wraps.
func DecryptKey(outer cryptokeys.Key, enc cryptokeys.EncryptedKey) (cryptokeys.Key, error) {
	switch enc.Kind() {
	case cryptokeys.Aes128NoMac:
		plain, err := cbcDecrypt(outer.Bytes(), constantKeyIV[:], enc.Bytes(), false)
		if err != nil {
			return cryptokeys.Key{}, fmt.Errorf("decrypt key: %w", err)
		}
		return cryptokeys.NewKey128(plain)
	case cryptokeys.Aes256NoMac:
		plain, err := cbcDecrypt(outer.Bytes(), constantKeyIV[:], enc.Bytes(), false)
		if err != nil {
			return cryptokeys.Key{}, fmt.Errorf("decrypt key: %w", err)
		}
		return cryptokeys.NewKey256(plain)
	case cryptokeys.Aes128WithMac:
		plain, err := decryptPayload(outer, enc.Bytes(), false)
		if err != nil {
			return cryptokeys.Key{}, fmt.Errorf("decrypt key: %w", err)
		}
		return cryptokeys.NewKey128(plain)
	default:
		return cryptokeys.Key{}, fmt.Errorf("decrypt key: unsupported encrypted key variant %s", enc.Kind())
	}
}

// decryptPayload implements the shared authenticate-then-decrypt
// algorithm: odd-length input is MAC-authenticated under a derived
// subkey pair, even-length input uses the outer key directly. The
// remaining bytes after any MAC stripping are iv(16) || ciphertext,
// decrypted with AES-CBC and the requested padding mode.
func decryptPayload(key cryptokeys.Key, value []byte, padding bool) ([]byte, error) {
	var encKey, remaining []byte

	if len(value)%2 == 1 {
		if len(value) < 1+32 {
			return nil, fmt.Errorf("decrypt: %w", ErrCiphertextTooShort)
		}
		payload := value[1 : len(value)-32]
		mac := value[len(value)-32:]

		sub := deriveSubkeys(key)
		expected := hmac.New(sha256.New, sub.macKey)
		expected.Write(payload)
		if !hmac.Equal(expected.Sum(nil), mac) {
			return nil, ErrHMACVerification
		}
		encKey = sub.encKey
		remaining = payload
	} else {
		encKey = key.Bytes()
		remaining = value
	}

	if len(remaining) < 16 {
		return nil, fmt.Errorf("decrypt: %w", ErrCiphertextTooShort)
	}
	iv := remaining[:16]
	ciphertext := remaining[16:]
	return cbcDecrypt(encKey, iv, ciphertext, padding)
}

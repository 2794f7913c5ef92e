package auth

import (
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// bcryptCost is the fixed work factor the server's bcrypt KDF variant
// always uses.
const bcryptCost = 8

// bcryptMagic is the 24-byte "OrpheanBeholderScryDoubt" constant the
// bcrypt core algorithm encrypts 64 times per block.
var bcryptMagic = []byte("OrpheanBeholderScryDoubt")

// rawBcrypt runs the bcrypt core transform under an explicit salt and
// returns its full 24-byte digest. golang.org/x/crypto/bcrypt only
// exposes the textual, random-salt hashing API used for password
// storage; this KDF needs the raw digest under a server-supplied salt,
// so the same EksBlowfish schedule x/crypto/bcrypt builds on is driven
// directly through golang.org/x/crypto/blowfish.
func rawBcrypt(cost int, salt, key []byte) ([]byte, error) {
	cipher, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return nil, fmt.Errorf("bcrypt: %w", err)
	}

	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, cipher)
		blowfish.ExpandKey(salt, cipher)
	}

	digest := append([]byte(nil), bcryptMagic...)
	for i := 0; i < len(digest); i += 8 {
		block := digest[i : i+8]
		for j := 0; j < 64; j++ {
			cipher.Encrypt(block, block)
		}
	}
	return digest, nil
}

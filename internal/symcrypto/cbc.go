package symcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// pkcs7Pad pads data to a multiple of blockSize, per RFC 5652.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

// pkcs7Unpad strips and validates Pkcs7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("cbc: %w", ErrInvalidPadding)
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("cbc: %w", ErrInvalidPadding)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("cbc: %w", ErrInvalidPadding)
		}
	}
	return data[:len(data)-padLen], nil
}

// cbcDecrypt decrypts ciphertext (which must be a multiple of the AES
// block size) under key and iv, optionally stripping Pkcs7 padding
// afterward for value-mode decryption. Key-mode decryption (padding
// false) returns the raw decrypted blocks unchanged.
func cbcDecrypt(key, iv, ciphertext []byte, padding bool) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cbc: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("cbc: %w", ErrCiphertextTooShort)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	if !padding {
		return plaintext, nil
	}
	return pkcs7Unpad(plaintext, block.BlockSize())
}

// cbcEncrypt encrypts plaintext under key and iv, Pkcs7-padding it first
// when padding is true.
func cbcEncrypt(key, iv, plaintext []byte, padding bool) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cbc: %w", err)
	}
	data := plaintext
	if padding {
		data = pkcs7Pad(plaintext, block.BlockSize())
	}
	if len(data)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("cbc: %w", ErrCiphertextTooShort)
	}
	ciphertext := make([]byte, len(data))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, data)
	return ciphertext, nil
}

package symcrypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tutaexport/tuta-export/internal/cryptokeys"
)

func mustKey128(t *testing.T, b []byte) cryptokeys.Key {
	t.Helper()
	k, err := cryptokeys.NewKey128(b)
	if err != nil {
		t.Fatalf("NewKey128: %v", err)
	}
	return k
}

func mustKey256(t *testing.T, b []byte) cryptokeys.Key {
	t.Helper()
	k, err := cryptokeys.NewKey256(b)
	if err != nil {
		t.Fatalf("NewKey256: %v", err)
	}
	return k
}

func TestDecryptKeyAes128NoMac(t *testing.T) {
	outer := mustKey128(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	enc, err := cryptokeys.NewEncryptedKey([]byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160})
	if err != nil {
		t.Fatalf("NewEncryptedKey: %v", err)
	}
	want := []byte{177, 11, 11, 117, 32, 75, 2, 15, 107, 230, 248, 94, 26, 11, 143, 0}

	got, err := DecryptKey(outer, enc)
	if err != nil {
		t.Fatalf("DecryptKey: %v", err)
	}
	if got.Kind() != cryptokeys.Aes128 {
		t.Fatalf("kind = %s, want Aes128", got.Kind())
	}
	if !bytes.Equal(got.Bytes(), want) {
		t.Fatalf("bytes = %x, want %x", got.Bytes(), want)
	}
}

func TestDecryptKeyAes256NoMac(t *testing.T) {
	outer := mustKey128(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	ciphertext := bytes.Repeat([]byte{42}, 32)
	enc, err := cryptokeys.NewEncryptedKey(ciphertext)
	if err != nil {
		t.Fatalf("NewEncryptedKey: %v", err)
	}
	want := []byte{
		167, 228, 240, 83, 0, 221, 168, 213, 118, 210, 12, 226, 248, 24, 227, 195,
		5, 70, 82, 241, 162, 127, 10, 119, 212, 112, 174, 64, 90, 186, 65, 97,
	}

	got, err := DecryptKey(outer, enc)
	if err != nil {
		t.Fatalf("DecryptKey: %v", err)
	}
	if got.Kind() != cryptokeys.Aes256 {
		t.Fatalf("kind = %s, want Aes256", got.Kind())
	}
	if !bytes.Equal(got.Bytes(), want) {
		t.Fatalf("bytes = %x, want %x", got.Bytes(), want)
	}
}

func TestDecryptKeyAes128WithMac(t *testing.T) {
	outer := mustKey256(t, []byte{
		168, 18, 253, 146, 180, 160, 144, 17, 181, 23, 153, 71, 126, 140, 5, 122,
		189, 109, 232, 217, 2, 26, 130, 137, 191, 228, 33, 13, 104, 18, 220, 192,
	})
	enc, err := cryptokeys.NewEncryptedKey([]byte{
		1, 17, 85, 164, 64, 137, 179, 181, 108, 128, 157, 31, 215, 209, 169, 34,
		71, 106, 92, 19, 222, 85, 91, 120, 167, 37, 139, 139, 63, 55, 197, 186,
		131, 158, 16, 187, 224, 101, 41, 163, 91, 255, 170, 107, 37, 130, 217, 184,
		167, 123, 31, 117, 36, 126, 42, 124, 162, 56, 32, 42, 190, 47, 63, 245, 95,
	})
	if err != nil {
		t.Fatalf("NewEncryptedKey: %v", err)
	}
	want := []byte{197, 71, 160, 239, 145, 155, 190, 41, 229, 171, 174, 235, 106, 199, 82, 100}

	got, err := DecryptKey(outer, enc)
	if err != nil {
		t.Fatalf("DecryptKey: %v", err)
	}
	if got.Kind() != cryptokeys.Aes128 {
		t.Fatalf("kind = %s, want Aes128", got.Kind())
	}
	if !bytes.Equal(got.Bytes(), want) {
		t.Fatalf("bytes = %x, want %x", got.Bytes(), want)
	}
}

func TestDecryptValue(t *testing.T) {
	key := mustKey256(t, []byte{
		163, 52, 230, 134, 76, 199, 13, 61, 124, 69, 58, 80, 3, 1, 198, 219,
		215, 51, 42, 8, 59, 76, 55, 188, 101, 165, 209, 167, 111, 205, 128, 60,
	})
	ciphertext := []byte{
		1, 1, 221, 88, 186, 70, 178, 125, 28, 66, 245, 102, 7, 214, 121, 162,
		88, 138, 118, 208, 12, 173, 154, 251, 201, 68, 94, 254, 228, 178, 138, 73,
		52, 118, 21, 143, 248, 117, 32, 158, 29, 154, 194, 98, 55, 215, 5, 129,
		18, 13, 32, 165, 44, 185, 129, 14, 78, 146, 134, 10, 134, 81, 50, 252, 212,
	}

	got, err := DecryptValue(key, ciphertext)
	if err != nil {
		t.Fatalf("DecryptValue: %v", err)
	}
	if string(got) != "fooooo" {
		t.Fatalf("plaintext = %q, want %q", got, "fooooo")
	}
}

func TestDecryptValueEmpty(t *testing.T) {
	key := mustKey256(t, make([]byte, 32))
	got, err := DecryptValue(key, nil)
	if err != nil {
		t.Fatalf("DecryptValue: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("plaintext = %x, want empty", got)
	}
}

func TestDecryptValueHMACFailure(t *testing.T) {
	key := mustKey256(t, []byte{
		163, 52, 230, 134, 76, 199, 13, 61, 124, 69, 58, 80, 3, 1, 198, 219,
		215, 51, 42, 8, 59, 76, 55, 188, 101, 165, 209, 167, 111, 205, 128, 60,
	})
	ciphertext := []byte{
		1, 1, 221, 88, 186, 70, 178, 125, 28, 66, 245, 102, 7, 214, 121, 162,
		88, 138, 118, 208, 12, 173, 154, 251, 201, 68, 94, 254, 228, 178, 138, 73,
		52, 118, 21, 143, 248, 117, 32, 158, 29, 154, 194, 98, 55, 215, 5, 129,
		18, 13, 32, 165, 44, 185, 129, 14, 78, 146, 134, 10, 134, 81, 50, 252, 212,
	}
	ciphertext[1] ^= 0xFF

	_, err := DecryptValue(key, ciphertext)
	if !errors.Is(err, ErrHMACVerification) {
		t.Fatalf("err = %v, want ErrHMACVerification", err)
	}
}

func TestRoundTripValueUnauthenticated(t *testing.T) {
	key := mustKey128(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	iv := make([]byte, 16)
	plaintext := []byte("round trip through unauthenticated CBC")

	ciphertext, err := cbcEncrypt(key.Bytes(), iv, plaintext, true)
	if err != nil {
		t.Fatalf("cbcEncrypt: %v", err)
	}
	value := append(append([]byte(nil), iv...), ciphertext...)

	got, err := DecryptValue(key, value)
	if err != nil {
		t.Fatalf("DecryptValue: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("plaintext = %q, want %q", got, plaintext)
	}
}

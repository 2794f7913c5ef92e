package cryptokeys

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewKeySelectsVariantBySize(t *testing.T) {
	k128, err := NewKey(bytes.Repeat([]byte{1}, Aes128KeySize))
	if err != nil {
		t.Fatalf("NewKey(16 bytes): %v", err)
	}
	if k128.Kind() != Aes128 {
		t.Fatalf("Kind() = %v, want Aes128", k128.Kind())
	}

	k256, err := NewKey(bytes.Repeat([]byte{2}, Aes256KeySize))
	if err != nil {
		t.Fatalf("NewKey(32 bytes): %v", err)
	}
	if k256.Kind() != Aes256 {
		t.Fatalf("Kind() = %v, want Aes256", k256.Kind())
	}
}

func TestNewKeyRejectsBadSize(t *testing.T) {
	if _, err := NewKey(make([]byte, 5)); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("err = %v, want ErrInvalidKeySize", err)
	}
}

func TestKeyEqual(t *testing.T) {
	a, _ := NewKey128(bytes.Repeat([]byte{9}, Aes128KeySize))
	b, _ := NewKey128(bytes.Repeat([]byte{9}, Aes128KeySize))
	c, _ := NewKey128(bytes.Repeat([]byte{8}, Aes128KeySize))

	if !a.Equal(b) {
		t.Fatal("identical keys should be equal")
	}
	if a.Equal(c) {
		t.Fatal("different keys should not be equal")
	}
}

func TestKeyBytesReturnsCopy(t *testing.T) {
	k, _ := NewKey128(bytes.Repeat([]byte{7}, Aes128KeySize))
	b := k.Bytes()
	b[0] = 0
	if k.Bytes()[0] != 7 {
		t.Fatal("mutating the returned slice should not affect the key")
	}
}

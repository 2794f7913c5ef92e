package cryptokeys

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// KeyKind distinguishes the two plain-key variants.
type KeyKind int

const (
	Aes128 KeyKind = iota
	Aes256
)

func (k KeyKind) String() string {
	switch k {
	case Aes128:
		return "Aes128"
	case Aes256:
		return "Aes256"
	default:
		return "unknown"
	}
}

// Key is an immutable, copy-by-value symmetric key tagged by size: 16
// bytes for Aes128, 32 bytes for Aes256. The zero value is not valid;
// construct one with NewKey128, NewKey256, or NewKey.
type Key struct {
	kind  KeyKind
	bytes []byte
}

// NewKey builds a Key from raw bytes, selecting the variant by length.
func NewKey(b []byte) (Key, error) {
	switch len(b) {
	case Aes128KeySize:
		return NewKey128(b)
	case Aes256KeySize:
		return NewKey256(b)
	default:
		return Key{}, fmt.Errorf("key: %w: %d bytes", ErrInvalidKeySize, len(b))
	}
}

// NewKey128 builds an Aes128 key, requiring exactly 16 bytes.
func NewKey128(b []byte) (Key, error) {
	if len(b) != Aes128KeySize {
		return Key{}, fmt.Errorf("key: %w: %d bytes", ErrInvalidKeySize, len(b))
	}
	return Key{kind: Aes128, bytes: append([]byte(nil), b...)}, nil
}

// NewKey256 builds an Aes256 key, requiring exactly 32 bytes.
func NewKey256(b []byte) (Key, error) {
	if len(b) != Aes256KeySize {
		return Key{}, fmt.Errorf("key: %w: %d bytes", ErrInvalidKeySize, len(b))
	}
	return Key{kind: Aes256, bytes: append([]byte(nil), b...)}, nil
}

// Kind reports which variant the key is.
func (k Key) Kind() KeyKind { return k.kind }

// Bytes returns a copy of the key's raw bytes.
func (k Key) Bytes() []byte {
	return append([]byte(nil), k.bytes...)
}

// Equal reports whether two keys carry the same kind and bytes, in
// constant time for the byte comparison.
func (k Key) Equal(other Key) bool {
	return k.kind == other.kind && subtle.ConstantTimeCompare(k.bytes, other.bytes) == 1
}

// String renders the key as lowercase hex, matching the teacher
// crypto package's debug formatting convention.
func (k Key) String() string {
	return hex.EncodeToString(k.bytes)
}

// GoString renders the key including its kind, for %#v formatting.
func (k Key) GoString() string {
	return fmt.Sprintf("cryptokeys.Key{kind:%s, bytes:%s}", k.kind, hex.EncodeToString(k.bytes))
}

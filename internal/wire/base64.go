package wire

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Base64String is a byte string transported with the standard base64
// alphabet and padding.
type Base64String []byte

func (b Base64String) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.StdEncoding.EncodeToString(b))
}

func (b *Base64String) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("base64 string: %w", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return fmt.Errorf("base64 string: %w", err)
	}
	*b = decoded
	return nil
}

// Base64URL is a byte string transported with the URL-safe base64
// alphabet and no padding.
type Base64URL []byte

func (b Base64URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.RawURLEncoding.EncodeToString(b))
}

func (b *Base64URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("base64 url: %w", err)
	}
	decoded, err := decodeBase64URLLenient(s)
	if err != nil {
		return fmt.Errorf("base64 url: %w", err)
	}
	*b = decoded
	return nil
}

// decodeBase64URLLenient accepts both padded and unpadded URL-safe base64,
// since some servers pad and some don't.
func decodeBase64URLLenient(s string) ([]byte, error) {
	if b, err := base64.RawURLEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(s)
}

// String returns the URL-safe base64 encoding without padding.
func (b Base64URL) String() string {
	return base64.RawURLEncoding.EncodeToString(b)
}

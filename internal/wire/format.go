package wire

import (
	"encoding/json"
	"fmt"
)

// Format is the literal "_format" field every Tutanota record carries.
// It always serializes to "0" and deserialization rejects any other value.
type Format struct{}

func (Format) MarshalJSON() ([]byte, error) {
	return json.Marshal("0")
}

func (*Format) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if s != "0" {
		return fmt.Errorf("unknown variant: %s", s)
	}
	return nil
}

// Null serializes as JSON null and ignores whatever it is given on
// deserialization (the server never sends anything else for these fields).
type Null struct{}

func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (*Null) UnmarshalJSON([]byte) error {
	return nil
}

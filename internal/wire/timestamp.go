package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a point in time transported as a decimal string counting
// milliseconds since the Unix epoch. Decoded values are always UTC.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	ms := time.Time(t).UnixMilli()
	return json.Marshal(strconv.FormatInt(ms, 10))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = Timestamp(time.UnixMilli(ms).UTC())
	return nil
}

// Time returns the underlying time.Time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

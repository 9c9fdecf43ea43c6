package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// UnixTime is a timestamp encoded on the wire as Unix seconds. The server may
// send either an integer or a fractional number; both decode.
type UnixTime float64

// NewUnixTime converts t into a [UnixTime].
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime(float64(t.UnixNano()) / float64(time.Second))
}

// Time returns the timestamp as a [time.Time] in UTC.
func (u UnixTime) Time() time.Time {
	sec, frac := math.Modf(float64(u))
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

// UnmarshalJSON accepts numbers and numeric strings; null leaves the zero value.
func (u *UnixTime) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*u = 0
	case float64:
		*u = UnixTime(value)
	case string:
		var f float64
		if _, err := fmt.Sscanf(value, "%g", &f); err != nil {
			return fmt.Errorf("invalid unix time %q: %w", value, err)
		}
		*u = UnixTime(f)
	default:
		return fmt.Errorf("invalid unix time %s", string(b))
	}
	return nil
}

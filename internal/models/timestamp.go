package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the date-only ISO-8601 layout accepted for timestamps
const DateLayout = "2006-01-02"

// Timestamp is an ISO-8601 instant that remembers whether it was written as a
// full RFC 3339 timestamp or a bare date, so documents round-trip unchanged.
type Timestamp struct {
	time.Time
	dateOnly bool
}

// NewTimestamp wraps t as a full RFC 3339 timestamp in UTC
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// ParseTimestamp accepts RFC 3339 (with or without fractional seconds) or YYYY-MM-DD
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: t}, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return Timestamp{Time: t, dateOnly: true}, nil
	}
	return Timestamp{}, fmt.Errorf("invalid ISO-8601 timestamp %q", s)
}

// String formats the timestamp in the layout it was parsed from
func (ts Timestamp) String() string {
	if ts.Time.IsZero() {
		return ""
	}
	if ts.dateOnly {
		return ts.Time.Format(DateLayout)
	}
	return ts.Time.Format(time.RFC3339Nano)
}

// MarshalJSON implements json.Marshaler
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

// UnmarshalJSON implements json.Unmarshaler; null and "" decode to the zero value
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

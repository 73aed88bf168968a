package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// ErrInvalidRatingValue is returned when a rating value is neither a JSON
// number nor a JSON string.
var ErrInvalidRatingValue = errors.New("invalid rating value")

// RatingValue holds the textual rendering of an upstream rating. Upstream sends
// either numbers (8.8) or strings ("8.8"); both decode to the same text.
type RatingValue string

// UnmarshalJSON accepts a JSON number or string. Numbers are rendered in their
// shortest round-trip decimal form, so 8.80 becomes "8.8" and 9.0 becomes "9".
// null leaves the value empty.
func (v *RatingValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrInvalidRatingValue
	}

	if string(data) == "null" {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidRatingValue
		}
		*v = RatingValue(s)
		return nil
	case 't', 'f', '[', '{':
		return ErrInvalidRatingValue
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return ErrInvalidRatingValue
	}
	*v = RatingValue(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// String returns the rating text.
func (v RatingValue) String() string {
	return string(v)
}

package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Money is a decimal amount in the store currency. The backend serializes
// decimal fields as JSON strings, while some aggregate endpoints return
// plain numbers, so both encodings are accepted.
type Money float64

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("money: invalid string %s: %w", data, err)
		}
		if s == "" {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("money: invalid amount %q: %w", s, err)
		}
		*m = Money(v)
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("money: invalid amount %s: %w", data, err)
	}
	*m = Money(v)
	return nil
}

// MarshalJSON emits the amount as a JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(m), 'f', -1, 64)), nil
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return strconv.FormatFloat(float64(m), 'f', 2, 64)
}

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Decimal is a money/quantity value. Clients and backup documents send these
// either as JSON numbers or as numeric strings ("100", "99.50"), so decoding
// accepts both forms. Stored as a plain numeric column.
type Decimal float64

// Float64 returns the underlying value
func (d Decimal) Float64() float64 {
	return float64(d)
}

// UnmarshalJSON accepts numbers, numeric strings, empty strings and null
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*d = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*d = Decimal(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*d = Decimal(f)
	return nil
}

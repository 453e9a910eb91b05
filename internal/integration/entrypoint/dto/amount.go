package dto

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount is a money value decoded leniently from JSON. Numbers and numeric
// strings parse; null, empty strings and anything else leave it missing
// instead of failing the whole request.
type Amount struct {
	value *decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return nil
	}
	a.value = &d
	return nil
}

// Decimal returns the parsed value, or nil when the amount was missing or malformed.
func (a Amount) Decimal() *decimal.Decimal {
	return a.value
}

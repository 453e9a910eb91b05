// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// toFloat converts a decimal to a JSON number.
func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// toPercent converts a percentage to a JSON number with two decimals.
func toPercent(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

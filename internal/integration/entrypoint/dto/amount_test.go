package dto

import (
	"encoding/json"
	"testing"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "number", raw: `125.5`, want: "125.5"},
		{name: "numeric string", raw: `"600.00"`, want: "600"},
		{name: "null", raw: `null`},
		{name: "empty string", raw: `""`},
		{name: "text", raw: `"N/A"`},
		{name: "boolean", raw: `true`},
		{name: "object", raw: `{"value": 10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var holder struct {
				Amount Amount `json:"amount"`
			}
			if err := json.Unmarshal([]byte(`{"amount": `+tt.raw+`}`), &holder); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := holder.Amount.Decimal()
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected missing amount, got %s", got)
				}
				return
			}
			if got == nil || got.String() != tt.want {
				t.Errorf("expected %s, got %v", tt.want, got)
			}
		})
	}
}

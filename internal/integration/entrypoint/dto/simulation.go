package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/application/usecase/dashboard"
	"github.com/owner-portal/backend/internal/domain/entity"
)

// SimulateForecastRequest represents the request body for a forecast simulation.
// Records mirror what the storage service returns; amounts may be numbers,
// numeric strings or null. A booking or lease that cannot be decoded is kept
// as an empty record so the normalizer discards it.
type SimulateForecastRequest struct {
	ShortTerm  []ShortTermBookingRequest    `json:"short_term"`
	MidTerm    []MidTermLeaseRequest        `json:"mid_term"`
	Statements []ReconciledStatementRequest `json:"statements"`
	Horizons   []int                        `json:"horizons"`
	Now        *time.Time                   `json:"now"`
}

// ShortTermBookingRequest represents a raw nightly booking.
type ShortTermBookingRequest struct {
	ID          string `json:"id"`
	GuestName   string `json:"guest_name"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	TotalAmount Amount `json:"total_amount"`
	Status      string `json:"status"`
}

// UnmarshalJSON decodes a booking, leaving it empty when the shape is wrong.
func (r *ShortTermBookingRequest) UnmarshalJSON(data []byte) error {
	type plain ShortTermBookingRequest
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		*r = ShortTermBookingRequest{}
		return nil
	}
	*r = ShortTermBookingRequest(decoded)
	return nil
}

// MidTermLeaseRequest represents a raw monthly lease.
type MidTermLeaseRequest struct {
	ID          string `json:"id"`
	TenantName  string `json:"tenant_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MonthlyRent Amount `json:"monthly_rent"`
	Status      string `json:"status"`
}

// UnmarshalJSON decodes a lease, leaving it empty when the shape is wrong.
func (r *MidTermLeaseRequest) UnmarshalJSON(data []byte) error {
	type plain MidTermLeaseRequest
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		*r = MidTermLeaseRequest{}
		return nil
	}
	*r = MidTermLeaseRequest(decoded)
	return nil
}

// ReconciledStatementRequest represents a monthly statement.
type ReconciledStatementRequest struct {
	Period            string `json:"period"`
	TotalRevenue      Amount `json:"total_revenue"`
	TotalExpenses     Amount `json:"total_expenses"`
	NetToOwner        Amount `json:"net_to_owner"`
	ActualNetEarnings Amount `json:"actual_net_earnings"`
}

// SimulateForecastResponse represents the response for a forecast simulation.
type SimulateForecastResponse struct {
	Data SimulateForecastData `json:"data"`
}

// SimulateForecastData represents the data section of a simulation response.
type SimulateForecastData struct {
	GeneratedAt      time.Time                `json:"generated_at"`
	IntervalsCount   int                      `json:"intervals_count"`
	DiscardedRecords int                      `json:"discarded_records"`
	Windows          []ForecastWindowResponse `json:"windows"`
	Performance      *PerformanceData         `json:"performance"`
}

// ToSimulateForecastInput converts the request into the use case input.
func (r SimulateForecastRequest) ToSimulateForecastInput() dashboard.SimulateForecastInput {
	input := dashboard.SimulateForecastInput{
		ShortTerm:  make([]entity.ShortTermBooking, len(r.ShortTerm)),
		MidTerm:    make([]entity.MidTermLease, len(r.MidTerm)),
		Statements: make([]entity.ReconciledStatement, len(r.Statements)),
		Horizons:   r.Horizons,
		Now:        r.Now,
	}

	for i, b := range r.ShortTerm {
		input.ShortTerm[i] = entity.ShortTermBooking{
			ID:          b.ID,
			GuestName:   b.GuestName,
			CheckIn:     b.CheckIn,
			CheckOut:    b.CheckOut,
			TotalAmount: b.TotalAmount.Decimal(),
			Status:      b.Status,
		}
	}

	for i, l := range r.MidTerm {
		input.MidTerm[i] = entity.MidTermLease{
			ID:          l.ID,
			TenantName:  l.TenantName,
			StartDate:   l.StartDate,
			EndDate:     l.EndDate,
			MonthlyRent: l.MonthlyRent.Decimal(),
			Status:      l.Status,
		}
	}

	for i, s := range r.Statements {
		input.Statements[i] = entity.ReconciledStatement{
			Period:            s.Period,
			TotalRevenue:      valueOrZero(s.TotalRevenue.Decimal()),
			TotalExpenses:     valueOrZero(s.TotalExpenses.Decimal()),
			NetToOwner:        valueOrZero(s.NetToOwner.Decimal()),
			ActualNetEarnings: s.ActualNetEarnings.Decimal(),
		}
	}

	return input
}

// ToSimulateForecastResponse converts a SimulateForecastOutput to a response DTO.
func ToSimulateForecastResponse(output *dashboard.SimulateForecastOutput) SimulateForecastResponse {
	return SimulateForecastResponse{
		Data: SimulateForecastData{
			GeneratedAt:      output.GeneratedAt,
			IntervalsCount:   output.IntervalsCount,
			DiscardedRecords: output.DiscardedRecords,
			Windows:          toWindowResponses(output.Windows),
			Performance:      toPerformanceData(output.Metrics),
		},
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

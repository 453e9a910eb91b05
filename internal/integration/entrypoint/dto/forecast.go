package dto

import (
	"time"

	"github.com/owner-portal/backend/internal/application/usecase/dashboard"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

// ForecastResponse represents the response for the forecast API.
type ForecastResponse struct {
	Data ForecastData `json:"data"`
}

// ForecastData represents the data section of the forecast response.
type ForecastData struct {
	PropertyID  string                   `json:"property_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Windows     []ForecastWindowResponse `json:"windows"`
}

// ForecastWindowResponse represents a single forecast window.
type ForecastWindowResponse struct {
	HorizonDays   int     `json:"horizon_days"`
	Revenue       float64 `json:"revenue"`
	BookingsCount int     `json:"bookings_count"`
}

// PerformanceResponse represents the response for the performance API.
// Data is null while the property has no reconciled statements.
type PerformanceResponse struct {
	Data *PerformanceData `json:"data"`
}

// PerformanceData represents aggregated statement history.
type PerformanceData struct {
	PropertyID           string  `json:"property_id,omitempty"`
	TotalRevenue         float64 `json:"total_revenue"`
	TotalExpenses        float64 `json:"total_expenses"`
	TotalNet             float64 `json:"total_net"`
	AvgMonthlyRevenue    float64 `json:"avg_monthly_revenue"`
	AvgMonthlyNet        float64 `json:"avg_monthly_net"`
	GrowthRatePercent    float64 `json:"growth_rate_percent"`
	NetGrowthRatePercent float64 `json:"net_growth_rate_percent"`
	ExpenseRatioPercent  float64 `json:"expense_ratio_percent"`
	LatestPeriod         string  `json:"latest_period"`
	StatementCount       int     `json:"statement_count"`
}

// OccupancyResponse represents the response for the occupancy API.
type OccupancyResponse struct {
	Data OccupancyData `json:"data"`
}

// OccupancyData represents occupancy over a date range.
type OccupancyData struct {
	PropertyID           string  `json:"property_id"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	AvailableNights      int     `json:"available_nights"`
	BookedNights         int     `json:"booked_nights"`
	OccupancyRatePercent float64 `json:"occupancy_rate_percent"`
	BookingsCount        int     `json:"bookings_count"`
	Revenue              float64 `json:"revenue"`
	AveragePerBooking    float64 `json:"average_per_booking"`
	AverageDailyRate     float64 `json:"average_daily_rate"`
}

// ProjectionResponse represents the response for the monthly projection API.
type ProjectionResponse struct {
	Data ProjectionData `json:"data"`
}

// ProjectionData represents the data section of the projection response.
type ProjectionData struct {
	PropertyID  string                      `json:"property_id"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Months      []MonthlyProjectionResponse `json:"months"`
}

// MonthlyProjectionResponse represents the projected revenue of one month.
type MonthlyProjectionResponse struct {
	Period        string  `json:"period"`
	ShortTerm     float64 `json:"short_term"`
	MidTerm       float64 `json:"mid_term"`
	Total         float64 `json:"total"`
	BookingsCount int     `json:"bookings_count"`
}

// ToForecastResponse converts a GetForecastOutput to a ForecastResponse DTO.
func ToForecastResponse(output *dashboard.GetForecastOutput) ForecastResponse {
	return ForecastResponse{
		Data: ForecastData{
			PropertyID:  output.PropertyID.String(),
			GeneratedAt: output.GeneratedAt,
			Windows:     toWindowResponses(output.Windows),
		},
	}
}

// ToPerformanceResponse converts a GetPerformanceOutput to a PerformanceResponse DTO.
func ToPerformanceResponse(output *dashboard.GetPerformanceOutput) PerformanceResponse {
	data := toPerformanceData(output.Metrics)
	if data != nil {
		data.PropertyID = output.PropertyID.String()
	}
	return PerformanceResponse{Data: data}
}

// ToOccupancyResponse converts a GetOccupancyOutput to an OccupancyResponse DTO.
func ToOccupancyResponse(output *dashboard.GetOccupancyOutput) OccupancyResponse {
	o := output.Occupancy
	return OccupancyResponse{
		Data: OccupancyData{
			PropertyID:           output.PropertyID.String(),
			StartDate:            o.From.Format("2006-01-02"),
			EndDate:              o.To.Format("2006-01-02"),
			AvailableNights:      o.AvailableNights,
			BookedNights:         o.BookedNights,
			OccupancyRatePercent: toPercent(o.OccupancyRatePercent),
			BookingsCount:        o.BookingsCount,
			Revenue:              toFloat(o.Revenue),
			AveragePerBooking:    toFloat(o.AveragePerBooking),
			AverageDailyRate:     toFloat(o.AverageDailyRate),
		},
	}
}

// ToProjectionResponse converts a GetProjectionOutput to a ProjectionResponse DTO.
func ToProjectionResponse(output *dashboard.GetProjectionOutput) ProjectionResponse {
	months := make([]MonthlyProjectionResponse, len(output.Months))
	for i, m := range output.Months {
		months[i] = MonthlyProjectionResponse{
			Period:        m.Period,
			ShortTerm:     toFloat(m.ShortTerm),
			MidTerm:       toFloat(m.MidTerm),
			Total:         toFloat(m.Total),
			BookingsCount: m.BookingsCount,
		}
	}

	return ProjectionResponse{
		Data: ProjectionData{
			PropertyID:  output.PropertyID.String(),
			GeneratedAt: output.GeneratedAt,
			Months:      months,
		},
	}
}

func toWindowResponses(windows []valueobject.ForecastWindow) []ForecastWindowResponse {
	out := make([]ForecastWindowResponse, len(windows))
	for i, w := range windows {
		out[i] = ForecastWindowResponse{
			HorizonDays:   w.HorizonDays,
			Revenue:       toFloat(w.Revenue),
			BookingsCount: w.BookingsCount,
		}
	}
	return out
}

func toPerformanceData(m *valueobject.PerformanceMetrics) *PerformanceData {
	if m == nil {
		return nil
	}
	return &PerformanceData{
		TotalRevenue:         toFloat(m.TotalRevenue),
		TotalExpenses:        toFloat(m.TotalExpenses),
		TotalNet:             toFloat(m.TotalNet),
		AvgMonthlyRevenue:    toFloat(m.AvgMonthlyRevenue.Round(2)),
		AvgMonthlyNet:        toFloat(m.AvgMonthlyNet.Round(2)),
		GrowthRatePercent:    toPercent(m.GrowthRatePercent),
		NetGrowthRatePercent: toPercent(m.NetGrowthRatePercent),
		ExpenseRatioPercent:  toPercent(m.ExpenseRatioPercent),
		LatestPeriod:         m.LatestPeriod,
		StatementCount:       m.StatementCount,
	}
}

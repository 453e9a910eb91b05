package forecast

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
	"github.com/owner-portal/backend/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// NetValue returns the corrected net figure when one exists, else the raw
// net-to-owner amount. Every net total, average and growth figure goes
// through it.
func NetValue(s entity.ReconciledStatement) decimal.Decimal {
	if s.ActualNetEarnings != nil {
		return *s.ActualNetEarnings
	}
	return s.NetToOwner
}

// ComputeMetrics aggregates a statement history. It returns nil when there
// are no statements yet.
func ComputeMetrics(statements []entity.ReconciledStatement) *valueobject.PerformanceMetrics {
	if len(statements) == 0 {
		return nil
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	totalNet := decimal.Zero
	for _, s := range statements {
		totalRevenue = totalRevenue.Add(s.TotalRevenue)
		totalExpenses = totalExpenses.Add(s.TotalExpenses.Abs())
		totalNet = totalNet.Add(NetValue(s))
	}

	count := decimal.NewFromInt(int64(len(statements)))
	sorted := sortByPeriodDesc(statements)

	growth := decimal.Zero
	netGrowth := decimal.Zero
	if len(sorted) > 1 {
		thisMonth, lastMonth := sorted[0], sorted[1]
		if !lastMonth.TotalRevenue.IsZero() {
			growth = thisMonth.TotalRevenue.Sub(lastMonth.TotalRevenue).
				Div(lastMonth.TotalRevenue).
				Mul(hundred)
		}
		if lastNet := NetValue(lastMonth); !lastNet.IsZero() {
			netGrowth = NetValue(thisMonth).Sub(lastNet).
				Div(lastNet.Abs()).
				Mul(hundred)
		}
	}

	expenseRatio := decimal.Zero
	if totalRevenue.IsPositive() {
		expenseRatio = totalExpenses.Div(totalRevenue).Mul(hundred)
	}

	return &valueobject.PerformanceMetrics{
		TotalRevenue:         totalRevenue,
		TotalExpenses:        totalExpenses,
		TotalNet:             totalNet,
		AvgMonthlyRevenue:    totalRevenue.Div(count),
		AvgMonthlyNet:        totalNet.Div(count),
		GrowthRatePercent:    growth,
		NetGrowthRatePercent: netGrowth,
		ExpenseRatioPercent:  expenseRatio,
		LatestPeriod:         sorted[0].Period,
		StatementCount:       len(statements),
	}
}

// sortByPeriodDesc returns a copy sorted newest first. Unparseable periods
// sort last; ties keep their input order.
func sortByPeriodDesc(statements []entity.ReconciledStatement) []entity.ReconciledStatement {
	sorted := make([]entity.ReconciledStatement, len(statements))
	copy(sorted, statements)

	sort.SliceStable(sorted, func(i, j int) bool {
		pi, okI := ParsePeriod(sorted[i].Period)
		pj, okJ := ParsePeriod(sorted[j].Period)
		if okI && okJ {
			return pi.After(pj)
		}
		return okI && !okJ
	})
	return sorted
}

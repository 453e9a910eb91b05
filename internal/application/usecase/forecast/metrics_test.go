package forecast

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/internal/domain/entity"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestComputeMetrics_NoStatements(t *testing.T) {
	if got := ComputeMetrics(nil); got != nil {
		t.Errorf("expected nil metrics, got %+v", got)
	}
	if got := ComputeMetrics([]entity.ReconciledStatement{}); got != nil {
		t.Errorf("expected nil metrics for empty slice, got %+v", got)
	}
}

func TestComputeMetrics_TwoMonthScenario(t *testing.T) {
	corrected := dec("4200")
	statements := []entity.ReconciledStatement{
		{Period: "2024-05", TotalRevenue: dec("4000"), TotalExpenses: dec("-800"), NetToOwner: dec("3200")},
		{Period: "2024-06", TotalRevenue: dec("5000"), TotalExpenses: dec("-900"), NetToOwner: dec("4100"), ActualNetEarnings: &corrected},
	}

	m := ComputeMetrics(statements)
	if m == nil {
		t.Fatal("expected metrics")
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want decimal.Decimal
	}{
		{"total revenue", m.TotalRevenue, dec("9000")},
		{"total expenses", m.TotalExpenses, dec("1700")},
		{"total net", m.TotalNet, dec("7400")},
		{"average monthly revenue", m.AvgMonthlyRevenue, dec("4500")},
		{"average monthly net", m.AvgMonthlyNet, dec("3700")},
		{"growth rate", m.GrowthRatePercent, dec("25")},
		{"net growth rate", m.NetGrowthRatePercent, dec("31.25")},
		{"expense ratio", m.ExpenseRatioPercent.Round(1), dec("18.9")},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s: expected %s, got %s", c.name, c.want, c.got)
		}
	}

	if m.LatestPeriod != "2024-06" {
		t.Errorf("expected latest period 2024-06, got %s", m.LatestPeriod)
	}
	if m.StatementCount != 2 {
		t.Errorf("expected 2 statements, got %d", m.StatementCount)
	}
}

func TestComputeMetrics_GrowthGuards(t *testing.T) {
	t.Run("a single statement has no growth", func(t *testing.T) {
		m := ComputeMetrics([]entity.ReconciledStatement{
			{Period: "2024-06", TotalRevenue: dec("5000"), NetToOwner: dec("4000")},
		})
		if !m.GrowthRatePercent.IsZero() || !m.NetGrowthRatePercent.IsZero() {
			t.Errorf("expected zero growth, got %s / %s", m.GrowthRatePercent, m.NetGrowthRatePercent)
		}
	})

	t.Run("a zero-revenue prior month yields zero growth", func(t *testing.T) {
		m := ComputeMetrics([]entity.ReconciledStatement{
			{Period: "2024-05", TotalRevenue: decimal.Zero},
			{Period: "2024-06", TotalRevenue: dec("5000")},
		})
		if !m.GrowthRatePercent.IsZero() {
			t.Errorf("expected zero growth, got %s", m.GrowthRatePercent)
		}
	})

	t.Run("zero revenue yields zero expense ratio", func(t *testing.T) {
		m := ComputeMetrics([]entity.ReconciledStatement{
			{Period: "2024-06", TotalExpenses: dec("-300")},
		})
		if !m.ExpenseRatioPercent.IsZero() {
			t.Errorf("expected zero expense ratio, got %s", m.ExpenseRatioPercent)
		}
		if !m.TotalExpenses.Equal(dec("300")) {
			t.Errorf("expected expenses 300, got %s", m.TotalExpenses)
		}
	})
}

func TestComputeMetrics_UsesLatestTwoPeriods(t *testing.T) {
	statements := []entity.ReconciledStatement{
		{Period: "2024-06", TotalRevenue: dec("3000")},
		{Period: "bad", TotalRevenue: dec("9999")},
		{Period: "2024-04", TotalRevenue: dec("1000")},
		{Period: "2024-05", TotalRevenue: dec("2000")},
	}

	m := ComputeMetrics(statements)

	if !m.GrowthRatePercent.Equal(dec("50")) {
		t.Errorf("expected growth 50, got %s", m.GrowthRatePercent)
	}
	if m.LatestPeriod != "2024-06" {
		t.Errorf("expected latest period 2024-06, got %s", m.LatestPeriod)
	}
	if statements[0].Period != "2024-06" || statements[1].Period != "bad" {
		t.Error("expected input slice to be left untouched")
	}
}

func TestComputeMetrics_NetValueSubstitution(t *testing.T) {
	zero := decimal.Zero
	statements := []entity.ReconciledStatement{
		{Period: "2024-05", TotalRevenue: dec("1000"), NetToOwner: dec("800")},
		{Period: "2024-06", TotalRevenue: dec("1000"), NetToOwner: dec("900"), ActualNetEarnings: &zero},
	}

	m := ComputeMetrics(statements)

	if !m.TotalNet.Equal(dec("800")) {
		t.Errorf("expected corrected zero to replace raw net, got total %s", m.TotalNet)
	}
	if !m.AvgMonthlyNet.Equal(dec("400")) {
		t.Errorf("expected average net 400, got %s", m.AvgMonthlyNet)
	}
	if !m.NetGrowthRatePercent.Equal(dec("-100")) {
		t.Errorf("expected net growth -100, got %s", m.NetGrowthRatePercent)
	}
}

func TestNetValue(t *testing.T) {
	corrected := dec("150")
	if got := NetValue(entity.ReconciledStatement{NetToOwner: dec("100")}); !got.Equal(dec("100")) {
		t.Errorf("expected raw net 100, got %s", got)
	}
	if got := NetValue(entity.ReconciledStatement{NetToOwner: dec("100"), ActualNetEarnings: &corrected}); !got.Equal(corrected) {
		t.Errorf("expected corrected net 150, got %s", got)
	}
}

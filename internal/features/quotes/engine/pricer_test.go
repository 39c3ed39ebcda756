package engine

import (
	"testing"

	"freight-quoter/internal/features/quotes/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieredRow() tariffs.Row {
	return tariffs.Row{
		ID:          "transfer-7",
		Kind:        tariffs.KindTransfer,
		Carrier:     "Braspress",
		Origin:      "GRU",
		Destination: "REC",
		Schedule: tariffs.Schedule{
			Tiers: []tariffs.Tier{
				{CeilingKg: d("20"), Price: d("45")},
				{CeilingKg: d("30"), Price: d("55")},
				{CeilingKg: d("50"), Price: d("70")},
				{CeilingKg: d("100"), Price: d("110")},
			},
			MinimumCharge:    d("35"),
			OverageRatePerKg: d("1.2"),
		},
		TollRatePer100Kg: d("20"),
		InsuranceMinimum: d("5"),
		InsuranceRate:    d("0.001"),
		MaxWeightKg:      d("500"),
		LeadTimeDays:     2,
	}
}

func TestPriceLeg_MinimumChargeUpToThreshold(t *testing.T) {
	row := tieredRow()
	row.Schedule.OverageRatePerKg = d("100")

	for _, w := range []string{"0.5", "5", "10"} {
		leg, err := PriceLeg(row, d(w), noDeclared)
		require.NoError(t, err)
		assert.Equal(t, "35", leg.Base.String(), "weight %s", w)
	}

	leg, err := PriceLeg(row, d("5"), noDeclared)
	require.NoError(t, err)
	assert.Equal(t, "20", leg.Toll.String())
	assert.Equal(t, "5", leg.Insurance.String())
	assert.Equal(t, "60", leg.Total.String())
	assert.Equal(t, 2, leg.LeadTimeDays)
}

func TestPriceLeg_BaseAmount(t *testing.T) {
	tests := []struct {
		name     string
		weight   string
		overage  string
		wantBase string
	}{
		// Tier 30 kg → 55, overage 25 × 1.2 = 30, lower one floored at the minimum.
		{name: "LowerOfTierAndOverageFlooredAtMinimum", weight: "25", overage: "1.2", wantBase: "35"},
		// Tier 50 kg → 70, overage 54: the overage estimate undercuts the tier.
		{name: "OverageUndercutsTier", weight: "45", overage: "1.2", wantBase: "54"},
		// Tier 20 kg → 45, overage 75: the tier is billed.
		{name: "TierUndercutsOverage", weight: "15", overage: "5", wantBase: "45"},
		{name: "CeilingIsInclusive", weight: "50", overage: "5", wantBase: "70"},
		// Above the last ceiling only the overage estimate applies.
		{name: "BeyondLastTier", weight: "101", overage: "1.2", wantBase: "121.2"},
		{name: "JustAboveThreshold", weight: "10.5", overage: "1.2", wantBase: "35"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tieredRow()
			row.Schedule.OverageRatePerKg = d(tt.overage)

			leg, err := PriceLeg(row, d(tt.weight), noDeclared)
			require.NoError(t, err)
			assert.True(t, leg.Base.Equal(d(tt.wantBase)), "base %s", leg.Base)
		})
	}
}

func TestPriceLeg_ZeroPricedTierIsAbsent(t *testing.T) {
	row := tieredRow()
	row.Schedule.Tiers = []tariffs.Tier{{CeilingKg: d("20"), Price: decimal.Zero}}
	row.Schedule.OverageRatePerKg = d("3")

	leg, err := PriceLeg(row, d("15"), noDeclared)
	require.NoError(t, err)
	assert.Equal(t, "45", leg.Base.String())
}

func TestPriceLeg_Toll(t *testing.T) {
	tests := []struct {
		weight   string
		wantToll string
	}{
		{weight: "5", wantToll: "20"},
		{weight: "100", wantToll: "20"},
		{weight: "101", wantToll: "40"},
		{weight: "250", wantToll: "60"},
	}

	for _, tt := range tests {
		t.Run(tt.weight, func(t *testing.T) {
			leg, err := PriceLeg(tieredRow(), d(tt.weight), noDeclared)
			require.NoError(t, err)
			assert.Equal(t, tt.wantToll, leg.Toll.String())
		})
	}

	row := tieredRow()
	row.TollRatePer100Kg = decimal.Zero
	leg, err := PriceLeg(row, d("101"), noDeclared)
	require.NoError(t, err)
	assert.True(t, leg.Toll.IsZero())
}

func TestPriceLeg_Insurance(t *testing.T) {
	t.Run("FloorWins", func(t *testing.T) {
		// 100 × 0.001 = 0.10 is below the 5.00 floor.
		leg, err := PriceLeg(tieredRow(), d("5"), declared("100"))
		require.NoError(t, err)
		assert.Equal(t, "5", leg.Insurance.String())
	})

	t.Run("RateWins", func(t *testing.T) {
		leg, err := PriceLeg(tieredRow(), d("5"), declared("12345"))
		require.NoError(t, err)
		assert.Equal(t, "12.35", leg.Insurance.StringFixed(2))
	})

	t.Run("NoRateUsesFloor", func(t *testing.T) {
		row := tieredRow()
		row.InsuranceRate = decimal.Zero
		leg, err := PriceLeg(row, d("5"), declared("1000000"))
		require.NoError(t, err)
		assert.Equal(t, "5", leg.Insurance.String())
	})
}

func TestPriceLeg_TotalIsSumOfRoundedComponents(t *testing.T) {
	row := tieredRow()
	row.Schedule.OverageRatePerKg = d("1.333")

	leg, err := PriceLeg(row, d("101"), declared("7777"))
	require.NoError(t, err)

	assert.Equal(t, "134.63", leg.Base.StringFixed(2))
	assert.Equal(t, "7.78", leg.Insurance.StringFixed(2))
	assert.True(t, leg.Total.Equal(leg.Base.Add(leg.Toll).Add(leg.Insurance)))
	assert.Equal(t, "182.41", leg.Total.StringFixed(2))
}

func TestPriceLeg_CapacityExceeded(t *testing.T) {
	row := tieredRow()
	row.MaxWeightKg = d("50")

	_, err := PriceLeg(row, d("60"), noDeclared)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	_, err = PriceLeg(row, d("50"), noDeclared)
	assert.NoError(t, err)
}

func TestPriceLeg_NonIncreasingCeilings(t *testing.T) {
	row := tieredRow()
	row.Schedule.Tiers = []tariffs.Tier{
		{CeilingKg: d("20"), Price: d("45")},
		{CeilingKg: d("15"), Price: d("40")},
		{CeilingKg: d("30"), Price: d("55")},
	}

	_, err := PriceLeg(row, d("25"), noDeclared)
	assert.ErrorIs(t, err, tariffs.ErrCatalogInconsistency)
}

func TestPriceLeg_MonotonicInWeight(t *testing.T) {
	row := tieredRow()
	row.Schedule.Tiers = []tariffs.Tier{
		{CeilingKg: d("20"), Price: d("25")},
		{CeilingKg: d("50"), Price: d("60")},
		{CeilingKg: d("100"), Price: d("118")},
	}
	row.Schedule.OverageRatePerKg = d("1.25")

	prev := decimal.Zero
	for w := decimal.NewFromInt(1); w.LessThanOrEqual(d("300")); w = w.Add(d("0.5")) {
		leg, err := PriceLeg(row, w, declared("2000"))
		require.NoError(t, err)
		assert.True(t, leg.Total.GreaterThanOrEqual(prev), "total dropped at %s kg: %s < %s", w, leg.Total, prev)
		prev = leg.Total
	}
}

func TestPriceLeg_Idempotent(t *testing.T) {
	a, err := PriceLeg(tieredRow(), d("73.4"), declared("900"))
	require.NoError(t, err)
	b, err := PriceLeg(tieredRow(), d("73.4"), declared("900"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

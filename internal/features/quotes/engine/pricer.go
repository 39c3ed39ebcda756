package engine

import (
	"fmt"

	"freight-quoter/internal/features/quotes/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"

	"github.com/shopspring/decimal"
)

// MinimumChargeThresholdKg is the weight up to which a leg bills its minimum charge.
const MinimumChargeThresholdKg = 10

var (
	minimumChargeThreshold = decimal.NewFromInt(MinimumChargeThresholdKg)
	tollBlockKg            = decimal.NewFromInt(100)
)

// PriceLeg prices one tariff row for a billable weight and an optional declared value.
//
// The base amount is the minimum charge up to MinimumChargeThresholdKg. Above it, the
// tier covering the weight is compared with the overage-rate estimate and the lower of
// the two is billed, floored at the minimum charge. Weights beyond the last tier bill
// the overage estimate alone.
func PriceLeg(row tariffs.Row, billableKg decimal.Decimal, declared decimal.NullDecimal) (domain.PricedLeg, error) {
	if billableKg.GreaterThan(row.MaxWeightKg) {
		return domain.PricedLeg{}, fmt.Errorf("%w: row %s carries up to %s kg, got %s kg",
			domain.ErrCapacityExceeded, row.ID, row.MaxWeightKg, billableKg)
	}

	base, err := baseAmount(row, billableKg)
	if err != nil {
		return domain.PricedLeg{}, err
	}

	toll := decimal.Zero
	if row.TollRatePer100Kg.IsPositive() {
		toll = billableKg.Div(tollBlockKg).Ceil().Mul(row.TollRatePer100Kg)
	}

	insurance := row.InsuranceMinimum
	if declared.Valid && row.InsuranceRate.IsPositive() {
		insurance = decimal.Max(row.InsuranceMinimum, declared.Decimal.Mul(row.InsuranceRate))
	}

	base = base.Round(2)
	toll = toll.Round(2)
	insurance = insurance.Round(2)

	return domain.PricedLeg{
		Row:          row,
		Base:         base,
		Toll:         toll,
		Insurance:    insurance,
		Total:        base.Add(toll).Add(insurance),
		LeadTimeDays: row.LeadTimeDays,
	}, nil
}

func baseAmount(row tariffs.Row, billableKg decimal.Decimal) (decimal.Decimal, error) {
	sched := row.Schedule
	if billableKg.LessThanOrEqual(minimumChargeThreshold) {
		return sched.MinimumCharge, nil
	}

	tier, err := tierValue(row.ID, sched.Tiers, billableKg)
	if err != nil {
		return decimal.Zero, err
	}

	overage := billableKg.Mul(sched.OverageRatePerKg)
	price := overage
	if tier.IsPositive() {
		price = decimal.Min(tier, overage)
	}

	return decimal.Max(sched.MinimumCharge, price), nil
}

// tierValue returns the price of the smallest ceiling covering the weight, or zero
// when the weight is above every ceiling. Ceilings that stop increasing make the row
// unusable.
func tierValue(rowID string, tiers []tariffs.Tier, billableKg decimal.Decimal) (decimal.Decimal, error) {
	for i, t := range tiers {
		if i > 0 && !t.CeilingKg.GreaterThan(tiers[i-1].CeilingKg) {
			return decimal.Zero, fmt.Errorf("%w: row %s tier ceilings not strictly increasing at %s kg",
				tariffs.ErrCatalogInconsistency, rowID, t.CeilingKg)
		}
		if t.CeilingKg.GreaterThanOrEqual(billableKg) {
			return t.Price, nil
		}
	}
	return decimal.Zero, nil
}

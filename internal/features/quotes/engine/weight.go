package engine

import (
	"fmt"

	"freight-quoter/internal/features/quotes/domain"

	"github.com/shopspring/decimal"
)

// VolumetricDensityKgPerM3 converts cargo volume into chargeable weight
// (the road-freight cubage factor: 1 m³ bills as 166 kg).
const VolumetricDensityKgPerM3 = 166

var volumetricDensity = decimal.NewFromInt(VolumetricDensityKgPerM3)

// ResolveWeight returns the billable weight: the greater of actual and volumetric
// weight, with ties billed as actual.
func ResolveWeight(actualKg, volumeM3 decimal.Decimal) (domain.WeightResolution, error) {
	if !actualKg.IsPositive() {
		return domain.WeightResolution{}, fmt.Errorf("%w: weight must be positive, got %s kg", domain.ErrInvalidInput, actualKg)
	}
	if volumeM3.IsNegative() {
		return domain.WeightResolution{}, fmt.Errorf("%w: volume cannot be negative, got %s m3", domain.ErrInvalidInput, volumeM3)
	}

	volumetric := volumeM3.Mul(volumetricDensity)

	res := domain.WeightResolution{
		ActualKg:     actualKg,
		VolumetricKg: volumetric,
		BillableKg:   actualKg,
		Used:         domain.WeightActual,
	}
	if volumetric.GreaterThan(actualKg) {
		res.BillableKg = volumetric
		res.Used = domain.WeightVolumetric
	}

	return res, nil
}

package engine

import (
	"testing"

	"freight-quoter/internal/features/quotes/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWeight(t *testing.T) {
	tests := []struct {
		name           string
		actual         string
		volume         string
		wantVolumetric string
		wantBillable   string
		wantUsed       domain.WeightKind
	}{
		{name: "VolumetricWins", actual: "50", volume: "0.4", wantVolumetric: "66.4", wantBillable: "66.4", wantUsed: domain.WeightVolumetric},
		{name: "ActualWins", actual: "80", volume: "0.1", wantVolumetric: "16.6", wantBillable: "80", wantUsed: domain.WeightActual},
		{name: "TieFavorsActual", actual: "16.6", volume: "0.1", wantVolumetric: "16.6", wantBillable: "16.6", wantUsed: domain.WeightActual},
		{name: "NoVolume", actual: "12", volume: "0", wantVolumetric: "0", wantBillable: "12", wantUsed: domain.WeightActual},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveWeight(d(tt.actual), d(tt.volume))
			require.NoError(t, err)

			assert.True(t, res.ActualKg.Equal(d(tt.actual)))
			assert.True(t, res.VolumetricKg.Equal(d(tt.wantVolumetric)), res.VolumetricKg.String())
			assert.True(t, res.BillableKg.Equal(d(tt.wantBillable)), res.BillableKg.String())
			assert.Equal(t, tt.wantUsed, res.Used)
		})
	}
}

func TestResolveWeight_InvalidInput(t *testing.T) {
	_, err := ResolveWeight(decimal.Zero, d("1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ResolveWeight(d("-4"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ResolveWeight(d("4"), d("-0.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

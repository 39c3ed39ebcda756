package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestQuoteRequest_Validate(t *testing.T) {
	base := func() QuoteRequest {
		return QuoteRequest{
			OriginPlace:      "Campinas - SP",
			DestinationPlace: "Recife - PE",
			ActualWeightKg:   decimal.NewFromInt(50),
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *QuoteRequest)
		wantErr bool
	}{
		{name: "Valid", mutate: func(r *QuoteRequest) {}},
		{name: "ValidWithDeclaredValue", mutate: func(r *QuoteRequest) { r.DeclaredValue = decimal.NewNullDecimal(decimal.NewFromInt(1000)) }},
		{name: "MissingOrigin", mutate: func(r *QuoteRequest) { r.OriginPlace = "  " }, wantErr: true},
		{name: "MissingDestination", mutate: func(r *QuoteRequest) { r.DestinationPlace = "" }, wantErr: true},
		{name: "ZeroWeight", mutate: func(r *QuoteRequest) { r.ActualWeightKg = decimal.Zero }, wantErr: true},
		{name: "NegativeWeight", mutate: func(r *QuoteRequest) { r.ActualWeightKg = decimal.NewFromInt(-3) }, wantErr: true},
		{name: "NegativeVolume", mutate: func(r *QuoteRequest) { r.VolumeM3 = decimal.RequireFromString("-0.1") }, wantErr: true},
		{name: "NegativeDeclaredValue", mutate: func(r *QuoteRequest) { r.DeclaredValue = decimal.NewNullDecimal(decimal.NewFromInt(-1)) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

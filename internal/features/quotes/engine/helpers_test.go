package engine

import (
	"testing"
	"time"

	hubs "freight-quoter/internal/features/hubs/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func declared(s string) decimal.NullDecimal { return decimal.NewNullDecimal(d(s)) }

var noDeclared = decimal.NullDecimal{}

// flatRow bills exactly minimum for light shipments: no toll, no insurance.
func flatRow(id string, kind tariffs.Kind, carrier, origin, destination, minimum string, leadDays int) tariffs.Row {
	return tariffs.Row{
		ID:          id,
		Kind:        kind,
		Carrier:     carrier,
		Origin:      origin,
		Destination: destination,
		Schedule: tariffs.Schedule{
			MinimumCharge:    d(minimum),
			OverageRatePerKg: d("1"),
		},
		MaxWeightKg:  d("1000"),
		LeadTimeDays: leadDays,
	}
}

func testDirectory(t *testing.T) *hubs.Directory {
	t.Helper()
	dir, err := hubs.NewDirectory(
		[]hubs.Hub{
			{Code: "GRU", DisplayName: "São Paulo", Region: "SP"},
			{Code: "VCP", DisplayName: "Campinas", Region: "SP"},
			{Code: "REC", DisplayName: "Recife", Region: "PE"},
		},
		[]hubs.RegionRule{
			{Region: "SP", Preference: []string{"GRU", "VCP"}},
			{Region: "PE", Preference: []string{"REC"}},
		},
	)
	require.NoError(t, err)
	return dir
}

// testCatalog covers Sorocaba/SP → Olinda/PE with two direct rows and a
// 2 × 1 × 1 hub composition through GRU and REC, plus placeholder rows.
func testCatalog() *tariffs.Catalog {
	rows := []tariffs.Row{
		flatRow("direct-1", tariffs.KindDirect, "Direto X", "SOROCABA", "OLINDA", "300", 5),
		flatRow("direct-2", tariffs.KindDirect, "Direto Y", "SOROCABA - SP", "OLINDA - PE", "280", 6),
		flatRow("collection-1", tariffs.KindCollection, "Coleta A", "Sorocaba", "GRU", "40", 1),
		flatRow("collection-2", tariffs.KindCollection, "Coleta B", "SOROCABA", "gru", "35", 1),
		flatRow("collection-3", tariffs.KindCollection, "nan", "SOROCABA", "GRU", "1", 1),
		flatRow("transfer-1", tariffs.KindTransfer, "Braspress", "GRU", "REC", "150", 3),
		flatRow("transfer-2", tariffs.KindTransfer, "-", "GRU", "REC", "1", 3),
		flatRow("delivery-1", tariffs.KindDelivery, "Entrega NE", "REC", "Olinda", "30", 1),
	}
	return tariffs.NewCatalog(1, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), "test", rows)
}

package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind determines how a tariff row participates in route composition.
type Kind string

const (
	// KindDirect is a single row that moves the shipment door to door.
	KindDirect Kind = "DIRECT"
	// KindCollection picks the shipment up at the client and brings it to a hub.
	KindCollection Kind = "COLLECTION"
	// KindTransfer moves consolidated cargo between two hubs.
	KindTransfer Kind = "TRANSFER"
	// KindDelivery takes the shipment from a hub to the client.
	KindDelivery Kind = "DELIVERY"
)

// Kinds lists every valid kind in display order.
var Kinds = []Kind{KindDirect, KindCollection, KindTransfer, KindDelivery}

// ParseKind accepts the kind names case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown tariff kind %q", s)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDirect, KindCollection, KindTransfer, KindDelivery:
		return true
	}
	return false
}

// ErrCatalogInconsistency marks a row that violates the catalog invariants.
var ErrCatalogInconsistency = errors.New("catalog inconsistency")

// Tier is one step of a tier schedule: the price charged up to CeilingKg.
type Tier struct {
	CeilingKg decimal.Decimal `json:"ceiling_kg"`
	Price     decimal.Decimal `json:"price"`
}

// Schedule is the weight-based price step function of a row.
type Schedule struct {
	// Tiers are ordered by strictly increasing CeilingKg.
	Tiers []Tier `json:"tiers"`
	// MinimumCharge applies to light shipments and floors every base amount.
	MinimumCharge decimal.Decimal `json:"minimum_charge"`
	// OverageRatePerKg prices shipments heavier than the last ceiling.
	OverageRatePerKg decimal.Decimal `json:"overage_rate_per_kg"`
}

// Row is one priced leg between two named points.
//
// Origin and Destination are hub codes for transfer rows and client-facing
// place names for collection, delivery and direct rows.
type Row struct {
	ID               string          `json:"id"`
	Kind             Kind            `json:"kind"`
	Carrier          string          `json:"carrier"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	Schedule         Schedule        `json:"schedule"`
	TollRatePer100Kg decimal.Decimal `json:"toll_rate_per_100kg"`
	InsuranceMinimum decimal.Decimal `json:"insurance_minimum"`
	InsuranceRate    decimal.Decimal `json:"insurance_rate"`
	MaxWeightKg      decimal.Decimal `json:"max_weight_kg"`
	LeadTimeDays     int             `json:"lead_time_days"`
}

// Validate checks the row invariants. Violations wrap ErrCatalogInconsistency.
func (r Row) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: row %s: %s", ErrCatalogInconsistency, r.ID, fmt.Sprintf(format, args...))
	}

	if !r.Kind.Valid() {
		return fail("unknown kind %q", r.Kind)
	}
	if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
		return fail("origin and destination are required")
	}
	if r.Schedule.MinimumCharge.IsNegative() {
		return fail("negative minimum charge %s", r.Schedule.MinimumCharge)
	}
	if r.Schedule.OverageRatePerKg.IsNegative() {
		return fail("negative overage rate %s", r.Schedule.OverageRatePerKg)
	}
	if r.TollRatePer100Kg.IsNegative() {
		return fail("negative toll rate %s", r.TollRatePer100Kg)
	}
	if r.InsuranceMinimum.IsNegative() || r.InsuranceRate.IsNegative() {
		return fail("negative insurance parameters")
	}
	if !r.MaxWeightKg.IsPositive() {
		return fail("max weight must be positive, got %s", r.MaxWeightKg)
	}
	if r.LeadTimeDays < 0 {
		return fail("negative lead time %d", r.LeadTimeDays)
	}

	for i, tier := range r.Schedule.Tiers {
		if !tier.CeilingKg.IsPositive() {
			return fail("tier %d ceiling must be positive", i)
		}
		if tier.Price.IsNegative() {
			return fail("tier %d has negative price", i)
		}
		if i > 0 && !tier.CeilingKg.GreaterThan(r.Schedule.Tiers[i-1].CeilingKg) {
			return fail("tier ceilings not strictly increasing at %s kg", tier.CeilingKg)
		}
	}

	return nil
}

var placeholderCarriers = map[string]struct{}{
	"":        {},
	"-":       {},
	"--":      {},
	"?":       {},
	"0":       {},
	"N/A":     {},
	"NA":      {},
	"NAN":     {},
	"NONE":    {},
	"NULL":    {},
	"TBD":     {},
	"UNKNOWN": {},
}

// IsPlaceholderCarrier reports whether a carrier value is a spreadsheet placeholder
// rather than a real provider name.
func IsPlaceholderCarrier(carrier string) bool {
	_, ok := placeholderCarriers[strings.ToUpper(strings.TrimSpace(carrier))]
	return ok
}

package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInput is returned for requests that cannot be priced at all.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCapacityExceeded is returned when a row cannot carry the billable weight.
	ErrCapacityExceeded = errors.New("capacity exceeded")
	// ErrNoRouteFound is the business outcome "no quote available".
	ErrNoRouteFound = errors.New("no route found")
)

// QuoteRequest is one freight quote query.
type QuoteRequest struct {
	// OriginPlace is a city name; "City - UF" and "City/UF" carry the region inline.
	OriginPlace string `json:"origin"`
	// OriginRegion is the state/UF of the origin, when given separately.
	OriginRegion string `json:"origin_region,omitempty"`
	// DestinationPlace is a city name, same format as OriginPlace.
	DestinationPlace string `json:"destination"`
	// DestinationRegion is the state/UF of the destination.
	DestinationRegion string `json:"destination_region,omitempty"`
	// ActualWeightKg is the scale weight of the shipment.
	ActualWeightKg decimal.Decimal `json:"weight_kg"`
	// VolumeM3 is the shipment volume; zero when not measured.
	VolumeM3 decimal.Decimal `json:"volume_m3"`
	// DeclaredValue is the cargo value for insurance; invalid when not declared.
	DeclaredValue decimal.NullDecimal `json:"declared_value"`
}

// Validate rejects requests the engine must not try to price.
func (r QuoteRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.OriginPlace) == "":
		return fmt.Errorf("%w: origin is required", ErrInvalidInput)
	case strings.TrimSpace(r.DestinationPlace) == "":
		return fmt.Errorf("%w: destination is required", ErrInvalidInput)
	case !r.ActualWeightKg.IsPositive():
		return fmt.Errorf("%w: weight must be positive, got %s kg", ErrInvalidInput, r.ActualWeightKg)
	case r.VolumeM3.IsNegative():
		return fmt.Errorf("%w: volume cannot be negative, got %s m3", ErrInvalidInput, r.VolumeM3)
	case r.DeclaredValue.Valid && r.DeclaredValue.Decimal.IsNegative():
		return fmt.Errorf("%w: declared value cannot be negative, got %s", ErrInvalidInput, r.DeclaredValue.Decimal)
	}
	return nil
}

// WeightKind says which measurement became the billable weight.
type WeightKind string

const (
	// WeightActual means the scale weight was billed.
	WeightActual WeightKind = "ACTUAL"
	// WeightVolumetric means the volume-derived weight was billed.
	WeightVolumetric WeightKind = "VOLUMETRIC"
)

// WeightResolution is the billable-weight breakdown of a request.
type WeightResolution struct {
	ActualKg     decimal.Decimal `json:"actual_kg"`
	VolumetricKg decimal.Decimal `json:"volumetric_kg"`
	BillableKg   decimal.Decimal `json:"billable_kg"`
	Used         WeightKind      `json:"used"`
}

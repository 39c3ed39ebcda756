package domain

import (
	tariffs "freight-quoter/internal/features/tariffs/domain"

	"github.com/shopspring/decimal"
)

// RouteKind distinguishes single-row routes from hub compositions.
type RouteKind string

const (
	// RouteDirect is one direct tariff row.
	RouteDirect RouteKind = "DIRECT"
	// RouteComposed is collection + transfer + delivery.
	RouteComposed RouteKind = "COMPOSED"
)

// MatchQuality tags how confidently a candidate matched the requested places.
type MatchQuality string

const (
	// MatchExact means origin and destination matched the row keys exactly.
	MatchExact MatchQuality = "EXACT"
	// MatchApproximate means the row keys only contain the requested places.
	MatchApproximate MatchQuality = "APPROXIMATE"
)

// Candidate is an unpriced combination of tariff rows that could move the shipment.
type Candidate struct {
	Kind  RouteKind
	Match MatchQuality
	// Legs holds one row for direct routes, or collection, transfer and delivery in that order.
	Legs               []tariffs.Row
	OriginHub          string
	OriginHubName      string
	DestinationHub     string
	DestinationHubName string
	// Seq is the generation order, used as the final ranking tie-break.
	Seq int
}

// PricedLeg is one tariff row priced for a billable weight and declared value.
type PricedLeg struct {
	Row          tariffs.Row     `json:"row"`
	Base         decimal.Decimal `json:"base"`
	Toll         decimal.Decimal `json:"toll"`
	Insurance    decimal.Decimal `json:"insurance"`
	Total        decimal.Decimal `json:"total"`
	LeadTimeDays int             `json:"lead_time_days"`
}

// RouteOption is a fully priced candidate.
type RouteOption struct {
	Kind               RouteKind       `json:"kind"`
	Match              MatchQuality    `json:"match"`
	CarrierLabel       string          `json:"carrier_label"`
	Legs               []PricedLeg     `json:"legs"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	TotalLeadTimeDays  int             `json:"total_lead_time_days"`
	OriginHub          string          `json:"origin_hub,omitempty"`
	OriginHubName      string          `json:"origin_hub_name,omitempty"`
	DestinationHub     string          `json:"destination_hub,omitempty"`
	DestinationHubName string          `json:"destination_hub_name,omitempty"`
	Seq                int             `json:"-"`
}

// RankedResult is the answer to a quote request.
type RankedResult struct {
	// Complete holds every priced option, cheapest first.
	Complete []RouteOption `json:"complete"`
	// Filtered keeps only the cheapest option per carrier label.
	Filtered           []RouteOption        `json:"filtered"`
	Best               RouteOption          `json:"best"`
	Worst              RouteOption          `json:"worst"`
	PriceSpread        decimal.Decimal      `json:"price_spread"`
	PriceSpreadPercent decimal.Decimal      `json:"price_spread_percent"`
	Weight             WeightResolution     `json:"weight"`
	CatalogVersion     uint64               `json:"catalog_version"`
	Diagnostics        []tariffs.Diagnostic `json:"diagnostics,omitempty"`
}

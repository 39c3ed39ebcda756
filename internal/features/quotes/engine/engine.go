// Package engine resolves billable weight, enumerates direct and hub-composed routes
// from a tariff catalog snapshot, prices them and ranks the result.
//
// Everything here is pure: no I/O, no shared mutable state. The catalog and hub
// directory are read-only inputs.
package engine

import (
	"errors"

	"freight-quoter/internal/features/quotes/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"
)

// ErrNoCatalog is returned when Quote is called without a catalog snapshot.
var ErrNoCatalog = errors.New("no catalog snapshot")

// Engine answers quote requests against a catalog snapshot.
type Engine struct {
	generator *Generator
}

// New creates an Engine.
func New() *Engine {
	return &Engine{generator: NewGenerator()}
}

// Quote validates the request and returns the ranked options.
// resolver may be nil, in which case only direct routes are considered.
func (e *Engine) Quote(catalog *tariffs.Catalog, resolver HubResolver, req domain.QuoteRequest) (*domain.RankedResult, error) {
	if catalog == nil {
		return nil, ErrNoCatalog
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	weight, err := ResolveWeight(req.ActualWeightKg, req.VolumeM3)
	if err != nil {
		return nil, err
	}

	origin := NewEndpoint(req.OriginPlace, req.OriginRegion)
	destination := NewEndpoint(req.DestinationPlace, req.DestinationRegion)

	result, err := Rank(
		e.generator.Candidates(catalog, resolver, origin, destination),
		weight.BillableKg,
		req.DeclaredValue,
	)
	if err != nil {
		return nil, err
	}

	result.Weight = weight
	result.CatalogVersion = catalog.Version()
	return result, nil
}

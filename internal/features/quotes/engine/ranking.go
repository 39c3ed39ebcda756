package engine

import (
	"errors"
	"iter"
	"slices"
	"strings"

	"freight-quoter/internal/features/quotes/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rank prices every candidate and orders the survivors.
//
// A candidate with any leg that fails pricing is dropped whole. Options are sorted by
// total cost, then lead time, then generation order. The filtered ranking keeps the
// cheapest option per carrier label; best, worst and the spread come from it.
// Returns ErrNoRouteFound when nothing survives pricing.
func Rank(candidates iter.Seq[domain.Candidate], billableKg decimal.Decimal, declared decimal.NullDecimal) (*domain.RankedResult, error) {
	var (
		options     []domain.RouteOption
		diagnostics []tariffs.Diagnostic
		reported    = make(map[string]struct{})
	)

	for cand := range candidates {
		opt, err := priceCandidate(cand, billableKg, declared)
		if err == nil {
			options = append(options, opt)
			continue
		}

		var legErr *legError
		if errors.As(err, &legErr) && errors.Is(err, tariffs.ErrCatalogInconsistency) {
			if _, seen := reported[legErr.rowID]; !seen {
				reported[legErr.rowID] = struct{}{}
				diagnostics = append(diagnostics, tariffs.Diagnostic{RowID: legErr.rowID, Reason: legErr.Error()})
			}
		}
	}

	if len(options) == 0 {
		return nil, domain.ErrNoRouteFound
	}

	slices.SortStableFunc(options, compareOptions)
	filtered := dedupeByCarrier(options)

	best, worst := filtered[0], filtered[len(filtered)-1]
	spread := worst.TotalCost.Sub(best.TotalCost)
	percent := decimal.Zero
	if !best.TotalCost.IsZero() {
		percent = spread.Div(best.TotalCost).Mul(hundred).Round(2)
	}

	return &domain.RankedResult{
		Complete:           options,
		Filtered:           filtered,
		Best:               best,
		Worst:              worst,
		PriceSpread:        spread,
		PriceSpreadPercent: percent,
		Diagnostics:        diagnostics,
	}, nil
}

type legError struct {
	rowID string
	err   error
}

func (e *legError) Error() string { return e.err.Error() }
func (e *legError) Unwrap() error { return e.err }

func priceCandidate(cand domain.Candidate, billableKg decimal.Decimal, declared decimal.NullDecimal) (domain.RouteOption, error) {
	opt := domain.RouteOption{
		Kind:               cand.Kind,
		Match:              cand.Match,
		CarrierLabel:       CarrierLabel(cand.Legs),
		Legs:               make([]domain.PricedLeg, 0, len(cand.Legs)),
		TotalCost:          decimal.Zero,
		OriginHub:          cand.OriginHub,
		OriginHubName:      cand.OriginHubName,
		DestinationHub:     cand.DestinationHub,
		DestinationHubName: cand.DestinationHubName,
		Seq:                cand.Seq,
	}

	for _, row := range cand.Legs {
		leg, err := PriceLeg(row, billableKg, declared)
		if err != nil {
			return domain.RouteOption{}, &legError{rowID: row.ID, err: err}
		}
		opt.Legs = append(opt.Legs, leg)
		opt.TotalCost = opt.TotalCost.Add(leg.Total)
		opt.TotalLeadTimeDays += leg.LeadTimeDays
	}

	return opt, nil
}

// CarrierLabel describes who moves the shipment: the carrier of a direct row, or the
// three carriers of a composed route joined in leg order.
func CarrierLabel(legs []tariffs.Row) string {
	names := make([]string, 0, len(legs))
	for _, l := range legs {
		names = append(names, strings.TrimSpace(l.Carrier))
	}
	return strings.Join(names, " + ")
}

func compareOptions(a, b domain.RouteOption) int {
	if c := a.TotalCost.Cmp(b.TotalCost); c != 0 {
		return c
	}
	if a.TotalLeadTimeDays != b.TotalLeadTimeDays {
		return a.TotalLeadTimeDays - b.TotalLeadTimeDays
	}
	return a.Seq - b.Seq
}

// dedupeByCarrier keeps the first, i.e. cheapest, option of each carrier label.
// Input must already be sorted.
func dedupeByCarrier(sorted []domain.RouteOption) []domain.RouteOption {
	seen := make(map[string]struct{}, len(sorted))
	out := make([]domain.RouteOption, 0, len(sorted))
	for _, opt := range sorted {
		key := strings.ToUpper(opt.CarrierLabel)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, opt)
	}
	return out
}

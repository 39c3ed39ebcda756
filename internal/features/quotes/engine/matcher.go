package engine

import (
	"freight-quoter/internal/features/quotes/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"
)

// DirectMatcher finds direct rows for an origin/destination pair in two phases:
// exact key equality first, then, only if that found nothing, rows whose keys
// contain the requested cities. The phases are never mixed in one result.
//
// A key is exact when it equals the place as typed or its bare city, so
// "BELO HORIZONTE - MG" and "BELO HORIZONTE" both match "Belo Horizonte - MG".
type DirectMatcher struct{}

// Match returns the matching rows and the quality of the phase that produced them.
// Rows with placeholder carriers are skipped in both phases.
func (DirectMatcher) Match(rows []tariffs.Row, origin, destination Endpoint) ([]tariffs.Row, domain.MatchQuality) {
	if exact := filterRows(rows, func(r tariffs.Row) bool {
		return origin.Is(r.Origin) && destination.Is(r.Destination)
	}); len(exact) > 0 {
		return exact, domain.MatchExact
	}

	approx := filterRows(rows, func(r tariffs.Row) bool {
		return origin.Within(r.Origin) && destination.Within(r.Destination)
	})
	if len(approx) == 0 {
		return nil, ""
	}
	return approx, domain.MatchApproximate
}

func filterRows(rows []tariffs.Row, keep func(tariffs.Row) bool) []tariffs.Row {
	var out []tariffs.Row
	for _, r := range rows {
		if tariffs.IsPlaceholderCarrier(r.Carrier) {
			continue
		}
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

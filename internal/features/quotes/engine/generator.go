package engine

import (
	"iter"
	"strings"

	"freight-quoter/internal/core/textnorm"
	hubs "freight-quoter/internal/features/hubs/domain"
	"freight-quoter/internal/features/quotes/domain"
	tariffs "freight-quoter/internal/features/tariffs/domain"
)

// Endpoint is a requested origin or destination.
type Endpoint struct {
	// Raw is the place as typed, inline region included.
	Raw    string
	Place  string
	Region string
}

// NewEndpoint splits an inline region ("Recife - PE") out of place when region is empty.
func NewEndpoint(place, region string) Endpoint {
	city, inline := textnorm.SplitRegion(place)
	if region == "" {
		region = inline
	}
	return Endpoint{Raw: strings.TrimSpace(place), Place: city, Region: region}
}

// Is reports whether a catalog key names this endpoint: as typed, as the bare
// city, or as the city with the same region in any separator style.
func (e Endpoint) Is(key string) bool {
	if textnorm.Equal(key, e.Raw) || textnorm.Equal(key, e.Place) {
		return true
	}
	city, region := textnorm.SplitRegion(key)
	return region != "" && textnorm.Equal(city, e.Place) && textnorm.Equal(region, e.Region)
}

// Within reports whether a catalog key contains the endpoint's city.
func (e Endpoint) Within(key string) bool {
	return textnorm.Contains(key, e.Place)
}

// HubResolver picks the hub serving a place. *hubs.Directory implements it.
type HubResolver interface {
	ResolveHub(place, region string) (string, bool)
	DisplayName(code string) (string, bool)
}

var _ HubResolver = (*hubs.Directory)(nil)

// Generator enumerates route candidates from a catalog snapshot.
type Generator struct {
	direct DirectMatcher
}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Candidates yields direct candidates followed by composed ones. The sequence is lazy:
// the collection × transfer × delivery product is walked as it is consumed, and it
// can be ranged over again to restart.
func (g *Generator) Candidates(catalog *tariffs.Catalog, resolver HubResolver, origin, destination Endpoint) iter.Seq[domain.Candidate] {
	return func(yield func(domain.Candidate) bool) {
		seq := 0
		emit := func(c domain.Candidate) bool {
			c.Seq = seq
			seq++
			return yield(c)
		}

		rows, quality := g.direct.Match(catalog.Rows(tariffs.KindDirect), origin, destination)
		for _, row := range rows {
			if !emit(domain.Candidate{
				Kind:  domain.RouteDirect,
				Match: quality,
				Legs:  []tariffs.Row{row},
			}) {
				return
			}
		}

		if resolver == nil {
			return
		}
		originHub, ok := resolver.ResolveHub(origin.Place, origin.Region)
		if !ok {
			return
		}
		destinationHub, ok := resolver.ResolveHub(destination.Place, destination.Region)
		if !ok || textnorm.Equal(originHub, destinationHub) {
			return
		}

		isHub := func(code string) func(string) bool {
			return func(key string) bool { return textnorm.Equal(key, code) }
		}
		collections := legRows(catalog.Rows(tariffs.KindCollection), origin.Is, isHub(originHub))
		transfers := legRows(catalog.Rows(tariffs.KindTransfer), isHub(originHub), isHub(destinationHub))
		deliveries := legRows(catalog.Rows(tariffs.KindDelivery), isHub(destinationHub), destination.Is)
		if len(collections) == 0 || len(transfers) == 0 || len(deliveries) == 0 {
			return
		}

		originName, _ := resolver.DisplayName(originHub)
		destinationName, _ := resolver.DisplayName(destinationHub)

		for _, c := range collections {
			for _, t := range transfers {
				for _, d := range deliveries {
					if !emit(domain.Candidate{
						Kind:               domain.RouteComposed,
						Match:              domain.MatchExact,
						Legs:               []tariffs.Row{c, t, d},
						OriginHub:          originHub,
						OriginHubName:      originName,
						DestinationHub:     destinationHub,
						DestinationHubName: destinationName,
					}) {
						return
					}
				}
			}
		}
	}
}

// legRows keeps rows running from → to whose carrier is a real provider.
func legRows(rows []tariffs.Row, from, to func(string) bool) []tariffs.Row {
	return filterRows(rows, func(r tariffs.Row) bool {
		return from(r.Origin) && to(r.Destination)
	})
}

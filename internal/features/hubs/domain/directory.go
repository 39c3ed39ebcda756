package domain

import (
	"errors"
	"fmt"

	"freight-quoter/internal/core/textnorm"
)

var (
	// ErrDuplicateHub is returned when two hubs share a code.
	ErrDuplicateHub = errors.New("duplicate hub code")
	// ErrUnknownHub is returned when a region rule references a hub that does not exist.
	ErrUnknownHub = errors.New("unknown hub code")
)

// Hub is a consolidation point between which transfer legs run.
type Hub struct {
	// Code is the short identifier used by transfer rows (e.g. "GRU").
	Code string `json:"code"`
	// DisplayName is the city the hub is presented as.
	DisplayName string `json:"display_name"`
	// Region is the state/UF the hub sits in.
	Region string `json:"region,omitempty"`
}

// RegionRule decides which hub serves places of a region.
type RegionRule struct {
	// Region is the state/UF code.
	Region string
	// Preference lists hub codes in the order they should be tried.
	Preference []string
	// Cities pins specific cities to a hub, overriding Preference.
	Cities map[string]string
}

// Directory maps hub codes to display names and resolves the hub that serves a place.
// It is immutable once built.
type Directory struct {
	hubs    map[string]Hub
	order   []Hub
	regions map[string]rule
}

type rule struct {
	preference []string
	cities     map[string]string
}

// NewDirectory builds a directory and checks that every rule points at a known hub.
func NewDirectory(hubs []Hub, rules []RegionRule) (*Directory, error) {
	d := &Directory{
		hubs:    make(map[string]Hub, len(hubs)),
		regions: make(map[string]rule, len(rules)),
	}

	for _, h := range hubs {
		key := textnorm.Fold(h.Code)
		if _, dup := d.hubs[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateHub, h.Code)
		}
		h.Code = key
		h.Region = textnorm.Fold(h.Region)
		d.hubs[key] = h
		d.order = append(d.order, h)
	}

	for _, r := range rules {
		compiled := rule{cities: make(map[string]string, len(r.Cities))}
		for _, code := range r.Preference {
			key := textnorm.Fold(code)
			if _, ok := d.hubs[key]; !ok {
				return nil, fmt.Errorf("%w: region %s prefers %s", ErrUnknownHub, r.Region, code)
			}
			compiled.preference = append(compiled.preference, key)
		}
		for city, code := range r.Cities {
			key := textnorm.Fold(code)
			if _, ok := d.hubs[key]; !ok {
				return nil, fmt.Errorf("%w: city %s in region %s maps to %s", ErrUnknownHub, city, r.Region, code)
			}
			compiled.cities[textnorm.Fold(city)] = key
		}
		d.regions[textnorm.Fold(r.Region)] = compiled
	}

	return d, nil
}

// Hubs returns every hub in configuration order.
func (d *Directory) Hubs() []Hub {
	return append([]Hub(nil), d.order...)
}

// Lookup returns the hub with the given code.
func (d *Directory) Lookup(code string) (Hub, bool) {
	h, ok := d.hubs[textnorm.Fold(code)]
	return h, ok
}

// DisplayName returns the city name of a hub code.
func (d *Directory) DisplayName(code string) (string, bool) {
	h, ok := d.Lookup(code)
	return h.DisplayName, ok
}

// ResolveHub returns the hub code serving place in region. In order:
//  1. place is itself a hub code;
//  2. place is pinned to a hub by the region's city rules;
//  3. place is the display city of a hub in the same region (any region when region is empty);
//  4. the first preferred hub of the region.
//
// ok is false when nothing matches; callers treat that as "no composed route".
func (d *Directory) ResolveHub(place, region string) (code string, ok bool) {
	p := textnorm.Fold(place)
	r := textnorm.Fold(region)

	if h, found := d.hubs[p]; found {
		return h.Code, true
	}

	regionRule, hasRule := d.regions[r]
	if hasRule {
		if code, pinned := regionRule.cities[p]; pinned {
			return code, true
		}
	}

	if p != "" {
		for _, h := range d.order {
			if textnorm.Fold(h.DisplayName) == p && (r == "" || h.Region == r) {
				return h.Code, true
			}
		}
	}

	if hasRule && len(regionRule.preference) > 0 {
		return regionRule.preference[0], true
	}

	return "", false
}

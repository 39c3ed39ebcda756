package domain

import (
	"errors"
	"time"
)

// Diagnostic records a row that was excluded from a catalog or a ranking pass.
type Diagnostic struct {
	RowID  string `json:"row_id"`
	Reason string `json:"reason"`
}

// Stats summarizes a catalog snapshot.
type Stats struct {
	Version     uint64       `json:"version"`
	LoadedAt    time.Time    `json:"loaded_at"`
	Source      string       `json:"source"`
	Rows        int          `json:"rows"`
	RowsPerKind map[Kind]int `json:"rows_per_kind"`
	Rejected    int          `json:"rejected"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Catalog is an immutable snapshot of the tariff table.
// A reload builds a new Catalog; existing snapshots are never mutated.
type Catalog struct {
	version     uint64
	loadedAt    time.Time
	source      string
	byKind      map[Kind][]Row
	size        int
	diagnostics []Diagnostic
}

// NewCatalog validates rows and builds a snapshot. Invalid rows are excluded and
// recorded as diagnostics, so one bad row never rejects the whole table.
// rejected carries rows the loader already discarded (e.g. unparseable cells).
func NewCatalog(version uint64, loadedAt time.Time, source string, rows []Row, rejected ...Diagnostic) *Catalog {
	c := &Catalog{
		version:     version,
		loadedAt:    loadedAt,
		source:      source,
		byKind:      make(map[Kind][]Row, len(Kinds)),
		diagnostics: append([]Diagnostic(nil), rejected...),
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			c.diagnostics = append(c.diagnostics, Diagnostic{RowID: row.ID, Reason: err.Error()})
			continue
		}
		row.Schedule.Tiers = append([]Tier(nil), row.Schedule.Tiers...)
		c.byKind[row.Kind] = append(c.byKind[row.Kind], row)
		c.size++
	}

	return c
}

// Version is the monotonically increasing snapshot number.
func (c *Catalog) Version() uint64 { return c.version }

// LoadedAt is when the snapshot was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Source names where the rows came from.
func (c *Catalog) Source() string { return c.source }

// Len is the number of admitted rows.
func (c *Catalog) Len() int { return c.size }

// Rows returns the admitted rows of a kind in load order.
// The returned slice is shared with the snapshot and must be treated as read-only.
func (c *Catalog) Rows(kind Kind) []Row {
	return c.byKind[kind]
}

// Diagnostics lists rows rejected while building the snapshot.
func (c *Catalog) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diagnostics...)
}

// Stats summarizes the snapshot.
func (c *Catalog) Stats() Stats {
	perKind := make(map[Kind]int, len(Kinds))
	for _, k := range Kinds {
		perKind[k] = len(c.byKind[k])
	}
	return Stats{
		Version:     c.version,
		LoadedAt:    c.loadedAt,
		Source:      c.source,
		Rows:        c.size,
		RowsPerKind: perKind,
		Rejected:    len(c.diagnostics),
		Diagnostics: c.Diagnostics(),
	}
}

// ErrEmptyCatalog is returned when a load produced no admissible rows.
var ErrEmptyCatalog = errors.New("catalog has no admissible rows")

// ErrMalformedCatalog is wrapped by loaders when the source layout cannot be read at all.
var ErrMalformedCatalog = errors.New("malformed catalog")

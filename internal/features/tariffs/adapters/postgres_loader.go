package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"freight-quoter/internal/features/tariffs/domain"
	"freight-quoter/internal/features/tariffs/ports"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DefaultCatalogTable is the table read when none is configured.
const DefaultCatalogTable = "tariff_rows"

// Querier is the part of *pgxpool.Pool the loader needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresLoader reads active tariff rows from a Postgres table. Numeric columns are
// read as text so no precision is lost on the way into decimal.
type PostgresLoader struct {
	db    Querier
	table string
}

// NewPostgresLoader creates a PostgresLoader over table.
func NewPostgresLoader(db Querier, table string) *PostgresLoader {
	if table == "" {
		table = DefaultCatalogTable
	}
	return &PostgresLoader{db: db, table: table}
}

// IsPostgresSource reports whether a catalog source is a Postgres connection URL.
func IsPostgresSource(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

func (l *PostgresLoader) query() string {
	return `SELECT id, kind, carrier, origin, destination,
		COALESCE(minimum_charge, 0)::text, COALESCE(overage_per_kg, 0)::text,
		COALESCE(toll_per_100kg, 0)::text, COALESCE(insurance_minimum, 0)::text,
		COALESCE(insurance_rate, 0)::text, max_weight_kg::text,
		COALESCE(lead_time_days, 0), COALESCE(tiers, '[]'::jsonb)::text
	FROM ` + pgx.Identifier{l.table}.Sanitize() + `
	WHERE active
	ORDER BY id`
}

// Load reads every active row. Rows with unreadable values are rejected individually.
func (l *PostgresLoader) Load(ctx context.Context) (*ports.LoadResult, error) {
	rows, err := l.db.Query(ctx, l.query())
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog table %s: %w", l.table, err)
	}
	defer rows.Close()

	result := &ports.LoadResult{}
	for rows.Next() {
		var rec tableRecord
		if err := rows.Scan(
			&rec.id, &rec.kind, &rec.carrier, &rec.origin, &rec.destination,
			&rec.minimumCharge, &rec.overagePerKg, &rec.tollPer100Kg,
			&rec.insuranceMinimum, &rec.insuranceRate, &rec.maxWeightKg,
			&rec.leadTimeDays, &rec.tiers,
		); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}

		row, err := rec.toRow()
		if err != nil {
			result.Rejected = append(result.Rejected, domain.Diagnostic{RowID: rec.id, Reason: err.Error()})
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog table %s: %w", l.table, err)
	}

	return result, nil
}

// Source returns the table name.
func (l *PostgresLoader) Source() string {
	return "postgres:" + l.table
}

type tableRecord struct {
	id, kind, carrier, origin, destination string

	minimumCharge, overagePerKg, tollPer100Kg string
	insuranceMinimum, insuranceRate           string
	maxWeightKg                               string

	leadTimeDays int
	tiers        string
}

func (r tableRecord) toRow() (domain.Row, error) {
	kind, err := domain.ParseKind(r.kind)
	if err != nil {
		return domain.Row{}, err
	}

	row := domain.Row{
		ID:           r.id,
		Kind:         kind,
		Carrier:      r.carrier,
		Origin:       r.origin,
		Destination:  r.destination,
		LeadTimeDays: r.leadTimeDays,
	}

	numbers := []struct {
		name string
		src  string
		dst  *decimal.Decimal
	}{
		{"minimum_charge", r.minimumCharge, &row.Schedule.MinimumCharge},
		{"overage_per_kg", r.overagePerKg, &row.Schedule.OverageRatePerKg},
		{"toll_per_100kg", r.tollPer100Kg, &row.TollRatePer100Kg},
		{"insurance_minimum", r.insuranceMinimum, &row.InsuranceMinimum},
		{"insurance_rate", r.insuranceRate, &row.InsuranceRate},
		{"max_weight_kg", r.maxWeightKg, &row.MaxWeightKg},
	}
	for _, n := range numbers {
		if *n.dst, err = decimal.NewFromString(n.src); err != nil {
			return domain.Row{}, fmt.Errorf("%s: invalid number %q", n.name, n.src)
		}
	}

	if err := json.Unmarshal([]byte(r.tiers), &row.Schedule.Tiers); err != nil {
		return domain.Row{}, fmt.Errorf("tiers: %w", err)
	}
	return row, nil
}

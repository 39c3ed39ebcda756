package adapters

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"freight-quoter/internal/features/tariffs/domain"
	"freight-quoter/internal/features/tariffs/ports"

	"github.com/shopspring/decimal"
)

// Column names of the catalog sheet. Tier columns are named "tier_<ceiling kg>".
const (
	colKind             = "kind"
	colCarrier          = "carrier"
	colOrigin           = "origin"
	colDestination      = "destination"
	colMinimumCharge    = "minimum_charge"
	colOveragePerKg     = "overage_per_kg"
	colTollPer100Kg     = "toll_per_100kg"
	colInsuranceMinimum = "insurance_minimum"
	colInsuranceRate    = "insurance_rate"
	colMaxWeightKg      = "max_weight_kg"
	colLeadTimeDays     = "lead_time_days"

	tierPrefix = "tier_"
)

var requiredColumns = []string{colKind, colCarrier, colOrigin, colDestination, colMaxWeightKg}

// ErrMalformedSheet is returned when the header cannot be interpreted.
var ErrMalformedSheet = fmt.Errorf("%w sheet", domain.ErrMalformedCatalog)

type tierColumn struct {
	index   int
	ceiling decimal.Decimal
}

type header struct {
	index map[string]int
	tiers []tierColumn
}

// ParseCSV reads a catalog sheet exported as CSV (comma or semicolon separated).
// Lines that cannot be parsed are returned as rejections; header and I/O problems fail the whole read.
func ParseCSV(r io.Reader) (*ports.LoadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectSeparator(data)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rawHeader, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header: %v", ErrMalformedSheet, err)
	}

	h, err := parseHeader(rawHeader)
	if err != nil {
		return nil, err
	}

	result := &ports.LoadResult{}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Rejected = append(result.Rejected, domain.Diagnostic{
				RowID:  fmt.Sprintf("line-%d", line),
				Reason: parseErr.Err.Error(),
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog line %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		row, err := h.row(record, line)
		if err != nil {
			result.Rejected = append(result.Rejected, domain.Diagnostic{
				RowID:  fmt.Sprintf("line-%d", line),
				Reason: err.Error(),
			})
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

func detectSeparator(data []byte) rune {
	first, _, _ := strings.Cut(string(data), "\n")
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func parseHeader(raw []string) (*header, error) {
	h := &header{index: make(map[string]int, len(raw))}

	for i, name := range raw {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if strings.HasPrefix(key, tierPrefix) {
			ceiling, err := parseNumber(strings.TrimPrefix(key, tierPrefix))
			if err != nil {
				return nil, fmt.Errorf("%w: bad tier column %q", ErrMalformedSheet, name)
			}
			h.tiers = append(h.tiers, tierColumn{index: i, ceiling: ceiling})
			continue
		}
		h.index[key] = i
	}

	for _, col := range requiredColumns {
		if _, ok := h.index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedSheet, col)
		}
	}

	slices.SortFunc(h.tiers, func(a, b tierColumn) int { return a.ceiling.Cmp(b.ceiling) })

	return h, nil
}

func (h *header) cell(record []string, col string) string {
	i, ok := h.index[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (h *header) number(record []string, col string) (decimal.Decimal, error) {
	v, err := parseNumber(h.cell(record, col))
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func (h *header) row(record []string, line int) (domain.Row, error) {
	kind, err := domain.ParseKind(h.cell(record, colKind))
	if err != nil {
		return domain.Row{}, err
	}

	row := domain.Row{
		ID:          fmt.Sprintf("%s-%d", strings.ToLower(string(kind)), line),
		Kind:        kind,
		Carrier:     h.cell(record, colCarrier),
		Origin:      h.cell(record, colOrigin),
		Destination: h.cell(record, colDestination),
	}

	numbers := []struct {
		col string
		dst *decimal.Decimal
	}{
		{colMinimumCharge, &row.Schedule.MinimumCharge},
		{colOveragePerKg, &row.Schedule.OverageRatePerKg},
		{colTollPer100Kg, &row.TollRatePer100Kg},
		{colInsuranceMinimum, &row.InsuranceMinimum},
		{colInsuranceRate, &row.InsuranceRate},
		{colMaxWeightKg, &row.MaxWeightKg},
	}
	for _, n := range numbers {
		if *n.dst, err = h.number(record, n.col); err != nil {
			return domain.Row{}, err
		}
	}

	lead, err := h.number(record, colLeadTimeDays)
	if err != nil {
		return domain.Row{}, err
	}
	row.LeadTimeDays = int(lead.Ceil().IntPart())

	for _, tc := range h.tiers {
		if tc.index >= len(record) || strings.TrimSpace(record[tc.index]) == "" {
			continue
		}
		price, err := parseNumber(record[tc.index])
		if err != nil {
			return domain.Row{}, fmt.Errorf("tier %s kg: %w", tc.ceiling, err)
		}
		row.Schedule.Tiers = append(row.Schedule.Tiers, domain.Tier{CeilingKg: tc.ceiling, Price: price})
	}

	return row, nil
}

// parseNumber accepts "1234.5", "1234,5", "1.234,50", "R$ 12,00" and "0,3%".
// An empty cell is zero.
func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, nil
	}

	percent := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}
	if percent {
		v = v.Div(decimal.NewFromInt(100))
	}
	return v, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

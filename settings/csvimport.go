/*
csvimport.go - Creditor settlement-rate table import

PURPOSE:
  Settlement desks maintain creditor rates in spreadsheets. This file
  parses the exported CSV into the term-keyed rate map:

    Creditor,24,30,36,42
    CHASE,55%,58,60,62
    DISCOVER,62,65,67,69

  Header cells may be bare month numbers or text containing one ("30
  MONTHS"). Rate cells may carry a percent sign. Rows with no valid rates
  are dropped, as are rates outside 0-100 and terms outside 1-120.

  MigrateSingleRates upgrades the legacy one-rate-per-creditor format by
  fanning the rate out across the supported terms.
*/
package settings

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultSupportedTerms are the program lengths the rate table is keyed by
// when migrating legacy single-rate data.
var DefaultSupportedTerms = []int{24, 25, 30, 36, 38, 42, 48}

var digitsRe = regexp.MustCompile(`(\d+)`)

// ParseCreditorCSV converts spreadsheet rows (header row first) into the
// creditor rate document format. Creditor names are upper-cased and
// trimmed; term columns are detected from the header.
func ParseCreditorCSV(rows [][]string) (map[string]map[string]float64, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("creditor import: need a header row and at least one data row")
	}

	type termColumn struct {
		index  int
		months int
	}
	var columns []termColumn
	for i, cell := range rows[0] {
		if i == 0 {
			continue // creditor name column
		}
		m := digitsRe.FindString(cell)
		if m == "" {
			continue
		}
		months, err := strconv.Atoi(m)
		if err != nil || months <= 0 || months > 120 {
			continue
		}
		columns = append(columns, termColumn{index: i, months: months})
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("creditor import: no valid month columns in header row")
	}

	out := make(map[string]map[string]float64)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		creditor := strings.ToUpper(strings.TrimSpace(row[0]))
		if creditor == "" {
			continue
		}

		rates := make(map[string]float64)
		for _, col := range columns {
			if col.index >= len(row) {
				continue
			}
			cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(row[col.index]), "%"))
			rate, err := strconv.ParseFloat(cleaned, 64)
			if err != nil || rate < 0 || rate > 100 {
				continue
			}
			rates[strconv.Itoa(col.months)] = rate
		}
		if len(rates) > 0 {
			out[creditor] = rates
		}
	}
	return out, nil
}

// MigrateSingleRates converts the legacy {"CHASE": 58} format to the
// term-keyed format by applying the same rate to every supported term.
func MigrateSingleRates(old map[string]float64, supportedTerms []int) map[string]map[string]float64 {
	if len(supportedTerms) == 0 {
		supportedTerms = DefaultSupportedTerms
	}
	out := make(map[string]map[string]float64, len(old))
	for creditor, rate := range old {
		rates := make(map[string]float64, len(supportedTerms))
		for _, term := range supportedTerms {
			rates[strconv.Itoa(term)] = rate
		}
		out[strings.ToUpper(strings.TrimSpace(creditor))] = rates
	}
	return out
}

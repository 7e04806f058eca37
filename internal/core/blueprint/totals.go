package blueprint

import (
	"errors"
	"strings"
)

// Aggregate sums usage × per-craft quantity for every material across all
// parseable lines. Materials appear in first-seen order. Lines that fail to
// parse are returned as failures and excluded; blank lines are ignored.
func Aggregate(lines []string) ([]MaterialQty, []*ParseError) {
	var (
		totals   []MaterialQty
		failures []*ParseError
		index    = make(map[string]int)
	)

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				pe = &ParseError{Line: line, Reason: err.Error()}
			}
			failures = append(failures, pe)
			continue
		}

		for _, m := range rec.Totals() {
			i, seen := index[m.Name]
			if !seen {
				index[m.Name] = len(totals)
				totals = append(totals, MaterialQty{Name: m.Name})
				i = len(totals) - 1
			}
			totals[i].Qty += m.Qty
		}
	}

	return totals, failures
}

// Package blueprint contains the pure logic for blueprint records:
// the single-line text format, totals aggregation, and guards.
package blueprint

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	fieldSep = "|"
	pairSep  = ","
	qtySep   = ":"

	usagePrefix     = "Usage:"
	materialsPrefix = "Materials:"
	totalPrefix     = "Total:"
)

// MaterialQty is one material name paired with a quantity.
type MaterialQty struct {
	Name string
	Qty  int
}

// Record is one saved blueprint.
// Materials holds per-craft quantities in entry order.
type Record struct {
	Item      string
	Usage     int
	Materials []MaterialQty
}

// Totals returns per-material totals (per-craft quantity × usage) in the
// same order as Materials.
func (r Record) Totals() []MaterialQty {
	totals := make([]MaterialQty, len(r.Materials))
	for i, m := range r.Materials {
		totals[i] = MaterialQty{Name: m.Name, Qty: m.Qty * r.Usage}
	}
	return totals
}

// ParseError reports a line that could not be parsed into a Record.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed blueprint line %q: %s", e.Line, e.Reason)
}

// ItemName returns the item name of a raw line: the text before the
// first '|', trimmed. Lines without a separator yield the whole line trimmed.
func ItemName(raw string) string {
	name, _, _ := strings.Cut(raw, fieldSep)
	return strings.TrimSpace(name)
}

// ParseLine parses one persisted line. The Total field is not read; totals
// are always recomputed from usage and per-craft quantities.
func ParseLine(raw string) (Record, error) {
	line := strings.TrimRight(raw, "\r\n")
	fields := strings.Split(line, fieldSep)
	if len(fields) < 2 {
		return Record{}, &ParseError{Line: line, Reason: "missing field separator"}
	}

	rec := Record{Item: strings.TrimSpace(fields[0])}

	usage, ok := findField(fields[1:], usagePrefix)
	if !ok {
		return Record{}, &ParseError{Line: line, Reason: "missing Usage field"}
	}
	n, err := strconv.Atoi(usage)
	if err != nil {
		return Record{}, &ParseError{Line: line, Reason: fmt.Sprintf("usage %q is not an integer", usage)}
	}
	rec.Usage = n

	materials, ok := findField(fields[1:], materialsPrefix)
	if !ok {
		return Record{}, &ParseError{Line: line, Reason: "missing Materials field"}
	}
	pairs, reason := parsePairs(materials)
	if reason != "" {
		return Record{}, &ParseError{Line: line, Reason: reason}
	}
	rec.Materials = pairs

	return rec, nil
}

// FormatLine renders a record in the persisted line format, without a
// line terminator.
func FormatLine(r Record) string {
	return fmt.Sprintf("%s %s %s %d %s %s %s %s %s %s",
		r.Item, fieldSep,
		usagePrefix, r.Usage, fieldSep,
		materialsPrefix, joinPairs(r.Materials), fieldSep,
		totalPrefix, joinPairs(r.Totals()),
	)
}

func findField(fields []string, prefix string) (string, bool) {
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if strings.HasPrefix(f, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(f, prefix)), true
		}
	}
	return "", false
}

func parsePairs(s string) ([]MaterialQty, string) {
	if s == "" {
		return nil, ""
	}

	parts := strings.Split(s, pairSep)
	pairs := make([]MaterialQty, 0, len(parts))
	for _, p := range parts {
		kv := strings.Split(strings.TrimSpace(p), qtySep)
		if len(kv) != 2 {
			return nil, fmt.Sprintf("material entry %q is not name:qty", strings.TrimSpace(p))
		}
		name := strings.TrimSpace(kv[0])
		if name == "" {
			return nil, fmt.Sprintf("material entry %q has no name", strings.TrimSpace(p))
		}
		qty, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil {
			return nil, fmt.Sprintf("quantity for %s is not an integer", name)
		}
		pairs = append(pairs, MaterialQty{Name: name, Qty: qty})
	}
	return pairs, ""
}

func joinPairs(pairs []MaterialQty) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Name + qtySep + strconv.Itoa(p.Qty)
	}
	return strings.Join(parts, pairSep+" ")
}

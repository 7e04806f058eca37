package app

import (
	"context"
	"fmt"
	"log"

	"github.com/example/bptracker/internal/core/blueprint"
	"github.com/example/bptracker/internal/core/catalog"
	"github.com/example/bptracker/internal/ports/primary"
	"github.com/example/bptracker/internal/ports/secondary"
)

// BlueprintServiceImpl implements the BlueprintService interface.
type BlueprintServiceImpl struct {
	catalog   *catalog.Catalog
	store     secondary.RecordStore
	logWriter secondary.LogWriter
}

// NewBlueprintService creates a new BlueprintService with injected dependencies.
func NewBlueprintService(cat *catalog.Catalog, store secondary.RecordStore, logWriter secondary.LogWriter) *BlueprintServiceImpl {
	return &BlueprintServiceImpl{
		catalog:   cat,
		store:     store,
		logWriter: logWriter,
	}
}

// ListByCategory groups every stored line under its catalog category.
// Only the item name is parsed; line numbers are file positions.
func (s *BlueprintServiceImpl) ListByCategory(ctx context.Context) (*primary.CategoryListing, error) {
	lines, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}
	if len(lines) == 0 {
		return &primary.CategoryListing{Empty: true}, nil
	}

	categories := s.catalog.Categories()
	groups := make(map[string]*primary.CategoryGroup, len(categories)+1)
	listing := &primary.CategoryListing{LineCount: len(lines)}
	for _, name := range categories {
		g := &primary.CategoryGroup{Category: name}
		groups[name] = g
		listing.Groups = append(listing.Groups, g)
	}
	unknown := &primary.CategoryGroup{Category: catalog.UnknownCategory, Unknown: true}

	for i, line := range lines {
		item := blueprint.ItemName(line)
		entry := &primary.ListedLine{Number: i + 1, Line: line}

		g, ok := groups[s.catalog.CategoryOf(item)]
		if !ok {
			entry.Suggestion = s.catalog.Suggest(item)
			g = unknown
		}
		g.Entries = append(g.Entries, entry)
	}

	if len(unknown.Entries) > 0 {
		listing.Groups = append(listing.Groups, unknown)
	}

	return listing, nil
}

// DeleteLine removes the line at the given 1-based position and rewrites
// the store. An out-of-range number leaves the store untouched.
func (s *BlueprintServiceImpl) DeleteLine(ctx context.Context, lineNumber int) (*primary.DeleteLineResponse, error) {
	lines, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	guardCtx := blueprint.DeleteLineContext{LineNumber: lineNumber, LineCount: len(lines)}
	if result := blueprint.CanDeleteLine(guardCtx); !result.Allowed {
		return nil, fmt.Errorf("%w: %s", primary.ErrInvalidLineNumber, result.Reason)
	}

	removed := lines[lineNumber-1]
	remaining := make([]string, 0, len(lines)-1)
	remaining = append(remaining, lines[:lineNumber-1]...)
	remaining = append(remaining, lines[lineNumber:]...)

	if err := s.store.OverwriteAll(ctx, remaining); err != nil {
		return nil, fmt.Errorf("failed to save blueprints: %w", err)
	}

	if err := s.logWriter.LogDelete(ctx, blueprint.ItemName(removed), removed); err != nil {
		log.Printf("warning: failed to record history: %v", err)
	}

	return &primary.DeleteLineResponse{
		Removed:   removed,
		Remaining: len(remaining),
	}, nil
}

// AddBlueprint builds a record for a catalog item, appends its line to the
// store and returns the saved line.
func (s *BlueprintServiceImpl) AddBlueprint(ctx context.Context, req primary.AddBlueprintRequest) (*primary.AddBlueprintResponse, error) {
	materials, known := s.catalog.Materials(req.Item)

	guardCtx := blueprint.AddBlueprintContext{
		Item:          req.Item,
		ItemKnown:     known,
		MaterialCount: len(materials),
		QuantityCount: len(req.Quantities),
	}
	if result := blueprint.CanAddBlueprint(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	rec := blueprint.Record{
		Item:      req.Item,
		Usage:     req.Usage,
		Materials: make([]blueprint.MaterialQty, len(materials)),
	}
	for i, name := range materials {
		rec.Materials[i] = blueprint.MaterialQty{Name: name, Qty: req.Quantities[i]}
	}

	line := blueprint.FormatLine(rec)
	if err := s.store.AppendOne(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to save blueprint: %w", err)
	}

	if err := s.logWriter.LogAdd(ctx, rec.Item, line); err != nil {
		log.Printf("warning: failed to record history: %v", err)
	}

	return &primary.AddBlueprintResponse{
		Line:   line,
		Record: recordToBlueprint(rec),
	}, nil
}

// ComputeTotals aggregates material requirements across all stored lines,
// recomputing totals from usage and per-craft quantities.
func (s *BlueprintServiceImpl) ComputeTotals(ctx context.Context) (*primary.TotalsReport, error) {
	lines, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}
	if len(lines) == 0 {
		return &primary.TotalsReport{Empty: true}, nil
	}

	totals, failures := blueprint.Aggregate(lines)

	report := &primary.TotalsReport{Totals: toAmounts(totals)}
	for _, f := range failures {
		report.Skipped = append(report.Skipped, &primary.SkippedLine{Line: f.Line, Reason: f.Reason})
	}
	return report, nil
}

// InspectRecords parses every stored line and reports each outcome.
func (s *BlueprintServiceImpl) InspectRecords(ctx context.Context) ([]*primary.RecordInspection, error) {
	lines, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	out := make([]*primary.RecordInspection, len(lines))
	for i, line := range lines {
		insp := &primary.RecordInspection{Number: i + 1, Line: line}
		rec, err := blueprint.ParseLine(line)
		if err != nil {
			insp.Err = err.Error()
		} else {
			insp.Record = recordToBlueprint(rec)
		}
		out[i] = insp
	}
	return out, nil
}

// Categories returns category names in definition order.
func (s *BlueprintServiceImpl) Categories() []string {
	return s.catalog.Categories()
}

// Items returns item names of a category in definition order.
func (s *BlueprintServiceImpl) Items(category string) []string {
	return s.catalog.Items(category)
}

// Materials returns the required materials of an item in definition order.
func (s *BlueprintServiceImpl) Materials(item string) ([]string, bool) {
	return s.catalog.Materials(item)
}

// Helper methods

func recordToBlueprint(r blueprint.Record) *primary.Blueprint {
	return &primary.Blueprint{
		Item:      r.Item,
		Usage:     r.Usage,
		Materials: toAmounts(r.Materials),
		Totals:    toAmounts(r.Totals()),
	}
}

func toAmounts(in []blueprint.MaterialQty) []primary.MaterialAmount {
	out := make([]primary.MaterialAmount, len(in))
	for i, m := range in {
		out[i] = primary.MaterialAmount{Name: m.Name, Qty: m.Qty}
	}
	return out
}

// Ensure BlueprintServiceImpl implements the interfaces.
var _ primary.BlueprintService = (*BlueprintServiceImpl)(nil)
var _ primary.CatalogService = (*BlueprintServiceImpl)(nil)

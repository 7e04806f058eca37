package primary

import (
	"context"
	"errors"
)

// ErrInvalidLineNumber is returned when a delete targets a line outside the store.
var ErrInvalidLineNumber = errors.New("invalid line number")

// BlueprintService defines the primary port for blueprint operations.
type BlueprintService interface {
	// ListByCategory groups every stored line under its catalog category.
	ListByCategory(ctx context.Context) (*CategoryListing, error)

	// DeleteLine removes the line at the given 1-based position.
	DeleteLine(ctx context.Context, lineNumber int) (*DeleteLineResponse, error)

	// AddBlueprint builds, formats and appends one blueprint.
	AddBlueprint(ctx context.Context, req AddBlueprintRequest) (*AddBlueprintResponse, error)

	// ComputeTotals aggregates material quantities across all stored lines.
	ComputeTotals(ctx context.Context) (*TotalsReport, error)

	// InspectRecords parses every stored line without aggregating.
	InspectRecords(ctx context.Context) ([]*RecordInspection, error)
}

// CatalogService defines the primary port for read-only catalog access.
type CatalogService interface {
	// Categories returns category names in definition order.
	Categories() []string

	// Items returns item names of a category in definition order.
	Items(category string) []string

	// Materials returns the required materials of an item in definition order.
	Materials(item string) ([]string, bool)
}

// CategoryListing is the grouped view of the store.
// Empty is set when the store holds no lines; Groups is then nil.
type CategoryListing struct {
	Empty     bool
	LineCount int
	Groups    []*CategoryGroup
}

// CategoryGroup holds the lines classified under one category.
// Catalog categories are always present; Unknown only when non-empty.
type CategoryGroup struct {
	Category string
	Unknown  bool
	Entries  []*ListedLine
}

// ListedLine is one stored line with its 1-based file position.
type ListedLine struct {
	Number     int
	Line       string
	Suggestion string // closest catalog item, for Unknown entries only
}

// DeleteLineResponse contains the result of deleting a line.
type DeleteLineResponse struct {
	Removed   string
	Remaining int
}

// AddBlueprintRequest contains parameters for adding a blueprint.
// Quantities are per-craft and follow the catalog's material order.
type AddBlueprintRequest struct {
	Item       string
	Usage      int
	Quantities []int
}

// AddBlueprintResponse contains the result of adding a blueprint.
type AddBlueprintResponse struct {
	Line   string
	Record *Blueprint
}

// Blueprint represents a parsed blueprint at the port boundary.
type Blueprint struct {
	Item      string
	Usage     int
	Materials []MaterialAmount
	Totals    []MaterialAmount
}

// MaterialAmount pairs a material with a quantity.
type MaterialAmount struct {
	Name string
	Qty  int
}

// TotalsReport contains aggregated material requirements.
// Empty is set when the store holds no lines.
type TotalsReport struct {
	Empty   bool
	Totals  []MaterialAmount
	Skipped []*SkippedLine
}

// SkippedLine is a stored line that could not be parsed.
type SkippedLine struct {
	Line   string
	Reason string
}

// RecordInspection is the parse outcome of one stored line.
type RecordInspection struct {
	Number int
	Line   string
	Record *Blueprint
	Err    string
}

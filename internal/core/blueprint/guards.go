package blueprint

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// DeleteLineContext provides context for delete guards.
type DeleteLineContext struct {
	LineNumber int // 1-based
	LineCount  int
}

// AddBlueprintContext provides context for add guards.
type AddBlueprintContext struct {
	Item          string
	ItemKnown     bool
	MaterialCount int // materials the catalog requires for Item
	QuantityCount int // quantities supplied by the caller
}

// CanDeleteLine evaluates whether a line can be deleted.
// Rules:
// - Line number must be within [1, LineCount]
func CanDeleteLine(ctx DeleteLineContext) GuardResult {
	if ctx.LineNumber < 1 || ctx.LineNumber > ctx.LineCount {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("line %d out of range (store has %d line(s))", ctx.LineNumber, ctx.LineCount),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAddBlueprint evaluates whether a blueprint can be added.
// Rules:
// - Item must exist in the catalog
// - One quantity must be supplied per required material
func CanAddBlueprint(ctx AddBlueprintContext) GuardResult {
	if !ctx.ItemKnown {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("item %q not found in catalog", ctx.Item),
		}
	}

	if ctx.QuantityCount != ctx.MaterialCount {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s needs %d material quantities, got %d", ctx.Item, ctx.MaterialCount, ctx.QuantityCount),
		}
	}

	return GuardResult{Allowed: true}
}

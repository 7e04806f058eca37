package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/bptracker/internal/adapters/filesystem"
	"github.com/example/bptracker/internal/adapters/sqlite"
	"github.com/example/bptracker/internal/app"
	"github.com/example/bptracker/internal/core/catalog"
	"github.com/example/bptracker/internal/ports/primary"
)

const (
	fieldBrewLine = "Field Brew | Usage: 2 | Materials: Herbs:1, Water:1, Spices:1 | Total: Herbs:2, Water:2, Spices:2"
	fireSeedLine  = "Fire Seed | Usage: 3 | Materials: Poison:1, Iron Ore:2, Hidden Honey:1 | Total: Poison:3, Iron Ore:6, Hidden Honey:3"
)

func init() {
	color.NoColor = true
}

// newTestMenu wires a real service over a temp-file store.
func newTestMenu(t *testing.T, input string, lines ...string) (*MenuAdapter, *bytes.Buffer, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "crafting_blueprints.txt")
	if len(lines) > 0 {
		content := strings.Join(lines, "\n") + "\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}
	}

	service := app.NewBlueprintService(catalog.Default(), filesystem.NewRecordStore(path), sqlite.NoopLogWriter{})
	out := &bytes.Buffer{}
	return NewMenuAdapter(service, service, strings.NewReader(input), out), out, path
}

func readStore(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	return string(data)
}

func TestRun_ExitOption(t *testing.T) {
	menu, out, _ := newTestMenu(t, "5\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"== Blueprint Tracker ==",
		"=== Main Menu ===",
		"1. View Existing Blueprints",
		"5. Exit",
		"Select an option (1-5): ",
		"Exiting...",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestRun_InvalidOptionContinues(t *testing.T) {
	menu, out, _ := newTestMenu(t, "9\nabc\n5\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := strings.Count(out.String(), "Invalid option. Please select from 1 to 5."); got != 2 {
		t.Errorf("expected 2 invalid option messages, got %d", got)
	}
	if !strings.Contains(out.String(), "Exiting...") {
		t.Error("expected loop to continue until exit")
	}
}

func TestRun_EndOfInputExits(t *testing.T) {
	menu, _, _ := newTestMenu(t, "1\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("expected EOF to end the loop cleanly, got %v", err)
	}
}

func TestRun_ViewEmpty(t *testing.T) {
	menu, out, _ := newTestMenu(t, "1\n5\n")

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), ">> No blueprints saved yet.") {
		t.Errorf("expected empty-store message, got:\n%s", out.String())
	}
}

func TestShowExisting_Categorized(t *testing.T) {
	menu, out, _ := newTestMenu(t, "",
		fieldBrewLine,
		"Moon Pie | Usage: 1 | Materials: Cheese:1 | Total: Cheese:1",
	)

	if _, err := menu.ShowExisting(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"=== Craft Blueprints ===\n(none)",
		"=== Cooking Blueprints ===\n1. " + fieldBrewLine,
		"=== Manufacturing Blueprints ===\n(none)",
		"=== Unknown Blueprints (not found in known types) ===\n2. Moon Pie",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	craft := strings.Index(output, "=== Craft")
	unknown := strings.Index(output, "=== Unknown")
	if craft > unknown {
		t.Error("Unknown must be rendered after catalog categories")
	}
}

func TestShowExisting_NoUnknownSection(t *testing.T) {
	menu, out, _ := newTestMenu(t, "", fieldBrewLine)

	if _, err := menu.ShowExisting(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(out.String(), "Unknown") {
		t.Error("Unknown section must be omitted when empty")
	}
}

func TestDelete_ValidLine(t *testing.T) {
	menu, out, path := newTestMenu(t, "1\n", fireSeedLine, fieldBrewLine)

	if err := menu.Delete(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), ">> Deleted: "+fireSeedLine) {
		t.Errorf("expected deleted line to be echoed, got:\n%s", out.String())
	}
	if got := readStore(t, path); got != fieldBrewLine+"\n" {
		t.Errorf("store = %q", got)
	}
}

func TestDelete_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cancel", "\n", ">> Deletion canceled."},
		{"zero", "0\n", "Invalid line number."},
		{"past end", "3\n", "Invalid line number."},
		{"not a number", "two\n", "Invalid input. Must be a number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, out, path := newTestMenu(t, tt.input, fireSeedLine, fieldBrewLine)

			if err := menu.Delete(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output, got:\n%s", tt.want, out.String())
			}
			if got := readStore(t, path); got != fireSeedLine+"\n"+fieldBrewLine+"\n" {
				t.Errorf("store must be unchanged, got %q", got)
			}
		})
	}
}

func TestDelete_EmptyStoreDoesNotPrompt(t *testing.T) {
	menu, out, _ := newTestMenu(t, "")

	if err := menu.Delete(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(out.String(), "Enter the line number") {
		t.Error("must not prompt when nothing is stored")
	}
}

func TestAdd_FireSeed(t *testing.T) {
	// Craft -> Fire Seed -> 1 blueprint -> usage 3 -> quantities 1, 2, 1
	menu, out, path := newTestMenu(t, "1\n2\n1\n3\n1\n2\n1\n")

	if err := menu.Add(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := readStore(t, path); got != fireSeedLine+"\n" {
		t.Errorf("store = %q, want %q", got, fireSeedLine+"\n")
	}
	if !strings.Contains(out.String(), ">> Blueprint saved: "+fireSeedLine) {
		t.Errorf("expected saved line echo, got:\n%s", out.String())
	}
}

func TestAdd_RetriesQuantityUntilValid(t *testing.T) {
	// Cooking -> Field Brew -> 1 blueprint -> usage 2 -> x, 1, 1, ?, 1
	menu, out, path := newTestMenu(t, "2\n1\n1\n2\nx\n1\n1\n?\n1\n")

	if err := menu.Add(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := strings.Count(out.String(), "Please enter a valid number."); got != 2 {
		t.Errorf("expected 2 retry messages, got %d", got)
	}
	if got := readStore(t, path); got != fieldBrewLine+"\n" {
		t.Errorf("store = %q", got)
	}
}

func TestAdd_InvalidUsageSkipsOnlyThatBlueprint(t *testing.T) {
	// Cooking -> Field Brew -> 2 blueprints -> first usage bad, second usage 2
	menu, out, path := newTestMenu(t, "2\n1\n2\nmany\n2\n1\n1\n1\n")

	if err := menu.Add(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), "Invalid number. Skipping this blueprint.") {
		t.Error("expected skip message")
	}
	if !strings.Contains(out.String(), "--- Blueprint 2 ---") {
		t.Error("expected loop to continue to the second blueprint")
	}
	if got := readStore(t, path); got != fieldBrewLine+"\n" {
		t.Errorf("store = %q", got)
	}
}

func TestAdd_AbortPaths(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"back at category", "back\n", ""},
		{"BACK is case-insensitive", "BACK\n", ""},
		{"bad category", "7\n", "Invalid choice. Returning to main menu."},
		{"back at item", "1\nback\n", ""},
		{"bad item", "1\n0\n", "Invalid choice. Returning."},
		{"bad count", "1\n1\nseveral\n", "Please enter a valid number."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			menu, out, path := newTestMenu(t, tt.input)

			if err := menu.Add(context.Background()); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.want != "" && !strings.Contains(out.String(), tt.want) {
				t.Errorf("expected %q in output, got:\n%s", tt.want, out.String())
			}
			if got := readStore(t, path); got != "" {
				t.Errorf("nothing should be saved, got %q", got)
			}
		})
	}
}

func TestShowTotals(t *testing.T) {
	menu, out, _ := newTestMenu(t, "",
		fieldBrewLine,
		"Fire Seed | Usage: 3 | Total: Poison:3",
		fieldBrewLine,
	)

	if err := menu.ShowTotals(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Error reading line: Fire Seed | Usage: 3 | Total: Poison:3 - Skipping.") {
		t.Errorf("expected diagnostic for malformed line, got:\n%s", output)
	}
	if !strings.Contains(output, "=== Total Materials Needed ===\nHerbs: 4\nWater: 4\nSpices: 4\n") {
		t.Errorf("unexpected totals, got:\n%s", output)
	}
}

func TestShowTotals_Empty(t *testing.T) {
	menu, out, _ := newTestMenu(t, "")

	if err := menu.ShowTotals(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(out.String(), ">> No blueprints saved. Nothing to calculate.") {
		t.Errorf("expected nothing-to-calculate message, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Total Materials Needed") {
		t.Error("must not render an empty table")
	}
}

// failingService returns a storage error from every operation.
type failingService struct {
	primary.BlueprintService
	err error
}

func (f *failingService) ListByCategory(ctx context.Context) (*primary.CategoryListing, error) {
	return nil, f.err
}

func (f *failingService) ComputeTotals(ctx context.Context) (*primary.TotalsReport, error) {
	return nil, f.err
}

func TestRun_StorageErrorPropagates(t *testing.T) {
	storageErr := errors.New("permission denied")
	svc := &failingService{err: storageErr}
	menu := NewMenuAdapter(svc, app.NewBlueprintService(catalog.Default(), nil, nil), strings.NewReader("4\n5\n"), &bytes.Buffer{})

	err := menu.Run(context.Background())
	if !errors.Is(err, storageErr) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

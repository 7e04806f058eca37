// Package cli provides thin CLI adapters that translate between terminal
// concerns and application services. Adapters handle prompting and output
// formatting, but delegate business logic to services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/example/bptracker/internal/ports/primary"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	hintColor    = color.New(color.FgHiBlack)
)

// MenuAdapter runs the interactive main menu over a line-oriented reader.
// It depends only on the service interfaces, enabling easy testing with mocks.
type MenuAdapter struct {
	service primary.BlueprintService
	catalog primary.CatalogService
	in      *bufio.Reader
	out     io.Writer
}

// NewMenuAdapter creates a new MenuAdapter reading answers from in.
func NewMenuAdapter(service primary.BlueprintService, catalog primary.CatalogService, in io.Reader, out io.Writer) *MenuAdapter {
	return &MenuAdapter{
		service: service,
		catalog: catalog,
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Run loops over the main menu until Exit is chosen or input ends.
// Only storage failures are returned as errors.
func (a *MenuAdapter) Run(ctx context.Context) error {
	headingColor.Fprintln(a.out, "\n== Blueprint Tracker ==")

	for {
		a.printMainMenu()

		option, err := a.prompt("\nSelect an option (1-5): ")
		if err != nil {
			return endOfInput(err)
		}

		switch strings.TrimSpace(option) {
		case "1":
			_, err = a.ShowExisting(ctx)
		case "2":
			err = a.Delete(ctx)
		case "3":
			err = a.Add(ctx)
		case "4":
			err = a.ShowTotals(ctx)
		case "5":
			fmt.Fprintln(a.out, "Exiting...")
			return nil
		default:
			errorColor.Fprintln(a.out, "Invalid option. Please select from 1 to 5.")
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

func (a *MenuAdapter) printMainMenu() {
	headingColor.Fprintln(a.out, "\n=== Main Menu ===")
	fmt.Fprintln(a.out, "1. View Existing Blueprints")
	fmt.Fprintln(a.out, "2. Delete a Blueprint")
	fmt.Fprintln(a.out, "3. Add New Blueprints")
	fmt.Fprintln(a.out, "4. View Total Materials Needed")
	fmt.Fprintln(a.out, "5. Exit")
}

// ShowExisting prints every stored line grouped by category.
func (a *MenuAdapter) ShowExisting(ctx context.Context) (*primary.CategoryListing, error) {
	listing, err := a.service.ListByCategory(ctx)
	if err != nil {
		return nil, err
	}

	if listing.Empty {
		fmt.Fprintln(a.out, "\n>> No blueprints saved yet.")
		return listing, nil
	}

	for _, g := range listing.Groups {
		if g.Unknown {
			headingColor.Fprintln(a.out, "\n=== Unknown Blueprints (not found in known types) ===")
		} else {
			headingColor.Fprintf(a.out, "\n=== %s Blueprints ===\n", g.Category)
		}

		if len(g.Entries) == 0 {
			hintColor.Fprintln(a.out, "(none)")
			continue
		}
		for _, e := range g.Entries {
			fmt.Fprintf(a.out, "%d. %s", e.Number, strings.TrimSpace(e.Line))
			if e.Suggestion != "" {
				warnColor.Fprintf(a.out, " (did you mean %s?)", e.Suggestion)
			}
			fmt.Fprintln(a.out)
		}
	}

	return listing, nil
}

// Delete shows the numbered listing and removes the line the user picks.
func (a *MenuAdapter) Delete(ctx context.Context) error {
	listing, err := a.ShowExisting(ctx)
	if err != nil {
		return err
	}
	if listing.Empty {
		return nil
	}

	answer, err := a.prompt("\nEnter the line number to delete (or press Enter to cancel): ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		fmt.Fprintln(a.out, ">> Deletion canceled.")
		return nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		errorColor.Fprintln(a.out, "Invalid input. Must be a number.")
		return nil
	}

	resp, err := a.service.DeleteLine(ctx, n)
	if errors.Is(err, primary.ErrInvalidLineNumber) {
		errorColor.Fprintln(a.out, "Invalid line number.")
		return nil
	}
	if err != nil {
		return err
	}

	successColor.Fprintf(a.out, ">> Deleted: %s\n", strings.TrimSpace(resp.Removed))
	return nil
}

// Add walks the user through category, item, count and per-blueprint
// quantities, saving each completed blueprint immediately.
func (a *MenuAdapter) Add(ctx context.Context) error {
	categories := a.catalog.Categories()
	headingColor.Fprintln(a.out, "\n=== Blueprint Types ===")
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c)
	}

	category, ok, err := a.choose("\nSelect a blueprint type by number (or type 'back' to return to main menu): ", categories)
	if err != nil || !ok {
		return err
	}
	if category == "" {
		errorColor.Fprintln(a.out, "Invalid choice. Returning to main menu.")
		return nil
	}

	items := a.catalog.Items(category)
	headingColor.Fprintf(a.out, "\n=== Available Final Items in '%s' ===\n", category)
	for i, item := range items {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, item)
	}

	item, ok, err := a.choose("\nSelect the final item by number (or type 'back' to return): ", items)
	if err != nil || !ok {
		return err
	}
	if item == "" {
		errorColor.Fprintln(a.out, "Invalid choice. Returning.")
		return nil
	}

	materials, _ := a.catalog.Materials(item)

	answer, err := a.prompt(fmt.Sprintf("\nHow many blueprints do you want to add for '%s'? ", item))
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		errorColor.Fprintln(a.out, "Please enter a valid number.")
		return nil
	}

	for i := 0; i < count; i++ {
		fmt.Fprintf(a.out, "\n--- Blueprint %d ---\n", i+1)

		answer, err := a.prompt("Usage Count (how many times this blueprint can be used)? ")
		if err != nil {
			return err
		}
		usage, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			warnColor.Fprintln(a.out, "Invalid number. Skipping this blueprint.")
			continue
		}

		quantities := make([]int, len(materials))
		for j, m := range materials {
			qty, err := a.promptInt(fmt.Sprintf(" - How many '%s' per craft? ", m))
			if err != nil {
				return err
			}
			quantities[j] = qty
		}

		resp, err := a.service.AddBlueprint(ctx, primary.AddBlueprintRequest{
			Item:       item,
			Usage:      usage,
			Quantities: quantities,
		})
		if err != nil {
			return err
		}
		successColor.Fprintf(a.out, ">> Blueprint saved: %s\n", resp.Line)
	}

	return nil
}

// ShowTotals prints the aggregated material requirements.
func (a *MenuAdapter) ShowTotals(ctx context.Context) error {
	report, err := a.service.ComputeTotals(ctx)
	if err != nil {
		return err
	}

	if report.Empty {
		fmt.Fprintln(a.out, "\n>> No blueprints saved. Nothing to calculate.")
		return nil
	}

	for _, s := range report.Skipped {
		warnColor.Fprintf(a.out, "Error reading line: %s - Skipping.\n", strings.TrimSpace(s.Line))
	}

	headingColor.Fprintln(a.out, "\n=== Total Materials Needed ===")
	for _, t := range report.Totals {
		fmt.Fprintf(a.out, "%s: %d\n", t.Name, t.Qty)
	}
	return nil
}

// prompt writes text and reads one line, without its terminator.
// A final line lacking a newline is still returned; io.EOF is returned
// only when no input remains.
func (a *MenuAdapter) prompt(text string) (string, error) {
	fmt.Fprint(a.out, text)

	line, err := a.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptInt re-prompts until an integer is entered.
func (a *MenuAdapter) promptInt(text string) (int, error) {
	for {
		answer, err := a.prompt(text)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return n, nil
		}
		errorColor.Fprintln(a.out, "Please enter a valid number.")
	}
}

// choose prompts for a 1-based index into options. ok is false when the
// user typed "back"; an empty choice with ok set means the input was invalid.
func (a *MenuAdapter) choose(text string, options []string) (choice string, ok bool, err error) {
	answer, err := a.prompt(text)
	if err != nil {
		return "", false, err
	}

	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, "back") {
		return "", false, nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return "", true, nil
	}
	return options[n-1], true, nil
}

// endOfInput treats exhausted input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Package cli provides CLI commands for the bptracker application.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/bptracker/internal/ctxutil"
	"github.com/example/bptracker/internal/wire"
)

// globalActorID stores the detected actor ID for the current CLI invocation.
// Set once at startup by DetectAndStoreActor().
var globalActorID string

// DetectAndStoreActor records the login name of the invoking user so that
// history entries can be attributed.
func DetectAndStoreActor() {
	globalActorID = ctxutil.CurrentUser()
}

// GetActorID returns the stored actor ID from CLI startup.
func GetActorID() string {
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() context.Context {
	ctx := context.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}

// RunMenu runs the interactive blueprint menu on stdin/stdout.
func RunMenu(cmd *cobra.Command, args []string) error {
	return wire.MenuAdapterWithIO(cmd.InOrStdin(), cmd.OutOrStdout()).Run(NewContext())
}

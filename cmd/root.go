// Package cmd wires the cobra command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/backup"
	"github.com/thenoetrevino/invoicer/internal/cli/client"
	"github.com/thenoetrevino/invoicer/internal/cli/invoice"
	"github.com/thenoetrevino/invoicer/internal/cli/settings"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the full invoicer command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "invoicer",
		Short: "Invoicer - local invoices, clients and company settings",
		Long: `Invoicer keeps clients, invoices and company settings in a local SQLite
database and can back all of it up to a single JSON file.

Every command accepts --json for machine-readable output and most accept
--quiet to print only IDs.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(client.ClientCmd())
	rootCmd.AddCommand(invoice.InvoiceCmd())
	rootCmd.AddCommand(settings.SettingsCmd())
	rootCmd.AddCommand(backup.BackupCmd())

	return rootCmd
}

// Execute runs the command tree and returns the process exit code.
// Commands report their own failures; only errors raised by cobra itself
// (unknown commands, missing flags) are printed here.
func Execute(ctx context.Context) int {
	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var statusErr *cli.StatusError
	if !errors.As(err, &statusErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'invoicer --help' for usage.\n", err)
	}
	return cli.ExitCode(err)
}

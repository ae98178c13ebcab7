// Package invoice holds all cli commands related to invoices
//
// e.g., invoicer invoice ...
package invoice

import (
	"github.com/spf13/cobra"
)

// InvoiceCmd returns the invoice parent command
func InvoiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Manage invoices",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(StatusCmd())
	cmd.AddCommand(ExportCmd())

	return cmd
}

package invoice

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
)

// DeleteCmd returns the invoice delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an invoice",
		Long:  "Delete an invoice and its line items by ID (requires confirmation unless --force or --quiet).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Int("id", 0, "Invoice ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	invoiceID, err := cli.RecordID(cmd, args, "invoice")
	if err != nil {
		return formatter.Fail(err)
	}

	// Initialize CLI
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	// Ask for confirmation unless force, quiet or JSON mode
	if !force && !quietMode && !jsonOutput {
		prompt := fmt.Sprintf("Delete invoice #%d?", invoiceID)
		if invoice, err := cliInstance.App.InvoiceService.GetInvoice(ctx, invoiceID); err == nil {
			prompt = fmt.Sprintf("Delete invoice #%d: '%s' (%s)?", invoiceID, invoice.Number, invoice.Total.StringFixed(2))
		}
		if !cli.Confirm(cmd, prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.InvoiceService.DeleteInvoice(ctx, invoiceID); err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"invoice_id": invoiceID,
		})
	}

	fmt.Printf("✓ Invoice %d deleted successfully\n", invoiceID)
	return nil
}

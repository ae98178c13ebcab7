package invoice

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// StatusCmd returns the invoice status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <draft|sent|paid|overdue>",
		Short: "Change the status of an invoice",
		Long: `Move an invoice to another status. Any status can follow any other.

Examples:
  invoicer invoice status 7 sent
  invoicer invoice status 7 paid --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	invoiceID, err := cli.ParseID("invoice", args[0])
	if err != nil {
		return formatter.Fail(err)
	}
	status, err := models.ParseInvoiceStatus(args[1])
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

	invoice, err := cliInstance.App.InvoiceService.SetStatus(ctx, invoiceID, status)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		fmt.Printf("%d\n", invoice.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"invoice": invoice,
		})
	}

	fmt.Printf("✓ Invoice %s is now %s\n", invoice.Number, styles.StatusBadge(invoice.Status))
	return nil
}

package invoice

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ShowCmd returns the invoice show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show an invoice",
		Long: `Display an invoice as a formatted sheet with sender, client, line items,
totals and bank details. Use --markdown for the raw markdown source.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int("id", 0, "Invoice ID (can also be provided as positional argument)")
	cmd.Flags().Bool("markdown", false, "Print the sheet as plain markdown")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	markdown, _ := cmd.Flags().GetBool("markdown")
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

	invoice, err := cliInstance.App.InvoiceService.GetInvoice(ctx, invoiceID)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		fmt.Printf("%d\n", invoice.ID)
		return nil
	}

	// A deleted client is expected; anything else is a real failure
	client, err := cliInstance.App.ClientService.GetClient(ctx, invoice.ClientID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return formatter.Fail(err)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"invoice": invoice,
			"client":  client,
		})
	}

	settings, err := cliInstance.App.SettingsService.GetSettings(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	sheet := Sheet(invoice, client, settings)
	if markdown {
		fmt.Print(sheet)
		return nil
	}

	fmt.Print(styles.RenderMarkdown(sheet, styles.CardWidth))
	return nil
}

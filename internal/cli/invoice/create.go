package invoice

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// CreateCmd returns the invoice create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new invoice",
		Long: `Create a new invoice for a client. Line items are given as
"description:quantity:rate" and may be repeated. Amounts, subtotal and
total are always computed from the items and discount.

Without --number a number like INV-202403-0001 is generated from the
issue month. Issue date defaults to today and the due date to the
configured payment terms after it.

Examples:
  # Two line items
  invoicer invoice create --client=3 \
    --item="Design:2:500" \
    --item="Hosting:1:20.50"

  # With a discount, JSON output for agents
  invoicer invoice create --client=3 --item="Audit:1:900" --discount=100 --json

  # Quiet mode for bash capture
  INVOICE_ID=$(invoicer invoice create --client=3 --item="Retainer:1:1500" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().Int("client", 0, "Client ID (required)")
	if err := cmd.MarkFlagRequired("client"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	addInvoiceFlags(cmd)

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// addInvoiceFlags registers the flags shared by create and update
func addInvoiceFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("item", nil, `Line item "description:quantity:rate" (repeatable)`)
	cmd.Flags().String("discount", "", "Discount subtracted from the subtotal")
	cmd.Flags().String("number", "", "Invoice number (generated when omitted)")
	cmd.Flags().String("issue-date", "", "Issue date (YYYY-MM-DD)")
	cmd.Flags().String("due-date", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "Status: draft, sent, paid, overdue")
	cmd.Flags().String("notes", "", "Free-form notes")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	clientID, _ := cmd.Flags().GetInt("client")
	itemSpecs, _ := cmd.Flags().GetStringArray("item")
	discountStr, _ := cmd.Flags().GetString("discount")
	number, _ := cmd.Flags().GetString("number")
	issueDate, _ := cmd.Flags().GetString("issue-date")
	dueDate, _ := cmd.Flags().GetString("due-date")
	statusStr, _ := cmd.Flags().GetString("status")
	notes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	items, err := cli.ParseItems(itemSpecs)
	if err != nil {
		return formatter.Fail(err)
	}

	discount := decimal.Zero
	if discountStr != "" {
		if discount, err = cli.ParseAmount("discount", discountStr); err != nil {
			return formatter.Fail(err)
		}
	}

	var status models.InvoiceStatus
	if statusStr != "" {
		if status, err = models.ParseInvoiceStatus(statusStr); err != nil {
			return formatter.Fail(err)
		}
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

	// Validate client exists
	client, err := cliInstance.App.ClientService.GetClient(ctx, clientID)
	if err != nil {
		return formatter.Fail(err)
	}

	invoice, err := cliInstance.App.InvoiceService.AddInvoice(ctx, &models.Invoice{
		Number:    number,
		IssueDate: issueDate,
		DueDate:   dueDate,
		ClientID:  client.ID,
		Items:     items,
		Discount:  discount,
		Status:    status,
		Notes:     notes,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode (JSON/Quiet/Human)
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

	fmt.Printf("✓ Invoice %s created for %s (ID: %d)\n", invoice.Number, client.DisplayName(), invoice.ID)
	fmt.Printf("  Total: %s  Due: %s\n", invoice.Total.StringFixed(2), invoice.DueDate)
	return nil
}

package invoice

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// UpdateCmd returns the invoice update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update an invoice",
		Long: `Update an existing invoice. Only the flags you pass change. Passing
--item replaces every line item. Totals are recomputed on every update.

Examples:
  invoicer invoice update 7 --discount=50
  invoicer invoice update 7 --item="Design:3:500" --item="Hosting:1:20" --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Invoice ID (can also be provided as positional argument)")
	cmd.Flags().Int("client", 0, "Client ID")
	addInvoiceFlags(cmd)

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

var updatableFlags = []string{"client", "item", "discount", "number", "issue-date", "due-date", "status", "notes"}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	invoiceID, err := cli.RecordID(cmd, args, "invoice")
	if err != nil {
		return formatter.Fail(err)
	}

	changed := false
	for _, name := range updatableFlags {
		changed = changed || cmd.Flags().Changed(name)
	}
	if !changed {
		return formatter.Usage("nothing to update: pass at least one of --client, --item, --discount, --number, --issue-date, --due-date, --status, --notes")
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

	record, err := cliInstance.App.InvoiceService.GetInvoice(ctx, invoiceID)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := applyChanges(cmd, record); err != nil {
		return formatter.Fail(err)
	}

	if cmd.Flags().Changed("client") {
		if _, err := cliInstance.App.ClientService.GetClient(ctx, record.ClientID); err != nil {
			return formatter.Fail(err)
		}
	}

	invoice, err := cliInstance.App.InvoiceService.UpdateInvoice(ctx, invoiceID, record)
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

	fmt.Printf("✓ Invoice %s updated successfully (total %s)\n", invoice.Number, invoice.Total.StringFixed(2))
	return nil
}

// applyChanges overlays the flags the user set onto record
func applyChanges(cmd *cobra.Command, record *models.Invoice) error {
	flags := cmd.Flags()

	if flags.Changed("client") {
		record.ClientID, _ = flags.GetInt("client")
	}
	if flags.Changed("item") {
		specs, _ := flags.GetStringArray("item")
		items, err := cli.ParseItems(specs)
		if err != nil {
			return err
		}
		record.Items = items
	}
	if value := cli.ChangedString(cmd, "discount"); value != nil {
		discount, err := cli.ParseAmount("discount", *value)
		if err != nil {
			return err
		}
		record.Discount = discount
	}
	if value := cli.ChangedString(cmd, "status"); value != nil {
		status, err := models.ParseInvoiceStatus(*value)
		if err != nil {
			return err
		}
		record.Status = status
	}
	if value := cli.ChangedString(cmd, "number"); value != nil {
		record.Number = *value
	}
	if value := cli.ChangedString(cmd, "issue-date"); value != nil {
		record.IssueDate = *value
	}
	if value := cli.ChangedString(cmd, "due-date"); value != nil {
		record.DueDate = *value
	}
	if value := cli.ChangedString(cmd, "notes"); value != nil {
		record.Notes = *value
	}
	return nil
}

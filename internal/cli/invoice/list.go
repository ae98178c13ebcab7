package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ListCmd returns the invoice list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long: `List invoices ordered by ID. Filters may be combined.

Examples:
  invoicer invoice list --status=overdue
  invoicer invoice list --client=3 --json
  invoicer invoice list --number=INV-202403-0001 --quiet
`,
		RunE: runList,
	}

	cmd.Flags().Int("client", 0, "Only invoices of this client ID")
	cmd.Flags().String("status", "", "Only invoices with this status")
	cmd.Flags().String("number", "", "Only invoices with this exact number")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

// listFilter selects invoices by client, status and number
type listFilter struct {
	clientID int
	status   models.InvoiceStatus
	number   string
}

func (f listFilter) matches(inv *models.Invoice) bool {
	if f.clientID != 0 && inv.ClientID != f.clientID {
		return false
	}
	if f.status != "" && inv.Status != f.status {
		return false
	}
	if f.number != "" && inv.Number != f.number {
		return false
	}
	return true
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	clientID, _ := cmd.Flags().GetInt("client")
	statusStr, _ := cmd.Flags().GetString("status")
	number, _ := cmd.Flags().GetString("number")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	filter := listFilter{clientID: clientID, number: number}
	if statusStr != "" {
		status, err := models.ParseInvoiceStatus(statusStr)
		if err != nil {
			return formatter.Fail(err)
		}
		filter.status = status
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

	invoices, err := fetchInvoices(ctx, cliInstance, filter)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode
	if quietMode {
		for _, inv := range invoices {
			fmt.Printf("%d\n", inv.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"invoices": invoices,
		})
	}

	// Human-readable output
	if len(invoices) == 0 {
		fmt.Println("No invoices found")
		return nil
	}

	currency := ""
	if settings, err := cliInstance.App.SettingsService.GetSettings(ctx); err == nil {
		currency = settings.Currency
	}

	fmt.Println(styles.TitleStyle.Render("Invoices"))
	for _, inv := range invoices {
		fmt.Printf("  #%-4d %-18s %s  client #%d  due %s  %s %s\n",
			inv.ID, inv.Number, styles.StatusBadge(inv.Status), inv.ClientID,
			inv.DueDate, inv.Total.StringFixed(2), currency)
	}
	return nil
}

// fetchInvoices reads through the most selective index available and
// applies the remaining filters in memory
func fetchInvoices(ctx context.Context, c *cli.CLI, filter listFilter) ([]*models.Invoice, error) {
	var (
		invoices []*models.Invoice
		err      error
	)
	svc := c.App.InvoiceService
	switch {
	case filter.number != "":
		invoices, err = svc.FindInvoicesByNumber(ctx, filter.number)
	case filter.clientID != 0:
		invoices, err = svc.ListInvoicesByClient(ctx, filter.clientID)
	case filter.status != "":
		invoices, err = svc.ListInvoicesByStatus(ctx, filter.status)
	default:
		invoices, err = svc.ListInvoices(ctx)
	}
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if filter.matches(inv) {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

package invoice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/export"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ExportCmd returns the invoice export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the invoice register as a spreadsheet",
		Long: `Write every invoice, one row each, to an XLSX workbook together with a
summary sheet of totals per status. The same filters as "invoice list" apply.

Examples:
  invoicer invoice export --output=register.xlsx
  invoicer invoice export --output=unpaid.xlsx --status=sent
`,
		RunE: runExport,
	}

	// Required flags
	cmd.Flags().StringP("output", "o", "", "Path of the .xlsx file to write (required)")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().Int("client", 0, "Only invoices of this client ID")
	cmd.Flags().String("status", "", "Only invoices with this status")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	output, _ := cmd.Flags().GetString("output")
	clientID, _ := cmd.Flags().GetInt("client")
	statusStr, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	filter := listFilter{clientID: clientID}
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
	clients, err := cliInstance.App.ClientService.ListClients(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	var buf bytes.Buffer
	if err := export.WriteRegister(&buf, invoices, clients); err != nil {
		return formatter.Fail(err)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return formatter.Fail(fmt.Errorf("failed to write %s: %w", output, err))
	}

	slog.Info("invoice register exported", "path", output, "invoices", len(invoices))

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"path":     output,
			"invoices": len(invoices),
		})
	}

	fmt.Printf("✓ Exported %d invoices to %s\n", len(invoices), output)
	return nil
}

package backup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
)

// ExportCmd returns the backup export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of clients, invoices and settings",
		Long: `Write every client, invoice and the settings record as one JSON document.
Without --output the document is written to stdout.

Examples:
  invoicer backup export --output=backup.json
  invoicer backup export > backup.json
`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "File to write (default stdout)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Report the result in JSON format (with --output)")
	cmd.Flags().Bool("quiet", false, "No output besides the document")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	output, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

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

	document, err := cliInstance.App.BackupService.Backup(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if output == "" {
		if _, err := os.Stdout.Write(document); err != nil {
			return formatter.Fail(fmt.Errorf("failed to write backup: %w", err))
		}
		return nil
	}

	if err := os.WriteFile(output, document, 0o600); err != nil {
		return formatter.Fail(fmt.Errorf("failed to write %s: %w", output, err))
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"path":    output,
			"bytes":   len(document),
		})
	}

	fmt.Printf("✓ Backup written to %s\n", output)
	return nil
}

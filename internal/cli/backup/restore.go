package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
)

// RestoreCmd returns the backup restore subcommand
func RestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace stored data with the contents of a backup",
		Long: `Replace the stored data with a backup document ("-" reads stdin).

Every collection present in the document (clients, invoices, settings)
replaces the stored one; collections missing from the document are left
alone. The whole document is checked before anything is written, so an
invalid backup changes nothing.

Examples:
  invoicer backup restore backup.json
  cat backup.json | invoicer backup restore - --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runRestore,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	data, err := readDocument(cmd, args[0])
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

	summary, err := cliInstance.App.BackupService.Restore(ctx, data)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"restored": summary,
		})
	}

	if len(summary.Collections) == 0 {
		fmt.Println("Backup contained no collections; nothing changed")
		return nil
	}
	fmt.Printf("✓ Restored %s\n", strings.Join(summary.Collections, ", "))
	fmt.Printf("  Clients: %d  Invoices: %d\n", summary.Clients, summary.Invoices)
	return nil
}

func readDocument(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

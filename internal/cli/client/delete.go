package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
)

// DeleteCmd returns the client delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a client",
		Long: `Delete a client by ID (requires confirmation unless --force or --quiet).

Invoices that reference the client are kept. Deleting an ID that does not
exist succeeds without changing anything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Client ID (can also be provided as positional argument)")
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

	clientID, err := cli.RecordID(cmd, args, "client")
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
		prompt := fmt.Sprintf("Delete client #%d?", clientID)
		if client, err := cliInstance.App.ClientService.GetClient(ctx, clientID); err == nil {
			prompt = fmt.Sprintf("Delete client #%d: '%s'?", clientID, client.DisplayName())
		}
		if !cli.Confirm(cmd, prompt) {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ClientService.DeleteClient(ctx, clientID); err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"client_id": clientID,
		})
	}

	fmt.Printf("✓ Client %d deleted successfully\n", clientID)
	return nil
}

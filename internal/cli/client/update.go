package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
)

// UpdateCmd returns the client update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a client",
		Long: `Update fields of an existing client. Only the flags you pass change;
pass an empty value (--email="") to clear a field.

Examples:
  invoicer client update 3 --email="billing@acme.test"
  invoicer client update --id=3 --company="Acme Ltd" --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().Int("id", 0, "Client ID (can also be provided as positional argument)")
	cmd.Flags().String("name", "", "Contact name")
	addContactFlags(cmd)

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	clientID, err := cli.RecordID(cmd, args, "client")
	if err != nil {
		return formatter.Fail(err)
	}

	changes := map[string]*string{}
	for _, name := range []string{"name", "company", "email", "phone", "address"} {
		if value := cli.ChangedString(cmd, name); value != nil {
			changes[name] = value
		}
	}
	if len(changes) == 0 {
		return formatter.Usage("at least one of --name, --company, --email, --phone, --address must be given")
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

	// Updates replace the whole record, so start from the stored one
	client, err := cliInstance.App.ClientService.GetClient(ctx, clientID)
	if err != nil {
		return formatter.Fail(err)
	}

	for name, value := range changes {
		switch name {
		case "name":
			client.Name = *value
		case "company":
			client.Company = *value
		case "email":
			client.Email = *value
		case "phone":
			client.Phone = *value
		case "address":
			client.Address = *value
		}
	}

	updated, err := cliInstance.App.ClientService.UpdateClient(ctx, client)
	if err != nil {
		return formatter.Fail(err)
	}

	if quietMode {
		fmt.Printf("%d\n", updated.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"client":  updated,
		})
	}

	fmt.Printf("✓ Client %d updated successfully\n", updated.ID)
	return nil
}

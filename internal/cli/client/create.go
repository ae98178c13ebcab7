package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// CreateCmd returns the client create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new client",
		Long: `Create a new client.

Examples:
  # Simple client (human-readable output)
  invoicer client create --name="Jane Doe"

  # JSON output for agents
  invoicer client create --name="Jane Doe" --company="Acme" --json

  # Quiet mode for bash capture
  CLIENT_ID=$(invoicer client create --name="Jane Doe" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Contact name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	addContactFlags(cmd)

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func addContactFlags(cmd *cobra.Command) {
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("address", "", "Postal address")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	company, _ := cmd.Flags().GetString("company")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	address, _ := cmd.Flags().GetString("address")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if strings.TrimSpace(name) == "" {
		return formatter.Fail(models.NewValidationError("name", "client name cannot be empty"))
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

	client, err := cliInstance.App.ClientService.AddClient(ctx, &models.Client{
		Name:    strings.TrimSpace(name),
		Company: company,
		Email:   email,
		Phone:   phone,
		Address: address,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", client.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"client":  client,
		})
	}

	fmt.Printf("✓ Client '%s' created successfully (ID: %d)\n", client.DisplayName(), client.ID)
	return nil
}

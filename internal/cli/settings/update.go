package settings

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	settingsservice "github.com/thenoetrevino/invoicer/internal/services/settings"
)

// UpdateCmd returns the settings update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update company details",
		Long: `Update company details. Only the flags you pass change; the rest keep
their stored values.

Examples:
  invoicer settings update --company-name="Studio GmbH" --currency=eur
  invoicer settings update --website="" --json
`,
		RunE: runUpdate,
	}

	cmd.Flags().String("company-name", "", "Company name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("website", "", "Website")
	cmd.Flags().String("currency", "", "Currency code, e.g. EUR")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	patch := settingsservice.Patch{
		CompanyName: cli.ChangedString(cmd, "company-name"),
		Email:       cli.ChangedString(cmd, "email"),
		Address:     cli.ChangedString(cmd, "address"),
		Phone:       cli.ChangedString(cmd, "phone"),
		Website:     cli.ChangedString(cmd, "website"),
		Currency:    cli.ChangedString(cmd, "currency"),
	}
	if patch.IsEmpty() {
		return formatter.Usage("nothing to update: pass at least one of --company-name, --email, --address, --phone, --website, --currency")
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

	settings, err := cliInstance.App.SettingsService.UpdateSettings(ctx, patch)
	if err != nil {
		return formatter.Fail(err)
	}

	return printSettings(settings, jsonOutput)
}

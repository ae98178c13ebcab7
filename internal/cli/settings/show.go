package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ShowCmd returns the settings show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE:  runShow,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

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

	settings, err := cliInstance.App.SettingsService.GetSettings(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	return printSettings(settings, jsonOutput)
}

// printSettings writes settings as JSON or as a styled card
func printSettings(settings *models.Settings, jsonOutput bool) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"settings": settings,
		})
	}

	var content strings.Builder
	name := settings.CompanyName
	if name == "" {
		name = "(no company name)"
	}
	content.WriteString(styles.TitleStyle.Render(name) + "\n")
	for _, field := range []struct{ label, value string }{
		{"Email", settings.Email},
		{"Address", settings.Address},
		{"Phone", settings.Phone},
		{"Website", settings.Website},
		{"Currency", settings.Currency},
	} {
		if field.value == "" {
			continue
		}
		content.WriteString("\n" + styles.Field(field.label, field.value))
	}

	content.WriteString("\n" + styles.SectionStyle.Render("Bank accounts"))
	if len(settings.BankAccounts) == 0 {
		content.WriteString("\n" + styles.SubtitleStyle.Render("none"))
	}
	for i, acct := range settings.BankAccounts {
		content.WriteString(fmt.Sprintf("\n%d. %s  %s  %s", i+1, acct.BankName, acct.AccountNumber,
			styles.SubtitleStyle.Render(acct.AccountHolder)))
	}

	fmt.Println(styles.RenderCard(content.String()))
	return nil
}

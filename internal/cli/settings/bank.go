package settings

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// BankAddCmd returns the settings bank add subcommand
func BankAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bank account",
		Long: `Append a bank account to the list printed on invoices.

Examples:
  invoicer settings bank add --bank-name="First Bank" \
    --account-number="DE89 3704 0044 0532 0130 00" \
    --account-holder="Studio GmbH"
`,
		RunE: runBankAdd,
	}

	// Required flags
	cmd.Flags().String("bank-name", "", "Bank name (required)")
	if err := cmd.MarkFlagRequired("bank-name"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	cmd.Flags().String("account-number", "", "Account number or IBAN")
	cmd.Flags().String("account-holder", "", "Account holder")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runBankAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	bankName, _ := cmd.Flags().GetString("bank-name")
	accountNumber, _ := cmd.Flags().GetString("account-number")
	accountHolder, _ := cmd.Flags().GetString("account-holder")
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

	settings, err := cliInstance.App.SettingsService.AddBankAccount(ctx, models.BankAccount{
		BankName:      bankName,
		AccountNumber: accountNumber,
		AccountHolder: accountHolder,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return printSettings(settings, jsonOutput)
}

// BankRemoveCmd returns the settings bank remove subcommand
func BankRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove a bank account",
		Long:  `Remove the bank account at the given position, as numbered by "settings show" (starting at 1).`,
		Args:  cobra.ExactArgs(1),
		RunE:  runBankRemove,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runBankRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	formatter := &cli.OutputFormatter{JSON: jsonOutput}

	position, err := strconv.Atoi(args[0])
	if err != nil || position < 1 {
		return formatter.Fail(models.NewValidationError("position",
			fmt.Sprintf("'%s' is not a position (use the number shown by settings show)", args[0])))
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

	settings, err := cliInstance.App.SettingsService.RemoveBankAccount(ctx, position-1)
	if err != nil {
		return formatter.Fail(err)
	}

	return printSettings(settings, jsonOutput)
}

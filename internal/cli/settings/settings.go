// Package settings holds all cli commands related to the company settings
//
// e.g., invoicer settings ...
package settings

import (
	"github.com/spf13/cobra"
)

// SettingsCmd returns the settings parent command
func SettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage company and bank details printed on invoices",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(BankCmd())

	return cmd
}

// BankCmd returns the settings bank parent command
func BankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Manage bank accounts",
	}

	cmd.AddCommand(BankAddCmd())
	cmd.AddCommand(BankRemoveCmd())

	return cmd
}

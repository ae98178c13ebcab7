// Package backup holds the cli commands that export and restore the whole
// data store
//
// e.g., invoicer backup ...
package backup

import (
	"github.com/spf13/cobra"
)

// BackupCmd returns the backup parent command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore all data as one JSON document",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(RestoreCmd())

	return cmd
}

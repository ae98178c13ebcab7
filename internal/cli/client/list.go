package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ListCmd returns the client list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	clients, err := cliInstance.App.ClientService.ListClients(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// Output based on mode
	if quietMode {
		for _, c := range clients {
			fmt.Printf("%d\n", c.ID)
		}
		return nil
	}

	if jsonOutput {
		if clients == nil {
			clients = []*models.Client{}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"clients": clients,
		})
	}

	// Human-readable output
	if len(clients) == 0 {
		fmt.Println("No clients found")
		return nil
	}

	fmt.Println(styles.TitleStyle.Render("Clients"))
	for _, c := range clients {
		line := fmt.Sprintf("  #%d  %s", c.ID, c.Name)
		if c.Company != "" {
			line += styles.SubtitleStyle.Render(" (" + c.Company + ")")
		}
		if c.Email != "" {
			line += "  " + c.Email
		}
		fmt.Println(line)
	}
	return nil
}

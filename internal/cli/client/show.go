package client

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/cli"
	"github.com/thenoetrevino/invoicer/internal/cli/styles"
)

// ShowCmd returns the client show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show client details",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Client ID (can also be provided as positional argument)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	client, err := cliInstance.App.ClientService.GetClient(ctx, clientID)
	if err != nil {
		return formatter.Fail(err)
	}

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

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render(client.Name))
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("  #%d", client.ID)))
	content.WriteString("\n")
	for _, field := range []struct{ label, value string }{
		{"Company", client.Company},
		{"Email", client.Email},
		{"Phone", client.Phone},
		{"Address", client.Address},
	} {
		if field.value == "" {
			continue
		}
		content.WriteString("\n" + styles.Field(field.label, field.value))
	}

	fmt.Println(styles.RenderCard(content.String()))
	return nil
}

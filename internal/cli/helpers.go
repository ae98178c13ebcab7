package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/invoicer/internal/models"
)

// ParseID parses a positional record id
func ParseID(entity, arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("id", fmt.Sprintf("invalid %s ID '%s'", entity, arg))
	}
	return id, nil
}

// ParseAmount parses a money value such as "1250" or "19.99"
func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, models.NewValidationError(field, fmt.Sprintf("'%s' is not a number", value))
	}
	return amount, nil
}

// ParseItem parses a line item written as "description:quantity:rate".
// The description may itself contain colons; quantity and rate are taken
// from the right.
func ParseItem(raw string) (models.LineItem, error) {
	rateAt := strings.LastIndex(raw, ":")
	if rateAt < 0 {
		return models.LineItem{}, itemError(raw)
	}
	qtyAt := strings.LastIndex(raw[:rateAt], ":")
	if qtyAt < 0 {
		return models.LineItem{}, itemError(raw)
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(raw[qtyAt+1 : rateAt]))
	if err != nil {
		return models.LineItem{}, models.NewValidationError("item",
			fmt.Sprintf("quantity in '%s' is not a whole number", raw))
	}
	rate, err := ParseAmount("item", raw[rateAt+1:])
	if err != nil {
		return models.LineItem{}, err
	}

	return models.LineItem{
		Description: strings.TrimSpace(raw[:qtyAt]),
		Quantity:    quantity,
		Rate:        rate,
	}, nil
}

// ParseItems parses every --item value in order
func ParseItems(raws []string) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0, len(raws))
	for _, raw := range raws {
		item, err := ParseItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemError(raw string) error {
	return models.NewValidationError("item",
		fmt.Sprintf("'%s' must look like description:quantity:rate", raw))
}

// ChangedString returns the flag value when the user set it, nil otherwise.
// It lets update commands tell an empty --email apart from no --email at all.
func ChangedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

// RecordID reads a record id from the first positional argument or, when
// there is none, from the --id flag
func RecordID(cmd *cobra.Command, args []string, entity string) (int, error) {
	if len(args) > 0 {
		return ParseID(entity, args[0])
	}
	id, _ := cmd.Flags().GetInt("id")
	if id <= 0 {
		return 0, models.NewValidationError("id",
			fmt.Sprintf("%s ID must be a positive integer (pass it as an argument or with --id)", entity))
	}
	return id, nil
}

// Confirm asks a yes/no question on the command's input and reports
// whether the answer was yes
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

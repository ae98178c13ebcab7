package invoice

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/invoicer/internal/models"
)

// Sheet renders an invoice as a markdown document: sender, recipient,
// line items, totals and payment details. client and settings may be nil.
func Sheet(inv *models.Invoice, client *models.Client, settings *models.Settings) string {
	var b strings.Builder
	currency := ""
	if settings != nil && settings.Currency != "" {
		currency = " " + settings.Currency
	}

	fmt.Fprintf(&b, "# Invoice %s\n\n", inv.Number)
	fmt.Fprintf(&b, "**Status:** %s  \n", strings.ToUpper(string(inv.Status)))
	fmt.Fprintf(&b, "**Issued:** %s  \n", inv.IssueDate)
	fmt.Fprintf(&b, "**Due:** %s\n\n", inv.DueDate)

	if settings != nil && settings.CompanyName != "" {
		b.WriteString("## From\n\n")
		writeLines(&b, settings.CompanyName, settings.Address, settings.Email, settings.Phone, settings.Website)
	}

	b.WriteString("## Bill to\n\n")
	if client == nil {
		fmt.Fprintf(&b, "Client #%d (deleted)\n\n", inv.ClientID)
	} else {
		name := client.Name
		if client.Company != "" && client.Company != client.Name {
			name = client.Company + " (" + client.Name + ")"
		}
		writeLines(&b, name, client.Address, client.Email, client.Phone)
	}

	b.WriteString("## Items\n\n")
	b.WriteString("| Description | Qty | Rate | Amount |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, item := range inv.Items {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			escapeCell(item.Description), item.Quantity, item.Rate.StringFixed(2), item.Amount.StringFixed(2))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: %s%s  \n", inv.Subtotal.StringFixed(2), currency)
	if !inv.Discount.IsZero() {
		// Shown as the change to the subtotal; a negative discount adds to it
		adjustment := inv.Discount.Neg()
		sign := ""
		if adjustment.IsPositive() {
			sign = "+"
		}
		fmt.Fprintf(&b, "Discount: %s%s%s  \n", sign, adjustment.StringFixed(2), currency)
	}
	fmt.Fprintf(&b, "**Total: %s%s**\n\n", inv.Total.StringFixed(2), currency)

	if settings != nil && len(settings.BankAccounts) > 0 {
		b.WriteString("## Payment\n\n")
		for _, acct := range settings.BankAccounts {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", acct.BankName, acct.AccountNumber, acct.AccountHolder)
		}
		b.WriteString("\n")
	}

	if inv.Notes != "" {
		b.WriteString("## Notes\n\n")
		b.WriteString(inv.Notes + "\n")
	}

	return b.String()
}

// writeLines writes the non-empty values as one markdown paragraph
func writeLines(b *strings.Builder, values ...string) {
	var lines []string
	for _, v := range values {
		if v != "" {
			lines = append(lines, v)
		}
	}
	b.WriteString(strings.Join(lines, "  \n"))
	b.WriteString("\n\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

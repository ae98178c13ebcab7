// Package export writes the invoice register as an XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/invoicer/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	// RegisterSheet holds one row per invoice
	RegisterSheet = "Invoices"
	// SummarySheet holds totals per status
	SummarySheet = "Summary"
)

// RegisterHeadings are the column titles of RegisterSheet
var RegisterHeadings = []string{
	"Number", "Client", "Issue Date", "Due Date", "Status", "Subtotal", "Discount", "Total",
}

// moneyFormat is excelize's built-in "#,##0.00"
const moneyFormat = 4

// WriteRegister writes invoices to w as an XLSX workbook. Clients are
// looked up by ID for the client column; a missing client shows as "#<id>".
func WriteRegister(w io.Writer, invoices []*models.Invoice, clients []*models.Client) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", RegisterSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	names := make(map[int]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.DisplayName()
	}

	header := make([]any, len(RegisterHeadings))
	for i, h := range RegisterHeadings {
		header[i] = h
	}
	if err := f.SetSheetRow(RegisterSheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(RegisterSheet, "A1", "H1", bold); err != nil {
		return err
	}

	byStatus := make(map[models.InvoiceStatus]decimal.Decimal)
	counts := make(map[models.InvoiceStatus]int)

	for i, inv := range invoices {
		row := i + 2
		client, ok := names[inv.ClientID]
		if !ok {
			client = fmt.Sprintf("#%d", inv.ClientID)
		}

		values := []any{
			inv.Number,
			client,
			inv.IssueDate,
			inv.DueDate,
			string(inv.Status),
			inv.Subtotal.InexactFloat64(),
			inv.Discount.InexactFloat64(),
			inv.Total.InexactFloat64(),
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(RegisterSheet, start, &values); err != nil {
			return err
		}

		from, _ := excelize.CoordinatesToCellName(6, row)
		to, _ := excelize.CoordinatesToCellName(8, row)
		if err := f.SetCellStyle(RegisterSheet, from, to, money); err != nil {
			return err
		}

		byStatus[inv.Status] = byStatus[inv.Status].Add(inv.Total)
		counts[inv.Status]++
	}

	if err := f.SetColWidth(RegisterSheet, "A", "B", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(RegisterSheet, "C", "H", 14); err != nil {
		return err
	}

	if err := writeSummary(f, byStatus, counts, bold, money); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, totals map[models.InvoiceStatus]decimal.Decimal, counts map[models.InvoiceStatus]int, bold, money int) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	header := []any{"Status", "Invoices", "Total"}
	if err := f.SetSheetRow(SummarySheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "C1", bold); err != nil {
		return err
	}

	for i, status := range models.InvoiceStatuses {
		row := i + 2
		values := []any{string(status), counts[status], totals[status].InexactFloat64()}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(SummarySheet, start, &values); err != nil {
			return err
		}
		cell, _ := excelize.CoordinatesToCellName(3, row)
		if err := f.SetCellStyle(SummarySheet, cell, cell, money); err != nil {
			return err
		}
	}
	return nil
}

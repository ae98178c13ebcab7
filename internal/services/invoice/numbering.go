package invoice

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/invoicer/internal/database"
)

// periodLayout groups generated numbers by calendar month
const periodLayout = "200601"

// NumberFormat describes generated invoice numbers: <prefix>-<YYYYMM>-<seq>
type NumberFormat struct {
	Prefix string
	Width  int
}

// DefaultNumberFormat produces numbers like INV-202403-0001
var DefaultNumberFormat = NumberFormat{Prefix: "INV", Width: 4}

// Format renders the number for seq within the month of issued
func (f NumberFormat) Format(issued time.Time, seq int) string {
	period := issued.Format(periodLayout)
	if f.Prefix == "" {
		return fmt.Sprintf("%s-%0*d", period, f.Width, seq)
	}
	return fmt.Sprintf("%s-%s-%0*d", f.Prefix, period, f.Width, seq)
}

// numbering binds the format to the counter for the month of issued
func (f NumberFormat) numbering(issued time.Time) *database.Numbering {
	return &database.Numbering{
		Period: issued.Format(periodLayout),
		Format: func(seq int) string { return f.Format(issued, seq) },
	}
}

// Package receipt renders ticket receipts as PDF.
package receipt

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"mynbala-backend/internal/domain/order"

	"github.com/phpdave11/gofpdf"
)

const timeLayout = "02.01.2006 15:04"

type Renderer struct {
	location *time.Location
}

// NewRenderer prints times in loc; nil means UTC.
func NewRenderer(loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{location: loc}
}

// Render returns the PDF bytes and a download file name.
func (r *Renderer) Render(o *order.Order) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Mynbala ticket "+o.Reference, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MYNBALA TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Reference   : %s", o.Reference),
		fmt.Sprintf("Branch      : %s", latin(o.BranchName, o.BranchID)),
		fmt.Sprintf("Tariff      : %s", latin(o.TariffName, o.TariffID)),
		fmt.Sprintf("Quantity    : %d", o.Quantity),
		fmt.Sprintf("Valid from  : %s", o.ValidFrom.In(r.location).Format(timeLayout)),
		fmt.Sprintf("Valid until : %s", o.ValidUntil.In(r.location).Format(timeLayout)),
		fmt.Sprintf("Status      : %s", o.Status),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Payment")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	amounts := []string{
		fmt.Sprintf("Subtotal    : %s KZT", FormatAmount(o.OriginalTotal)),
		fmt.Sprintf("Discount    : %s KZT", FormatAmount(o.DiscountAmount)),
		fmt.Sprintf("Total       : %s KZT", FormatAmount(o.FinalTotal)),
		fmt.Sprintf("Points      : %d", o.PointsEarned),
	}
	if o.PromoCode != "" {
		amounts = append(amounts, fmt.Sprintf("Promo code  : %s", o.PromoCode))
	}
	for _, s := range amounts {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Show this receipt or the reference at the entrance. The ticket is valid for one visit within the period above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), "ticket-" + o.Reference + ".pdf", nil
}

// FormatAmount groups thousands with spaces: 12500 -> "12 500".
func FormatAmount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
)

// WritePDF renders submissions as a landscape table, one block per
// submission with its field values.
func WritePDF(w io.Writer, title string, fields []form.Field, subs []submission.DTO) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s, %d submissions", time.Now().Format("2006-01-02 15:04"), len(subs)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, sub := range subs {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, sub.UniqueID, "B", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		writeRow(pdf, "Status", sub.Status)
		writeRow(pdf, "Payment", fmt.Sprintf("%s / %s (%.2f %s)", sub.PaymentMethod, sub.PaymentStatus, sub.PaymentAmount, sub.PaymentCurrency))
		writeRow(pdf, "Submitted", sub.CreatedAt.Format(time.RFC3339))
		for _, f := range fields {
			writeRow(pdf, f.Label, cellValue(sub.Data[f.Name]))
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}

func writeRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 6, label, "", 0, "L", false, 0, "")
	pdf.MultiCell(0, 6, value, "", "L", false)
}

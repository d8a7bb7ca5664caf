package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
)

// baseColumns precede the form's own fields in every export.
var baseColumns = []string{
	"Unique ID", "Status", "Payment Method", "Payment Status",
	"Payment Amount", "Submitted At",
}

// WriteCSV renders submissions as CSV with one column per form field.
func WriteCSV(w io.Writer, fields []form.Field, subs []submission.DTO) error {
	cw := csv.NewWriter(w)

	header := append([]string{}, baseColumns...)
	for _, f := range fields {
		header = append(header, f.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, sub := range subs {
		row := []string{
			sub.UniqueID,
			sub.Status,
			sub.PaymentMethod,
			sub.PaymentStatus,
			fmt.Sprintf("%.2f", sub.PaymentAmount),
			sub.CreatedAt.Format(time.RFC3339),
		}
		for _, f := range fields {
			row = append(row, cellValue(sub.Data[f.Name]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cellValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if list, ok := v.([]any); ok {
		out := ""
		for i, item := range list {
			if i > 0 {
				out += ", "
			}
			out += cellValue(item)
		}
		return out
	}
	return fmt.Sprint(v)
}

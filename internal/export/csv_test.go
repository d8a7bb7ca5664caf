package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahmid-dev/formbuilder-go/internal/domain/form"
	"github.com/tahmid-dev/formbuilder-go/internal/domain/submission"
)

func TestWriteCSV(t *testing.T) {
	fields := []form.Field{
		{Name: "name", Label: "Full Name", Type: form.FieldText},
		{Name: "topics", Label: "Topics", Type: form.FieldCheckbox},
	}
	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	subs := []submission.DTO{
		{
			UniqueID:      "CONF2026-000001",
			Status:        submission.StatusCompleted,
			PaymentMethod: submission.MethodStripe,
			PaymentStatus: submission.PayCompleted,
			PaymentAmount: 49.5,
			CreatedAt:     created,
			Data: map[string]any{
				"name":   "Ada Lovelace",
				"topics": []any{"go", "sql"},
			},
		},
		{
			UniqueID:  "CONF2026-000002",
			Status:    submission.StatusPending,
			CreatedAt: created,
			Data:      map[string]any{"name": "Grace Hopper"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, fields, subs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Unique ID", "Status", "Payment Method", "Payment Status",
		"Payment Amount", "Submitted At", "Full Name", "Topics",
	}, rows[0])

	assert.Equal(t, "CONF2026-000001", rows[1][0])
	assert.Equal(t, "49.50", rows[1][4])
	assert.Equal(t, "2026-08-01T10:30:00Z", rows[1][5])
	assert.Equal(t, "Ada Lovelace", rows[1][6])
	assert.Equal(t, "go, sql", rows[1][7])

	// Missing answers render as empty cells.
	assert.Equal(t, "", rows[2][7])
}

func TestWriteCSV_NoFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, []submission.DTO{{UniqueID: "X2026-000001"}}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 6)
}

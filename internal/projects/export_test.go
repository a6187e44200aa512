package projects

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_HeaderOnlyForEmptyExport(t *testing.T) {
	body, err := WriteCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"id", "name", "client_name", "status", "start_date", "end_date", "revenue_cents", "updated_at"}, records[0])
}

func TestWriteCSV_RowsRoundTrip(t *testing.T) {
	clientName := "Acme"
	start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, time.February, 1, 12, 30, 0, 0, time.UTC)

	rows := []ExportRow{
		{
			ID:           uuid.New(),
			Name:         "Website relaunch",
			ClientName:   &clientName,
			Status:       StatusActive,
			StartDate:    &start,
			RevenueCents: 125000,
			UpdatedAt:    &updated,
		},
		{
			ID:           uuid.New(),
			Name:         "Logo refresh",
			Status:       StatusCompleted,
			RevenueCents: 0,
		},
	}

	body, err := WriteCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[1]
	assert.Equal(t, rows[0].ID.String(), first[0])
	assert.Equal(t, "Website relaunch", first[1])
	assert.Equal(t, "Acme", first[2])
	assert.Equal(t, "active", first[3])
	assert.Equal(t, "2024-01-05", first[4])
	assert.Equal(t, "", first[5])
	assert.Equal(t, "125000", first[6])
	assert.Equal(t, "2024-02-01T12:30:00Z", first[7])

	// Missing optionals stay empty, never "null".
	second := records[2]
	assert.Equal(t, "Logo refresh", second[1])
	assert.Equal(t, "", second[2])
	assert.Equal(t, "", second[4])
	assert.Equal(t, "", second[5])
	assert.Equal(t, "", second[7])
}

func TestWriteCSV_PreservesRowOrder(t *testing.T) {
	rows := []ExportRow{
		{ID: uuid.New(), Name: "newest", Status: StatusActive},
		{ID: uuid.New(), Name: "older", Status: StatusPaused},
		{ID: uuid.New(), Name: "oldest", Status: StatusCancelled},
	}

	body, err := WriteCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "newest", records[1][1])
	assert.Equal(t, "older", records[2][1])
	assert.Equal(t, "oldest", records[3][1])
}

package projects

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agencydash/agency-backend/internal/auth"
)

// csvHeader is the fixed column order of the export.
var csvHeader = []string{"id", "name", "client_name", "status", "start_date", "end_date", "revenue_cents", "updated_at"}

func (h *Handler) exportCSV(c *gin.Context) {
	rows, err := h.store.ExportRows(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export projects"})
		return
	}

	body, err := WriteCSV(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export projects"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="projects.csv"`)
	c.Data(http.StatusOK, "text/csv", body)
}

// WriteCSV renders export rows with the fixed 8-column header. Missing
// optional fields become empty strings, dates render as calendar dates and
// updated_at as an RFC 3339 timestamp.
func WriteCSV(rows []ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, r := range rows {
		record := []string{
			r.ID.String(),
			r.Name,
			strOrEmpty(r.ClientName),
			string(r.Status),
			dateOrEmpty(r.StartDate),
			dateOrEmpty(r.DueDate),
			strconv.FormatInt(r.RevenueCents, 10),
			timestampOrEmpty(r.UpdatedAt),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func timestampOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

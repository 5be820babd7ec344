package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreedamodar/models"
)

func seedBookings(t *testing.T) *stubConsignmentRepo {
	t.Helper()
	repo := &stubConsignmentRepo{}
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "1042", Date: "2026-03-05",
		FromLocation: "Bangalore", ToLocation: "Chennai",
		CustomerName: "Ravi Traders", ConsigneeName: "Murthy & Co",
		GoodsDescription: "Machine parts",
		FreightAmount:    5000, HandlingCharges: 200, GCCharges: 100,
		AdvancePaid:   1000,
		PaymentStatus: models.PaymentPending,
		Commission:    250,
	}))
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "1043", Date: "2026-03-06",
		FromLocation: "Bangalore", ToLocation: "Hubli",
		CustomerName: "Shetty & Sons", ConsigneeName: "KPL Agencies",
		GoodsDescription: "Rice bags",
		FreightAmount:    2000, AdvancePaid: 2000,
		PaymentStatus: models.PaymentPaid,
	}))
	return repo
}

func TestExportCSV(t *testing.T) {
	h := &ReportHandler{Repo: seedBookings(t)}

	rec := httptest.NewRecorder()
	h.ExportCSV(rec, httptest.NewRequest(http.MethodGet, "/consignments/export", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Bookings_")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")

	lines := strings.Split(strings.TrimRight(rec.Body.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "LR No,Date,From,To,Customer,Consignee,Goods,Freight,Advance,Balance,Status", lines[0])
	// Freight is the raw rate; the balance still reflects the full charge
	// total (5300 - 1000), so the two columns deliberately disagree when
	// handling or G.C. charges are nonzero.
	assert.Equal(t, "1042,2026-03-05,Bangalore,Chennai,Ravi Traders,Murthy & Co,Machine parts,5000,1000,4300,Pending", lines[1])
	assert.Equal(t, "1043,2026-03-06,Bangalore,Hubli,Shetty & Sons,KPL Agencies,Rice bags,2000,2000,0,Paid", lines[2])
}

func TestGetSummary(t *testing.T) {
	h := &ReportHandler{Repo: seedBookings(t)}

	rec := httptest.NewRecorder()
	h.GetSummary(rec, httptest.NewRequest(http.MethodGet, "/reports/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool    `json:"success"`
		Data    Summary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)

	s := resp.Data
	assert.Equal(t, 2, s.TotalBookings)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 0, s.PartialCount)
	assert.Equal(t, 7300.0, s.TotalFreight)
	assert.Equal(t, 3000.0, s.TotalCollected)
	assert.Equal(t, 4300.0, s.TotalOutstanding)
	assert.Equal(t, 250.0, s.DriverCommissions)
	assert.Equal(t, "₹7,300", s.TotalFreightDisplay)
	assert.Equal(t, "₹4,300", s.TotalOutstandingDisplay)
}

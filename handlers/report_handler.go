package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"sreedamodar/models"
	"sreedamodar/repository"
	"sreedamodar/utils"
)

type ReportHandler struct {
	Repo repository.ConsignmentRepository
}

var exportHeader = []string{
	"LR No", "Date", "From", "To", "Customer", "Consignee",
	"Goods", "Freight", "Advance", "Balance", "Status",
}

// ExportCSV streams every booking as Bookings_<date>.csv. Fields are joined
// with plain commas and no quoting, matching the files staff already have on
// disk; free-text fields are expected not to contain commas.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetConsignments(map[string]interface{}{}, false)
	if err != nil {
		http.Error(w, "failed to fetch consignments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(exportHeader, ","))
	sb.WriteString("\n")
	for _, c := range list {
		row := []string{
			c.ConsignmentNo,
			c.Date,
			c.FromLocation,
			c.ToLocation,
			c.CustomerName,
			c.ConsigneeName,
			c.GoodsDescription,
			// Raw freight rate, not the charge total; the files staff keep
			// were exported that way.
			csvAmount(c.FreightAmount),
			csvAmount(c.AdvancePaid),
			csvAmount(c.Balance()),
			c.PaymentStatus,
		}
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}

	filename := fmt.Sprintf("Bookings_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	_, _ = w.Write([]byte(sb.String()))
}

func csvAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Summary aggregates the books through the same derivation methods the LR
// renderer uses, so totals here always agree with what is printed.
type Summary struct {
	TotalBookings int `json:"total_bookings"`
	PendingCount  int `json:"pending_count"`
	PartialCount  int `json:"partial_count"`
	PaidCount     int `json:"paid_count"`

	TotalFreight      float64 `json:"total_freight"`
	TotalCollected    float64 `json:"total_collected"`
	TotalOutstanding  float64 `json:"total_outstanding"`
	DriverCommissions float64 `json:"driver_commissions"`

	TotalFreightDisplay     string `json:"total_freight_display"`
	TotalCollectedDisplay   string `json:"total_collected_display"`
	TotalOutstandingDisplay string `json:"total_outstanding_display"`
}

// GetSummary handler
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetConsignments(map[string]interface{}{}, false)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	var s Summary
	for _, c := range list {
		s.TotalBookings++
		switch c.PaymentStatus {
		case models.PaymentPending:
			s.PendingCount++
		case models.PaymentPartial:
			s.PartialCount++
		case models.PaymentPaid:
			s.PaidCount++
		}
		s.TotalFreight += c.FreightTotal()
		s.TotalCollected += c.AdvancePaid
		s.TotalOutstanding += c.Balance()
		s.DriverCommissions += c.Commission
	}
	s.TotalFreightDisplay = utils.FormatINR(s.TotalFreight)
	s.TotalCollectedDisplay = utils.FormatINR(s.TotalCollected)
	s.TotalOutstandingDisplay = utils.FormatINR(s.TotalOutstanding)

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: s})
}

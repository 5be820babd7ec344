package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sreedamodar/models"
	"sreedamodar/repository"
)

type ConsignmentHandler struct {
	Repo repository.ConsignmentRepository
}

// CreateConsignment handler. The stored balance is recomputed server-side;
// whatever the client sent in balance_amount is ignored.
func (h *ConsignmentHandler) CreateConsignment(w http.ResponseWriter, r *http.Request) {
	var c models.Consignment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if c.ConsignmentNo == "" || c.Date == "" || c.CustomerName == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "LR number, date, and customer name are required",
		})
		return
	}
	if c.PaymentStatus == "" {
		c.PaymentStatus = models.PaymentPending
	}
	if c.DriverPaymentStatus == "" {
		c.DriverPaymentStatus = models.PaymentPending
	}

	if err := h.Repo.CreateConsignment(&c); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create consignment: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Consignment created",
		Data:    c,
	})
}

// GetAllConsignments handler. Query params become filters; id is converted so
// it matches the integer column, everything else stays text (LR numbers look
// numeric but are not).
func (h *ConsignmentHandler) GetAllConsignments(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			if key == "id" {
				if intVal, err := strconv.Atoi(values[0]); err == nil {
					filters[key] = intVal
					continue
				}
			}
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetConsignments(filters, false)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if list == nil {
		list = []*models.Consignment{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// GetConsignmentByID handler
func (h *ConsignmentHandler) GetConsignmentByID(w http.ResponseWriter, r *http.Request, id string) {
	cid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid consignment id",
		})
		return
	}

	list, err := h.Repo.GetConsignments(map[string]interface{}{"id": cid}, true)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if len(list) == 0 {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Consignment not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list[0]})
}

// UpdateConsignment handler. Recomputes the balance; the stored PDF is not
// regenerated, staff re-download the LR when they want fresh bytes.
func (h *ConsignmentHandler) UpdateConsignment(w http.ResponseWriter, r *http.Request) {
	var c models.Consignment
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if c.ID == 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing consignment id",
		})
		return
	}

	if err := h.Repo.UpdateConsignment(&c); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to update consignment: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Consignment updated",
		Data:    c,
	})
}

// DeleteConsignment handler. The stored LR PDF on R2 is cleaned up best-effort.
func (h *ConsignmentHandler) DeleteConsignment(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing consignment id",
		})
		return
	}
	cid, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid consignment id",
		})
		return
	}

	list, err := h.Repo.GetConsignments(map[string]interface{}{"id": cid}, true)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if len(list) == 0 {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "Consignment not found",
		})
		return
	}

	if err := h.Repo.DeleteConsignment(cid); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete consignment: " + err.Error(),
		})
		return
	}

	deleteStoredLR(list[0])

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Consignment deleted",
	})
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sreedamodar/models"
	"sreedamodar/repository"
)

type DriverHandler struct {
	Repo repository.DriverRepository
}

// CreateDriver handler
func (h *DriverHandler) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var d models.Driver
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if d.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Driver name is required",
		})
		return
	}

	if err := h.Repo.CreateDriver(&d); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create driver: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Driver created", Data: d})
}

// GetAllDrivers handler
func (h *DriverHandler) GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetDrivers(filters, false)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if list == nil {
		list = []*models.Driver{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// DeleteDriver handler
func (h *DriverHandler) DeleteDriver(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if idStr == "" || err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid driver id",
		})
		return
	}

	if err := h.Repo.DeleteDriver(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete driver: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Driver deleted"})
}

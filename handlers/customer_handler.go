package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"sreedamodar/models"
	"sreedamodar/repository"
)

type CustomerHandler struct {
	Repo repository.CustomerRepository
}

// CreateCustomer handler
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if c.Name == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Customer name is required",
		})
		return
	}

	if err := h.Repo.CreateCustomer(&c); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create customer: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Customer created", Data: c})
}

// GetAllCustomers handler
func (h *CustomerHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetCustomers(filters, false)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if list == nil {
		list = []*models.Customer{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// DeleteCustomer handler
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if idStr == "" || err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid customer id",
		})
		return
	}

	if err := h.Repo.DeleteCustomer(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete customer: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Customer deleted"})
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"sreedamodar/models"
	"sreedamodar/repository"
)

type EnquiryHandler struct {
	Repo repository.EnquiryRepository
	// MarkConverted controls whether converting an enquiry flips its status to
	// Converted or leaves it Pending for repeat bookings.
	MarkConverted bool
}

// CreateEnquiry handler
func (h *EnquiryHandler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var fb models.FutureBooking
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}
	if fb.CustomerName == "" || fb.ExpectedDate == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Customer name and expected date are required",
		})
		return
	}

	if err := h.Repo.CreateEnquiry(&fb); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to create enquiry: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Message: "Enquiry created", Data: fb})
}

// GetAllEnquiries handler
func (h *EnquiryHandler) GetAllEnquiries(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetEnquiries(filters, false)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if list == nil {
		list = []*models.FutureBooking{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: list})
}

// DeleteEnquiry handler
func (h *EnquiryHandler) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if idStr == "" || err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid enquiry id",
		})
		return
	}

	if err := h.Repo.DeleteEnquiry(id); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "Failed to delete enquiry: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Enquiry deleted"})
}

// ConvertEnquiry returns a draft booking prefilled from the enquiry, the same
// fields the booking form would carry over. Nothing is persisted here except,
// optionally, the enquiry's status flip.
func (h *EnquiryHandler) ConvertEnquiry(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if idStr == "" || err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid enquiry id",
		})
		return
	}

	list, err := h.Repo.GetEnquiries(map[string]interface{}{"id": id}, true)
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
			Message: "Enquiry not found",
		})
		return
	}

	draft := list[0].Draft()

	if h.MarkConverted {
		if err := h.Repo.UpdateEnquiryStatus(id, models.EnquiryConverted); err != nil {
			// The draft is still usable; just report the stale status.
			fmt.Printf("failed to mark enquiry %d converted: %v\n", id, err)
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Enquiry converted to draft booking",
		Data:    draft,
	})
}

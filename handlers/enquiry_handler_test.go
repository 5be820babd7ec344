package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreedamodar/models"
)

func seedEnquiry(t *testing.T) *stubEnquiryRepo {
	t.Helper()
	repo := &stubEnquiryRepo{}
	require.NoError(t, repo.CreateEnquiry(&models.FutureBooking{
		ExpectedDate:     "2026-04-01",
		CustomerName:     "Ravi Traders",
		Phone:            "9880012345",
		FromLocation:     "Bangalore",
		ToLocation:       "Chennai",
		GoodsDescription: "Machine parts",
		EstimatedFreight: 5000,
	}))
	return repo
}

func TestConvertEnquiryReturnsDraft(t *testing.T) {
	repo := seedEnquiry(t)
	h := &EnquiryHandler{Repo: repo, MarkConverted: true}

	rec := httptest.NewRecorder()
	h.ConvertEnquiry(rec, httptest.NewRequest(http.MethodPost, "/enquiries/convert?id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    models.Consignment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)

	draft := resp.Data
	// The draft is unsaved and prefilled from the enquiry.
	assert.Zero(t, draft.ID)
	assert.Equal(t, models.CompanyTransports, draft.Company)
	assert.Equal(t, "2026-04-01", draft.Date)
	assert.Equal(t, "Ravi Traders", draft.CustomerName)
	assert.Equal(t, "9880012345", draft.CustomerPhone)
	assert.Equal(t, 5000.0, draft.FreightAmount)
	assert.Equal(t, models.PaymentPending, draft.PaymentStatus)

	assert.Equal(t, models.EnquiryConverted, repo.items[0].Status)
}

func TestConvertEnquiryLeavesStatusWhenDisabled(t *testing.T) {
	repo := seedEnquiry(t)
	h := &EnquiryHandler{Repo: repo, MarkConverted: false}

	rec := httptest.NewRecorder()
	h.ConvertEnquiry(rec, httptest.NewRequest(http.MethodPost, "/enquiries/convert?id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.EnquiryPending, repo.items[0].Status)
}

func TestConvertEnquiryNotFound(t *testing.T) {
	h := &EnquiryHandler{Repo: &stubEnquiryRepo{}, MarkConverted: true}

	rec := httptest.NewRecorder()
	h.ConvertEnquiry(rec, httptest.NewRequest(http.MethodPost, "/enquiries/convert?id=9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ConvertEnquiry(rec, httptest.NewRequest(http.MethodPost, "/enquiries/convert", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEnquiryDefaultsStatus(t *testing.T) {
	repo := &stubEnquiryRepo{}
	h := &EnquiryHandler{Repo: repo, MarkConverted: true}

	body := `{"expected_date":"2026-04-01","customer_name":"Ravi Traders"}`
	req := httptest.NewRequest(http.MethodPost, "/enquiries", jsonBody(body))
	rec := httptest.NewRecorder()
	h.CreateEnquiry(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.items, 1)
	assert.Equal(t, models.EnquiryPending, repo.items[0].Status)
}

func TestCreateEnquiryRequiresFields(t *testing.T) {
	h := &EnquiryHandler{Repo: &stubEnquiryRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/enquiries", jsonBody(`{"customer_name":"Ravi"}`))
	rec := httptest.NewRecorder()
	h.CreateEnquiry(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

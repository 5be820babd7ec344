package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreedamodar/models"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) ApiResponse {
	t.Helper()
	var resp ApiResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestCreateConsignmentRecomputesBalance(t *testing.T) {
	repo := &stubConsignmentRepo{}
	h := &ConsignmentHandler{Repo: repo}

	// Client lies about the balance; the server must overwrite it.
	body := `{
		"consignment_no": "1042",
		"date": "2026-03-05",
		"customer_name": "Ravi Traders",
		"freight_amount": 5000,
		"handling_charges": 200,
		"gc_charges": 100,
		"advance_paid": 1000,
		"balance_amount": 999999
	}`
	req := httptest.NewRequest(http.MethodPost, "/consignments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.CreateConsignment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.items, 1)
	assert.Equal(t, 4300.0, repo.items[0].BalanceAmount)
	assert.Equal(t, models.PaymentPending, repo.items[0].PaymentStatus)
	assert.Equal(t, models.PaymentPending, repo.items[0].DriverPaymentStatus)
}

func TestCreateConsignmentRequiresFields(t *testing.T) {
	h := &ConsignmentHandler{Repo: &stubConsignmentRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/consignments",
		strings.NewReader(`{"date":"2026-03-05","customer_name":"Ravi"}`))
	rec := httptest.NewRecorder()
	h.CreateConsignment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
}

func TestCreateConsignmentBadJSON(t *testing.T) {
	h := &ConsignmentHandler{Repo: &stubConsignmentRepo{}}

	req := httptest.NewRequest(http.MethodPost, "/consignments", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.CreateConsignment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetConsignmentByID(t *testing.T) {
	repo := &stubConsignmentRepo{}
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "7", Date: "2026-01-10", CustomerName: "A",
	}))
	h := &ConsignmentHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.GetConsignmentByID(rec, httptest.NewRequest(http.MethodGet, "/consignments/1", nil), "1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.GetConsignmentByID(rec, httptest.NewRequest(http.MethodGet, "/consignments/99", nil), "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.GetConsignmentByID(rec, httptest.NewRequest(http.MethodGet, "/consignments/x", nil), "x")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateConsignmentRequiresID(t *testing.T) {
	h := &ConsignmentHandler{Repo: &stubConsignmentRepo{}}

	req := httptest.NewRequest(http.MethodPut, "/consignments",
		strings.NewReader(`{"consignment_no":"7"}`))
	rec := httptest.NewRecorder()
	h.UpdateConsignment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateConsignmentRecomputesBalance(t *testing.T) {
	repo := &stubConsignmentRepo{}
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "7", Date: "2026-01-10", CustomerName: "A", FreightAmount: 1000,
	}))
	h := &ConsignmentHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPut, "/consignments",
		strings.NewReader(`{"id":1,"consignment_no":"7","date":"2026-01-10","customer_name":"A","freight_amount":2000,"advance_paid":500,"balance_amount":1}`))
	rec := httptest.NewRecorder()
	h.UpdateConsignment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1500.0, repo.items[0].BalanceAmount)
}

func TestDeleteConsignment(t *testing.T) {
	repo := &stubConsignmentRepo{}
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "7", Date: "2026-01-10", CustomerName: "A",
	}))
	h := &ConsignmentHandler{Repo: repo}

	rec := httptest.NewRecorder()
	h.DeleteConsignment(rec, httptest.NewRequest(http.MethodDelete, "/consignments?id=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, repo.items)

	rec = httptest.NewRecorder()
	h.DeleteConsignment(rec, httptest.NewRequest(http.MethodDelete, "/consignments?id=1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.DeleteConsignment(rec, httptest.NewRequest(http.MethodDelete, "/consignments", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllConsignmentsEmptyList(t *testing.T) {
	h := &ConsignmentHandler{Repo: &stubConsignmentRepo{}}

	rec := httptest.NewRecorder()
	h.GetAllConsignments(rec, httptest.NewRequest(http.MethodGet, "/consignments", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	// Empty result serializes as [], not null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreedamodar/models"
	"sreedamodar/repository"
)

func TestDownloadLR(t *testing.T) {
	repo := &stubConsignmentRepo{}
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "1042", Company: models.CompanyTransports,
		Date: "2026-03-05", CustomerName: "Ravi Traders",
		FreightAmount: 5000, AdvancePaid: 1000,
	}))

	dir := t.TempDir()
	h := &LRHandler{
		Repo:     repository.NewLRRepository(repo, newStubProfileRepo()),
		SavePath: dir,
	}

	rec := httptest.NewRecorder()
	h.DownloadLR(rec, httptest.NewRequest(http.MethodGet, "/consignments/lr?id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "LR_1042_SDT.pdf")
	require.True(t, rec.Body.Len() > 4)
	assert.Equal(t, "%PDF", rec.Body.String()[:4])

	// A copy is archived and the record stamped.
	saved := filepath.Join(dir, "LR_1042_SDT.pdf")
	_, err := os.Stat(saved)
	require.NoError(t, err)
	require.NotNil(t, repo.items[0].PdfPath)
	assert.Equal(t, saved, *repo.items[0].PdfPath)
	assert.NotNil(t, repo.items[0].PdfCreatedAt)
}

func TestDownloadLRNotFound(t *testing.T) {
	h := &LRHandler{
		Repo: repository.NewLRRepository(&stubConsignmentRepo{}, newStubProfileRepo()),
	}

	rec := httptest.NewRecorder()
	h.DownloadLR(rec, httptest.NewRequest(http.MethodGet, "/consignments/lr?id=5", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.DownloadLR(rec, httptest.NewRequest(http.MethodGet, "/consignments/lr", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.DownloadLR(rec, httptest.NewRequest(http.MethodGet, "/consignments/lr?id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadLRTradersTemplate(t *testing.T) {
	repo := &stubConsignmentRepo{}
	require.NoError(t, repo.CreateConsignment(&models.Consignment{
		ConsignmentNo: "88", Company: models.CompanyTraders,
		Date: "2026-03-05", CustomerName: "Shetty & Sons",
		FreightAmount: 2000, SGST: 50, CGST: 50,
	}))

	h := &LRHandler{
		Repo:     repository.NewLRRepository(repo, newStubProfileRepo()),
		SavePath: t.TempDir(),
	}

	rec := httptest.NewRecorder()
	h.DownloadLR(rec, httptest.NewRequest(http.MethodGet, "/consignments/lr?id=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "LR_88_SDTraders.pdf")
}

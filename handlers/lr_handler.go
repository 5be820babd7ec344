package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"sreedamodar/lr"
	"sreedamodar/models"
	"sreedamodar/repository"
	"sreedamodar/utils"
)

type LRHandler struct {
	Repo     *repository.LRRepository
	SavePath string
}

// DownloadLR renders the Lorry Receipt for one booking, archives a copy under
// SavePath (and on R2 when configured), stamps pdf_created_at/pdf_path, and
// streams the PDF as an attachment. A failed archive step is logged but never
// blocks the download; the record itself is untouched by render failures.
func (h *LRHandler) DownloadLR(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing consignment id", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid consignment id", http.StatusBadRequest)
		return
	}

	c, err := h.Repo.GetConsignmentForLR(id)
	if err != nil {
		http.Error(w, "failed to fetch consignment: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if c == nil {
		http.Error(w, "consignment not found", http.StatusNotFound)
		return
	}

	profile, err := h.Repo.GetProfileForLR(c.Company)
	if err != nil {
		http.Error(w, "failed to fetch company profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, filename, err := lr.Render(c, profile)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./pdfs"
	}
	storedPath := ""
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		fmt.Printf("failed to create save directory %s: %v\n", saveDir, err)
	} else {
		storedPath = filepath.Join(saveDir, filename)
		if err := os.WriteFile(storedPath, pdfBytes, 0644); err != nil {
			fmt.Printf("failed to save PDF %s: %v\n", storedPath, err)
			storedPath = ""
		}
	}

	if utils.R2Configured() {
		if fileURL, err := utils.UploadLRToR2(pdfBytes, filename); err != nil {
			fmt.Printf("failed to upload LR %s to R2: %v\n", filename, err)
		} else {
			storedPath = fileURL
		}
	}

	if storedPath != "" {
		if err := h.Repo.ConsignmentRepo.UpdatePDFInfo(id, storedPath, time.Now().UTC()); err != nil {
			fmt.Printf("failed to update pdf info for consignment %d: %v\n", id, err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdfBytes)))
	_, _ = w.Write(pdfBytes)
}

// deleteStoredLR removes a deleted booking's archived PDF, best-effort.
func deleteStoredLR(c *models.Consignment) {
	if c.PdfPath == nil || *c.PdfPath == "" {
		return
	}
	path := *c.PdfPath
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		if utils.R2Configured() {
			if err := utils.DeleteLRFromR2(path); err != nil {
				fmt.Printf("failed to delete LR from R2: %v\n", err)
			}
		}
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		fmt.Printf("failed to delete stored LR %s: %v\n", path, err)
	}
}

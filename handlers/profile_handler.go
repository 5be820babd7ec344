package handlers

import (
	"encoding/json"
	"net/http"

	"sreedamodar/models"
	"sreedamodar/repository"
)

type ProfileHandler struct {
	Repo repository.ProfileRepository
}

func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var p models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p.Code != models.CompanyTransports && p.Code != models.CompanyTraders {
		http.Error(w, "unknown company code", http.StatusBadRequest)
		return
	}

	if err := h.Repo.SaveProfile(&p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

func (h *ProfileHandler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Repo.GetProfiles()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []*models.CompanyProfile{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profiles)
}

func (h *ProfileHandler) GetProfileByCode(w http.ResponseWriter, r *http.Request, code string) {
	p, err := h.Repo.GetProfileByCode(code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

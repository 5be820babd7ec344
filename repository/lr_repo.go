package repository

import "sreedamodar/models"

// LRRepository bundles the two lookups the LR renderer needs: the booking
// itself and the issuing company's profile.
type LRRepository struct {
	ConsignmentRepo ConsignmentRepository
	ProfileRepo     ProfileRepository
}

func NewLRRepository(consignmentRepo ConsignmentRepository, profileRepo ProfileRepository) *LRRepository {
	return &LRRepository{
		ConsignmentRepo: consignmentRepo,
		ProfileRepo:     profileRepo,
	}
}

// GetConsignmentForLR fetches a single booking by ID, nil when absent.
func (r *LRRepository) GetConsignmentForLR(id int64) (*models.Consignment, error) {
	list, err := r.ConsignmentRepo.GetConsignments(map[string]interface{}{"id": id}, true)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

// GetProfileForLR resolves the issuing company, falling back to the built-in
// profile when the store has not been seeded yet.
func (r *LRRepository) GetProfileForLR(company string) (*models.CompanyProfile, error) {
	code := models.CompanyTransports
	if company == models.CompanyTraders {
		code = models.CompanyTraders
	}
	p, err := r.ProfileRepo.GetProfileByCode(code)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	for _, d := range models.DefaultProfiles() {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, nil
}

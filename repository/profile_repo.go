package repository

import "sreedamodar/models"

type ProfileRepository interface {
	SaveProfile(p *models.CompanyProfile) error
	GetProfiles() ([]*models.CompanyProfile, error)
	GetProfileByCode(code string) (*models.CompanyProfile, error)
}

// SeedProfiles inserts the built-in company profiles on first boot. Existing
// rows are left alone so operator edits survive restarts.
func SeedProfiles(repo ProfileRepository) error {
	for _, p := range models.DefaultProfiles() {
		existing, err := repo.GetProfileByCode(p.Code)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := repo.SaveProfile(p); err != nil {
			return err
		}
	}
	return nil
}

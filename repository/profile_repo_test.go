package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreedamodar/models"
)

type memProfileRepo struct {
	profiles map[string]*models.CompanyProfile
	saves    int
}

func (m *memProfileRepo) SaveProfile(p *models.CompanyProfile) error {
	m.saves++
	m.profiles[p.Code] = p
	return nil
}

func (m *memProfileRepo) GetProfiles() ([]*models.CompanyProfile, error) {
	var out []*models.CompanyProfile
	for _, p := range m.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProfileRepo) GetProfileByCode(code string) (*models.CompanyProfile, error) {
	return m.profiles[code], nil
}

func TestSeedProfilesInsertsDefaultsOnce(t *testing.T) {
	repo := &memProfileRepo{profiles: map[string]*models.CompanyProfile{}}

	require.NoError(t, SeedProfiles(repo))
	assert.Equal(t, 2, repo.saves)
	assert.Contains(t, repo.profiles, models.CompanyTransports)
	assert.Contains(t, repo.profiles, models.CompanyTraders)

	// Second boot: nothing is overwritten.
	require.NoError(t, SeedProfiles(repo))
	assert.Equal(t, 2, repo.saves)
}

func TestSeedProfilesKeepsOperatorEdits(t *testing.T) {
	edited := &models.CompanyProfile{Code: models.CompanyTransports, DisplayName: "EDITED"}
	repo := &memProfileRepo{profiles: map[string]*models.CompanyProfile{
		models.CompanyTransports: edited,
	}}

	require.NoError(t, SeedProfiles(repo))
	assert.Equal(t, "EDITED", repo.profiles[models.CompanyTransports].DisplayName)
	assert.Contains(t, repo.profiles, models.CompanyTraders)
}

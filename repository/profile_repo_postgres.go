package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"sreedamodar/models"
)

type PostgresProfileRepo struct {
	DB *sql.DB
}

func NewPostgresProfileRepo(db *sql.DB) *PostgresProfileRepo {
	return &PostgresProfileRepo{DB: db}
}

// SaveProfile upserts by company code. Phones are stored as JSONB.
func (r *PostgresProfileRepo) SaveProfile(p *models.CompanyProfile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	phonesJSON, err := json.Marshal(p.Phones)
	if err != nil {
		return err
	}

	return r.DB.QueryRow(`
		INSERT INTO company_profile(
			code, display_name, short_name, address, phones,
			bank_name, bank_branch, account_number, ifsc,
			gstin, route_label, service_label, gst_note, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT(code) DO UPDATE SET
			display_name=EXCLUDED.display_name,
			short_name=EXCLUDED.short_name,
			address=EXCLUDED.address,
			phones=EXCLUDED.phones,
			bank_name=EXCLUDED.bank_name,
			bank_branch=EXCLUDED.bank_branch,
			account_number=EXCLUDED.account_number,
			ifsc=EXCLUDED.ifsc,
			gstin=EXCLUDED.gstin,
			route_label=EXCLUDED.route_label,
			service_label=EXCLUDED.service_label,
			gst_note=EXCLUDED.gst_note
		RETURNING id
	`, p.Code, p.DisplayName, p.ShortName, p.Address, phonesJSON,
		p.BankName, p.BankBranch, p.AccountNumber, p.IFSC,
		p.GSTIN, p.RouteLabel, p.ServiceLabel, p.GSTNote, p.CreatedAt).Scan(&p.ID)
}

func (r *PostgresProfileRepo) scanProfile(row interface{ Scan(...interface{}) error }) (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	var phonesJSON []byte
	err := row.Scan(&p.ID, &p.Code, &p.DisplayName, &p.ShortName, &p.Address, &phonesJSON,
		&p.BankName, &p.BankBranch, &p.AccountNumber, &p.IFSC,
		&p.GSTIN, &p.RouteLabel, &p.ServiceLabel, &p.GSTNote, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(phonesJSON) > 0 {
		if err := json.Unmarshal(phonesJSON, &p.Phones); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

const profileColumns = `
	id, code, display_name, short_name, address, phones,
	bank_name, bank_branch, account_number, ifsc,
	gstin, route_label, service_label, gst_note, created_at
`

func (r *PostgresProfileRepo) GetProfiles() ([]*models.CompanyProfile, error) {
	rows, err := r.DB.Query("SELECT " + profileColumns + " FROM company_profile ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.CompanyProfile
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *PostgresProfileRepo) GetProfileByCode(code string) (*models.CompanyProfile, error) {
	row := r.DB.QueryRow("SELECT "+profileColumns+" FROM company_profile WHERE code=$1", code)
	p, err := r.scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sreedamodar/models"
)

type PostgresDriverRepo struct {
	DB *sql.DB
}

func NewPostgresDriverRepo(db *sql.DB) *PostgresDriverRepo {
	return &PostgresDriverRepo{DB: db}
}

func (r *PostgresDriverRepo) CreateDriver(d *models.Driver) error {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO driver(name, phone, dl_number, rc_number, vehicle_number, vehicle_type, address, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`, d.Name, d.Phone, d.DLNumber, d.RCNumber, d.VehicleNumber, d.VehicleType, d.Address, d.CreatedAt).Scan(&d.ID)
}

func (r *PostgresDriverRepo) GetDrivers(filters map[string]interface{}, single bool) ([]*models.Driver, error) {
	query := `
		SELECT id, name, phone, dl_number, rc_number, vehicle_number, vehicle_type, address, created_at
		FROM driver
	`
	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		if k == "q" {
			pat := "%" + fmt.Sprintf("%v", v) + "%"
			where = append(where, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d OR vehicle_number ILIKE $%d)", i, i, i))
			args = append(args, pat)
			i++
			continue
		}
		where = append(where, fmt.Sprintf("%s = $%d", k, i))
		args = append(args, v)
		i++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if !single {
		query += " ORDER BY name ASC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.DLNumber, &d.RCNumber,
			&d.VehicleNumber, &d.VehicleType, &d.Address, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if single {
		if len(result) > 0 {
			return []*models.Driver{result[0]}, nil
		}
		return nil, nil
	}
	return result, nil
}

func (r *PostgresDriverRepo) DeleteDriver(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM driver WHERE id=$1`, id)
	return err
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sreedamodar/models"
)

type PostgresEnquiryRepo struct {
	DB *sql.DB
}

func NewPostgresEnquiryRepo(db *sql.DB) *PostgresEnquiryRepo {
	return &PostgresEnquiryRepo{DB: db}
}

func (r *PostgresEnquiryRepo) CreateEnquiry(fb *models.FutureBooking) error {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}
	if fb.Status == "" {
		fb.Status = models.EnquiryPending
	}
	return r.DB.QueryRow(`
		INSERT INTO future_booking(
			expected_date, customer_name, phone, from_location, to_location,
			goods_description, estimated_freight, notes, status, created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`, fb.ExpectedDate, fb.CustomerName, fb.Phone, fb.FromLocation, fb.ToLocation,
		fb.GoodsDescription, fb.EstimatedFreight, fb.Notes, fb.Status, fb.CreatedAt).Scan(&fb.ID)
}

func (r *PostgresEnquiryRepo) GetEnquiries(filters map[string]interface{}, single bool) ([]*models.FutureBooking, error) {
	query := `
		SELECT id, expected_date, customer_name, phone, from_location, to_location,
			goods_description, estimated_freight, notes, status, created_at
		FROM future_booking
	`
	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		where = append(where, fmt.Sprintf("%s = $%d", k, i))
		args = append(args, v)
		i++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if !single {
		query += " ORDER BY expected_date ASC, id ASC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.FutureBooking
	for rows.Next() {
		var fb models.FutureBooking
		if err := rows.Scan(&fb.ID, &fb.ExpectedDate, &fb.CustomerName, &fb.Phone,
			&fb.FromLocation, &fb.ToLocation, &fb.GoodsDescription,
			&fb.EstimatedFreight, &fb.Notes, &fb.Status, &fb.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &fb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if single {
		if len(result) > 0 {
			return []*models.FutureBooking{result[0]}, nil
		}
		return nil, nil
	}
	return result, nil
}

func (r *PostgresEnquiryRepo) UpdateEnquiryStatus(id int64, status string) error {
	_, err := r.DB.Exec(`UPDATE future_booking SET status=$1 WHERE id=$2`, status, id)
	return err
}

func (r *PostgresEnquiryRepo) DeleteEnquiry(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM future_booking WHERE id=$1`, id)
	return err
}

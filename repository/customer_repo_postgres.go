package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sreedamodar/models"
)

type PostgresCustomerRepo struct {
	DB *sql.DB
}

func NewPostgresCustomerRepo(db *sql.DB) *PostgresCustomerRepo {
	return &PostgresCustomerRepo{DB: db}
}

func (r *PostgresCustomerRepo) CreateCustomer(c *models.Customer) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO customer(name, phone, gst_no, address, location_link, created_at)
		VALUES($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, c.Name, c.Phone, c.GSTNo, c.Address, c.LocationLink, c.CreatedAt).Scan(&c.ID)
}

func (r *PostgresCustomerRepo) GetCustomers(filters map[string]interface{}, single bool) ([]*models.Customer, error) {
	query := `
		SELECT id, name, phone, gst_no, address, location_link, created_at
		FROM customer
	`
	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		if k == "q" {
			pat := "%" + fmt.Sprintf("%v", v) + "%"
			where = append(where, fmt.Sprintf("(name ILIKE $%d OR phone ILIKE $%d OR gst_no ILIKE $%d)", i, i, i))
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

	var result []*models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.GSTNo, &c.Address, &c.LocationLink, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if single {
		if len(result) > 0 {
			return []*models.Customer{result[0]}, nil
		}
		return nil, nil
	}
	return result, nil
}

func (r *PostgresCustomerRepo) DeleteCustomer(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM customer WHERE id=$1`, id)
	return err
}

package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"sreedamodar/models"
)

type PostgresConsignmentRepo struct {
	DB *sql.DB
}

func NewPostgresConsignmentRepo(db *sql.DB) *PostgresConsignmentRepo {
	return &PostgresConsignmentRepo{DB: db}
}

const consignmentColumns = `
	id, consignment_no, company, date, from_location, to_location,
	customer_name, customer_phone, customer_gst,
	consignee_name, consignee_phone, consignee_gst,
	goods_description, articles_count, weight, charged_weight,
	value_of_goods, invoice_no_date, delivery_at,
	freight_amount, advance_paid, balance_amount,
	handling_charges, halting_charges, gc_charges, sgst, cgst,
	payment_status, payment_ref,
	driver_name, vehicle_number, vehicle_type, driver_payment_status, commission,
	pdf_created_at, pdf_path, created_at, updated_at
`

func scanConsignment(row interface{ Scan(...interface{}) error }) (*models.Consignment, error) {
	var c models.Consignment
	err := row.Scan(
		&c.ID, &c.ConsignmentNo, &c.Company, &c.Date, &c.FromLocation, &c.ToLocation,
		&c.CustomerName, &c.CustomerPhone, &c.CustomerGST,
		&c.ConsigneeName, &c.ConsigneePhone, &c.ConsigneeGST,
		&c.GoodsDescription, &c.ArticlesCount, &c.Weight, &c.ChargedWeight,
		&c.ValueOfGoods, &c.InvoiceNoDate, &c.DeliveryAt,
		&c.FreightAmount, &c.AdvancePaid, &c.BalanceAmount,
		&c.HandlingCharges, &c.HaltingCharges, &c.GCCharges, &c.SGST, &c.CGST,
		&c.PaymentStatus, &c.PaymentRef,
		&c.DriverName, &c.VehicleNumber, &c.VehicleType, &c.DriverPaymentStatus, &c.Commission,
		&c.PdfCreatedAt, &c.PdfPath, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateConsignment inserts a booking. The stored balance is always recomputed
// from the charge fields, never trusted from the caller.
func (r *PostgresConsignmentRepo) CreateConsignment(c *models.Consignment) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Recompute()

	return r.DB.QueryRow(`
		INSERT INTO consignment(
			consignment_no, company, date, from_location, to_location,
			customer_name, customer_phone, customer_gst,
			consignee_name, consignee_phone, consignee_gst,
			goods_description, articles_count, weight, charged_weight,
			value_of_goods, invoice_no_date, delivery_at,
			freight_amount, advance_paid, balance_amount,
			handling_charges, halting_charges, gc_charges, sgst, cgst,
			payment_status, payment_ref,
			driver_name, vehicle_number, vehicle_type, driver_payment_status, commission,
			created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34)
		RETURNING id
	`,
		c.ConsignmentNo, c.Company, c.Date, c.FromLocation, c.ToLocation,
		c.CustomerName, c.CustomerPhone, c.CustomerGST,
		c.ConsigneeName, c.ConsigneePhone, c.ConsigneeGST,
		c.GoodsDescription, c.ArticlesCount, c.Weight, c.ChargedWeight,
		c.ValueOfGoods, c.InvoiceNoDate, c.DeliveryAt,
		c.FreightAmount, c.AdvancePaid, c.BalanceAmount,
		c.HandlingCharges, c.HaltingCharges, c.GCCharges, c.SGST, c.CGST,
		c.PaymentStatus, c.PaymentRef,
		c.DriverName, c.VehicleNumber, c.VehicleType, c.DriverPaymentStatus, c.Commission,
		c.CreatedAt,
	).Scan(&c.ID)
}

// GetConsignments fetches bookings. Equality filters map straight to columns;
// the "q" filter searches LR number, customer and vehicle case-insensitively.
func (r *PostgresConsignmentRepo) GetConsignments(filters map[string]interface{}, single bool) ([]*models.Consignment, error) {
	query := "SELECT " + consignmentColumns + " FROM consignment"

	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		if k == "q" {
			pat := "%" + fmt.Sprintf("%v", v) + "%"
			where = append(where, fmt.Sprintf(
				"(consignment_no ILIKE $%d OR customer_name ILIKE $%d OR vehicle_number ILIKE $%d)",
				i, i, i))
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
		query += " ORDER BY date DESC, id DESC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Consignment
	for rows.Next() {
		c, err := scanConsignment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if single {
		if len(result) > 0 {
			return []*models.Consignment{result[0]}, nil
		}
		return nil, nil
	}
	return result, nil
}

func (r *PostgresConsignmentRepo) UpdateConsignment(c *models.Consignment) error {
	now := time.Now().UTC()
	c.UpdatedAt = &now
	c.Recompute()

	_, err := r.DB.Exec(`
		UPDATE consignment SET
			consignment_no=$1, company=$2, date=$3, from_location=$4, to_location=$5,
			customer_name=$6, customer_phone=$7, customer_gst=$8,
			consignee_name=$9, consignee_phone=$10, consignee_gst=$11,
			goods_description=$12, articles_count=$13, weight=$14, charged_weight=$15,
			value_of_goods=$16, invoice_no_date=$17, delivery_at=$18,
			freight_amount=$19, advance_paid=$20, balance_amount=$21,
			handling_charges=$22, halting_charges=$23, gc_charges=$24, sgst=$25, cgst=$26,
			payment_status=$27, payment_ref=$28,
			driver_name=$29, vehicle_number=$30, vehicle_type=$31,
			driver_payment_status=$32, commission=$33,
			updated_at=$34
		WHERE id=$35
	`,
		c.ConsignmentNo, c.Company, c.Date, c.FromLocation, c.ToLocation,
		c.CustomerName, c.CustomerPhone, c.CustomerGST,
		c.ConsigneeName, c.ConsigneePhone, c.ConsigneeGST,
		c.GoodsDescription, c.ArticlesCount, c.Weight, c.ChargedWeight,
		c.ValueOfGoods, c.InvoiceNoDate, c.DeliveryAt,
		c.FreightAmount, c.AdvancePaid, c.BalanceAmount,
		c.HandlingCharges, c.HaltingCharges, c.GCCharges, c.SGST, c.CGST,
		c.PaymentStatus, c.PaymentRef,
		c.DriverName, c.VehicleNumber, c.VehicleType,
		c.DriverPaymentStatus, c.Commission,
		c.UpdatedAt, c.ID,
	)
	return err
}

func (r *PostgresConsignmentRepo) DeleteConsignment(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM consignment WHERE id=$1`, id)
	return err
}

func (r *PostgresConsignmentRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE consignment
		SET pdf_path = $1, pdf_created_at = $2
		WHERE id = $3
	`, path, createdAt, id)
	return err
}

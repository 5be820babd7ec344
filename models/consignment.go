package models

import "time"

// Company codes select which LR template and charge schedule apply.
const (
	CompanyTransports = "transports"
	CompanyTraders    = "traders"
)

// Payment statuses for customer and driver payouts.
const (
	PaymentPending = "Pending"
	PaymentPartial = "Partial"
	PaymentPaid    = "Paid"
)

// Consignment is one freight booking / Lorry Receipt.
// Optional text fields are pointers so absent values survive round-trips;
// money fields default to zero. Date is an ISO YYYY-MM-DD string as entered.
type Consignment struct {
	ID            int64  `json:"id" bson:"_id,omitempty" db:"id"`
	ConsignmentNo string `json:"consignment_no" bson:"consignment_no" db:"consignment_no"`
	Company       string `json:"company" bson:"company" db:"company"` // transports | traders
	Date          string `json:"date" bson:"date" db:"date"`
	FromLocation  string `json:"from_location" bson:"from_location" db:"from_location"`
	ToLocation    string `json:"to_location" bson:"to_location" db:"to_location"`

	CustomerName   string  `json:"customer_name" bson:"customer_name" db:"customer_name"`
	CustomerPhone  string  `json:"customer_phone" bson:"customer_phone" db:"customer_phone"`
	CustomerGST    *string `json:"customer_gst,omitempty" bson:"customer_gst,omitempty" db:"customer_gst"`
	ConsigneeName  string  `json:"consignee_name" bson:"consignee_name" db:"consignee_name"`
	ConsigneePhone string  `json:"consignee_phone" bson:"consignee_phone" db:"consignee_phone"`
	ConsigneeGST   *string `json:"consignee_gst,omitempty" bson:"consignee_gst,omitempty" db:"consignee_gst"`

	GoodsDescription string  `json:"goods_description" bson:"goods_description" db:"goods_description"`
	ArticlesCount    *string `json:"articles_count,omitempty" bson:"articles_count,omitempty" db:"articles_count"`
	Weight           string  `json:"weight" bson:"weight" db:"weight"`
	ChargedWeight    *string `json:"charged_weight,omitempty" bson:"charged_weight,omitempty" db:"charged_weight"`
	ValueOfGoods     *string `json:"value_of_goods,omitempty" bson:"value_of_goods,omitempty" db:"value_of_goods"`
	InvoiceNoDate    *string `json:"invoice_no_date,omitempty" bson:"invoice_no_date,omitempty" db:"invoice_no_date"`
	DeliveryAt       *string `json:"delivery_at,omitempty" bson:"delivery_at,omitempty" db:"delivery_at"`

	FreightAmount   float64 `json:"freight_amount" bson:"freight_amount" db:"freight_amount"`
	AdvancePaid     float64 `json:"advance_paid" bson:"advance_paid" db:"advance_paid"`
	BalanceAmount   float64 `json:"balance_amount" bson:"balance_amount" db:"balance_amount"`
	HandlingCharges float64 `json:"handling_charges" bson:"handling_charges" db:"handling_charges"`
	HaltingCharges  float64 `json:"halting_charges" bson:"halting_charges" db:"halting_charges"`
	GCCharges       float64 `json:"gc_charges" bson:"gc_charges" db:"gc_charges"`
	// Traders company only; never part of FreightTotal.
	SGST float64 `json:"sgst,omitempty" bson:"sgst,omitempty" db:"sgst"`
	CGST float64 `json:"cgst,omitempty" bson:"cgst,omitempty" db:"cgst"`

	PaymentStatus string `json:"payment_status" bson:"payment_status" db:"payment_status"`
	PaymentRef    string `json:"payment_ref" bson:"payment_ref" db:"payment_ref"`

	// Vehicle/driver snapshot taken at booking time, not a live reference.
	DriverName          string  `json:"driver_name" bson:"driver_name" db:"driver_name"`
	VehicleNumber       string  `json:"vehicle_number" bson:"vehicle_number" db:"vehicle_number"`
	VehicleType         string  `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type"`
	DriverPaymentStatus string  `json:"driver_payment_status" bson:"driver_payment_status" db:"driver_payment_status"`
	Commission          float64 `json:"commission" bson:"commission" db:"commission"`

	PdfCreatedAt *time.Time `json:"pdf_created_at,omitempty" bson:"pdf_created_at,omitempty" db:"pdf_created_at"`
	PdfPath      *string    `json:"pdf_path,omitempty" bson:"pdf_path,omitempty" db:"pdf_path"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}

// FreightTotal sums freight, handling, halting and G.C. charges. SGST/CGST are
// deliberately excluded; the Traders Grand Total is computed at render time.
func (c *Consignment) FreightTotal() float64 {
	return c.FreightAmount + c.HandlingCharges + c.HaltingCharges + c.GCCharges
}

// Balance is FreightTotal minus the advance. Negative means overpayment and is
// shown as-is, never clamped.
func (c *Consignment) Balance() float64 {
	return c.FreightTotal() - c.AdvancePaid
}

// Recompute refreshes the persisted balance from the charge fields. Called on
// every create and update so stale client-side totals are never stored.
func (c *Consignment) Recompute() {
	c.BalanceAmount = c.Balance()
}

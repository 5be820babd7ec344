package models

import "time"

// Enquiry statuses.
const (
	EnquiryPending   = "Pending"
	EnquiryConverted = "Converted"
	EnquiryCancelled = "Cancelled"
)

// FutureBooking is a prospective booking (enquiry). Converting one prefills a
// draft Consignment; whether the enquiry itself is marked Converted is a
// deployment choice (see config.EnquiryMarkConverted).
type FutureBooking struct {
	ID               int64     `json:"id" bson:"_id,omitempty" db:"id"`
	ExpectedDate     string    `json:"expected_date" bson:"expected_date" db:"expected_date"`
	CustomerName     string    `json:"customer_name" bson:"customer_name" db:"customer_name"`
	Phone            string    `json:"phone" bson:"phone" db:"phone"`
	FromLocation     string    `json:"from_location" bson:"from_location" db:"from_location"`
	ToLocation       string    `json:"to_location" bson:"to_location" db:"to_location"`
	GoodsDescription string    `json:"goods_description" bson:"goods_description" db:"goods_description"`
	EstimatedFreight float64   `json:"estimated_freight" bson:"estimated_freight" db:"estimated_freight"`
	Notes            string    `json:"notes" bson:"notes" db:"notes"`
	Status           string    `json:"status" bson:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Draft copies the enquiry fields into a new unsaved Consignment, the same way
// the booking form is prefilled when staff hit Convert.
func (fb *FutureBooking) Draft() *Consignment {
	return &Consignment{
		Company:          CompanyTransports,
		Date:             fb.ExpectedDate,
		FromLocation:     fb.FromLocation,
		ToLocation:       fb.ToLocation,
		CustomerName:     fb.CustomerName,
		CustomerPhone:    fb.Phone,
		GoodsDescription: fb.GoodsDescription,
		FreightAmount:    fb.EstimatedFreight,
		PaymentStatus:    PaymentPending,
		DriverPaymentStatus: PaymentPending,
	}
}

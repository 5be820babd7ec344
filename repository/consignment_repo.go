package repository

import (
	"time"

	"sreedamodar/models"
)

// ConsignmentRepository is the storage contract for bookings. Filters are a
// column/value map; the "q" key is a free-text search over LR number, customer
// and vehicle rather than an equality match.
type ConsignmentRepository interface {
	CreateConsignment(c *models.Consignment) error
	GetConsignments(filters map[string]interface{}, single bool) ([]*models.Consignment, error)
	UpdateConsignment(c *models.Consignment) error
	DeleteConsignment(id int64) error
	UpdatePDFInfo(id int64, path string, createdAt time.Time) error
}

package repository

import "sreedamodar/models"

type EnquiryRepository interface {
	CreateEnquiry(fb *models.FutureBooking) error
	GetEnquiries(filters map[string]interface{}, single bool) ([]*models.FutureBooking, error)
	UpdateEnquiryStatus(id int64, status string) error
	DeleteEnquiry(id int64) error
}

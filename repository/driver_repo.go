package repository

import "sreedamodar/models"

type DriverRepository interface {
	CreateDriver(d *models.Driver) error
	GetDrivers(filters map[string]interface{}, single bool) ([]*models.Driver, error)
	DeleteDriver(id int64) error
}

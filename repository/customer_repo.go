package repository

import "sreedamodar/models"

type CustomerRepository interface {
	CreateCustomer(c *models.Customer) error
	GetCustomers(filters map[string]interface{}, single bool) ([]*models.Customer, error)
	DeleteCustomer(id int64) error
}

package models

import "time"

type Driver struct {
	ID            int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name          string    `json:"name" bson:"name" db:"name"`
	Phone         string    `json:"phone" bson:"phone" db:"phone"`
	DLNumber      string    `json:"dl_number" bson:"dl_number" db:"dl_number"`
	RCNumber      string    `json:"rc_number" bson:"rc_number" db:"rc_number"`
	VehicleNumber string    `json:"vehicle_number" bson:"vehicle_number" db:"vehicle_number"`
	VehicleType   string    `json:"vehicle_type" bson:"vehicle_type" db:"vehicle_type"`
	Address       string    `json:"address" bson:"address" db:"address"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

package models

import "time"

type Customer struct {
	ID           int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name         string    `json:"name" bson:"name" db:"name"`
	Phone        string    `json:"phone" bson:"phone" db:"phone"`
	GSTNo        string    `json:"gst_no" bson:"gst_no" db:"gst_no"`
	Address      string    `json:"address" bson:"address" db:"address"`
	LocationLink string    `json:"location_link" bson:"location_link" db:"location_link"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

package models

import "time"

type PhoneEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// CompanyProfile is the static identity/branding/banking record for one of the
// two business entities sharing this application. It is passed explicitly into
// the LR renderer; there is no module-level "current company" singleton.
type CompanyProfile struct {
	ID          int64        `json:"id" bson:"_id,omitempty" db:"id"`
	Code        string       `json:"code" bson:"code" db:"code"` // transports | traders
	DisplayName string       `json:"display_name" bson:"display_name" db:"display_name"`
	ShortName   string       `json:"short_name" bson:"short_name" db:"short_name"`
	Address     string       `json:"address" bson:"address" db:"address"`
	Phones      []PhoneEntry `json:"phones" bson:"phones" db:"phones"`

	BankName      string `json:"bank_name" bson:"bank_name" db:"bank_name"`
	BankBranch    string `json:"bank_branch" bson:"bank_branch" db:"bank_branch"`
	AccountNumber string `json:"account_number" bson:"account_number" db:"account_number"`
	IFSC          string `json:"ifsc" bson:"ifsc" db:"ifsc"`

	// Traders only.
	GSTIN        string `json:"gstin,omitempty" bson:"gstin,omitempty" db:"gstin"`
	RouteLabel   string `json:"route_label,omitempty" bson:"route_label,omitempty" db:"route_label"`
	ServiceLabel string `json:"service_label,omitempty" bson:"service_label,omitempty" db:"service_label"`
	// Tax declaration boilerplate printed in the Traders footer. Kept as data
	// because notification numbers and percentages change independently of the
	// render code.
	GSTNote string `json:"gst_note,omitempty" bson:"gst_note,omitempty" db:"gst_note"`

	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// DefaultProfiles seeds the two known company profiles. Deployments overwrite
// them through the profile endpoints.
func DefaultProfiles() []*CompanyProfile {
	return []*CompanyProfile{
		{
			Code:        CompanyTransports,
			DisplayName: "SREE DAMODAR TRANSPORTS",
			ShortName:   "SDT",
			Address:     "H.O. : 4th Main Road, New Tharagupet, Bangalore - 560 002",
			Phones: []PhoneEntry{
				{Number: "9880525597", Label: "Office"},
				{Number: "8618422012", Label: "Booking"},
			},
			BankName:      "CANARA BANK",
			BankBranch:    "Chamarajpet Branch",
			AccountNumber: "040 410 1000 40 55",
			IFSC:          "CNRB 00 00 405",
		},
		{
			Code:        CompanyTraders,
			DisplayName: "SREE DAMODAR TRADERS",
			ShortName:   "SDTraders",
			Address:     "4th Main Road, New Tharagupet, Bangalore - 560 002",
			Phones: []PhoneEntry{
				{Number: "9880525597", Label: "Office"},
			},
			BankName:      "CANARA BANK",
			BankBranch:    "Chamarajpet Branch",
			AccountNumber: "040 410 1000 40 55",
			IFSC:          "CNRB 00 00 405",
			GSTIN:         "29AAXPD1234F1Z5",
			RouteLabel:    "BANGALORE TO ALL OVER INDIA",
			ServiceLabel:  "FLEET OWNERS & TRANSPORT CONTRACTORS",
			GSTNote:       "GST payable by consignor/consignee under RCM as per Notification No. 13/2017 - Central Tax (Rate) @ 5%",
		},
	}
}

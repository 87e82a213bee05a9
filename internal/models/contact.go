package models

import "time"

// Contact holds both contact-form messages and membership signups; the
// latter carry PreferredService "membership".
type Contact struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name             string `gorm:"size:100;not null" json:"name"`
	Email            string `gorm:"size:100;not null" json:"email"`
	Phone            string `gorm:"size:20;not null" json:"phone"`
	VehicleType      string `gorm:"size:100;not null" json:"vehicleType"`
	PreferredPackage string `gorm:"size:20;not null" json:"preferredPackage"`
	PreferredService string `gorm:"size:30" json:"preferredService,omitempty"`
	Message          string `gorm:"type:text;not null" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
}

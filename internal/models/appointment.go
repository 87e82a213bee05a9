package models

import "time"

// Appointment is written once by a booking and never updated. The unique
// index on (date, start_hour) backs the overlap check done under lock.
type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	Date      string `gorm:"size:10;not null;uniqueIndex:idx_appointments_date_start_hour,priority:1" json:"date"`
	StartHour int    `gorm:"not null;uniqueIndex:idx_appointments_date_start_hour,priority:2" json:"startHour"`
	TimeSlot  string `gorm:"size:5;not null" json:"timeSlot"`

	Package       string `gorm:"size:20;not null" json:"package"`
	DurationHours int    `gorm:"not null" json:"durationHours"`

	CustomerName  string  `gorm:"size:100;not null" json:"customerName"`
	CustomerEmail string  `gorm:"size:100;not null" json:"customerEmail"`
	CustomerPhone string  `gorm:"size:20;not null" json:"customerPhone"`
	VehicleType   string  `gorm:"size:100;not null" json:"vehicleType"`
	Message       *string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
}

package models

import "time"

// TravelLog is one trip in the vehicle log, optionally tied to a job
type TravelLog struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OwnerID    uint    `gorm:"index;not null" json:"ownerId"`
	JobID      *uint   `gorm:"index" json:"jobId,omitempty"`
	Date       string  `gorm:"type:varchar(10);index" json:"date"`
	Kilometers Decimal `gorm:"type:decimal(12,2);default:0" json:"kilometers"`
	FuelCost   Decimal `gorm:"type:decimal(12,2);default:0" json:"fuelCost"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for TravelLog model
func (TravelLog) TableName() string {
	return "travel_logs"
}

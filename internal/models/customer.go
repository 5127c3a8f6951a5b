package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a client of the painting business
type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `gorm:"index;not null" json:"ownerId"`
	Name    string `gorm:"not null" json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Photos []CustomerPhoto `gorm:"foreignKey:CustomerID" json:"photos,omitempty"`
}

// TableName specifies the table name for Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerPhoto is an uploaded photo attached to a customer (site photos,
// reference shots). The parent reference is required.
type CustomerPhoto struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OwnerID    uint   `gorm:"index;not null" json:"ownerId"`
	CustomerID uint   `gorm:"index;not null" json:"customerId"`
	URL        string `gorm:"not null" json:"url"`
	Caption    string `json:"caption"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for CustomerPhoto model
func (CustomerPhoto) TableName() string {
	return "customer_photos"
}

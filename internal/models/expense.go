package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is a business expense, optionally attributed to a job
type Expense struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OwnerID     uint    `gorm:"index;not null" json:"ownerId"`
	JobID       *uint   `gorm:"index" json:"jobId,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      Decimal `gorm:"type:decimal(12,2);default:0" json:"amount"`
	PaidAmount  Decimal `gorm:"type:decimal(12,2);default:0" json:"paidAmount"`
	PaidFull    bool    `gorm:"default:false" json:"paidFull"`
	Date        string  `gorm:"type:varchar(10);index" json:"date"`
	IsRequired  bool    `gorm:"default:false" json:"isRequired"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

// TableName specifies the table name for Expense model
func (Expense) TableName() string {
	return "expenses"
}

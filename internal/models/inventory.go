package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryItem is a material or tool in stock (paint, brushes, ladders).
// JobID records the job the item was bought for; AssignedToJobID records
// where it is currently deployed. The two are independent relations and
// either may be empty.
type InventoryItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OwnerID         uint    `gorm:"index;not null" json:"ownerId"`
	JobID           *uint   `gorm:"index" json:"jobId,omitempty"`
	AssignedToJobID *uint   `gorm:"index" json:"assignedToJobId,omitempty"`
	Name            string  `gorm:"not null" json:"name"`
	Category        string  `json:"category"`
	Quantity        Decimal `gorm:"type:decimal(12,2);default:0" json:"quantity"`
	Unit            string  `json:"unit"`
	CostPerUnit     Decimal `gorm:"type:decimal(12,2);default:0" json:"costPerUnit"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

// TableName specifies the table name for InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

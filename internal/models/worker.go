package models

import (
	"time"

	"gorm.io/gorm"
)

// Worker represents a painter or helper on the payroll.
// The name is unique per owner: creating or renaming a worker to a name the
// owner already uses is rejected as a conflict.
type Worker struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OwnerID   uint    `gorm:"index:idx_workers_owner_name,unique;not null" json:"ownerId"`
	Name      string  `gorm:"index:idx_workers_owner_name,unique;not null" json:"name"`
	JobID     *uint   `gorm:"index" json:"jobId,omitempty"` // current assignment
	Role      string  `json:"role"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	DailyWage Decimal `gorm:"type:decimal(12,2);default:0" json:"dailyWage"`
	IsActive  bool    `json:"isActive"`
	Rating    int     `gorm:"default:0" json:"rating"` // 0-5

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-"`

	// Relations
	Job       *Job             `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Documents []WorkerDocument `gorm:"foreignKey:WorkerID" json:"documents,omitempty"`
}

// TableName specifies the table name for Worker model
func (Worker) TableName() string {
	return "workers"
}

// WorkerDocument is an uploaded document attached to a worker (ID copies,
// contracts). The parent reference is required.
type WorkerDocument struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OwnerID  uint   `gorm:"index;not null" json:"ownerId"`
	WorkerID uint   `gorm:"index;not null" json:"workerId"`
	URL      string `gorm:"not null" json:"url"`
	Name     string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for WorkerDocument model
func (WorkerDocument) TableName() string {
	return "worker_documents"
}

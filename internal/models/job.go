package models

import (
	"time"

	"gorm.io/gorm"
)

// Job status values
const (
	JobStatusQuoted     = "quoted"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job represents a painting job for a customer.
// JobCode is derived once at creation (see utils.GenerateJobCode) and never
// changes afterwards, even when the job is renamed or recategorized.
type Job struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OwnerID      uint    `gorm:"index;not null" json:"ownerId"`
	CustomerID   *uint   `gorm:"index" json:"customerId,omitempty"`
	JobCode      string  `gorm:"index" json:"jobCode"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Status       string  `gorm:"type:varchar(20);default:'quoted'" json:"status"`
	QuotedAmount Decimal `gorm:"type:decimal(12,2);default:0" json:"quotedAmount"`
	AgreedAmount Decimal `gorm:"type:decimal(12,2);default:0" json:"agreedAmount"`
	PaidAmount   Decimal `gorm:"type:decimal(12,2);default:0" json:"paidAmount"`
	StartDate    string  `gorm:"type:varchar(10)" json:"startDate"` // ISO date "2006-01-02"
	EndDate      string  `gorm:"type:varchar(10)" json:"endDate"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Photos   []JobPhoto `gorm:"foreignKey:JobID" json:"photos,omitempty"`
}

// TableName specifies the table name for Job model
func (Job) TableName() string {
	return "jobs"
}

// JobPhoto is an uploaded photo attached to a job (before/after shots,
// progress documentation). The parent reference is required.
type JobPhoto struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `gorm:"index;not null" json:"ownerId"`
	JobID   uint   `gorm:"index;not null" json:"jobId"`
	URL     string `gorm:"not null" json:"url"`
	Caption string `json:"caption"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for JobPhoto model
func (JobPhoto) TableName() string {
	return "job_photos"
}

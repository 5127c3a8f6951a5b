package models

import (
	"time"

	"gorm.io/gorm"
)

// Note kinds
const (
	NoteKindNote = "note"
	NoteKindLog  = "log"
)

// Well-known note sections. Section is free text chosen by the client, but
// these values are the ones the reference remapping understands.
const (
	SectionJobs              = "jobs"
	SectionCustomers         = "customers"
	SectionWorkers           = "workers"
	SectionWorkersAttendance = "workers_attendance"
	SectionInventory         = "inventory"
)

// Note is a free-form note or an automatically generated audit log line.
// ReferenceID is polymorphic: which table it points into is decided by
// Section ("jobs" -> jobs, "customers" -> customers, ...). The database does
// not enforce this reference; only application code interprets it.
type Note struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OwnerID     uint    `gorm:"index;not null" json:"ownerId"`
	Kind        string  `gorm:"type:varchar(10);default:'note'" json:"kind"`
	Section     string  `gorm:"index" json:"section"`
	ReferenceID *uint   `json:"referenceId,omitempty"`
	Attribute   *string `json:"attribute,omitempty"`
	Content     string  `json:"content"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

// TableName specifies the table name for Note model
func (Note) TableName() string {
	return "notes"
}

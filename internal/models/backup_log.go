package models

import (
	"time"

	"gorm.io/datatypes"
)

// Backup actions
const (
	BackupActionExport = "export"
	BackupActionImport = "import"
)

// BackupLog records one export or import run for an owner. Counts holds the
// per-entity row counts of the document that was produced or consumed.
type BackupLog struct {
	ID      uint           `gorm:"primaryKey" json:"id"`
	OwnerID uint           `gorm:"index;not null" json:"ownerId"`
	Action  string         `gorm:"type:varchar(10);not null" json:"action"`
	Counts  datatypes.JSON `gorm:"type:jsonb" json:"counts"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for BackupLog model
func (BackupLog) TableName() string {
	return "backup_logs"
}

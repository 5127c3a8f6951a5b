package models

import "time"

// Attendance status values
const (
	AttendanceFull   = "full"
	AttendanceHalf   = "half"
	AttendanceAbsent = "absent"
)

// Attendance is one day's attendance record for a worker, optionally tied to
// the job they worked on. Both references may be absent (e.g. yard work).
type Attendance struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OwnerID        uint    `gorm:"index;not null" json:"ownerId"`
	WorkerID       *uint   `gorm:"index" json:"workerId,omitempty"`
	JobID          *uint   `gorm:"index" json:"jobId,omitempty"`
	Date           string  `gorm:"type:varchar(10);index" json:"date"`
	Status         string  `gorm:"type:varchar(10);default:'full'" json:"status"`
	ExtraAllowance Decimal `gorm:"type:decimal(12,2);default:0" json:"extraAllowance"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Attendance model
func (Attendance) TableName() string {
	return "attendances"
}

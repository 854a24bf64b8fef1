package entity

import (
	"time"
)

// Feedback is the owner's one-time rating of a resolved report.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`

	ReportID uint   `gorm:"uniqueIndex" json:"report_id"`
	Report   Report `json:"-"`
	OwnerID  uint   `json:"owner_id"`
	Owner    User   `json:"-"`
}

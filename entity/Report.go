package entity

import (
	"time"
)

type Report struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Caption     string    `gorm:"index" json:"caption"`
	ImageURL    string    `json:"image_url"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Category    string    `json:"category"`
	Status      string    `gorm:"not null;default:pending" json:"status"`
	IsEmergency bool      `gorm:"default:false" json:"is_emergency"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`

	// CommunityID is copied from the owner at creation time and kept as-is
	// even if the owner later moves.
	OwnerID     uint      `json:"owner_id"`
	Owner       User      `json:"-"`
	CommunityID uint      `json:"community_id"`
	Community   Community `json:"-"`

	FeedbackEntry *Feedback `gorm:"foreignKey:ReportID" json:"-"`
}

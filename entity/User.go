package entity

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `json:"-"`
	FullName       string `json:"full_name"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	Role           string `gorm:"not null;default:user" json:"role"`

	CommunityID uint      `json:"community_id"`
	Community   Community `json:"-"`

	// Relations — preload only when needed
	Reports  []Report   `gorm:"foreignKey:OwnerID" json:"-"`
	Feedback []Feedback `gorm:"foreignKey:OwnerID" json:"-"`
}

package entity

type Community struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
	City string `json:"city"`

	Members []User   `json:"-"`
	Reports []Report `json:"-"`
}

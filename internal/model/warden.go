package model

import "time"

// Warden represents a warden account. A warden manages at most one hostel.
type Warden struct {
	WardenID     string    `gorm:"column:wardenid;primaryKey;size:36" json:"wardenid"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:256;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Contact      string    `gorm:"size:32" json:"contact"`
	Address      string    `gorm:"size:256" json:"address"`
	Gender       string    `gorm:"size:16" json:"gender"`
	Profession   string    `gorm:"size:64" json:"profession"`
	Age          int       `json:"age"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (Warden) TableName() string { return "wardens" }

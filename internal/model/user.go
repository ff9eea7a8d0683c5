package model

import "time"

// User represents a student account in the users table.
// HostelID and RoomID are null until the student is assigned to a room.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:256;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Contact      string    `gorm:"size:32" json:"contact"`
	Address      string    `gorm:"size:256" json:"address"`
	Gender       string    `gorm:"size:16" json:"gender"`
	Profession   string    `gorm:"size:64" json:"profession"`
	Age          int       `json:"age"`
	HostelID     *string   `gorm:"column:hostelid;size:36" json:"hostelid"`
	RoomID       *string   `gorm:"column:roomid;size:36" json:"roomid"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName keeps the table name the legacy schema used.
func (User) TableName() string { return "users" }

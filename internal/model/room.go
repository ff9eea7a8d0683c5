package model

import "time"

// Room represents a single room of a hostel. Vacancies starts at MaxOccupants
// and is only ever changed by the apply and removal workflows.
type Room struct {
	RoomID             string    `gorm:"column:roomid;primaryKey;size:36" json:"roomid"`
	HostelID           string    `gorm:"column:hostelid;index;size:36;not null" json:"hostelid"`
	MaxOccupants       int       `gorm:"column:maxoccupants;not null" json:"maxoccupants"`
	Vacancies          int       `gorm:"not null" json:"vacancies"`
	RentPerPerson      float64   `gorm:"column:rentperperson" json:"rentperperson"`
	RentDueDate        time.Time `gorm:"column:rentduedate" json:"rentduedate"`
	AttachedBathroom   bool      `gorm:"column:attachedbathroom" json:"attachedbathroom"`
	FurnitureAvailable bool      `gorm:"column:furnitureavailable" json:"furnitureavailable"`
	ACAvailable        bool      `gorm:"column:acavailable" json:"acavailable"`
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`

	// Associations
	Hostel Hostel `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Room) TableName() string { return "hostelroomdetails" }

package model

import "time"

// Hostel gender policies. GenderCoed admits any gender; the comparison is an
// exact string match against the stored value.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderCoed   = "Co-ed"
)

// Hostel represents a hostel building managed by a single warden.
type Hostel struct {
	HostelID      string    `gorm:"column:hostelid;primaryKey;size:36" json:"hostelid"`
	WardenID      string    `gorm:"column:wardenid;uniqueIndex;size:36;not null" json:"wardenid"`
	Name          string    `gorm:"size:128;not null" json:"name"`
	Address       string    `gorm:"size:256;not null" json:"address"`
	Gender        string    `gorm:"size:16;not null" json:"gender"`
	OccupantType  string    `gorm:"column:occupanttype;size:32" json:"occupanttype"`
	MessAvailable bool      `gorm:"column:mess_available" json:"mess_available"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	// Associations
	Rooms []Room `gorm:"foreignKey:HostelID" json:"-"`
}

func (Hostel) TableName() string { return "hostels" }

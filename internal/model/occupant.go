package model

import "time"

// OccupantDetail is the active-assignment record. UserID being the primary key
// enforces at most one active assignment per user at the schema level; the
// apply workflow is the only writer, the removal workflow the only deleter.
type OccupantDetail struct {
	UserID    string    `gorm:"column:userid;primaryKey;size:36" json:"userid"`
	HostelID  string    `gorm:"column:hostelid;index;size:36;not null" json:"hostelid"`
	RoomID    string    `gorm:"column:roomid;index;size:36;not null" json:"roomid"`
	CreatedAt time.Time `json:"-"`
}

func (OccupantDetail) TableName() string { return "occupantdetails" }

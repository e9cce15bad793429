package models

import "time"

// Hackathon represents the hackathons table.
type Hackathon struct {
	HackathonID string     `gorm:"primaryKey;column:hackathon_id" json:"hackathon_id"`
	Name        string     `gorm:"column:name" json:"name"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Location    *string    `gorm:"column:location" json:"location,omitempty"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	CreatedBy   string     `gorm:"column:created_by" json:"created_by"`
	CreateAt    time.Time  `gorm:"column:create_at" json:"create_at"`

	Creator *User `gorm:"foreignKey:CreatedBy;references:UserID" json:"creator,omitempty"`
}

// Judge represents the judges table: one row per (user, hackathon) pair
// granting judging rights for that hackathon.
type Judge struct {
	JudgeID     string    `gorm:"primaryKey;column:judge_id" json:"judge_id"`
	UserID      string    `gorm:"column:user_id" json:"user_id"`
	HackathonID string    `gorm:"column:hackathon_id" json:"hackathon_id"`
	AddedAt     time.Time `gorm:"column:added_at" json:"added_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName overrides
func (Hackathon) TableName() string {
	return "hackathons"
}

func (Judge) TableName() string {
	return "judges"
}

package models

import "time"

// Review represents the reviews table: one judge's evaluation of one
// submission. The rating is stored as given; range validation belongs to
// the caller, and (submission_id, user_id) carries no uniqueness
// constraint. UpdatedAt stays NULL until the first successful update.
type Review struct {
	ReviewID     string     `gorm:"primaryKey;column:review_id" json:"review_id"`
	SubmissionID string     `gorm:"column:submission_id" json:"submission_id"`
	UserID       string     `gorm:"column:user_id" json:"user_id"`
	Content      string     `gorm:"column:content" json:"content"`
	Rating       float64    `gorm:"column:rating" json:"rating"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    *time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at,omitempty"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Review.
func (Review) TableName() string {
	return "reviews"
}

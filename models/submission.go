package models

import "time"

// Submission represents the submissions table.
type Submission struct {
	SubmissionID string    `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	TeamID       string    `gorm:"column:team_id" json:"team_id"`
	TrackID      string    `gorm:"column:track_id" json:"track_id"`
	ProjectName  string    `gorm:"column:project_name" json:"project_name"`
	RepoURL      *string   `gorm:"column:repo_url" json:"repo_url,omitempty"`
	Description  *string   `gorm:"column:description" json:"description,omitempty"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`

	Team    *Team    `gorm:"foreignKey:TeamID;references:TeamID" json:"team,omitempty"`
	Reviews []Review `gorm:"foreignKey:SubmissionID;references:SubmissionID" json:"reviews,omitempty"`
}

// TableName specifies the table name for Submission.
func (Submission) TableName() string {
	return "submissions"
}

package models

import "time"

// Member roles recognized when resolving the team leader. Comparison is
// case-sensitive; any other value is an ordinary member.
const (
	MemberRoleLeader = "leader"
	MemberRoleOwner  = "owner"
)

// Team represents the teams table.
type Team struct {
	TeamID      string    `gorm:"primaryKey;column:team_id" json:"team_id"`
	Name        string    `gorm:"column:name" json:"name"`
	HackathonID string    `gorm:"column:hackathon_id" json:"hackathon_id"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`

	Members []TeamMember `gorm:"foreignKey:TeamID;references:TeamID" json:"members,omitempty"`
}

// TeamMember represents the team_members table.
type TeamMember struct {
	MemberID string    `gorm:"primaryKey;column:member_id" json:"member_id"`
	TeamID   string    `gorm:"column:team_id" json:"team_id"`
	UserID   string    `gorm:"column:user_id" json:"user_id"`
	Role     string    `gorm:"column:role" json:"role"`
	JoinedAt time.Time `gorm:"column:joined_at" json:"joined_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// Leader returns the first member whose role is leader or owner, or nil
// when the team has no such member.
func (t *Team) Leader() *TeamMember {
	for i := range t.Members {
		role := t.Members[i].Role
		if role == MemberRoleLeader || role == MemberRoleOwner {
			return &t.Members[i]
		}
	}
	return nil
}

// TableName overrides
func (Team) TableName() string {
	return "teams"
}

func (TeamMember) TableName() string {
	return "team_members"
}

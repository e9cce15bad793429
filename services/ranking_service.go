package services

import (
	"fmt"
	"math"
	"sort"

	"gorm.io/gorm"

	"github.com/monsieursam/hacka-builder-sub001/models"
)

// RankingEntry is one leaderboard row. Entries are computed fresh on every
// request and never persisted.
type RankingEntry struct {
	TeamID       string         `json:"team_id"`
	TeamName     string         `json:"team_name"`
	AverageScore float64        `json:"average_score"`
	MemberCount  int            `json:"member_count"`
	ProjectName  string         `json:"project_name"`
	TrackID      string         `json:"track_id"`
	Leader       *RankingLeader `json:"leader,omitempty"`
	ReviewCount  int            `json:"review_count"`
	Rank         int            `json:"rank"`
}

// RankingLeader is the public profile of the team's leader.
type RankingLeader struct {
	UserID    string  `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// RankingService loads a hackathon's submission graph and turns it into a
// leaderboard. Loading and computing are split so the computation stays a
// pure function over materialized data.
type RankingService struct {
	db *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{db: db}
}

// LoadHackathonSubmissions materializes every submission of the hackathon
// with its team, members, member profiles and reviews. Submissions come
// back in creation order, which fixes the tie-break order of the ranking.
func (s *RankingService) LoadHackathonSubmissions(hackathonID string) ([]models.Submission, error) {
	var submissions []models.Submission
	err := s.db.
		Joins("JOIN teams ON teams.team_id = submissions.team_id").
		Where("teams.hackathon_id = ?", hackathonID).
		Preload("Team.Members.User").
		Preload("Reviews").
		Order("submissions.create_at ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load hackathon submissions: %w", err)
	}
	return submissions, nil
}

// Leaderboard returns the current ranking for the hackathon. A hackathon
// with no submissions yields an empty leaderboard.
func (s *RankingService) Leaderboard(hackathonID string) ([]RankingEntry, error) {
	submissions, err := s.LoadHackathonSubmissions(hackathonID)
	if err != nil {
		return nil, err
	}
	return ComputeRanking(submissions), nil
}

// ComputeRanking turns submissions into an ordered leaderboard. A
// submission with no reviews scores 0 and still appears; the sort is stable
// on average score alone, so equal scores keep their input order.
func ComputeRanking(submissions []models.Submission) []RankingEntry {
	entries := make([]RankingEntry, 0, len(submissions))
	for i := range submissions {
		sub := &submissions[i]

		var total float64
		for _, review := range sub.Reviews {
			total += review.Rating
		}
		average := 0.0
		if len(sub.Reviews) > 0 {
			average = roundScore(total / float64(len(sub.Reviews)))
		}

		entry := RankingEntry{
			TeamID:       sub.TeamID,
			AverageScore: average,
			ProjectName:  sub.ProjectName,
			TrackID:      sub.TrackID,
			ReviewCount:  len(sub.Reviews),
		}
		if sub.Team != nil {
			entry.TeamName = sub.Team.Name
			entry.MemberCount = len(sub.Team.Members)
			if lead := sub.Team.Leader(); lead != nil {
				leader := &RankingLeader{UserID: lead.UserID}
				if lead.User != nil {
					leader.FirstName = lead.User.FirstName
					leader.LastName = lead.User.LastName
					leader.ImageURL = lead.User.ImageURL
				}
				entry.Leader = leader
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AverageScore > entries[j].AverageScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// roundScore rounds half up to one decimal place.
func roundScore(score float64) float64 {
	return math.Floor(score*10+0.5) / 10
}

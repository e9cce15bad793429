package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/monsieursam/hacka-builder-sub001/config"
	"github.com/monsieursam/hacka-builder-sub001/models"
)

// NotificationService emails team leaders about new feedback. Everything
// here is best-effort: failures are logged and dropped.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// NotifyReviewPosted mails the leader of the reviewed submission's team.
// Teams without a leader, or leaders without an email, are skipped.
func (s *NotificationService) NotifyReviewPosted(review *models.Review) {
	var team models.Team
	err := s.db.Preload("Members.User").
		Joins("JOIN submissions ON submissions.team_id = teams.team_id").
		Where("submissions.submission_id = ?", review.SubmissionID).
		Take(&team).Error
	if err != nil {
		log.Printf("Warning: failed to load team for review notification: %v", err)
		return
	}

	lead := team.Leader()
	if lead == nil || lead.User == nil || lead.User.Email == "" {
		return
	}

	subject := fmt.Sprintf("New feedback for team %s", team.Name)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>A judge just left new feedback on your team's submission. "+
			"Log in to see the full review.</p>",
		lead.User.FirstName,
	)
	if err := config.SendMail([]string{lead.User.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to send review notification: %v", err)
	}
}

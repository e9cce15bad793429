package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/monsieursam/hacka-builder-sub001/models"
)

// ReviewService owns the review rows: creation, author-scoped mutation and
// the lookups the judging UI needs. Every successful mutation reports which
// logical views changed; the caller decides how to invalidate them.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ViewPaths returns the two views a review mutation dirties: the submission
// detail page and the hackathon judging dashboard.
func ViewPaths(hackathonID, submissionID string) []string {
	return []string{
		fmt.Sprintf("/hackathons/%s/submissions/%s", hackathonID, submissionID),
		fmt.Sprintf("/hackathons/%s/judging", hackathonID),
	}
}

// Create inserts a new review for the submission. The rating is stored as
// given; duplicate (submission, user) pairs are accepted, callers gate via
// GetByUserAndSubmission when they want the one-review-per-judge convention.
func (s *ReviewService) Create(submissionID, userID, content string, rating float64) (*models.Review, []string, error) {
	hackathonID, err := s.hackathonForSubmission(submissionID)
	if err != nil {
		return nil, nil, err
	}

	review := models.Review{
		ReviewID:     uuid.NewString(),
		SubmissionID: submissionID,
		UserID:       userID,
		Content:      content,
		Rating:       rating,
		CreatedAt:    time.Now(),
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &review, ViewPaths(hackathonID, submissionID), nil
}

// Update rewrites content and rating in one statement predicated on
// (review_id, user_id), so a judge can never touch another judge's review
// even with a guessed id. Zero matched rows means ErrReviewNotFound.
func (s *ReviewService) Update(reviewID, userID, content string, rating float64) ([]string, error) {
	res := s.db.Model(&models.Review{}).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		Updates(map[string]interface{}{
			"content":    content,
			"rating":     rating,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}

	return s.viewsForReview(reviewID, userID)
}

// Delete removes the review under the same (review_id, user_id) predicate
// as Update. View paths are resolved first since the row is gone after.
func (s *ReviewService) Delete(reviewID, userID string) ([]string, error) {
	views, err := s.viewsForReview(reviewID, userID)
	if err != nil {
		return nil, err
	}

	res := s.db.Where("review_id = ? AND user_id = ?", reviewID, userID).
		Delete(&models.Review{})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}

	return views, nil
}

// GetByUserAndSubmission returns the judge's review of the submission, or
// (nil, nil) when there is none. The judging UI uses it to decide between
// the create and edit affordances.
func (s *ReviewService) GetByUserAndSubmission(userID, submissionID string) (*models.Review, error) {
	var review models.Review
	err := s.db.Where("user_id = ? AND submission_id = ?", userID, submissionID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	return &review, nil
}

// ListBySubmission returns all reviews of the submission with their authors,
// most recent feedback first.
func (s *ReviewService) ListBySubmission(submissionID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("User").
		Where("submission_id = ?", submissionID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) hackathonForSubmission(submissionID string) (string, error) {
	var hackathonID string
	err := s.db.Table("submissions").
		Select("teams.hackathon_id").
		Joins("JOIN teams ON teams.team_id = submissions.team_id").
		Where("submissions.submission_id = ?", submissionID).
		Take(&hackathonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSubmissionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve hackathon for submission: %w", err)
	}
	return hackathonID, nil
}

func (s *ReviewService) viewsForReview(reviewID, userID string) ([]string, error) {
	var row struct {
		SubmissionID string
		HackathonID  string
	}
	err := s.db.Table("reviews").
		Select("reviews.submission_id AS submission_id, teams.hackathon_id AS hackathon_id").
		Joins("JOIN submissions ON submissions.submission_id = reviews.submission_id").
		Joins("JOIN teams ON teams.team_id = submissions.team_id").
		Where("reviews.review_id = ? AND reviews.user_id = ?", reviewID, userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve views for review: %w", err)
	}
	return ViewPaths(row.HackathonID, row.SubmissionID), nil
}

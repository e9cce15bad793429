package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/monsieursam/hacka-builder-sub001/models"
)

// JudgeService is the judge registry: who may use the judge-gated
// endpoints of a hackathon.
type JudgeService struct {
	db *gorm.DB
}

func NewJudgeService(db *gorm.DB) *JudgeService {
	return &JudgeService{db: db}
}

// IsJudge reports whether the user is registered as a judge for the
// hackathon.
func (s *JudgeService) IsJudge(userID, hackathonID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Judge{}).
		Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check judge registry: %w", err)
	}
	return count > 0, nil
}

// Add registers the user as a judge. Adding an existing judge returns the
// stored entry unchanged.
func (s *JudgeService) Add(userID, hackathonID string) (*models.Judge, error) {
	var existing models.Judge
	err := s.db.Where("user_id = ? AND hackathon_id = ?", userID, hackathonID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check judge registry: %w", err)
	}

	judge := models.Judge{
		JudgeID:     uuid.NewString(),
		UserID:      userID,
		HackathonID: hackathonID,
		AddedAt:     time.Now(),
	}
	if err := s.db.Create(&judge).Error; err != nil {
		return nil, fmt.Errorf("failed to add judge: %w", err)
	}
	return &judge, nil
}

// ListByHackathon returns the hackathon's judges with their profiles.
func (s *JudgeService) ListByHackathon(hackathonID string) ([]models.Judge, error) {
	var judges []models.Judge
	err := s.db.Preload("User").
		Where("hackathon_id = ?", hackathonID).
		Order("added_at ASC").
		Find(&judges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list judges: %w", err)
	}
	return judges, nil
}

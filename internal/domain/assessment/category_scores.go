package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

// CategoryScoreSet is the per-user questionnaire aggregate. One row per user,
// overwritten on every submission.
type CategoryScoreSet struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Attention           int `gorm:"column:attention;not null;default:0" json:"attention"`
	SocialCommunication int `gorm:"column:social_communication;not null;default:0" json:"social_communication"`
	SensoryProcessing   int `gorm:"column:sensory_processing;not null;default:0" json:"sensory_processing"`
	ReadingDifficulty   int `gorm:"column:reading_difficulty;not null;default:0" json:"reading_difficulty"`
	MotorSkills         int `gorm:"column:motor_skills;not null;default:0" json:"motor_skills"`

	SubmissionID *uuid.UUID `gorm:"type:uuid;column:submission_id" json:"submission_id,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updated_at"`
}

func (CategoryScoreSet) TableName() string { return "category_score_set" }

func (s *CategoryScoreSet) Scores() presets.CategoryScores {
	if s == nil {
		return presets.CategoryScores{}
	}
	return presets.CategoryScores{
		Attention:           s.Attention,
		SocialCommunication: s.SocialCommunication,
		SensoryProcessing:   s.SensoryProcessing,
		ReadingDifficulty:   s.ReadingDifficulty,
		MotorSkills:         s.MotorSkills,
	}
}

func (s *CategoryScoreSet) SetScores(c presets.CategoryScores) {
	s.Attention = c.Attention
	s.SocialCommunication = c.SocialCommunication
	s.SensoryProcessing = c.SensoryProcessing
	s.ReadingDifficulty = c.ReadingDifficulty
	s.MotorSkills = c.MotorSkills
}

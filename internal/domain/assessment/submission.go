package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentSubmission keeps the raw questionnaire answers so scores can be
// recomputed when the catalog changes.
type AssessmentSubmission struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_submission_user_time,priority:1" json:"user_id"`

	Responses  datatypes.JSON `gorm:"column:responses;type:jsonb;not null" json:"responses"`
	AgeBracket string         `gorm:"column:age_bracket;not null;default:'unknown'" json:"age_bracket"`
	// Skipped lists response ids the catalog did not recognize.
	Skipped datatypes.JSON `gorm:"column:skipped;type:jsonb" json:"skipped,omitempty"`

	CreatedAt time.Time `gorm:"not null;index:idx_submission_user_time,priority:2" json:"created_at"`
}

func (AssessmentSubmission) TableName() string { return "assessment_submission" }

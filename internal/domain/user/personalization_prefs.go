package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserPersonalizationPrefs mirrors the latest preset decision so clients can
// fetch their interface settings without re-running classification.
type UserPersonalizationPrefs struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`

	Preset string `gorm:"column:preset;not null;default:'standard'" json:"preset"`
	// DecisionID points at the PresetDecisionRecord that produced Preset.
	DecisionID *uuid.UUID     `gorm:"type:uuid;column:decision_id" json:"decision_id,omitempty"`
	PrefsJSON  datatypes.JSON `gorm:"column:prefs_json;type:jsonb;not null" json:"prefs_json"`

	UpdatedAt time.Time      `gorm:"not null;index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserPersonalizationPrefs) TableName() string { return "user_personalization_prefs" }

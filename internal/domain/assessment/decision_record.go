package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TriggerAssessment = "assessment"
	TriggerReclassify = "reclassify"
	TriggerBackfill   = "backfill"
)

// PresetDecisionRecord is the audit trail for one classification run.
type PresetDecisionRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_preset_decision_time,priority:1" json:"user_id"`
	DecidedAt time.Time `gorm:"column:decided_at;not null;index:idx_preset_decision_time,priority:2" json:"decided_at"`

	Trigger    string  `gorm:"column:decision_trigger;not null;index" json:"trigger"`
	Preset     string  `gorm:"column:preset;not null;index" json:"preset"`
	Margin     float64 `gorm:"column:margin;not null;default:0" json:"margin"`
	AgeBracket string  `gorm:"column:age_bracket" json:"age_bracket,omitempty"`
	TrialCount int     `gorm:"column:trial_count;not null;default:0" json:"trial_count"`

	Inputs        datatypes.JSON `gorm:"column:inputs;type:jsonb" json:"inputs"`
	Scores        datatypes.JSON `gorm:"column:scores;type:jsonb;not null" json:"scores"`
	Contributions datatypes.JSON `gorm:"column:contributions;type:jsonb" json:"contributions"`
	Warnings      datatypes.JSON `gorm:"column:warnings;type:jsonb" json:"warnings,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (PresetDecisionRecord) TableName() string { return "preset_decision_record" }

package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

// FontTrial is one learner reaction to one font sample. Append-only.
type FontTrial struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_font_trial_user_time,priority:1" json:"user_id"`

	FontID     string `gorm:"column:font_id;not null;index" json:"font_id"`
	Rating     int    `gorm:"column:rating;not null" json:"rating"`
	Difficulty string `gorm:"column:difficulty;not null;default:'neutral'" json:"difficulty"`
	LatencyMs  *int64 `gorm:"column:latency_ms" json:"latency_ms,omitempty"`

	// Symptoms is stored as submitted and decoded on read.
	Symptoms datatypes.JSON `gorm:"column:symptoms;type:jsonb" json:"symptoms,omitempty"`

	CreatedAt time.Time `gorm:"not null;index:idx_font_trial_user_time,priority:2" json:"created_at"`
}

func (FontTrial) TableName() string { return "font_trial" }

// Trial converts the stored row into engine input. Undecodable symptom JSON
// is flagged rather than returned as an error.
func (t *FontTrial) Trial() presets.Trial {
	d, _ := presets.ParseDifficulty(t.Difficulty)
	out := presets.Trial{
		FontID:     t.FontID,
		Rating:     t.Rating,
		Difficulty: d,
	}
	if t.LatencyMs != nil && *t.LatencyMs > 0 {
		out.Latency = time.Duration(*t.LatencyMs) * time.Millisecond
	}
	s, err := presets.ParseSymptoms(t.Symptoms)
	if err != nil {
		out.SymptomsMalformed = true
	} else {
		out.Symptoms = s
	}
	return out
}

func Trials(rows []*FontTrial) []presets.Trial {
	out := make([]presets.Trial, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		out = append(out, r.Trial())
	}
	return out
}

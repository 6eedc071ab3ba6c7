package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the learner a token subject resolves to. Rows are created lazily on
// first assessment or font trial.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DisplayName string    `gorm:"column:display_name" json:"display_name"`
	AgeBracket  string    `gorm:"column:age_bracket;not null;default:'unknown'" json:"age_bracket"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "user" }

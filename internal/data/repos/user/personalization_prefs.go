package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type UserPersonalizationPrefsRepo interface {
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.UserPersonalizationPrefs, error)
	Upsert(dbc dbctx.Context, row *types.UserPersonalizationPrefs) error
}

type userPersonalizationPrefsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserPersonalizationPrefsRepo(db *gorm.DB, baseLog *logger.Logger) UserPersonalizationPrefsRepo {
	return &userPersonalizationPrefsRepo{db: db, log: baseLog.With("repo", "UserPersonalizationPrefsRepo")}
}

func (r *userPersonalizationPrefsRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.UserPersonalizationPrefs, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.UserPersonalizationPrefs
	if err := dbc.Resolve(r.db).Where("user_id = ?", userID).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *userPersonalizationPrefsRepo) Upsert(dbc dbctx.Context, row *types.UserPersonalizationPrefs) error {
	if row == nil || row.UserID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if len(row.PrefsJSON) == 0 {
		row.PrefsJSON = []byte("{}")
	}
	row.UpdatedAt = time.Now().UTC()
	return dbc.Resolve(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"preset",
				"decision_id",
				"prefs_json",
				"updated_at",
			}),
		}).
		Create(row).Error
}

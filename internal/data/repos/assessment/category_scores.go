package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type CategoryScoreSetRepo interface {
	GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.CategoryScoreSet, error)
	Upsert(dbc dbctx.Context, row *types.CategoryScoreSet) error
}

type categoryScoreSetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryScoreSetRepo(db *gorm.DB, baseLog *logger.Logger) CategoryScoreSetRepo {
	return &categoryScoreSetRepo{db: db, log: baseLog.With("repo", "CategoryScoreSetRepo")}
}

func (r *categoryScoreSetRepo) GetByUserID(dbc dbctx.Context, userID uuid.UUID) (*types.CategoryScoreSet, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.CategoryScoreSet
	if err := dbc.Resolve(r.db).Where("user_id = ?", userID).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *categoryScoreSetRepo) Upsert(dbc dbctx.Context, row *types.CategoryScoreSet) error {
	if row == nil || row.UserID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()
	return dbc.Resolve(r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attention",
				"social_communication",
				"sensory_processing",
				"reading_difficulty",
				"motor_skills",
				"submission_id",
				"updated_at",
			}),
		}).
		Create(row).Error
}

package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type FontTrialRepo interface {
	Create(dbc dbctx.Context, rows []*types.FontTrial) ([]*types.FontTrial, error)
	// ListByUser returns trials oldest first; limit <= 0 means all.
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.FontTrial, error)
	CountByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error)
}

type fontTrialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFontTrialRepo(db *gorm.DB, baseLog *logger.Logger) FontTrialRepo {
	return &fontTrialRepo{db: db, log: baseLog.With("repo", "FontTrialRepo")}
}

func (r *fontTrialRepo) Create(dbc dbctx.Context, rows []*types.FontTrial) ([]*types.FontTrial, error) {
	if len(rows) == 0 {
		return []*types.FontTrial{}, nil
	}
	now := time.Now().UTC()
	for i, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		if row.CreatedAt.IsZero() {
			// keep batch order stable under ORDER BY created_at
			row.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		}
	}
	if err := dbc.Resolve(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *fontTrialRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.FontTrial, error) {
	var out []*types.FontTrial
	if userID == uuid.Nil {
		return out, nil
	}
	q := dbc.Resolve(r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fontTrialRepo) CountByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if userID == uuid.Nil {
		return 0, nil
	}
	if err := dbc.Resolve(r.db).Model(&types.FontTrial{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

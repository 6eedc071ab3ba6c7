package assessment

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type PresetDecisionRepo interface {
	Create(dbc dbctx.Context, row *types.PresetDecisionRecord) (*types.PresetDecisionRecord, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PresetDecisionRecord, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.PresetDecisionRecord, error)
}

type presetDecisionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPresetDecisionRepo(db *gorm.DB, baseLog *logger.Logger) PresetDecisionRepo {
	return &presetDecisionRepo{db: db, log: baseLog.With("repo", "PresetDecisionRepo")}
}

func (r *presetDecisionRepo) Create(dbc dbctx.Context, row *types.PresetDecisionRecord) (*types.PresetDecisionRecord, error) {
	if row == nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if err := dbc.Resolve(r.db).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *presetDecisionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PresetDecisionRecord, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var row types.PresetDecisionRecord
	if err := dbc.Resolve(r.db).Where("id = ?", id).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *presetDecisionRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.PresetDecisionRecord, error) {
	var out []*types.PresetDecisionRecord
	if userID == uuid.Nil {
		return out, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if err := dbc.Resolve(r.db).
		Where("user_id = ?", userID).
		Order("decided_at DESC, created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type AssessmentSubmissionRepo interface {
	Create(dbc dbctx.Context, row *types.AssessmentSubmission) (*types.AssessmentSubmission, error)
	LatestByUser(dbc dbctx.Context, userID uuid.UUID) (*types.AssessmentSubmission, error)
}

type assessmentSubmissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentSubmissionRepo {
	return &assessmentSubmissionRepo{db: db, log: baseLog.With("repo", "AssessmentSubmissionRepo")}
}

func (r *assessmentSubmissionRepo) Create(dbc dbctx.Context, row *types.AssessmentSubmission) (*types.AssessmentSubmission, error) {
	if row == nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if len(row.Responses) == 0 {
		row.Responses = []byte("{}")
	}
	if err := dbc.Resolve(r.db).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *assessmentSubmissionRepo) LatestByUser(dbc dbctx.Context, userID uuid.UUID) (*types.AssessmentSubmission, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.AssessmentSubmission
	if err := dbc.Resolve(r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

package user

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type UserRepo interface {
	// Ensure creates the user row on first sight. A non-empty ageBracket
	// overwrites the stored one.
	Ensure(dbc dbctx.Context, userID uuid.UUID, ageBracket string) (*types.User, error)
	GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error)
	ListIDs(dbc dbctx.Context, limit int) ([]uuid.UUID, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Ensure(dbc dbctx.Context, userID uuid.UUID, ageBracket string) (*types.User, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	t := dbc.Resolve(ur.db)
	row := &types.User{ID: userID, AgeBracket: ageBracket}
	if row.AgeBracket == "" {
		row.AgeBracket = "unknown"
	}

	onConflict := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}
	if ageBracket != "" {
		onConflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"age_bracket", "updated_at"}),
		}
	}
	if err := t.Clauses(onConflict).Create(row).Error; err != nil {
		return nil, err
	}
	return ur.GetByID(dbc, userID)
}

func (ur *userRepo) GetByID(dbc dbctx.Context, userID uuid.UUID) (*types.User, error) {
	if userID == uuid.Nil {
		return nil, nil
	}
	var row types.User
	if err := dbc.Resolve(ur.db).Where("id = ?", userID).Limit(1).Find(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (ur *userRepo) ListIDs(dbc dbctx.Context, limit int) ([]uuid.UUID, error) {
	q := dbc.Resolve(ur.db).Model(&types.User{}).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var ids []uuid.UUID
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos/assessment"
	"github.com/yungbote/neuroadapt-backend/internal/data/repos/user"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type UserPersonalizationPrefsRepo = user.UserPersonalizationPrefsRepo

type CategoryScoreSetRepo = assessment.CategoryScoreSetRepo
type FontTrialRepo = assessment.FontTrialRepo
type AssessmentSubmissionRepo = assessment.AssessmentSubmissionRepo
type PresetDecisionRepo = assessment.PresetDecisionRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserPersonalizationPrefsRepo(db *gorm.DB, baseLog *logger.Logger) UserPersonalizationPrefsRepo {
	return user.NewUserPersonalizationPrefsRepo(db, baseLog)
}

func NewCategoryScoreSetRepo(db *gorm.DB, baseLog *logger.Logger) CategoryScoreSetRepo {
	return assessment.NewCategoryScoreSetRepo(db, baseLog)
}
func NewFontTrialRepo(db *gorm.DB, baseLog *logger.Logger) FontTrialRepo {
	return assessment.NewFontTrialRepo(db, baseLog)
}
func NewAssessmentSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentSubmissionRepo {
	return assessment.NewAssessmentSubmissionRepo(db, baseLog)
}
func NewPresetDecisionRepo(db *gorm.DB, baseLog *logger.Logger) PresetDecisionRepo {
	return assessment.NewPresetDecisionRepo(db, baseLog)
}

package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type Repos struct {
	User             repos.UserRepo
	PersonalizePrefs repos.UserPersonalizationPrefsRepo
	CategoryScores   repos.CategoryScoreSetRepo
	FontTrial        repos.FontTrialRepo
	Submission       repos.AssessmentSubmissionRepo
	PresetDecision   repos.PresetDecisionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             repos.NewUserRepo(db, log),
		PersonalizePrefs: repos.NewUserPersonalizationPrefsRepo(db, log),
		CategoryScores:   repos.NewCategoryScoreSetRepo(db, log),
		FontTrial:        repos.NewFontTrialRepo(db, log),
		Submission:       repos.NewAssessmentSubmissionRepo(db, log),
		PresetDecision:   repos.NewPresetDecisionRepo(db, log),
	}
}

package domain

import (
	"github.com/yungbote/neuroadapt-backend/internal/domain/assessment"
	"github.com/yungbote/neuroadapt-backend/internal/domain/user"
)

const (
	TriggerAssessment = assessment.TriggerAssessment
	TriggerReclassify = assessment.TriggerReclassify
	TriggerBackfill   = assessment.TriggerBackfill
)

type User = user.User
type UserPersonalizationPrefs = user.UserPersonalizationPrefs

type CategoryScoreSet = assessment.CategoryScoreSet
type FontTrial = assessment.FontTrial
type AssessmentSubmission = assessment.AssessmentSubmission
type PresetDecisionRecord = assessment.PresetDecisionRecord

// Trials converts stored font trials into engine input.
var Trials = assessment.Trials

// Models lists every persisted type in migration order.
func Models() []any {
	return []any{
		&User{},
		&UserPersonalizationPrefs{},
		&AssessmentSubmission{},
		&CategoryScoreSet{},
		&FontTrial{},
		&PresetDecisionRecord{},
	}
}

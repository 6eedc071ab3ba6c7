package assessment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos/testutil"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
)

func TestCategoryScoreSetRepoUpsertOverwrites(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewCategoryScoreSetRepo(db, testutil.Logger(t))
	userID := uuid.New()

	got, err := repo.GetByUserID(dbc, userID)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Upsert(dbc, &types.CategoryScoreSet{UserID: userID, Attention: 18, ReadingDifficulty: 4}))
	require.NoError(t, repo.Upsert(dbc, &types.CategoryScoreSet{UserID: userID, Attention: 3, SensoryProcessing: 14}))

	got, err = repo.GetByUserID(dbc, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Attention)
	assert.Equal(t, 14, got.SensoryProcessing)
	assert.Zero(t, got.ReadingDifficulty)

	var n int64
	require.NoError(t, tx.Model(&types.CategoryScoreSet{}).Where("user_id = ?", userID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestFontTrialRepoAppendsInOrder(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewFontTrialRepo(db, testutil.Logger(t))
	userID := uuid.New()

	latency := int64(1800)
	created, err := repo.Create(dbc, []*types.FontTrial{
		{UserID: userID, FontID: "lexend", Rating: 5, Difficulty: "easy", LatencyMs: &latency},
		{UserID: userID, FontID: "arial", Rating: 2, Difficulty: "hard", Symptoms: datatypes.JSON(`{"eye_strain":true}`)},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, uuid.Nil, created[0].ID)

	_, err = repo.Create(dbc, []*types.FontTrial{{UserID: userID, FontID: "georgia", Rating: 3}})
	require.NoError(t, err)
	_, err = repo.Create(dbc, []*types.FontTrial{{UserID: uuid.New(), FontID: "georgia", Rating: 3}})
	require.NoError(t, err)

	rows, err := repo.ListByUser(dbc, userID, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"lexend", "arial", "georgia"}, []string{rows[0].FontID, rows[1].FontID, rows[2].FontID})
	require.NotNil(t, rows[0].LatencyMs)
	assert.EqualValues(t, 1800, *rows[0].LatencyMs)
	assert.True(t, rows[1].Trial().Symptoms.EyeStrain)

	limited, err := repo.ListByUser(dbc, userID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	n, err := repo.CountByUser(dbc, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	empty, err := repo.Create(dbc, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAssessmentSubmissionRepoLatest(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewAssessmentSubmissionRepo(db, testutil.Logger(t))
	userID := uuid.New()

	latest, err := repo.LatestByUser(dbc, userID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	base := time.Now().UTC().Add(-time.Hour)
	_, err = repo.Create(dbc, &types.AssessmentSubmission{UserID: userID, Responses: datatypes.JSON(`{"a":1}`), AgeBracket: "teen", CreatedAt: base})
	require.NoError(t, err)
	second, err := repo.Create(dbc, &types.AssessmentSubmission{UserID: userID, AgeBracket: "teen", CreatedAt: base.Add(time.Minute)})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(second.Responses))

	latest, err = repo.LatestByUser(dbc, userID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
}

func TestPresetDecisionRepoHistory(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewPresetDecisionRepo(db, testutil.Logger(t))
	userID := uuid.New()

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, preset := range []string{"standard", "reading_support", "focus_calm"} {
		_, err := repo.Create(dbc, &types.PresetDecisionRecord{
			UserID:    userID,
			DecidedAt: base.Add(time.Duration(i) * time.Hour),
			Trigger:   types.TriggerAssessment,
			Preset:    preset,
			Scores:    datatypes.JSON(`{"standard":6}`),
		})
		require.NoError(t, err)
	}

	rows, err := repo.ListByUser(dbc, userID, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "focus_calm", rows[0].Preset)
	assert.Equal(t, "reading_support", rows[1].Preset)

	got, err := repo.GetByID(dbc, rows[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, types.TriggerAssessment, got.Trigger)

	missing, err := repo.GetByID(dbc, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

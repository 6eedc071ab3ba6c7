package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/neuroadapt-backend/internal/catalog"
	presetcache "github.com/yungbote/neuroadapt-backend/internal/clients/redis"
	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

const maxResponsesPerSubmission = 500

type SubmitAssessmentRequest struct {
	// Responses maps question id to the raw answer (number, numeric string,
	// boolean or yes/no text).
	Responses  map[string]any `json:"responses"`
	AgeBracket string         `json:"age_bracket,omitempty"`
}

// PresetDecisionResult is what a classification run hands back to callers.
type PresetDecisionResult struct {
	DecisionID       uuid.UUID          `json:"decision_id"`
	Trigger          string             `json:"trigger"`
	Preset           presets.Preset     `json:"preset"`
	Settings         presets.UISettings `json:"settings"`
	Margin           float64            `json:"margin"`
	Decision         presets.Decision   `json:"decision"`
	SkippedResponses []string           `json:"skipped_responses,omitempty"`
	DryRun           bool               `json:"dry_run,omitempty"`
}

type AssessmentService interface {
	SubmitAssessment(dbc dbctx.Context, req SubmitAssessmentRequest) (*PresetDecisionResult, error)

	RecordFontTrials(dbc dbctx.Context, inputs []FontTrialInput) ([]*types.FontTrial, error)
	ListFontTrials(dbc dbctx.Context, limit int) ([]*types.FontTrial, error)

	CurrentPreset(dbc dbctx.Context) (*CurrentPreset, error)
	Reclassify(dbc dbctx.Context) (*PresetDecisionResult, error)
	// ReclassifyUser re-runs classification for any user from stored data.
	// With dryRun nothing is written.
	ReclassifyUser(dbc dbctx.Context, userID uuid.UUID, trigger string, dryRun bool) (*PresetDecisionResult, error)
	DecisionHistory(dbc dbctx.Context, limit int) ([]*types.PresetDecisionRecord, error)
}

type assessmentService struct {
	db      *gorm.DB
	log     *logger.Logger
	engine  *presets.Engine
	catalog *catalog.Catalog

	userRepo       repos.UserRepo
	prefsRepo      repos.UserPersonalizationPrefsRepo
	scoreRepo      repos.CategoryScoreSetRepo
	trialRepo      repos.FontTrialRepo
	submissionRepo repos.AssessmentSubmissionRepo
	decisionRepo   repos.PresetDecisionRepo

	cache   presetcache.PresetCache
	metrics *observability.Metrics
	locks   *userLocks
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	engine *presets.Engine,
	cat *catalog.Catalog,
	userRepo repos.UserRepo,
	prefsRepo repos.UserPersonalizationPrefsRepo,
	scoreRepo repos.CategoryScoreSetRepo,
	trialRepo repos.FontTrialRepo,
	submissionRepo repos.AssessmentSubmissionRepo,
	decisionRepo repos.PresetDecisionRepo,
	cache presetcache.PresetCache,
	metrics *observability.Metrics,
) AssessmentService {
	if cache == nil {
		cache = presetcache.NoopPresetCache{}
	}
	return &assessmentService{
		db:             db,
		log:            log.With("service", "AssessmentService"),
		engine:         engine,
		catalog:        cat,
		userRepo:       userRepo,
		prefsRepo:      prefsRepo,
		scoreRepo:      scoreRepo,
		trialRepo:      trialRepo,
		submissionRepo: submissionRepo,
		decisionRepo:   decisionRepo,
		cache:          cache,
		metrics:        metrics,
		locks:          newUserLocks(),
	}
}

func (s *assessmentService) SubmitAssessment(dbc dbctx.Context, req SubmitAssessmentRequest) (*PresetDecisionResult, error) {
	userID, err := requireUser(dbc)
	if err != nil {
		return nil, err
	}
	if len(req.Responses) == 0 {
		return nil, apierr.Invalid("responses required")
	}
	if len(req.Responses) > maxResponsesPerSubmission {
		return nil, apierr.Invalid("too many responses (max %d)", maxResponsesPerSubmission)
	}

	dbc, span := s.startSpan(dbc, "assessment.submit", userID)
	defer span.End()

	unlock := s.locks.Lock(userID)
	defer unlock()

	categories, skipped := s.catalog.CategoryScores(req.Responses)
	if len(skipped) > 0 {
		s.log.Warn("assessment responses skipped", "user_id", userID, "question_ids", skipped)
	}
	ageBracket := ""
	if strings.TrimSpace(req.AgeBracket) != "" {
		ageBracket = presets.NormalizeAgeBracket(req.AgeBracket)
	}

	inputs, err := s.loadInputs(dbc, userID)
	if err != nil {
		return nil, failSpan(span, err)
	}

	responsesJSON, err := json.Marshal(req.Responses)
	if err != nil {
		return nil, failSpan(span, apierr.Invalid("responses not serializable: %v", err))
	}
	skippedJSON, _ := json.Marshal(skipped)

	var result *PresetDecisionResult
	err = s.inTx(dbc, func(inner dbctx.Context) error {
		u, err := s.userRepo.Ensure(inner, userID, ageBracket)
		if err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}
		sub, err := s.submissionRepo.Create(inner, &types.AssessmentSubmission{
			UserID:     userID,
			Responses:  datatypes.JSON(responsesJSON),
			AgeBracket: u.AgeBracket,
			Skipped:    datatypes.JSON(skippedJSON),
		})
		if err != nil {
			return fmt.Errorf("save submission: %w", err)
		}
		set := &types.CategoryScoreSet{UserID: userID, SubmissionID: &sub.ID}
		set.SetScores(categories)
		if err := s.scoreRepo.Upsert(inner, set); err != nil {
			return fmt.Errorf("save category scores: %w", err)
		}

		in := presets.Input{
			Categories: categories,
			Trials:     inputs.trials,
			Responses:  req.Responses,
			Questions:  s.catalog.Meta(),
			AgeBracket: u.AgeBracket,
		}
		result, err = s.decide(inner, userID, types.TriggerAssessment, in, false)
		return err
	})
	if err != nil {
		return nil, failSpan(span, err)
	}

	result.SkippedResponses = skipped
	span.SetAttributes(attribute.String("preset", result.Preset.String()))
	s.refreshCache(dbc, userID, result)
	return result, nil
}

// classifyInputs is the stored state a classification run reads.
type classifyInputs struct {
	user       *types.User
	scores     *types.CategoryScoreSet
	submission *types.AssessmentSubmission
	trials     []presets.Trial
}

// loadInputs fetches user, scores, latest submission and trials in parallel.
// Inside a caller transaction the loads run one at a time on that connection.
func (s *assessmentService) loadInputs(dbc dbctx.Context, userID uuid.UUID) (*classifyInputs, error) {
	out := &classifyInputs{}
	g, gctx := errgroup.WithContext(ctxutil.Default(dbc.Ctx))
	if dbc.Tx != nil {
		g.SetLimit(1)
	}
	inner := dbctx.Context{Ctx: gctx, Tx: dbc.Tx}

	g.Go(func() error {
		u, err := s.userRepo.GetByID(inner, userID)
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		out.user = u
		return nil
	})
	g.Go(func() error {
		set, err := s.scoreRepo.GetByUserID(inner, userID)
		if err != nil {
			return fmt.Errorf("load category scores: %w", err)
		}
		out.scores = set
		return nil
	})
	g.Go(func() error {
		sub, err := s.submissionRepo.LatestByUser(inner, userID)
		if err != nil {
			return fmt.Errorf("load submission: %w", err)
		}
		out.submission = sub
		return nil
	})
	g.Go(func() error {
		rows, err := s.trialRepo.ListByUser(inner, userID, 0)
		if err != nil {
			return fmt.Errorf("load font trials: %w", err)
		}
		out.trials = types.Trials(rows)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// input assembles engine input from stored state only.
func (s *assessmentService) input(ci *classifyInputs) presets.Input {
	in := presets.Input{
		Categories: ci.scores.Scores(),
		Trials:     ci.trials,
		Questions:  s.catalog.Meta(),
		AgeBracket: presets.AgeUnknown,
	}
	if ci.user != nil {
		in.AgeBracket = ci.user.AgeBracket
	}
	if ci.submission != nil && len(ci.submission.Responses) > 0 {
		var responses map[string]any
		if err := json.Unmarshal(ci.submission.Responses, &responses); err != nil {
			s.log.Warn("stored responses unreadable", "submission_id", ci.submission.ID, "error", err)
		} else {
			in.Responses = responses
		}
	}
	return in
}

type decisionInputs struct {
	Categories    presets.CategoryScores `json:"categories"`
	ResponseCount int                    `json:"response_count"`
	TrialCount    int                    `json:"trial_count"`
	AgeBracket    string                 `json:"age_bracket"`
}

// decide classifies in and, unless dryRun, writes the audit record and the
// personalization prefs it produced.
func (s *assessmentService) decide(dbc dbctx.Context, userID uuid.UUID, trigger string, in presets.Input, dryRun bool) (*PresetDecisionResult, error) {
	start := time.Now()
	d := s.engine.Classify(in)
	elapsed := time.Since(start)

	for _, c := range d.Contributions {
		for range c.Warnings {
			s.metrics.IncEvidenceSkipped(c.Analyzer)
		}
	}
	margin := d.Margin()
	s.metrics.ObservePresetDecision(d.Preset.String(), trigger, margin, elapsed)

	res := &PresetDecisionResult{
		Trigger:  trigger,
		Preset:   d.Preset,
		Settings: presets.SettingsFor(d.Preset),
		Margin:   margin,
		Decision: d,
		DryRun:   dryRun,
	}
	if dryRun {
		return res, nil
	}

	inputsJSON, _ := json.Marshal(decisionInputs{
		Categories:    in.Categories,
		ResponseCount: len(in.Responses),
		TrialCount:    len(in.Trials),
		AgeBracket:    d.AgeBracket,
	})
	scoresJSON, err := json.Marshal(d.Scores)
	if err != nil {
		return nil, fmt.Errorf("encode scores: %w", err)
	}
	contributionsJSON, err := json.Marshal(d.Contributions)
	if err != nil {
		return nil, fmt.Errorf("encode contributions: %w", err)
	}
	warningsJSON, _ := json.Marshal(d.Warnings)

	rec, err := s.decisionRepo.Create(dbc, &types.PresetDecisionRecord{
		UserID:        userID,
		DecidedAt:     d.DecidedAt,
		Trigger:       trigger,
		Preset:        d.Preset.String(),
		Margin:        margin,
		AgeBracket:    d.AgeBracket,
		TrialCount:    len(in.Trials),
		Inputs:        datatypes.JSON(inputsJSON),
		Scores:        datatypes.JSON(scoresJSON),
		Contributions: datatypes.JSON(contributionsJSON),
		Warnings:      datatypes.JSON(warningsJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("save decision: %w", err)
	}
	res.DecisionID = rec.ID

	prefsJSON, _ := json.Marshal(map[string]any{
		"preset":      d.Preset.String(),
		"ui_settings": res.Settings,
	})
	if err := s.prefsRepo.Upsert(dbc, &types.UserPersonalizationPrefs{
		UserID:     userID,
		Preset:     d.Preset.String(),
		DecisionID: &rec.ID,
		PrefsJSON:  datatypes.JSON(prefsJSON),
	}); err != nil {
		return nil, fmt.Errorf("save personalization prefs: %w", err)
	}
	return res, nil
}

func (s *assessmentService) refreshCache(dbc dbctx.Context, userID uuid.UUID, res *PresetDecisionResult) {
	if res == nil || res.DryRun {
		return
	}
	err := s.cache.Set(ctxutil.Default(dbc.Ctx), userID, &presetcache.CachedPreset{
		Preset:     res.Preset,
		Settings:   res.Settings,
		DecisionID: res.DecisionID,
		DecidedAt:  res.Decision.DecidedAt,
	})
	if err != nil {
		s.log.Warn("preset cache refresh failed", "user_id", userID, "error", err)
	}
}

func (s *assessmentService) inTx(dbc dbctx.Context, fn func(inner dbctx.Context) error) error {
	if dbc.Tx != nil {
		return fn(dbc)
	}
	return s.db.WithContext(ctxutil.Default(dbc.Ctx)).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: dbc.Ctx, Tx: tx})
	})
}

func (s *assessmentService) startSpan(dbc dbctx.Context, name string, userID uuid.UUID) (dbctx.Context, trace.Span) {
	ctx, span := observability.Tracer().Start(ctxutil.Default(dbc.Ctx), name)
	span.SetAttributes(attribute.String("user_id", userID.String()))
	return dbctx.Context{Ctx: ctx, Tx: dbc.Tx}, span
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func requireUser(dbc dbctx.Context) (uuid.UUID, error) {
	userID := ctxutil.UserID(dbc.Ctx)
	if userID == uuid.Nil {
		return uuid.Nil, apierr.ErrUnauthorized
	}
	return userID, nil
}

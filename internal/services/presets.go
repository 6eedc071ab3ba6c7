package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

const (
	PresetSourceCache    = "cache"
	PresetSourceDatabase = "database"
	PresetSourceDefault  = "default"
)

// CurrentPreset is the active preset for a user and where it was read from.
// Users with no decision yet get the standard preset with source "default".
type CurrentPreset struct {
	Preset     presets.Preset     `json:"preset"`
	Settings   presets.UISettings `json:"settings"`
	DecisionID *uuid.UUID         `json:"decision_id,omitempty"`
	DecidedAt  *time.Time         `json:"decided_at,omitempty"`
	Source     string             `json:"source"`
}

func (s *assessmentService) CurrentPreset(dbc dbctx.Context) (*CurrentPreset, error) {
	userID, err := requireUser(dbc)
	if err != nil {
		return nil, err
	}
	ctx := ctxutil.Default(dbc.Ctx)

	cached, err := s.cache.Get(ctx, userID)
	switch {
	case err != nil:
		s.metrics.IncCacheLookup("error")
		s.log.Warn("preset cache read failed", "user_id", userID, "error", err)
	case cached != nil:
		s.metrics.IncCacheLookup("hit")
		id, at := cached.DecisionID, cached.DecidedAt
		return &CurrentPreset{
			Preset:     cached.Preset,
			Settings:   presets.SettingsFor(cached.Preset),
			DecisionID: &id,
			DecidedAt:  &at,
			Source:     PresetSourceCache,
		}, nil
	default:
		s.metrics.IncCacheLookup("miss")
	}

	prefs, err := s.prefsRepo.GetByUserID(dbc, userID)
	if err != nil {
		return nil, fmt.Errorf("load personalization prefs: %w", err)
	}
	if prefs == nil || prefs.DecisionID == nil {
		return &CurrentPreset{
			Preset:   presets.Standard,
			Settings: presets.SettingsFor(presets.Standard),
			Source:   PresetSourceDefault,
		}, nil
	}

	p, ok := presets.ParsePreset(prefs.Preset)
	if !ok {
		s.log.Warn("stored preset unknown; serving standard", "user_id", userID, "preset", prefs.Preset)
		p = presets.Standard
	}
	out := &CurrentPreset{
		Preset:     p,
		Settings:   presets.SettingsFor(p),
		DecisionID: prefs.DecisionID,
		Source:     PresetSourceDatabase,
	}
	decidedAt := prefs.UpdatedAt
	if rec, err := s.decisionRepo.GetByID(dbc, *prefs.DecisionID); err != nil {
		s.log.Warn("decision lookup failed", "decision_id", *prefs.DecisionID, "error", err)
	} else if rec != nil {
		decidedAt = rec.DecidedAt
	}
	out.DecidedAt = &decidedAt

	s.refreshCache(dbc, userID, &PresetDecisionResult{
		DecisionID: *prefs.DecisionID,
		Preset:     p,
		Settings:   out.Settings,
		Decision:   presets.Decision{Preset: p, DecidedAt: decidedAt},
	})
	return out, nil
}

func (s *assessmentService) Reclassify(dbc dbctx.Context) (*PresetDecisionResult, error) {
	userID, err := requireUser(dbc)
	if err != nil {
		return nil, err
	}
	return s.ReclassifyUser(dbc, userID, types.TriggerReclassify, false)
}

func (s *assessmentService) ReclassifyUser(dbc dbctx.Context, userID uuid.UUID, trigger string, dryRun bool) (*PresetDecisionResult, error) {
	if userID == uuid.Nil {
		return nil, apierr.Invalid("user id required")
	}
	if trigger == "" {
		trigger = types.TriggerReclassify
	}

	dbc, span := s.startSpan(dbc, "preset.reclassify", userID)
	defer span.End()
	span.SetAttributes(attribute.String("trigger", trigger), attribute.Bool("dry_run", dryRun))

	unlock := s.locks.Lock(userID)
	defer unlock()

	ci, err := s.loadInputs(dbc, userID)
	if err != nil {
		return nil, failSpan(span, err)
	}
	if ci.user == nil {
		return nil, failSpan(span, fmt.Errorf("%w: no assessment data for user", apierr.ErrNotFound))
	}
	in := s.input(ci)

	var result *PresetDecisionResult
	if dryRun {
		result, err = s.decide(dbc, userID, trigger, in, true)
	} else {
		err = s.inTx(dbc, func(inner dbctx.Context) error {
			var err error
			result, err = s.decide(inner, userID, trigger, in, false)
			return err
		})
	}
	if err != nil {
		return nil, failSpan(span, err)
	}

	span.SetAttributes(attribute.String("preset", result.Preset.String()))
	s.refreshCache(dbc, userID, result)
	return result, nil
}

func (s *assessmentService) DecisionHistory(dbc dbctx.Context, limit int) ([]*types.PresetDecisionRecord, error) {
	userID, err := requireUser(dbc)
	if err != nil {
		return nil, err
	}
	rows, err := s.decisionRepo.ListByUser(dbc, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list preset decisions: %w", err)
	}
	return rows, nil
}

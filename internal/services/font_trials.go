package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
)

const maxTrialsPerBatch = 100

type FontTrialInput struct {
	FontID     string `json:"font_id"`
	Rating     int    `json:"rating"`
	Difficulty string `json:"difficulty,omitempty"`
	LatencyMs  *int64 `json:"latency_ms,omitempty"`
	// Symptoms is kept as sent. Flags outside the known set are ignored at
	// classification time; values that do not fit are skipped with a warning.
	Symptoms json.RawMessage `json:"symptoms,omitempty"`
}

func (in FontTrialInput) validate(i int) error {
	if strings.TrimSpace(in.FontID) == "" {
		return apierr.Invalid("trials[%d]: font_id required", i)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return apierr.Invalid("trials[%d]: rating must be between 1 and 5", i)
	}
	if _, ok := presets.ParseDifficulty(in.Difficulty); !ok {
		return apierr.Invalid("trials[%d]: unknown difficulty %q", i, in.Difficulty)
	}
	if in.LatencyMs != nil && *in.LatencyMs < 0 {
		return apierr.Invalid("trials[%d]: latency_ms must not be negative", i)
	}
	if raw := bytes.TrimSpace(in.Symptoms); len(raw) > 0 && !json.Valid(raw) {
		return apierr.Invalid("trials[%d]: symptoms is not valid JSON", i)
	}
	return nil
}

func (s *assessmentService) RecordFontTrials(dbc dbctx.Context, inputs []FontTrialInput) ([]*types.FontTrial, error) {
	userID, err := requireUser(dbc)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, apierr.Invalid("at least one trial required")
	}
	if len(inputs) > maxTrialsPerBatch {
		return nil, apierr.Invalid("too many trials (max %d)", maxTrialsPerBatch)
	}

	rows := make([]*types.FontTrial, 0, len(inputs))
	for i, in := range inputs {
		if err := in.validate(i); err != nil {
			return nil, err
		}
		d, _ := presets.ParseDifficulty(in.Difficulty)
		row := &types.FontTrial{
			UserID:     userID,
			FontID:     presets.NormalizeFontID(in.FontID),
			Rating:     in.Rating,
			Difficulty: d.String(),
			LatencyMs:  in.LatencyMs,
		}
		if raw := bytes.TrimSpace(in.Symptoms); len(raw) > 0 {
			row.Symptoms = datatypes.JSON(raw)
		}
		rows = append(rows, row)
	}

	var created []*types.FontTrial
	err = s.inTx(dbc, func(inner dbctx.Context) error {
		if _, err := s.userRepo.Ensure(inner, userID, ""); err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}
		out, err := s.trialRepo.Create(inner, rows)
		if err != nil {
			return fmt.Errorf("save font trials: %w", err)
		}
		created = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("font trials recorded", "user_id", userID, "count", len(created))
	return created, nil
}

func (s *assessmentService) ListFontTrials(dbc dbctx.Context, limit int) ([]*types.FontTrial, error) {
	userID, err := requireUser(dbc)
	if err != nil {
		return nil, err
	}
	rows, err := s.trialRepo.ListByUser(dbc, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list font trials: %w", err)
	}
	return rows, nil
}

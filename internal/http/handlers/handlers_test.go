package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/neuroadapt-backend/internal/catalog"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

// MockAssessmentService mocks services.AssessmentService
type MockAssessmentService struct {
	mock.Mock
}

func (m *MockAssessmentService) SubmitAssessment(dbc dbctx.Context, req services.SubmitAssessmentRequest) (*services.PresetDecisionResult, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PresetDecisionResult), args.Error(1)
}

func (m *MockAssessmentService) RecordFontTrials(dbc dbctx.Context, inputs []services.FontTrialInput) ([]*types.FontTrial, error) {
	args := m.Called(inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.FontTrial), args.Error(1)
}

func (m *MockAssessmentService) ListFontTrials(dbc dbctx.Context, limit int) ([]*types.FontTrial, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.FontTrial), args.Error(1)
}

func (m *MockAssessmentService) CurrentPreset(dbc dbctx.Context) (*services.CurrentPreset, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CurrentPreset), args.Error(1)
}

func (m *MockAssessmentService) Reclassify(dbc dbctx.Context) (*services.PresetDecisionResult, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PresetDecisionResult), args.Error(1)
}

func (m *MockAssessmentService) ReclassifyUser(dbc dbctx.Context, userID uuid.UUID, trigger string, dryRun bool) (*services.PresetDecisionResult, error) {
	args := m.Called(userID, trigger, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PresetDecisionResult), args.Error(1)
}

func (m *MockAssessmentService) DecisionHistory(dbc dbctx.Context, limit int) ([]*types.PresetDecisionRecord, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.PresetDecisionRecord), args.Error(1)
}

func newTestRouter(svc services.AssessmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ah := NewAssessmentHandler(svc)
	ph := NewPresetHandler(svc)
	r.POST("/api/assessments", ah.Submit)
	r.POST("/api/font-trials", ah.RecordFontTrials)
	r.GET("/api/font-trials", ah.ListFontTrials)
	r.GET("/api/presets", ph.List)
	r.GET("/api/presets/current", ph.Current)
	r.POST("/api/presets/reclassify", ph.Reclassify)
	r.GET("/api/presets/decisions", ph.Decisions)
	r.GET("/api/presets/:preset/settings", ph.Settings)
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmitAssessmentHandler(t *testing.T) {
	svc := new(MockAssessmentService)
	r := newTestRouter(svc)

	want := services.SubmitAssessmentRequest{Responses: map[string]any{"read_slow": float64(5)}, AgeBracket: "teen"}
	svc.On("SubmitAssessment", want).Return(&services.PresetDecisionResult{
		Preset:   presets.ReadingSupport,
		Settings: presets.SettingsFor(presets.ReadingSupport),
		Trigger:  types.TriggerAssessment,
	}, nil).Once()

	rec := do(r, http.MethodPost, "/api/assessments", want)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Decision struct {
			Preset   string `json:"preset"`
			Settings struct {
				FontFamily string `json:"font_family"`
			} `json:"settings"`
		} `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "reading_support", body.Decision.Preset)
	assert.Equal(t, "OpenDyslexic", body.Decision.Settings.FontFamily)
	svc.AssertExpectations(t)
}

func TestSubmitAssessmentHandlerErrors(t *testing.T) {
	svc := new(MockAssessmentService)
	r := newTestRouter(svc)

	rec := do(r, http.MethodPost, "/api/assessments", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"invalid_request"`)

	svc.On("SubmitAssessment", mock.Anything).Return(nil, apierr.Invalid("responses required")).Once()
	rec = do(r, http.MethodPost, "/api/assessments", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"invalid_argument"`)

	svc.On("SubmitAssessment", mock.Anything).Return(nil, errors.New("db down")).Once()
	rec = do(r, http.MethodPost, "/api/assessments", map[string]any{"responses": map[string]any{"x": 1}})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestFontTrialHandlers(t *testing.T) {
	svc := new(MockAssessmentService)
	r := newTestRouter(svc)

	svc.On("RecordFontTrials", mock.MatchedBy(func(in []services.FontTrialInput) bool {
		return len(in) == 1 && in[0].FontID == "lexend" && in[0].Rating == 4
	})).Return([]*types.FontTrial{{ID: uuid.New(), FontID: "lexend", Rating: 4}}, nil).Once()
	rec := do(r, http.MethodPost, "/api/font-trials", map[string]any{
		"trials": []map[string]any{{"font_id": "lexend", "rating": 4, "symptoms": map[string]bool{"eye_strain": true}}},
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	svc.On("ListFontTrials", 25).Return([]*types.FontTrial{}, nil).Once()
	rec = do(r, http.MethodGet, "/api/font-trials?limit=25", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"trials":[]}`, rec.Body.String())

	rec = do(r, http.MethodGet, "/api/font-trials?limit=-3", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"invalid_limit"`)
	svc.AssertExpectations(t)
}

func TestPresetHandlers(t *testing.T) {
	svc := new(MockAssessmentService)
	r := newTestRouter(svc)

	svc.On("CurrentPreset").Return(&services.CurrentPreset{
		Preset:   presets.Standard,
		Settings: presets.SettingsFor(presets.Standard),
		Source:   services.PresetSourceDefault,
	}, nil).Once()
	rec := do(r, http.MethodGet, "/api/presets/current", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"source":"default"`)

	svc.On("Reclassify").Return(nil, apierr.ErrNotFound).Once()
	rec = do(r, http.MethodPost, "/api/presets/reclassify", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	svc.On("DecisionHistory", 0).Return([]*types.PresetDecisionRecord{{Preset: "focus_calm"}}, nil).Once()
	rec = do(r, http.MethodGet, "/api/presets/decisions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"preset":"focus_calm"`)

	rec = do(r, http.MethodGet, "/api/presets/sensory_calm/settings", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reduce_motion":true`)

	rec = do(r, http.MethodGet, "/api/presets/high_contrast/settings", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(r, http.MethodGet, "/api/presets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Presets []struct {
			Preset string `json:"preset"`
		} `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Presets, len(presets.All()))
	assert.Equal(t, "standard", list.Presets[0].Preset)
	svc.AssertExpectations(t)
}

func TestQuestionAndHealthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cat, err := catalog.Default()
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/questions", NewQuestionHandler(cat).List)
	hh := NewHealthHandler(nil)
	r.GET("/healthcheck", hh.HealthCheck)
	r.GET("/readyz", hh.Ready)

	rec := do(r, http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Questions []catalog.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Questions, len(cat.Questions))

	rec = do(r, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, "ok", rec.Body.String())
	rec = do(r, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

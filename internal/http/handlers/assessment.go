package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// POST /api/assessments
func (h *AssessmentHandler) Submit(c *gin.Context) {
	var req services.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.assessments.SubmitAssessment(dbctx.Context{Ctx: c.Request.Context()}, req)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"decision": res})
}

type recordFontTrialsRequest struct {
	Trials []services.FontTrialInput `json:"trials"`
}

// POST /api/font-trials
func (h *AssessmentHandler) RecordFontTrials(c *gin.Context) {
	var req recordFontTrialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	trials, err := h.assessments.RecordFontTrials(dbctx.Context{Ctx: c.Request.Context()}, req.Trials)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondCreated(c, gin.H{"trials": trials})
}

// GET /api/font-trials?limit=
func (h *AssessmentHandler) ListFontTrials(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	trials, err := h.assessments.ListFontTrials(dbctx.Context{Ctx: c.Request.Context()}, limit)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"trials": trials})
}

// queryLimit parses ?limit=; a missing value is 0 (service default).
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_limit", errors.New("limit must be a non-negative integer"))
		return 0, false
	}
	return n, true
}

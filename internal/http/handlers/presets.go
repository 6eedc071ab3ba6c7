package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/presets"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type PresetHandler struct {
	assessments services.AssessmentService
}

func NewPresetHandler(assessments services.AssessmentService) *PresetHandler {
	return &PresetHandler{assessments: assessments}
}

// GET /api/presets/current
func (h *PresetHandler) Current(c *gin.Context) {
	cur, err := h.assessments.CurrentPreset(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"current": cur})
}

// POST /api/presets/reclassify
func (h *PresetHandler) Reclassify(c *gin.Context) {
	res, err := h.assessments.Reclassify(dbctx.Context{Ctx: c.Request.Context()})
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"decision": res})
}

// GET /api/presets/decisions?limit=
func (h *PresetHandler) Decisions(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	rows, err := h.assessments.DecisionHistory(dbctx.Context{Ctx: c.Request.Context()}, limit)
	if err != nil {
		response.RespondErr(c, err)
		return
	}
	response.RespondOK(c, gin.H{"decisions": rows})
}

// GET /api/presets/:preset/settings
func (h *PresetHandler) Settings(c *gin.Context) {
	p, ok := presets.ParsePreset(c.Param("preset"))
	if !ok {
		response.RespondError(c, http.StatusNotFound, "unknown_preset", fmt.Errorf("unknown preset %q", c.Param("preset")))
		return
	}
	response.RespondOK(c, gin.H{"preset": p, "settings": presets.SettingsFor(p)})
}

// GET /api/presets
func (h *PresetHandler) List(c *gin.Context) {
	out := make([]gin.H, 0, len(presets.All()))
	for _, p := range presets.All() {
		out = append(out, gin.H{"preset": p, "settings": presets.SettingsFor(p)})
	}
	response.RespondOK(c, gin.H{"presets": out})
}

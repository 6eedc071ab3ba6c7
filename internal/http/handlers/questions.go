package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/catalog"
	"github.com/yungbote/neuroadapt-backend/internal/http/response"
)

type QuestionHandler struct {
	catalog *catalog.Catalog
}

func NewQuestionHandler(cat *catalog.Catalog) *QuestionHandler {
	return &QuestionHandler{catalog: cat}
}

// GET /api/questions
func (h *QuestionHandler) List(c *gin.Context) {
	response.RespondOK(c, gin.H{"questions": h.catalog.Questions})
}

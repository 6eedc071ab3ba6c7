package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

// Recover turns a handler panic into a 500 envelope and an error log line.
func Recover(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if log != nil {
			fields := []interface{}{"path", c.Request.URL.Path, "panic", fmt.Sprint(recovered)}
			if td := ctxutil.GetTraceData(c.Request.Context()); td != nil {
				fields = append(fields, "request_id", td.RequestID)
			}
			log.Error("handler panic", fields...)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorEnvelope{
			Error: response.APIError{Message: "internal error", Code: "internal"},
		})
	})
}

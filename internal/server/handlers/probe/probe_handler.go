package probe

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ProbeHandler serves the liveness and readiness endpoints polled by the orchestrator.
type ProbeHandler struct {
	now func() time.Time
}

func New() *ProbeHandler {
	return &ProbeHandler{
		now: time.Now,
	}
}

// Health reports liveness with the time the request was handled.
func (h *ProbeHandler) Health(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, HealthResponse{
		Status:    StatusHealthy,
		Timestamp: h.now().UTC().Format(TimestampFormat),
	})
}

func (h *ProbeHandler) Ready(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, ReadyResponse{
		Status: StatusReady,
	})
}

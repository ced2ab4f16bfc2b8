package hello

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HelloHandler struct {
	version string
}

func New(version string) *HelloHandler {
	return &HelloHandler{
		version: version,
	}
}

func (h *HelloHandler) Index(ctx *gin.Context) {
	ctx.PureJSON(http.StatusOK, IndexResponse{
		Message: Greeting,
		Version: h.version,
	})
}

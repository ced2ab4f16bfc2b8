package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jenkins-cicd/hello-server/internal/server/handlers/api"
	"github.com/jenkins-cicd/hello-server/internal/server/handlers/hello"
	"github.com/jenkins-cicd/hello-server/internal/server/handlers/probe"
	"github.com/jenkins-cicd/hello-server/internal/server/middlewares"
)

// GET and HEAD are answered the same way, net/http drops the body for HEAD.
var readMethods = []string{http.MethodGet, http.MethodHead}

func SetupRoutes(config *Config) http.Handler {
	r := gin.New()

	helloH := hello.New(config.AppVersion)
	probeH := probe.New()

	r.Use(middlewares.Logger())
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		api.AbortWithError(ctx, http.StatusInternalServerError, api.CodeInternalError, fmt.Errorf("panic: %v", recovered))
	}))
	r.Use(middlewares.SecureHeaders(config.IsProduction()))
	r.Use(middlewares.GZIP())
	r.Use(middlewares.CORS())

	index := []gin.HandlerFunc{}
	if config.RateLimit != "" {
		index = append(index, middlewares.RateLimiter(config.RateLimit))
	}
	index = append(index, helloH.Index)

	r.Match(readMethods, "/", index...)
	r.Match(readMethods, "/health", probeH.Health)
	r.Match(readMethods, "/ready", probeH.Ready)

	// HandleMethodNotAllowed stays off, so a wrong method on a known path lands here too
	r.NoRoute(func(ctx *gin.Context) {
		ctx.PureJSON(http.StatusNotFound, api.APIError{
			Code:    api.CodeNotFound,
			Message: "not found",
		})
	})

	return r.Handler()
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

package hellosdk

import (
	"fmt"
	"runtime"
	"time"

	"github.com/jenkins-cicd/hello-server/internal/version"
)

const (
	HeaderUserAgent = "User-Agent"

	PathIndex  = "/"
	PathHealth = "/health"
	PathReady  = "/ready"

	EndpointHealth = "health"
	EndpointReady  = "ready"

	StatusHealthy = "healthy"
	StatusReady   = "ready"

	DefaultTimeout = 3 * time.Second
)

var UserAgent = fmt.Sprintf("%s/%s (%s; %s; %s)", version.AppName, version.Version, version.Revision, runtime.GOOS, runtime.GOARCH)

type IndexResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Time parses the timestamp reported by the server.
func (r *HealthResponse) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, r.Timestamp)
}

type ReadyResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

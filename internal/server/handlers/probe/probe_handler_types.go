package probe

const (
	StatusHealthy = "healthy"
	StatusReady   = "ready"

	// millisecond precision ISO-8601, always UTC
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00"
)

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ReadyResponse struct {
	Status string `json:"status"`
}

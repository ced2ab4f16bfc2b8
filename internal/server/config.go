package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
)

const (
	DefaultPort       = 3000
	DefaultAppVersion = "1.0.0"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	HTTP        HTTPConfig
	AppVersion  string // reported by GET /
	RateLimit   string // ulule formatted rate, e.g. "100-S". empty disables
	Environment string
}

type HTTPConfig struct {
	Host              string
	Port              int
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultConfig returns a config with every field set to its default.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Port:              DefaultPort,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		AppVersion:  DefaultAppVersion,
		Environment: EnvDevelopment,
	}
}

// Addr is the host:port the listener binds to.
func (c *HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

func (c *Config) Validate() error {
	// port 0 asks the kernel for a free port
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http port out of range: %d", c.HTTP.Port)
	}

	if c.AppVersion == "" {
		return errors.New("app version cannot be empty")
	}

	if c.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
			return fmt.Errorf("invalid rate limit %q: %w", c.RateLimit, err)
		}
	}

	switch strings.ToLower(c.Environment) {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	return nil
}

// ParsePort parses a listening port. Anything that is not a number in 1..65535 is rejected.
func ParsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("port is empty")
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("port %q is not a number", raw)
	}

	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}

	return port, nil
}

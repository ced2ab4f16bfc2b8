package main

import (
	"strconv"

	"github.com/spf13/viper"

	"github.com/jenkins-cicd/hello-server/internal/logging"
	"github.com/jenkins-cicd/hello-server/internal/server"
)

type config struct {
	Server *server.Config
	Log    *logging.Config

	// set when PORT was present but unusable
	portErr error
}

var envKeys = map[string]string{
	"port":        "PORT",
	"app_version": "APP_VERSION",
	"host":        "HOST",
	"log_level":   "LOG_LEVEL",
	"log_format":  "LOG_FORMAT",
	"log_file":    "LOG_FILE",
	"rate_limit":  "RATE_LIMIT",
	"environment": "ENVIRONMENT",
}

func loadConfig() (*config, error) {
	v := viper.New()

	v.SetDefault("port", strconv.Itoa(server.DefaultPort))
	v.SetDefault("app_version", server.DefaultAppVersion)
	v.SetDefault("host", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", logging.FormatText)
	v.SetDefault("log_file", "")
	v.SetDefault("rate_limit", "")
	v.SetDefault("environment", server.EnvDevelopment)

	v.AutomaticEnv()
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &config{
		Server: server.DefaultConfig(),
		Log: &logging.Config{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
			File:   v.GetString("log_file"),
		},
	}

	port, err := server.ParsePort(v.GetString("port"))
	if err != nil {
		port = server.DefaultPort
		cfg.portErr = err
	}

	cfg.Server.HTTP.Host = v.GetString("host")
	cfg.Server.HTTP.Port = port
	cfg.Server.AppVersion = v.GetString("app_version")
	cfg.Server.RateLimit = v.GetString("rate_limit")
	cfg.Server.Environment = v.GetString("environment")

	return cfg, nil
}

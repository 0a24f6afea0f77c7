// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server, e.g. "http://localhost:3000".
	// A bare host:port is accepted.
	// Env: CLIENT_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout for a single outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"CLIENT_"`

	// LogLevel of the client logger.
	// Env: CLIENT_LOG_LEVEL
	LogLevel string `env:"CLIENT_LOG_LEVEL"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
		LogLevel: "warn",
	}
}

// GetClientConfig builds the client configuration from the environment, the
// leading flags of args and defaults, in that priority. It returns the
// arguments left after the flags (the subcommand and its arguments).
//
// Flags:
//
//	-a server base URL
//	-timeout request timeout (e.g., "10s")
//	-log-level log level
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg, err := fromEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	flagsCfg := &ClientConfig{}
	fs := flag.NewFlagSet("staff-client", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Adapter.HTTPAddress, "a", "", "Server base URL")
	fs.DurationVar(&flagsCfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&flagsCfg.LogLevel, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagsCfg, defaultClientConfig()} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return nil, nil, fmt.Errorf("%w: client request timeout %s", ErrInvalidTimeout, cfg.Adapter.RequestTimeout)
	}

	return cfg, fs.Args(), nil
}

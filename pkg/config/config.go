/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/apitest/pkg/constants"
)

var (
	// ErrInvalidConfig is returned when a configuration value is unusable.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// TestConfig holds settings for the API suites and the probe command.
type TestConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	RequestTimeout       time.Duration `mapstructure:"request_timeout"`
	TestTimeout          time.Duration `mapstructure:"test_timeout"`
	UseMockServer        bool          `mapstructure:"use_mock_server"`
	LogLevel             string        `mapstructure:"log_level"`
	LogRequests          bool          `mapstructure:"log_requests"`
	LogResponses         bool          `mapstructure:"log_responses"`
	RetryMaxAttempts     int           `mapstructure:"retry_max_attempts"`
	RetryInitialInterval time.Duration `mapstructure:"retry_initial_interval"`
	RetryMaxInterval     time.Duration `mapstructure:"retry_max_interval"`
}

// envPaths are tried in order, relative to the working directory of the
// test binary, which go test sets to the package directory.
//
//nolint:gochecknoglobals
var envPaths = []string{
	"test/.env",
	"../test/.env",
	"../../test/.env",
	"../../../test/.env",
}

// LoadTestConfig loads configuration from environment variables and an
// optional .env file.  Environment variables take precedence over the file.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	return load(viper.New())
}

func load(v *viper.Viper) (*TestConfig, error) {
	v.AutomaticEnv()

	// An explicit BASE_URL selects that service unless USE_MOCK_SERVER says
	// otherwise.
	v.SetDefault("use_mock_server", !v.IsSet("base_url"))

	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("test_timeout", 5*time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_requests", false)
	v.SetDefault("log_responses", false)
	v.SetDefault("retry_max_attempts", 0)
	v.SetDefault("retry_initial_interval", 200*time.Millisecond)
	v.SetDefault("retry_max_interval", 2*time.Second)

	var config TestConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func loadEnvFile() {
	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// godotenv.Load does not override variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validate(config *TestConfig) error {
	var problems []string

	u, err := url.Parse(config.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("BASE_URL %q must be an absolute http(s) URL", config.BaseURL))
	}

	if config.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if config.TestTimeout <= 0 {
		problems = append(problems, "TEST_TIMEOUT must be positive")
	}

	if _, err := zapcore.ParseLevel(config.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a known level", config.LogLevel))
	}

	if config.RetryMaxAttempts < 0 {
		problems = append(problems, "RETRY_MAX_ATTEMPTS must not be negative")
	}

	if config.RetryInitialInterval <= 0 || config.RetryMaxInterval <= 0 {
		problems = append(problems, "RETRY_INITIAL_INTERVAL and RETRY_MAX_INTERVAL must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}

	return nil
}

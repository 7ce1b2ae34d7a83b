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

//nolint:paralleltest // t.Setenv is incompatible with parallel tests
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable, viper treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"BASE_URL", "REQUEST_TIMEOUT", "TEST_TIMEOUT", "USE_MOCK_SERVER",
		"LOG_LEVEL", "LOG_REQUESTS", "LOG_RESPONSES", "RETRY_MAX_ATTEMPTS",
		"RETRY_INITIAL_INTERVAL", "RETRY_MAX_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

// unsetEnv removes key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	config, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://jsonplaceholder.typicode.com", config.BaseURL)
	assert.Equal(t, 30*time.Second, config.RequestTimeout)
	assert.Equal(t, 5*time.Minute, config.TestTimeout)
	assert.True(t, config.UseMockServer)
	assert.Equal(t, "info", config.LogLevel)
	assert.False(t, config.LogRequests)
	assert.Zero(t, config.RetryMaxAttempts)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "http://localhost:3000")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("USE_MOCK_SERVER", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_REQUESTS", "true")
	t.Setenv("RETRY_MAX_ATTEMPTS", "3")
	t.Setenv("RETRY_INITIAL_INTERVAL", "50ms")

	config, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", config.BaseURL)
	assert.Equal(t, 5*time.Second, config.RequestTimeout)
	assert.False(t, config.UseMockServer)
	assert.Equal(t, "debug", config.LogLevel)
	assert.True(t, config.LogRequests)
	assert.Equal(t, 3, config.RetryMaxAttempts)
	assert.Equal(t, 50*time.Millisecond, config.RetryInitialInterval)
	assert.Equal(t, 2*time.Second, config.RetryMaxInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		key   string
		value string
	}{
		"relative base url": {key: "BASE_URL", value: "/posts"},
		"ftp base url":      {key: "BASE_URL", value: "ftp://example.test"},
		"negative timeout":  {key: "REQUEST_TIMEOUT", value: "-1s"},
		"negative retries":  {key: "RETRY_MAX_ATTEMPTS", value: "-1"},
		"unknown log level": {key: "LOG_LEVEL", value: "verbose"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := load(viper.New())
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestExplicitBaseURLTargetsService(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "http://127.0.0.1:1")

	config, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:1", config.BaseURL)
	assert.False(t, config.UseMockServer, "an explicit base URL must not be shadowed by the mock server")
}

func TestExplicitMockServerWinsOverBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "http://127.0.0.1:1")
	t.Setenv("USE_MOCK_SERVER", "true")

	config, err := load(viper.New())
	require.NoError(t, err)

	assert.True(t, config.UseMockServer)
}

func TestLoadTestConfigReadsEnvFile(t *testing.T) {
	clearEnv(t)
	unsetEnv(t, "LOG_LEVEL")
	unsetEnv(t, "RETRY_MAX_ATTEMPTS")
	t.Setenv("REQUEST_TIMEOUT", "9s")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "test"), 0o755))

	env := "LOG_LEVEL=debug\nRETRY_MAX_ATTEMPTS=2\nREQUEST_TIMEOUT=7s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test", ".env"), []byte(env), 0o600))

	t.Chdir(dir)

	config, err := LoadTestConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 2, config.RetryMaxAttempts)
	assert.Equal(t, 9*time.Second, config.RequestTimeout, "the environment takes precedence over the file")
}

func TestLoadTestConfigWithoutEnvFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	config, err := LoadTestConfig()
	require.NoError(t, err)

	assert.True(t, config.UseMockServer)
}

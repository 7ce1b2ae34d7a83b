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

package api

import (
	"context"
	"io"
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/unikorn-cloud/apitest/pkg/config"
	"github.com/unikorn-cloud/apitest/pkg/log"
	"github.com/unikorn-cloud/apitest/pkg/mockserver"
	"github.com/unikorn-cloud/apitest/pkg/openapi"
)

// Environment is the shared state of a suite run.
type Environment struct {
	Config    *config.TestConfig
	Logger    *zap.Logger
	Validator *openapi.Validator

	// BaseURL is where requests are sent, either the configured service or
	// the local mock server.
	BaseURL string

	server *httptest.Server
}

// NewEnvironment prepares logging, schema validation and, when configured,
// the mock server.  Logs are written to out.
func NewEnvironment(ctx context.Context, config *config.TestConfig, out io.Writer) (*Environment, error) {
	logger, err := log.New(config.LogLevel, out)
	if err != nil {
		return nil, err
	}

	validator, err := openapi.NewValidator(ctx)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Config:    config,
		Logger:    logger,
		Validator: validator,
		BaseURL:   config.BaseURL,
	}

	if config.UseMockServer {
		env.server = httptest.NewServer(mockserver.New(nil, logger.Named("mockserver")).Handler())
		env.BaseURL = env.server.URL
	}

	logger.Info("test environment ready",
		zap.String("baseURL", env.BaseURL),
		zap.Bool("mockServer", config.UseMockServer))

	return env, nil
}

// Close stops the mock server if one was started.
func (e *Environment) Close() {
	if e.server != nil {
		e.server.Close()
	}

	_ = e.Logger.Sync()
}

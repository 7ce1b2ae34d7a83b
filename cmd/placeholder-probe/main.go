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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/unikorn-cloud/apitest/pkg/client"
	"github.com/unikorn-cloud/apitest/pkg/config"
	"github.com/unikorn-cloud/apitest/pkg/constants"
	"github.com/unikorn-cloud/apitest/pkg/log"
	"github.com/unikorn-cloud/apitest/pkg/openapi"
	"github.com/unikorn-cloud/apitest/pkg/probe"
	"github.com/unikorn-cloud/apitest/pkg/transport"
)

func run() int {
	defaults, err := config.LoadTestConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var (
		baseURL  string
		logLevel string
		timeout  = defaults.RequestTimeout
		retries  int
	)

	pflag.StringVar(&baseURL, "base-url", defaults.BaseURL, "Base URL of the service to probe.")
	pflag.StringVar(&logLevel, "log-level", defaults.LogLevel, "Log level, one of debug, info, warn or error.")
	pflag.DurationVar(&timeout, "timeout", defaults.RequestTimeout, "Per request timeout.")
	pflag.IntVar(&retries, "retries", defaults.RetryMaxAttempts, "Retries for transient failures.")

	pflag.Parse()

	logger, err := log.New(logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("probe starting",
		zap.String("application", constants.Application),
		zap.String("version", constants.Version),
		zap.String("revision", constants.Revision),
		zap.String("baseURL", baseURL))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var t transport.Transport = transport.NewLogging(transport.NewResty(timeout), logger.Named("http"), defaults.LogResponses)

	if retries > 0 {
		t = transport.NewRetrying(t, transport.RetryConfig{
			MaxRetries:      retries,
			InitialInterval: defaults.RetryInitialInterval,
			MaxInterval:     defaults.RetryMaxInterval,
		}, logger)
	}

	validator, err := openapi.NewValidator(ctx)
	if err != nil {
		logger.Error("failed to load schema", zap.Error(err))
		return 2
	}

	report, err := probe.New(client.New(t, baseURL), validator, logger).Run(ctx)
	if err != nil {
		logger.Error("probe interrupted", zap.Error(err))
		return 2
	}

	if failed := report.Failed(); len(failed) > 0 {
		logger.Error("probe failed", zap.Int("failed", len(failed)), zap.Int("total", len(report.Results)))
		return 1
	}

	logger.Info("probe passed", zap.Int("total", len(report.Results)))

	return 0
}

func main() {
	os.Exit(run())
}

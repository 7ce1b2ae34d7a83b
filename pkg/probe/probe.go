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

package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/unikorn-cloud/apitest/pkg/client"
	"github.com/unikorn-cloud/apitest/pkg/openapi"
	"github.com/unikorn-cloud/apitest/pkg/placeholder"
)

var (
	// ErrUnexpectedStatus is recorded when a check sees the wrong status.
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// ErrMissingFields is recorded when an object lacks required keys.
	ErrMissingFields = errors.New("missing required fields")
)

// Check is a single read against the API.
type Check struct {
	Name           string
	Endpoint       string
	ExpectedStatus int
	// RequiredFields, when set, are checked on an object response.
	RequiredFields []string
}

// Result is the outcome of one check.
type Result struct {
	Check    Check
	Status   int
	Duration time.Duration
	Err      error
}

// Report collects the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []Result {
	var failed []Result

	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}

	return failed
}

// DefaultChecks covers the read paths the suites depend on.
func DefaultChecks() []Check {
	e := placeholder.NewEndpoints()

	return []Check{
		{Name: "list posts", Endpoint: e.Posts(), ExpectedStatus: http.StatusOK},
		{Name: "get post", Endpoint: e.Post(1), ExpectedStatus: http.StatusOK, RequiredFields: placeholder.PostFields},
		{Name: "list post comments", Endpoint: e.PostComments(1), ExpectedStatus: http.StatusOK},
		{Name: "list users", Endpoint: e.Users(), ExpectedStatus: http.StatusOK},
		{Name: "get user", Endpoint: e.User(1), ExpectedStatus: http.StatusOK, RequiredFields: placeholder.UserFields},
		{Name: "missing user", Endpoint: e.User(999999), ExpectedStatus: http.StatusNotFound},
	}
}

// Prober runs checks sequentially through a client.
type Prober struct {
	client    *client.APIClient
	validator *openapi.Validator
	logger    *zap.Logger
	checks    []Check
}

// New returns a prober running DefaultChecks.  A nil validator skips schema
// validation.
func New(client *client.APIClient, validator *openapi.Validator, logger *zap.Logger) *Prober {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Prober{
		client:    client,
		validator: validator,
		logger:    logger,
		checks:    DefaultChecks(),
	}
}

// WithChecks replaces the checks to run.
func (p *Prober) WithChecks(checks ...Check) *Prober {
	p.checks = checks
	return p
}

// Run executes every check, a failing check does not stop the run.  The
// returned error is non-nil only when the context is cancelled.
func (p *Prober) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	for _, check := range p.checks {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result := p.run(ctx, check)

		if result.Err != nil {
			p.logger.Error("check failed",
				zap.String("check", check.Name),
				zap.String("endpoint", check.Endpoint),
				zap.Int("status", result.Status),
				zap.Error(result.Err))
		} else {
			p.logger.Info("check passed",
				zap.String("check", check.Name),
				zap.String("endpoint", check.Endpoint),
				zap.Duration("duration", result.Duration))
		}

		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (p *Prober) run(ctx context.Context, check Check) Result {
	result := Result{
		Check: check,
	}

	start := time.Now()
	resp, err := p.client.Fetch(ctx, check.Endpoint, nil)
	result.Duration = time.Since(start)

	if err != nil {
		result.Err = err
		return result
	}

	result.Status = resp.StatusCode()

	if result.Status != check.ExpectedStatus {
		result.Err = fmt.Errorf("%w: expected %d, got %d", ErrUnexpectedStatus, check.ExpectedStatus, result.Status)
		return result
	}

	if len(check.RequiredFields) > 0 {
		var object map[string]any

		if err := resp.JSON(&object); err != nil {
			result.Err = fmt.Errorf("decoding response: %w", err)
			return result
		}

		if missing := placeholder.MissingFields(object, check.RequiredFields...); len(missing) > 0 {
			result.Err = fmt.Errorf("%w: %v", ErrMissingFields, missing)
			return result
		}
	}

	if p.validator != nil {
		if err := p.validator.ValidateResponse(ctx, http.MethodGet, check.Endpoint, resp); err != nil {
			result.Err = err
		}
	}

	return result
}

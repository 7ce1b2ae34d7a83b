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

package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ErrRetryableStatus is reported to the backoff loop when the server answers
// with a status code configured as retryable.
var ErrRetryableStatus = errors.New("retryable status code")

// RetryConfig configures a Retrying transport.
type RetryConfig struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int

	// InitialInterval is the delay before the first retry.
	InitialInterval time.Duration

	// MaxInterval caps the delay between attempts.
	MaxInterval time.Duration

	// StatusCodes are response codes that trigger a retry.
	StatusCodes []int
}

// DefaultRetryStatusCodes are retried when RetryConfig.StatusCodes is empty.
func DefaultRetryStatusCodes() []int {
	return []int{
		http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	}
}

// Retrying wraps a Transport with exponential backoff.  It never alters the
// request, and once attempts are exhausted the last response (or error) is
// returned exactly as the wrapped transport produced it.
//
// Transport errors are retried only for GET, PUT and DELETE. A POST or PATCH
// that fails in flight may already have been applied, so its error is
// returned after the first attempt. Retryable status codes are retried for
// every method.
type Retrying struct {
	next   Transport
	config RetryConfig
	logger *zap.Logger
}

// NewRetrying wraps next.  A nil logger disables retry logging.
func NewRetrying(next Transport, config RetryConfig, logger *zap.Logger) *Retrying {
	if len(config.StatusCodes) == 0 {
		config.StatusCodes = DefaultRetryStatusCodes()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Retrying{
		next:   next,
		config: config,
		logger: logger.With(zap.String("component", "retry")),
	}
}

func (r *Retrying) Get(ctx context.Context, url string, options Options) (Response, error) {
	return r.retry(ctx, http.MethodGet, url, func() (Response, error) {
		return r.next.Get(ctx, url, options)
	})
}

func (r *Retrying) Post(ctx context.Context, url string, options Options) (Response, error) {
	return r.retry(ctx, http.MethodPost, url, func() (Response, error) {
		return r.next.Post(ctx, url, options)
	})
}

func (r *Retrying) Put(ctx context.Context, url string, options Options) (Response, error) {
	return r.retry(ctx, http.MethodPut, url, func() (Response, error) {
		return r.next.Put(ctx, url, options)
	})
}

func (r *Retrying) Patch(ctx context.Context, url string, options Options) (Response, error) {
	return r.retry(ctx, http.MethodPatch, url, func() (Response, error) {
		return r.next.Patch(ctx, url, options)
	})
}

func (r *Retrying) Delete(ctx context.Context, url string, options Options) (Response, error) {
	return r.retry(ctx, http.MethodDelete, url, func() (Response, error) {
		return r.next.Delete(ctx, url, options)
	})
}

func (r *Retrying) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0

	if r.config.InitialInterval > 0 {
		b.InitialInterval = r.config.InitialInterval
	}

	if r.config.MaxInterval > 0 {
		b.MaxInterval = r.config.MaxInterval
	}

	//nolint:gosec // MaxRetries is validated as non-negative by config
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(r.config.MaxRetries, 0))), ctx)
}

func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodDelete:
		return true
	}

	return false
}

func (r *Retrying) retry(ctx context.Context, method, url string, send func() (Response, error)) (Response, error) {
	var (
		resp    Response
		sendErr error
	)

	attempt := 0

	operation := func() error {
		attempt++

		resp, sendErr = send()
		if sendErr != nil {
			if !idempotent(method) {
				return backoff.Permanent(sendErr)
			}

			return sendErr
		}

		if slices.Contains(r.config.StatusCodes, resp.StatusCode()) {
			return fmt.Errorf("%w: %d", ErrRetryableStatus, resp.StatusCode())
		}

		return nil
	}

	notify := func(err error, delay time.Duration) {
		r.logger.Warn("request failed, retrying",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err))
	}

	err := backoff.RetryNotify(operation, r.backOff(ctx), notify)

	// The backoff loop stops early on context cancellation without a
	// final attempt, surface that instead of a stale result.
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		return nil, ctxErr
	}

	if sendErr != nil {
		return nil, sendErr
	}

	return resp, nil
}

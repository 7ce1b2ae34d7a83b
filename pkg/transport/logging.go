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
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Logging is a Transport that logs every exchange it forwards.
// Responses and errors are passed through untouched.
type Logging struct {
	next   Transport
	logger *zap.Logger
	bodies bool
}

// NewLogging wraps next.  When bodies is set response bodies are logged at
// debug level as well.
func NewLogging(next Transport, logger *zap.Logger, bodies bool) *Logging {
	return &Logging{
		next:   next,
		logger: logger,
		bodies: bodies,
	}
}

func (l *Logging) Get(ctx context.Context, url string, options Options) (Response, error) {
	return l.log(http.MethodGet, url, func() (Response, error) {
		return l.next.Get(ctx, url, options)
	})
}

func (l *Logging) Post(ctx context.Context, url string, options Options) (Response, error) {
	return l.log(http.MethodPost, url, func() (Response, error) {
		return l.next.Post(ctx, url, options)
	})
}

func (l *Logging) Put(ctx context.Context, url string, options Options) (Response, error) {
	return l.log(http.MethodPut, url, func() (Response, error) {
		return l.next.Put(ctx, url, options)
	})
}

func (l *Logging) Patch(ctx context.Context, url string, options Options) (Response, error) {
	return l.log(http.MethodPatch, url, func() (Response, error) {
		return l.next.Patch(ctx, url, options)
	})
}

func (l *Logging) Delete(ctx context.Context, url string, options Options) (Response, error) {
	return l.log(http.MethodDelete, url, func() (Response, error) {
		return l.next.Delete(ctx, url, options)
	})
}

func (l *Logging) log(method, url string, send func() (Response, error)) (Response, error) {
	start := time.Now()
	resp, err := send()
	duration := time.Since(start)

	if err != nil {
		l.logger.Warn("request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Duration("duration", duration),
			zap.Error(err))

		return nil, err
	}

	l.logger.Info("request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", duration))

	if l.bodies && len(resp.Body()) > 0 {
		l.logger.Debug("response body",
			zap.String("method", method),
			zap.String("url", url),
			zap.ByteString("body", resp.Body()))
	}

	return resp, nil
}

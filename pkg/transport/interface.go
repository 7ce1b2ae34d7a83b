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

//go:generate mockgen -source=interface.go -destination=mock/interface.go -package=mock

package transport

import (
	"context"
	"net/http"
)

// Options are forwarded verbatim with every request.
type Options struct {
	// Data is the request body, serialized as JSON by the implementation.
	// It is ignored for GET and DELETE.
	Data any

	// Headers are set on the outgoing request.
	Headers map[string]string
}

// Response is the minimal response contract callers inspect.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Header returns the response headers.
	Header() http.Header

	// Body returns the raw response body.
	Body() []byte

	// JSON decodes the response body into v.
	JSON(v any) error
}

// Transport sends one request per call and returns the response unmodified.
// Non-2xx statuses are not errors, only failures to complete the exchange
// (DNS, connection, timeout) are.
type Transport interface {
	Get(ctx context.Context, url string, options Options) (Response, error)
	Post(ctx context.Context, url string, options Options) (Response, error)
	Put(ctx context.Context, url string, options Options) (Response, error)
	Patch(ctx context.Context, url string, options Options) (Response, error)
	Delete(ctx context.Context, url string, options Options) (Response, error)
}

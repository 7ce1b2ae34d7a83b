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

// Package client provides the request wrapper the API suites are written
// against.  Every call is a single request to base URL + endpoint, with
// headers and body handed to the transport exactly as supplied.  The
// wrapper never inspects responses, retries, or translates errors: status
// codes are for the caller to assert on.
package client

import (
	"context"

	"github.com/unikorn-cloud/apitest/pkg/constants"
	"github.com/unikorn-cloud/apitest/pkg/transport"
)

// RequestOptions are per-call options.  The HTTP verb is selected by the
// method called, not by an option.
type RequestOptions struct {
	Headers map[string]string
}

func (o *RequestOptions) headers() map[string]string {
	if o == nil {
		return nil
	}

	return o.Headers
}

// APIClient issues requests against a fixed base URL.
type APIClient struct {
	transport transport.Transport
	baseURL   string
}

// New returns a client that sends through t.  An empty baseURL selects
// constants.DefaultBaseURL.
func New(t transport.Transport, baseURL string) *APIClient {
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	return &APIClient{
		transport: t,
		baseURL:   baseURL,
	}
}

// BaseURL returns the base URL requests are issued against.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// url concatenates without normalising separators.
func (c *APIClient) url(endpoint string) string {
	return c.baseURL + endpoint
}

// Fetch issues a GET.
func (c *APIClient) Fetch(ctx context.Context, endpoint string, options *RequestOptions) (transport.Response, error) {
	return c.transport.Get(ctx, c.url(endpoint), transport.Options{
		Headers: options.headers(),
	})
}

// Create issues a POST with data as the body.
func (c *APIClient) Create(ctx context.Context, endpoint string, data any, options *RequestOptions) (transport.Response, error) {
	return c.transport.Post(ctx, c.url(endpoint), transport.Options{
		Data:    data,
		Headers: options.headers(),
	})
}

// Replace issues a PUT with data as the body.
func (c *APIClient) Replace(ctx context.Context, endpoint string, data any, options *RequestOptions) (transport.Response, error) {
	return c.transport.Put(ctx, c.url(endpoint), transport.Options{
		Data:    data,
		Headers: options.headers(),
	})
}

// PartialUpdate issues a PATCH with data as the body.
func (c *APIClient) PartialUpdate(ctx context.Context, endpoint string, data any, options *RequestOptions) (transport.Response, error) {
	return c.transport.Patch(ctx, c.url(endpoint), transport.Options{
		Data:    data,
		Headers: options.headers(),
	})
}

// Remove issues a DELETE.
func (c *APIClient) Remove(ctx context.Context, endpoint string, options *RequestOptions) (transport.Response, error) {
	return c.transport.Delete(ctx, c.url(endpoint), transport.Options{
		Headers: options.headers(),
	})
}

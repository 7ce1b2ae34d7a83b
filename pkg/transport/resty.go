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
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Resty adapts resty.Client to the Transport interface.
type Resty struct {
	client *resty.Client
}

// NewResty creates a new Resty transport with the specified timeout.
// A zero timeout leaves requests bounded only by their context.
func NewResty(timeout time.Duration) *Resty {
	c := resty.New()

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return NewRestyFromClient(c)
}

// NewRestyFromClient wraps an already configured resty.Client.
func NewRestyFromClient(client *resty.Client) *Resty {
	return &Resty{
		client: client,
	}
}

func (r *Resty) Get(ctx context.Context, url string, options Options) (Response, error) {
	return r.do(ctx, http.MethodGet, url, options.Headers, nil)
}

func (r *Resty) Post(ctx context.Context, url string, options Options) (Response, error) {
	return r.do(ctx, http.MethodPost, url, options.Headers, options.Data)
}

func (r *Resty) Put(ctx context.Context, url string, options Options) (Response, error) {
	return r.do(ctx, http.MethodPut, url, options.Headers, options.Data)
}

func (r *Resty) Patch(ctx context.Context, url string, options Options) (Response, error) {
	return r.do(ctx, http.MethodPatch, url, options.Headers, options.Data)
}

func (r *Resty) Delete(ctx context.Context, url string, options Options) (Response, error) {
	return r.do(ctx, http.MethodDelete, url, options.Headers, nil)
}

func (r *Resty) do(ctx context.Context, method, url string, headers map[string]string, data any) (Response, error) {
	req := r.client.R().SetContext(ctx)

	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	if data != nil {
		req.SetBody(data)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}

	return &restyResponse{resp: resp}, nil
}

// restyResponse adapts resty.Response to the Response interface.
type restyResponse struct {
	resp *resty.Response
}

func (r *restyResponse) StatusCode() int     { return r.resp.StatusCode() }
func (r *restyResponse) Header() http.Header { return r.resp.Header() }
func (r *restyResponse) Body() []byte        { return r.resp.Body() }

func (r *restyResponse) JSON(v any) error {
	return json.Unmarshal(r.resp.Body(), v)
}

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

// Package openapi validates API responses against the OpenAPI description of
// the placeholder service.  The description is embedded so the suites carry
// their own notion of what a correct response looks like, independent of the
// server under test.
package openapi

//go:generate go tool oapi-codegen -config types.config.yaml schema.yaml

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"

	"github.com/unikorn-cloud/apitest/pkg/transport"
)

var (
	//go:embed schema.yaml
	schema []byte

	// ErrNoRoute is returned when the endpoint is not described by the schema.
	ErrNoRoute = errors.New("no route for request")
)

// Schema returns the raw embedded OpenAPI document.
func Schema() []byte {
	return schema
}

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(schema)
	if err != nil {
		return nil, fmt.Errorf("loading openapi schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating openapi schema: %w", err)
	}

	return doc, nil
}

// Validator checks responses against the schema.
type Validator struct {
	router routers.Router
}

// NewValidator loads the embedded schema and prepares a router for it.
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating openapi router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// ValidateResponse checks that the status, content type and body of a
// response to method endpoint are what the schema documents.  The endpoint is
// the path relative to the base URL, as passed to the client.
func (v *Validator) ValidateResponse(ctx context.Context, method, endpoint string, response transport.Response) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating validation request: %w", err)
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("%w %s %s: %w", ErrNoRoute, method, endpoint, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: response.StatusCode(),
		Header: response.Header(),
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
			MultiError:            true,
		},
	}

	input.SetBodyBytes(response.Body())

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	return nil
}

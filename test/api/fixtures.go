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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"

	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/apitest/pkg/transport"
)

// ExpectStatus asserts the response status, reporting the body on mismatch.
func ExpectStatus(resp transport.Response, status int) {
	ExpectWithOffset(1, resp.StatusCode()).To(Equal(status), "unexpected status, body: %s", string(resp.Body()))
}

// DecodeObject decodes a JSON object response.
func DecodeObject(resp transport.Response) map[string]any {
	var object map[string]any

	ExpectWithOffset(1, resp.JSON(&object)).To(Succeed(), "response should be a JSON object")

	return object
}

// DecodeList decodes a JSON array of objects.
func DecodeList(resp transport.Response) []map[string]any {
	var list []map[string]any

	ExpectWithOffset(1, resp.JSON(&list)).To(Succeed(), "response should be a JSON array")

	return list
}

// DecodeInto decodes the response into a typed value.
func DecodeInto[T any](resp transport.Response) T {
	var v T

	ExpectWithOffset(1, resp.JSON(&v)).To(Succeed(), "response should decode into %T", v)

	return v
}

// ExpectMatchesSchema validates the response against the OpenAPI document.
func (e *Environment) ExpectMatchesSchema(ctx context.Context, method, endpoint string, resp transport.Response) {
	ExpectWithOffset(1, e.Validator.ValidateResponse(ctx, method, endpoint, resp)).To(Succeed())
}

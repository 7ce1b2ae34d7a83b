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

package probe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unikorn-cloud/apitest/pkg/client"
	"github.com/unikorn-cloud/apitest/pkg/mockserver"
	"github.com/unikorn-cloud/apitest/pkg/openapi"
	"github.com/unikorn-cloud/apitest/pkg/probe"
	"github.com/unikorn-cloud/apitest/pkg/transport"
)

func newClient(t *testing.T, handler http.Handler) *client.APIClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return client.New(transport.NewResty(5*time.Second), server.URL)
}

func TestRunAgainstMockServer(t *testing.T) {
	t.Parallel()

	validator, err := openapi.NewValidator(t.Context())
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)

	report, err := probe.New(newClient(t, mockserver.New(nil, nil).Handler()), validator, zap.New(core)).Run(t.Context())
	require.NoError(t, err)

	require.Len(t, report.Results, len(probe.DefaultChecks()))
	assert.Empty(t, report.Failed())

	for _, result := range report.Results {
		assert.Equal(t, result.Check.ExpectedStatus, result.Status, result.Check.Name)
	}

	assert.Equal(t, len(probe.DefaultChecks()), logs.FilterMessage("check passed").Len())
}

func TestRunReportsUnexpectedStatus(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	report, err := probe.New(newClient(t, handler), nil, nil).Run(t.Context())
	require.NoError(t, err)

	failed := report.Failed()
	require.Len(t, failed, len(probe.DefaultChecks()))

	for _, result := range failed {
		require.ErrorIs(t, result.Err, probe.ErrUnexpectedStatus)
		assert.Equal(t, http.StatusServiceUnavailable, result.Status)
	}
}

func TestRunReportsMissingFields(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"title":"only a title"}`))
	})

	check := probe.Check{
		Name:           "get post",
		Endpoint:       "/posts/1",
		ExpectedStatus: http.StatusOK,
		RequiredFields: []string{"id", "userId", "title", "body"},
	}

	report, err := probe.New(newClient(t, handler), nil, nil).WithChecks(check).Run(t.Context())
	require.NoError(t, err)

	failed := report.Failed()
	require.Len(t, failed, 1)
	require.ErrorIs(t, failed[0].Err, probe.ErrMissingFields)
	assert.Contains(t, failed[0].Err.Error(), "body")
	assert.Contains(t, failed[0].Err.Error(), "userId")
}

func TestRunReportsSchemaViolations(t *testing.T) {
	t.Parallel()

	validator, err := openapi.NewValidator(t.Context())
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"one","userId":1,"title":"t","body":"b"}`))
	})

	check := probe.Check{
		Name:           "get post",
		Endpoint:       "/posts/1",
		ExpectedStatus: http.StatusOK,
	}

	report, err := probe.New(newClient(t, handler), validator, nil).WithChecks(check).Run(t.Context())
	require.NoError(t, err)
	require.Len(t, report.Failed(), 1)
}

func TestRunStopsOnCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	report, err := probe.New(newClient(t, mockserver.New(nil, nil).Handler()), nil, nil).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}

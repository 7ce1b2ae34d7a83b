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

package api

import (
	"github.com/unikorn-cloud/apitest/pkg/client"
	"github.com/unikorn-cloud/apitest/pkg/transport"
)

// NewTransport builds the transport stack described by the configuration:
// resty at the bottom, then per attempt logging, then retries.
func (e *Environment) NewTransport() transport.Transport {
	var t transport.Transport = transport.NewResty(e.Config.RequestTimeout)

	if e.Config.LogRequests {
		t = transport.NewLogging(t, e.Logger.Named("http"), e.Config.LogResponses)
	}

	if e.Config.RetryMaxAttempts > 0 {
		t = transport.NewRetrying(t, transport.RetryConfig{
			MaxRetries:      e.Config.RetryMaxAttempts,
			InitialInterval: e.Config.RetryInitialInterval,
			MaxInterval:     e.Config.RetryMaxInterval,
		}, e.Logger)
	}

	return t
}

// NewAPIClient returns a fresh wrapper bound to the environment's base URL.
func (e *Environment) NewAPIClient() *client.APIClient {
	return client.New(e.NewTransport(), e.BaseURL)
}

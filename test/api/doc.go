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

// Package api provides the harness shared by the placeholder API suites.
//
// The suites talk to the service through client.APIClient, the same thin
// wrapper the probe command uses, so a failing suite exercises exactly the
// request path a caller would.  Assertions live in the suites; the wrapper
// never inspects a response.
//
// By default an in-process mock of the service is started and every request
// sees the same canned data, so create, update and delete cases cannot
// interfere with each other.  Setting USE_MOCK_SERVER=false runs the suites
// against BASE_URL instead.
package api

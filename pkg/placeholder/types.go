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

// Package placeholder describes the remote resources the suites exercise:
// their wire shapes, where they live, and how to build request payloads.
package placeholder

import (
	"regexp"

	"github.com/unikorn-cloud/apitest/pkg/openapi"
)

// EmailPattern matches what the suites accept as a well formed email.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required keys per resource.
//
//nolint:gochecknoglobals
var (
	PostFields    = []string{"id", "userId", "title", "body"}
	UserFields    = []string{"id", "name", "username", "email"}
	CommentFields = []string{"id", "postId", "name", "email", "body"}
)

// Resource models are generated from the OpenAPI document.
type (
	Post    = openapi.Post
	User    = openapi.User
	Address = openapi.Address
	Geo     = openapi.Geo
	Company = openapi.Company
	Comment = openapi.Comment
)

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

package placeholder

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

func id(v int) string {
	return url.PathEscape(strconv.Itoa(v))
}

// Post endpoints.
func (e *Endpoints) Posts() string {
	return "/posts"
}

func (e *Endpoints) Post(postID int) string {
	return fmt.Sprintf("/posts/%s", id(postID))
}

func (e *Endpoints) PostComments(postID int) string {
	return fmt.Sprintf("/posts/%s/comments", id(postID))
}

func (e *Endpoints) PostsByUser(userID int) string {
	query := url.Values{}
	query.Set("userId", strconv.Itoa(userID))

	return "/posts?" + query.Encode()
}

// PostsPage uses the json-server pagination parameters.
func (e *Endpoints) PostsPage(page, limit int) string {
	query := url.Values{}
	query.Set("_page", strconv.Itoa(page))
	query.Set("_limit", strconv.Itoa(limit))

	return "/posts?" + query.Encode()
}

// Comment endpoints.
func (e *Endpoints) Comments() string {
	return "/comments"
}

func (e *Endpoints) CommentsForPost(postID int) string {
	query := url.Values{}
	query.Set("postId", strconv.Itoa(postID))

	return "/comments?" + query.Encode()
}

// User endpoints.
func (e *Endpoints) Users() string {
	return "/users"
}

func (e *Endpoints) User(userID int) string {
	return fmt.Sprintf("/users/%s", id(userID))
}

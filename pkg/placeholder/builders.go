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
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateTestID returns a short unique identifier for test payloads.
func GenerateTestID() string {
	return generateRandomName("test")
}

// PostPayloadBuilder builds post payloads for testing.
type PostPayloadBuilder struct {
	payload map[string]any
}

// NewPostPayload creates a post payload with the defaults used by the suites.
func NewPostPayload() *PostPayloadBuilder {
	return &PostPayloadBuilder{
		payload: map[string]any{
			"title":  "Test Post",
			"body":   "This is a test post",
			"userId": 1,
		},
	}
}

// WithTitle sets the post title.
func (b *PostPayloadBuilder) WithTitle(title string) *PostPayloadBuilder {
	b.payload["title"] = title
	return b
}

// WithBody sets the post body.
func (b *PostPayloadBuilder) WithBody(body string) *PostPayloadBuilder {
	b.payload["body"] = body
	return b
}

// WithUserID sets the owning user.
func (b *PostPayloadBuilder) WithUserID(userID int) *PostPayloadBuilder {
	b.payload["userId"] = userID
	return b
}

// WithUniqueTitle suffixes the title with a random identifier.
func (b *PostPayloadBuilder) WithUniqueTitle() *PostPayloadBuilder {
	b.payload["title"] = fmt.Sprintf("%v %s", b.payload["title"], GenerateTestID())
	return b
}

// Without removes a field, for testing partial payloads.
func (b *PostPayloadBuilder) Without(field string) *PostPayloadBuilder {
	delete(b.payload, field)
	return b
}

// Build returns the payload map.
func (b *PostPayloadBuilder) Build() map[string]any {
	return b.payload
}

// UserPayloadBuilder builds user payloads for testing.
type UserPayloadBuilder struct {
	payload map[string]any
}

// NewUserPayload creates a user payload with the defaults used by the suites.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: map[string]any{
			"name":     "Test User",
			"username": "testuser",
			"email":    "test@example.com",
			"address": map[string]any{
				"street":  "123 Main St",
				"city":    "Test City",
				"zipcode": "12345",
			},
		},
	}
}

// WithName sets the display name.
func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithUsername sets the username.
func (b *UserPayloadBuilder) WithUsername(username string) *UserPayloadBuilder {
	b.payload["username"] = username
	return b
}

// WithEmail sets the email address.
func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.payload["email"] = email
	return b
}

// WithAddress replaces the address.
func (b *UserPayloadBuilder) WithAddress(street, city, zipcode string) *UserPayloadBuilder {
	b.payload["address"] = map[string]any{
		"street":  street,
		"city":    city,
		"zipcode": zipcode,
	}

	return b
}

// WithoutAddress drops the optional address.
func (b *UserPayloadBuilder) WithoutAddress() *UserPayloadBuilder {
	delete(b.payload, "address")
	return b
}

// Build returns the payload map.
func (b *UserPayloadBuilder) Build() map[string]any {
	return b.payload
}

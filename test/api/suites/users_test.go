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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/apitest/pkg/placeholder"
	"github.com/unikorn-cloud/apitest/test/api"
)

var _ = Describe("Users API", func() {
	Context("When reading users", func() {
		It("should fetch all users", func() {
			resp, err := apiClient.Fetch(ctx, endpoints.Users(), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			users := api.DecodeList(resp)
			Expect(users).NotTo(BeEmpty(), "user list should not be empty")

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoints.Users(), resp)
		})

		It("should fetch a single user by ID", func() {
			userID := 1

			resp, err := apiClient.Fetch(ctx, endpoints.User(userID), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			user := api.DecodeObject(resp)
			Expect(user).To(HaveKeyWithValue("id", BeNumerically("==", userID)))
			Expect(user).To(HaveKey("name"))
			Expect(user).To(HaveKey("email"))
			Expect(user).To(HaveKey("username"))

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoints.User(userID), resp)
		})

		It("should handle 404 for non-existent user", func() {
			resp, err := apiClient.Fetch(ctx, endpoints.User(999999), nil)
			Expect(err).NotTo(HaveOccurred(), "a 404 is a response, not a transport error")
			api.ExpectStatus(resp, http.StatusNotFound)

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoints.User(999999), resp)
		})

		It("should validate user properties", func() {
			resp, err := apiClient.Fetch(ctx, endpoints.User(1), nil)
			Expect(err).NotTo(HaveOccurred())

			user := api.DecodeObject(resp)
			Expect(user).To(HaveKey("id"))
			Expect(user["name"]).To(BeAssignableToTypeOf(""), "name should be a string")
			Expect(user["email"]).To(BeAssignableToTypeOf(""), "email should be a string")
			Expect(user["email"]).To(MatchRegexp(placeholder.EmailPattern.String()))
		})
	})

	Context("When writing users", func() {
		It("should create a new user", func() {
			payload := placeholder.NewUserPayload().Build()

			resp, err := apiClient.Create(ctx, endpoints.Users(), payload, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusCreated)

			created := api.DecodeObject(resp)
			Expect(created).To(HaveKey("id"))
			Expect(created).To(HaveKeyWithValue("name", payload["name"]))
			Expect(created).To(HaveKeyWithValue("email", payload["email"]))

			env.ExpectMatchesSchema(ctx, http.MethodPost, endpoints.Users(), resp)
			GinkgoWriter.Printf("Created user %v\n", created["id"])
		})

		It("should update a user", func() {
			payload := map[string]any{
				"name":  "Updated User Name",
				"email": "updated@example.com",
			}

			resp, err := apiClient.Replace(ctx, endpoints.User(1), payload, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			user := api.DecodeObject(resp)
			Expect(user).To(HaveKeyWithValue("name", "Updated User Name"))
			Expect(user).To(HaveKeyWithValue("email", "updated@example.com"))
			Expect(user).NotTo(HaveKey("username"), "a replace carries only the fields that were sent")
		})

		It("should delete a user", func() {
			resp, err := apiClient.Remove(ctx, endpoints.User(1), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
		})
	})
})

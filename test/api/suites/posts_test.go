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

var _ = Describe("Posts API", func() {
	Context("When listing posts", func() {
		It("should fetch all posts", func() {
			resp, err := apiClient.Fetch(ctx, endpoints.Posts(), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			posts := api.DecodeList(resp)
			Expect(posts).NotTo(BeEmpty(), "post list should not be empty")

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoints.Posts(), resp)
		})

		It("should fetch posts with pagination", func() {
			endpoint := endpoints.PostsPage(1, 10)

			resp, err := apiClient.Fetch(ctx, endpoint, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			posts := api.DecodeList(resp)
			Expect(len(posts)).To(BeNumerically("<=", 10), "a page should hold at most 10 posts")

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoint, resp)
		})

		It("should filter posts by user ID", func() {
			userID := 1
			endpoint := endpoints.PostsByUser(userID)

			resp, err := apiClient.Fetch(ctx, endpoint, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			posts := api.DecodeList(resp)
			for _, post := range posts {
				Expect(post).To(HaveKeyWithValue("userId", BeNumerically("==", userID)),
					"every post should belong to user %d", userID)
			}

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoint, resp)
		})
	})

	Context("When reading a single post", func() {
		It("should fetch a single post by ID", func() {
			postID := 1

			resp, err := apiClient.Fetch(ctx, endpoints.Post(postID), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			post := api.DecodeObject(resp)
			Expect(post).To(HaveKeyWithValue("id", BeNumerically("==", postID)))
			Expect(placeholder.MissingFields(post, placeholder.PostFields...)).To(BeEmpty(),
				"post should carry every documented field")

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoints.Post(postID), resp)
		})

		It("should fetch comments for a specific post", func() {
			resp, err := apiClient.Fetch(ctx, endpoints.PostComments(1), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			comments := api.DecodeInto[[]placeholder.Comment](resp)
			for _, comment := range comments {
				Expect(comment.PostId).To(Equal(1), "comment should belong to the requested post")
			}

			env.ExpectMatchesSchema(ctx, http.MethodGet, endpoints.PostComments(1), resp)
		})

		It("should validate post structure", func() {
			resp, err := apiClient.Fetch(ctx, endpoints.Post(1), nil)
			Expect(err).NotTo(HaveOccurred())

			post := api.DecodeObject(resp)
			Expect(post).To(HaveKey("id"))
			Expect(post["userId"]).To(BeAssignableToTypeOf(float64(0)), "userId should be a number")
			Expect(post["title"]).To(BeAssignableToTypeOf(""), "title should be a string")
			Expect(post["body"]).To(BeAssignableToTypeOf(""), "body should be a string")
			Expect(post["title"]).NotTo(BeEmpty())
			Expect(post["body"]).NotTo(BeEmpty())
		})
	})

	Context("When writing posts", func() {
		It("should create a new post", func() {
			payload := placeholder.NewPostPayload().Build()

			resp, err := apiClient.Create(ctx, endpoints.Posts(), payload, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusCreated)

			created := api.DecodeObject(resp)
			Expect(created).To(HaveKey("id"))
			Expect(created).To(HaveKeyWithValue("title", payload["title"]))
			Expect(created).To(HaveKeyWithValue("body", payload["body"]))
			Expect(created).To(HaveKeyWithValue("userId", BeNumerically("==", payload["userId"])))

			env.ExpectMatchesSchema(ctx, http.MethodPost, endpoints.Posts(), resp)
			GinkgoWriter.Printf("Created post %v\n", created["id"])
		})

		It("should update a post", func() {
			payload := map[string]any{
				"title": "Updated Post Title",
				"body":  "Updated post body",
			}

			resp, err := apiClient.PartialUpdate(ctx, endpoints.Post(1), payload, nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			post := api.DecodeObject(resp)
			Expect(post).To(HaveKeyWithValue("title", "Updated Post Title"))
		})

		It("should delete a post", func() {
			resp, err := apiClient.Remove(ctx, endpoints.Post(1), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
		})
	})
})

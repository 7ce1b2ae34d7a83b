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

// Package mockserver implements a deterministic stand-in for the placeholder
// API.  It serves a fixed dataset and, like the public service, accepts
// writes without persisting them: every request observes the same data, so
// suites that create, update or delete resources do not affect each other.
package mockserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/unikorn-cloud/apitest/pkg/placeholder"
)

var (
	// ErrBadParameter is returned when a query parameter is not an integer.
	ErrBadParameter = errors.New("malformed query parameter")

	// ErrBadBody is returned when a request body is not a JSON object.
	ErrBadBody = errors.New("request body must be a JSON object")
)

const defaultPageSize = 10

// Server serves a Dataset over HTTP.
type Server struct {
	dataset *Dataset
	logger  *zap.Logger
}

// New returns a server for dataset.  A nil dataset selects NewDataset(), a
// nil logger disables request logging.
func New(dataset *Dataset, logger *zap.Logger) *Server {
	if dataset == nil {
		dataset = NewDataset()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		dataset: dataset,
		logger:  logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", s.listPosts)
		r.Post("/", s.create(func() int { return len(s.dataset.Posts) + 1 }))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getPost)
			r.Put("/", s.replace(s.postExists))
			r.Patch("/", s.update(s.postAsMap))
			r.Delete("/", s.remove)
			r.Get("/comments", s.listPostComments)
		})
	})

	r.Get("/comments", s.listComments)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Post("/", s.create(func() int { return len(s.dataset.Users) + 1 }))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getUser)
			r.Put("/", s.replace(s.userExists))
			r.Patch("/", s.update(s.userAsMap))
			r.Delete("/", s.remove)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, struct{}{})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("served request",
			zap.String("method", r.Method),
			zap.String("uri", r.URL.RequestURI()),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// pathID returns the {id} parameter, ok is false when it is not an integer.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, false
	}

	return id, true
}

// queryInts parses every value of a repeated integer parameter.
func queryInts(r *http.Request, name string) ([]int, error) {
	values := r.URL.Query()[name]

	result := make([]int, 0, len(values))

	for _, value := range values {
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrBadParameter, name, value)
		}

		result = append(result, i)
	}

	return result, nil
}

// queryInt parses an optional integer parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	values, err := queryInts(r, name)
	if err != nil {
		return 0, err
	}

	if len(values) == 0 {
		return def, nil
	}

	return values[0], nil
}

// paginate applies json-server style _page and _limit parameters.
func paginate[T any](r *http.Request, items []T) ([]T, error) {
	query := r.URL.Query()

	if !query.Has("_page") && !query.Has("_limit") {
		return items, nil
	}

	page, err := queryInt(r, "_page", 1)
	if err != nil {
		return nil, err
	}

	limit, err := queryInt(r, "_limit", defaultPageSize)
	if err != nil {
		return nil, err
	}

	if page < 1 || limit < 0 {
		return nil, fmt.Errorf("%w: _page must be positive and _limit not negative", ErrBadParameter)
	}

	if limit == 0 {
		return items[:0], nil
	}

	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}

	// Compared as page counts so huge values cannot overflow the offsets.
	if page-1 >= pages {
		return items[:0], nil
	}

	start := (page - 1) * limit
	end := start + min(limit, len(items)-start)

	return items[start:end], nil
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	userIDs, err := queryInts(r, "userId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	posts := s.dataset.Posts

	if len(userIDs) > 0 {
		posts = slices.DeleteFunc(slices.Clone(posts), func(p placeholder.Post) bool {
			return !slices.Contains(userIDs, p.UserId)
		})
	}

	posts, err = paginate(r, posts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	post, ok := s.dataset.post(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) listPostComments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusOK, []placeholder.Comment{})
		return
	}

	writeJSON(w, http.StatusOK, s.dataset.commentsFor(id))
}

func (s *Server) listComments(w http.ResponseWriter, r *http.Request) {
	postIDs, err := queryInts(r, "postId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	comments := s.dataset.Comments

	if len(postIDs) > 0 {
		comments = slices.DeleteFunc(slices.Clone(comments), func(c placeholder.Comment) bool {
			return !slices.Contains(postIDs, c.PostId)
		})
	}

	comments, err = paginate(r, comments)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := paginate(r, s.dataset.Users)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	user, ok := s.dataset.user(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, struct{}{})
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func decodeObject(r *http.Request) (map[string]any, error) {
	var object map[string]any

	if err := json.NewDecoder(r.Body).Decode(&object); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadBody, err)
	}

	if object == nil {
		return nil, ErrBadBody
	}

	return object, nil
}

// create echoes the body with the next identifier, nothing is stored.
func (s *Server) create(nextID func() int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		object, err := decodeObject(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		object["id"] = nextID()

		writeJSON(w, http.StatusCreated, object)
	}
}

// replace echoes the body with the path identifier.
func (s *Server) replace(exists func(int) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok || !exists(id) {
			writeJSON(w, http.StatusNotFound, struct{}{})
			return
		}

		object, err := decodeObject(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		object["id"] = id

		writeJSON(w, http.StatusOK, object)
	}
}

// update returns the stored resource with the body merged over it.
func (s *Server) update(lookup func(int) (map[string]any, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, struct{}{})
			return
		}

		current, ok := lookup(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, struct{}{})
			return
		}

		object, err := decodeObject(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		for k, v := range object {
			current[k] = v
		}

		current["id"] = id

		writeJSON(w, http.StatusOK, current)
	}
}

// remove always succeeds, as on the public service.
func (s *Server) remove(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) postExists(id int) bool {
	_, ok := s.dataset.post(id)
	return ok
}

func (s *Server) userExists(id int) bool {
	_, ok := s.dataset.user(id)
	return ok
}

func (s *Server) postAsMap(id int) (map[string]any, bool) {
	post, ok := s.dataset.post(id)
	if !ok {
		return nil, false
	}

	return asMap(post)
}

func (s *Server) userAsMap(id int) (map[string]any, bool) {
	user, ok := s.dataset.user(id)
	if !ok {
		return nil, false
	}

	return asMap(user)
}

func asMap(v any) (map[string]any, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}

	var object map[string]any
	if err := json.Unmarshal(data, &object); err != nil {
		return nil, false
	}

	return object, true
}

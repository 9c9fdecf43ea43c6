// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testserver runs an in-memory imitation of the pets service for
// tests. It speaks the same routes, bodies and plain-text error messages as
// the real backend, records every request it receives, and can be told to
// fail a given route so that error paths can be exercised end to end.
package testserver

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Route patterns, usable with Fail.
const (
	RouteLogin   = "/auth/login"
	RouteSignup  = "/auth/signup"
	RouteLogout  = "/auth/logout/{uid}/{token}"
	RouteUser    = "/users/{uid}"
	RouteNewPet  = "/users/{uid}/pets/new"
	RoutePet     = "/users/{uid}/pets/{pid}"
	RouteFeedPet = "/users/{uid}/pets/{pid}/feed"
	RouteNewYard = "/users/{uid}/pet_yards/new"
	RouteYard    = "/users/{uid}/pet_yards/{yid}"
	RouteYardPet = "/users/{uid}/pet_yards/{yid}/pet/{pid}"
)

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
}

// Mutating reports whether the call could change server state.
func (c Call) Mutating() bool {
	return c.Method != http.MethodGet
}

type account struct {
	user     models.User
	password string
}

type failure struct {
	status int
	body   string
}

// Server is a running fake pets service.
type Server struct {
	mu       sync.Mutex
	accounts map[string]*account // by user id
	tokens   map[string]string   // token -> user id
	pets     map[string]models.Pet
	yards    map[string]models.Yard
	failures map[string]failure // "METHOD pattern" -> forced response
	calls    []Call

	now func() time.Time
	srv *httptest.Server
}

// New starts a fake service on a local port. Close must be called when done.
func New() *Server {
	s := &Server{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		pets:     make(map[string]models.Pet),
		yards:    make(map[string]models.Yard),
		failures: make(map[string]failure),
		now:      time.Now,
	}
	s.srv = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Group(func(r chi.Router) {
		r.Use(s.forced)

		r.Post(RouteLogin, s.login)
		r.Post(RouteSignup, s.signup)
		r.Post(RouteLogout, s.logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.forced, s.auth)

		r.Get(RouteUser, s.getUser)
		r.Delete(RouteUser, s.deleteUser)

		r.Post(RouteNewPet, s.createPet)
		r.Get(RoutePet, s.getPet)
		r.Patch(RoutePet, s.updatePet)
		r.Delete(RoutePet, s.deletePet)
		r.Post(RouteFeedPet, s.feedPet)

		r.Post(RouteNewYard, s.createYard)
		r.Get(RouteYard, s.getYard)
		r.Patch(RouteYard, s.updateYard)
		r.Delete(RouteYard, s.deleteYard)
		r.Patch(RouteYardPet, s.addPetToYard)
		r.Delete(RouteYardPet, s.removePetFromYard)
	})

	return r
}

// URL is the base URL of the running service.
func (s *Server) URL() string {
	return s.srv.URL
}

// Close stops the service.
func (s *Server) Close() {
	s.srv.Close()
}

// SetClock replaces the clock used for feeding timestamps.
func (s *Server) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Fail makes every later request matching method and route pattern answer
// with status and body instead of being handled.
func (s *Server) Fail(method, pattern string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+pattern] = failure{status: status, body: body}
}

// Calls returns every request received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

// MutatingCalls returns the received requests other than GETs.
func (s *Server) MutatingCalls() []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Mutating() {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls forgets the recorded requests.
func (s *Server) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// AddUser registers an account directly and returns its id.
func (s *Server) AddUser(username, email, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(username, email, password)
}

func (s *Server) addUserLocked(username, email, password string) string {
	id := uuid.NewString()
	s.accounts[id] = &account{
		user: models.User{
			UserID:      id,
			Username:    username,
			Email:       email,
			Pets:        []string{},
			OwnedYards:  []string{},
			JoinedYards: []string{},
			JoinedAt:    s.now().UnixMilli(),
		},
		password: password,
	}
	return id
}

// AddYard creates a yard owned by userID and returns its id.
func (s *Server) AddYard(userID, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addYardLocked(userID, name)
}

func (s *Server) addYardLocked(userID, name string) string {
	id := uuid.NewString()
	s.yards[id] = models.Yard{YardID: id, Name: name, OwnerID: userID, Members: []string{userID}, Pets: []string{}}
	if acc, ok := s.accounts[userID]; ok {
		acc.user.OwnedYards = append(acc.user.OwnedYards, id)
	}
	return id
}

// JoinYard adds userID as a member of yardID.
func (s *Server) JoinYard(userID, yardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	yard := s.yards[yardID]
	yard.Members = append(yard.Members, userID)
	s.yards[yardID] = yard
	if acc, ok := s.accounts[userID]; ok {
		acc.user.JoinedYards = append(acc.user.JoinedYards, yardID)
	}
}

// AddPet creates a pet of userID placed in yardID and returns its id.
func (s *Server) AddPet(userID, yardID, name string, species models.Species, lastFed time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.pets[id] = models.Pet{
		PetID:   id,
		Name:    name,
		Species: species,
		Level:   1,
		YardID:  yardID,
		LastFed: models.NewUnixTime(lastFed),
		LastPet: models.NewUnixTime(lastFed),
	}
	if acc, ok := s.accounts[userID]; ok {
		acc.user.Pets = append(acc.user.Pets, id)
	}
	if yard, ok := s.yards[yardID]; ok {
		yard.Pets = append(yard.Pets, id)
		s.yards[yardID] = yard
	}
	return id
}

// DropPet removes the pet document only. Users and yards keep referring to
// it, the way they do when the pet disappears between two requests.
func (s *Server) DropPet(petID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pets, petID)
}

// User returns a copy of the stored user document.
func (s *Server) User(userID string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[userID]
	if !ok {
		return models.User{}, false
	}
	return acc.user, true
}

// Pet returns a copy of the stored pet.
func (s *Server) Pet(petID string) (models.Pet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pet, ok := s.pets[petID]
	return pet, ok
}

// Yard returns a copy of the stored yard.
func (s *Server) Yard(yardID string) (models.Yard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	yard, ok := s.yards[yardID]
	return yard, ok
}

// LoggedIn reports whether token is a live session key.
func (s *Server) LoggedIn(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// forced answers with a response registered by Fail, if any.
func (s *Server) forced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + chi.RouteContext(r.Context()).RoutePattern()
		s.mu.Lock()
		f, ok := s.failures[key]
		s.mu.Unlock()

		if ok {
			writeText(w, f.body, f.status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth rejects requests whose X-Auth-Key does not belong to the {uid} of the path.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")
		s.mu.Lock()
		owner, ok := s.tokens[r.Header.Get(adapter.AuthHeader)]
		s.mu.Unlock()

		if !ok || owner != uid {
			writeText(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

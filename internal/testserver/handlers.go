package testserver

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/MKhiriev/svp-client/internal/app"
	"github.com/MKhiriev/svp-client/internal/utils"
	"github.com/MKhiriev/svp-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeText(w http.ResponseWriter, text string, status int) {
	_, _ = utils.WriteText(w, text, status)
}

func writeJSON(w http.ResponseWriter, data any) {
	_, _ = utils.WriteJSON(w, data, http.StatusOK)
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeText(w, "Invalid body", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decode(w, r, &creds) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, acc := range s.accounts {
		if acc.user.Username == creds.Username && acc.password == creds.Password {
			token := uuid.NewString()
			s.tokens[token] = id
			writeJSON(w, models.LoginResponse{Token: token, UserID: id})
			return
		}
	}
	writeText(w, app.MsgUnauthorized, http.StatusUnauthorized)
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.user.Username == req.Username {
			writeText(w, app.MsgUsernameAlreadyExists, http.StatusConflict)
			return
		}
	}
	s.addUserLocked(req.Username, req.Email, req.Password)
	writeText(w, app.MsgUserCreated, http.StatusOK)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := chi.URLParam(r, "token")
	if s.tokens[token] != chi.URLParam(r, "uid") {
		writeText(w, app.MsgUnauthorized, http.StatusUnauthorized)
		return
	}
	delete(s.tokens, token)
	writeText(w, "Logged out", http.StatusOK)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[chi.URLParam(r, "uid")]
	if !ok {
		writeText(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, acc.user)
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := chi.URLParam(r, "uid")
	acc, ok := s.accounts[uid]
	if !ok {
		writeText(w, app.MsgUserNotFound, http.StatusNotFound)
		return
	}
	for _, pid := range acc.user.Pets {
		delete(s.pets, pid)
	}
	for _, yid := range acc.user.OwnedYards {
		delete(s.yards, yid)
	}
	for token, owner := range s.tokens {
		if owner == uid {
			delete(s.tokens, token)
		}
	}
	delete(s.accounts, uid)
	writeText(w, "User deleted", http.StatusOK)
}

func (s *Server) createPet(w http.ResponseWriter, r *http.Request) {
	var req models.NewPetRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := models.NewUnixTime(s.now())
	pet := models.Pet{
		PetID:   uuid.NewString(),
		Name:    req.Name,
		Species: req.Species,
		Level:   1,
		Image:   req.Image,
		YardID:  req.YardID,
		LastFed: now,
		LastPet: now,
	}
	s.pets[pet.PetID] = pet

	acc := s.accounts[chi.URLParam(r, "uid")]
	acc.user.Pets = append(acc.user.Pets, pet.PetID)
	writeJSON(w, pet)
}

func (s *Server) getPet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, ok := s.pets[chi.URLParam(r, "pid")]
	if !ok {
		writeText(w, app.MsgPetNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, pet)
}

func (s *Server) updatePet(w http.ResponseWriter, r *http.Request) {
	var upd models.PetUpdate
	if !decode(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pid := chi.URLParam(r, "pid")
	pet, ok := s.pets[pid]
	if !ok {
		writeText(w, app.MsgPetNotFound, http.StatusNotFound)
		return
	}
	if upd.Name != nil {
		pet.Name = *upd.Name
	}
	if upd.Image != nil {
		pet.Image = *upd.Image
	}
	if upd.Species != nil {
		pet.Species = *upd.Species
	}
	if upd.YardID != nil {
		pet.YardID = *upd.YardID
	}
	s.pets[pid] = pet
	writeJSON(w, pet)
}

func (s *Server) deletePet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pid := chi.URLParam(r, "pid")
	pet, ok := s.pets[pid]
	if !ok {
		writeText(w, app.MsgPetNotFound, http.StatusNotFound)
		return
	}
	delete(s.pets, pid)

	acc := s.accounts[chi.URLParam(r, "uid")]
	acc.user.Pets = slices.DeleteFunc(acc.user.Pets, func(id string) bool { return id == pid })
	if yard, ok := s.yards[pet.YardID]; ok {
		yard.Pets = slices.DeleteFunc(yard.Pets, func(id string) bool { return id == pid })
		s.yards[pet.YardID] = yard
	}
	writeText(w, "Pet deleted", http.StatusOK)
}

func (s *Server) feedPet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pid := chi.URLParam(r, "pid")
	pet, ok := s.pets[pid]
	if !ok {
		writeText(w, app.MsgPetNotFound, http.StatusNotFound)
		return
	}
	pet.LastFed = models.NewUnixTime(s.now())
	s.pets[pid] = pet
	writeJSON(w, pet)
}

func (s *Server) createYard(w http.ResponseWriter, r *http.Request) {
	var req models.NewYardRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.addYardLocked(chi.URLParam(r, "uid"), req.Name)
	writeJSON(w, s.yards[id])
}

func (s *Server) getYard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	yard, ok := s.yards[chi.URLParam(r, "yid")]
	if !ok {
		writeText(w, app.MsgPetYardNotFound, http.StatusNotFound)
		return
	}
	writeJSON(w, yard)
}

func (s *Server) updateYard(w http.ResponseWriter, r *http.Request) {
	var upd models.YardUpdate
	if !decode(w, r, &upd) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	yid := chi.URLParam(r, "yid")
	yard, ok := s.yards[yid]
	if !ok {
		writeText(w, app.MsgPetYardNotFound, http.StatusNotFound)
		return
	}
	if upd.Name != nil {
		yard.Name = *upd.Name
	}
	s.yards[yid] = yard
	writeJSON(w, yard)
}

func (s *Server) deleteYard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	yid := chi.URLParam(r, "yid")
	if _, ok := s.yards[yid]; !ok {
		writeText(w, app.MsgPetYardNotFound, http.StatusNotFound)
		return
	}
	delete(s.yards, yid)

	for _, acc := range s.accounts {
		acc.user.OwnedYards = slices.DeleteFunc(acc.user.OwnedYards, func(id string) bool { return id == yid })
		acc.user.JoinedYards = slices.DeleteFunc(acc.user.JoinedYards, func(id string) bool { return id == yid })
	}
	writeText(w, "Pet yard deleted", http.StatusOK)
}

func (s *Server) addPetToYard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	yid, pid := chi.URLParam(r, "yid"), chi.URLParam(r, "pid")
	yard, ok := s.yards[yid]
	if !ok {
		writeText(w, app.MsgPetYardNotFound, http.StatusNotFound)
		return
	}
	pet, ok := s.pets[pid]
	if !ok {
		writeText(w, app.MsgPetNotFound, http.StatusNotFound)
		return
	}

	if !slices.Contains(yard.Pets, pid) {
		yard.Pets = append(yard.Pets, pid)
	}
	pet.YardID = yid
	s.yards[yid] = yard
	s.pets[pid] = pet
	writeJSON(w, yard)
}

func (s *Server) removePetFromYard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	yid, pid := chi.URLParam(r, "yid"), chi.URLParam(r, "pid")
	yard, ok := s.yards[yid]
	if !ok {
		writeText(w, app.MsgPetYardNotFound, http.StatusNotFound)
		return
	}
	yard.Pets = slices.DeleteFunc(yard.Pets, func(id string) bool { return id == pid })
	s.yards[yid] = yard
	writeJSON(w, yard)
}

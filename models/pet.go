// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
	"time"
)

// Species is the kind of a pet. The server accepts a fixed lower-case set.
type Species string

const (
	SpeciesDog  Species = "dog"
	SpeciesCat  Species = "cat"
	SpeciesFish Species = "fish"
)

// AvailableSpecies lists every species a new pet may be created with, in
// the order they are offered to the user.
var AvailableSpecies = []Species{SpeciesDog, SpeciesCat, SpeciesFish}

// IsValid reports whether s is one of [AvailableSpecies].
func (s Species) IsValid() bool {
	return slices.Contains(AvailableSpecies, s)
}

// SpeciesList renders the species names for a prompt, e.g. "dog, cat, fish".
func SpeciesList() string {
	names := make([]string, 0, len(AvailableSpecies))
	for _, s := range AvailableSpecies {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// Pet is the remote pet document returned by GET users/{uid}/pets/{pid}.
type Pet struct {
	PetID      string   `json:"uuid"`
	Name       string   `json:"name"`
	Species    Species  `json:"species"`
	Level      int64    `json:"level"`
	Experience int64    `json:"experience"`
	Image      int      `json:"image"`
	YardID     string   `json:"pet_yard,omitempty"`
	LastFed    UnixTime `json:"last_fed"`
	LastPet    UnixTime `json:"last_pet"`
}

// NewPetRequest is the body of POST users/{uid}/pets/new.
type NewPetRequest struct {
	Name    string  `json:"name"`
	Species Species `json:"species"`
	Image   int     `json:"image"`
	YardID  string  `json:"pet_yard"`
}

// PetUpdate is the body of PATCH users/{uid}/pets/{pid}. Nil fields are left
// untouched by the server.
type PetUpdate struct {
	Name    *string  `json:"name,omitempty"`
	Image   *int     `json:"image,omitempty"`
	Species *Species `json:"species,omitempty"`
	YardID  *string  `json:"pet_yard,omitempty"`
}

// StomachStatus describes how long ago a pet was fed.
type StomachStatus string

const (
	StomachSatiated StomachStatus = "Satiated"
	StomachHungry   StomachStatus = "Hungry"
	StomachStarving StomachStatus = "Starving"
)

// HappinessStatus describes how long ago a pet was last interacted with.
type HappinessStatus string

const (
	HappinessJoyful    HappinessStatus = "Joyful"
	HappinessNeglected HappinessStatus = "Neglected"
	HappinessDepressed HappinessStatus = "Depressed"
)

const (
	firstStatusThreshold  = 24 * time.Hour
	secondStatusThreshold = 48 * time.Hour
)

// Stomach derives the pet's hunger level at the moment now.
func (p Pet) Stomach(now time.Time) StomachStatus {
	switch since := now.Sub(p.LastFed.Time()); {
	case since < firstStatusThreshold:
		return StomachSatiated
	case since < secondStatusThreshold:
		return StomachHungry
	default:
		return StomachStarving
	}
}

// Happiness derives the pet's mood at the moment now.
func (p Pet) Happiness(now time.Time) HappinessStatus {
	switch since := now.Sub(p.LastPet.Time()); {
	case since < firstStatusThreshold:
		return HappinessJoyful
	case since < secondStatusThreshold:
		return HappinessNeglected
	default:
		return HappinessDepressed
	}
}

// PetView is a pet prepared for display: the remote document plus the name of
// the yard it lives in and its derived statuses.
type PetView struct {
	Pet       Pet
	YardName  string
	Stomach   StomachStatus
	Happiness HappinessStatus
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Yard is the remote pet-yard document returned by
// GET users/{uid}/pet_yards/{yid}.
type Yard struct {
	YardID  string   `json:"uuid"`
	Name    string   `json:"name"`
	OwnerID string   `json:"owner,omitempty"`
	Members []string `json:"members,omitempty"`
	Pets    []string `json:"pets"`
}

// NewYardRequest is the body of POST users/{uid}/pet_yards/new.
type NewYardRequest struct {
	Name  string `json:"name"`
	Image int    `json:"image"`
}

// YardUpdate is the body of PATCH users/{uid}/pet_yards/{yid}.
type YardUpdate struct {
	Name *string `json:"name,omitempty"`
}

// YardListing groups the yards a user can see, split by relation.
type YardListing struct {
	Owned  []Yard
	Joined []Yard
}

// FeedReport describes a feed-yard run: the names of the pets fed, in yard
// order, and how many pets the yard holds. After a failure Fed lists only the
// pets fed before it.
type FeedReport struct {
	Fed   []string
	Total int
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package art holds the ASCII-art sheets used to draw pets.
//
// A sheet is a text file per species (dog.txt, cat.txt, fish.txt) containing
// pictures separated by blank lines. A pet stores only the index of its
// picture; the index is chosen at random when the pet is created and the
// picture is looked up again whenever the pet is shown.
package art

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"strings"

	"github.com/MKhiriev/svp-client/models"
)

//go:embed sheets/*.txt
var embedded embed.FS

var ErrNoArt = errors.New("no art for species")

// Gallery maps each species to its parsed pictures.
type Gallery struct {
	sheets map[models.Species][]string
	intN   func(n int) int
}

// NewGallery loads the embedded sheets. When dir is not empty, a
// <species>.txt found there replaces the embedded sheet of that species.
func NewGallery(dir string) (*Gallery, error) {
	var override fs.FS
	if dir != "" {
		override = os.DirFS(dir)
	}

	g := &Gallery{sheets: make(map[models.Species][]string), intN: rand.Intn}
	for _, species := range models.AvailableSpecies {
		name := string(species) + ".txt"

		raw, err := readSheet(override, name)
		if err != nil {
			return nil, fmt.Errorf("load %s sheet: %w", species, err)
		}

		g.sheets[species] = ParseSheet(raw)
	}

	return g, nil
}

func readSheet(override fs.FS, name string) (string, error) {
	if override != nil {
		raw, err := fs.ReadFile(override, name)
		if err == nil {
			return string(raw), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	raw, err := embedded.ReadFile("sheets/" + name)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseSheet splits a sheet into pictures. Pictures are separated by one or
// more blank lines; surrounding blank lines are ignored.
func ParseSheet(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var (
		pictures []string
		current  []string
	)
	flush := func() {
		if len(current) > 0 {
			pictures = append(pictures, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return pictures
}

// Count returns the number of pictures available for species.
func (g *Gallery) Count(species models.Species) int {
	return len(g.sheets[species])
}

// RandomIndex picks a picture index for a new pet.
func (g *Gallery) RandomIndex(species models.Species) (int, error) {
	n := g.Count(species)
	if n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoArt, species)
	}
	return g.intN(n), nil
}

// Picture returns the picture stored at index. ok is false when the species
// is unknown or the index is out of range, e.g. after the sheet was replaced.
func (g *Gallery) Picture(species models.Species, index int) (picture string, ok bool) {
	pictures := g.sheets[species]
	if index < 0 || index >= len(pictures) {
		return "", false
	}
	return pictures[index], true
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/svp-client/internal/service"
	"github.com/MKhiriev/svp-client/models"
)

const deletePetWarning = "Warning! This will permanently delete a pet. Would you like to proceed?"

func (l *Loop) viewPets(ctx context.Context) error {
	pets, err := l.services.PetService.List(ctx, l.session.UserID)
	if err != nil {
		return err
	}
	if len(pets) == 0 {
		fmt.Fprintln(l.out, "You have no pets")
		return nil
	}

	for _, view := range pets {
		pet := view.Pet
		if picture, ok := l.art.Picture(pet.Species, pet.Image); ok {
			fmt.Fprintln(l.out, petBoxStyle.Render(picture))
		}
		fmt.Fprintf(l.out, "Pet: %s Species: %s Level: %d Yard: %s\n", pet.Name, pet.Species, pet.Level, view.YardName)
		fmt.Fprintf(l.out, "Stomach Status: %s\n", view.Stomach)
		fmt.Fprintf(l.out, "Happiness Status: %s\n", view.Happiness)
		fmt.Fprintln(l.out)
	}
	return nil
}

func (l *Loop) createPet(ctx context.Context) error {
	userID := l.session.UserID

	hasYards, err := l.services.YardService.HasOwned(ctx, userID)
	if err != nil {
		return err
	}
	if !hasYards {
		fmt.Fprintln(l.out, "You have no pet yards")
		return nil
	}

	yardID, yardName, err := l.resolveYard(ctx, "Pet yard: ")
	if err != nil {
		return err
	}

	name, err := l.askPetName(ctx, yardID)
	if err != nil {
		return err
	}

	species, err := l.askSpecies(ctx)
	if err != nil {
		return err
	}

	if _, err = l.services.PetService.Create(ctx, userID, yardID, name, species); err != nil {
		return err
	}

	l.success("Created pet %s in yard %s", name, yardName)
	return nil
}

func (l *Loop) askPetName(ctx context.Context, yardID string) (string, error) {
	for {
		name, err := l.prompter.Prompt(ctx, "Pet name: ")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)

		err = l.services.PetService.CheckNewName(ctx, l.session.UserID, yardID, name)
		switch {
		case err == nil:
			return name, nil
		case errors.Is(err, service.ErrEmptyName):
			l.warn("Pets must have a name")
		case errors.Is(err, service.ErrPetNameTaken):
			l.warn("There is already a pet with this name in this yard")
		default:
			return "", err
		}
	}
}

func (l *Loop) askSpecies(ctx context.Context) (models.Species, error) {
	fmt.Fprintf(l.out, "Available Species: %s\n", models.SpeciesList())
	for {
		answer, err := l.prompter.Prompt(ctx, "Species: ")
		if err != nil {
			return "", err
		}

		species := models.Species(normalizeCommand(answer))
		if species.IsValid() {
			return species, nil
		}
		l.warn("Must be an available species")
	}
}

func (l *Loop) deletePet(ctx context.Context) error {
	if err := l.confirm(ctx, deletePetWarning); err != nil {
		return err
	}

	yardID, yardName, err := l.resolveYard(ctx, "Name of yard the pet is in: ")
	if err != nil {
		return err
	}

	var petID, petName string
	for {
		if petName, err = l.prompter.Prompt(ctx, "Pet name: "); err != nil {
			return err
		}
		if petName = strings.TrimSpace(petName); petName == "" {
			return errCanceled
		}

		var found bool
		petID, found, err = l.services.PetService.FindInYard(ctx, l.session.UserID, yardID, petName)
		if err != nil {
			return err
		}
		if found {
			break
		}
		l.warn("No pet with this name in yard " + yardName)
	}

	fmt.Fprintf(l.out, "Deleting %s . . .\n", petName)
	if err = l.services.PetService.Delete(ctx, l.session.UserID, petID); err != nil {
		fmt.Fprintln(l.out, errorStyle.Render("Deletion failed"))
		return err
	}

	l.success("Successfully deleted pet %s", petName)
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/models"
)

type clientPetService struct {
	adapter adapter.ServerAdapter
	art     ArtPicker
	now     func() time.Time

	logger *logger.Logger
}

func NewClientPetService(serverAdapter adapter.ServerAdapter, art ArtPicker, log *logger.Logger) ClientPetService {
	return &clientPetService{adapter: serverAdapter, art: art, now: time.Now, logger: log.WithComponent("pets")}
}

func (p *clientPetService) List(ctx context.Context, userID string) ([]models.PetView, error) {
	user, err := p.adapter.GetUser(ctx, userID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	now := p.now()
	views := make([]models.PetView, 0, len(user.Pets))
	for _, petID := range user.Pets {
		pet, err := p.adapter.GetPet(ctx, userID, petID)
		if err != nil {
			return nil, fmt.Errorf("fetch pet %s: %w", petID, mapAdapterError(err))
		}

		view := models.PetView{Pet: pet, Stomach: pet.Stomach(now), Happiness: pet.Happiness(now)}
		if pet.YardID != "" {
			yard, err := p.adapter.GetYard(ctx, userID, pet.YardID)
			if err != nil {
				return nil, fmt.Errorf("fetch yard of pet %s: %w", pet.Name, mapAdapterError(err))
			}
			view.YardName = yard.Name
		}
		views = append(views, view)
	}

	return views, nil
}

func (p *clientPetService) FindInYard(ctx context.Context, userID, yardID, name string) (string, bool, error) {
	yard, err := p.adapter.GetYard(ctx, userID, yardID)
	if err != nil {
		return "", false, mapAdapterError(err)
	}

	for _, petID := range yard.Pets {
		pet, err := p.adapter.GetPet(ctx, userID, petID)
		if err != nil {
			return "", false, fmt.Errorf("fetch pet %s: %w", petID, mapAdapterError(err))
		}
		if pet.Name == name {
			return petID, true, nil
		}
	}

	return "", false, nil
}

func (p *clientPetService) CheckNewName(ctx context.Context, userID, yardID, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	_, found, err := p.FindInYard(ctx, userID, yardID, name)
	if err != nil {
		return err
	}
	if found {
		return ErrPetNameTaken
	}
	return nil
}

func (p *clientPetService) Create(ctx context.Context, userID, yardID, name string, species models.Species) (models.Pet, error) {
	if name == "" {
		return models.Pet{}, ErrEmptyName
	}
	if !species.IsValid() {
		return models.Pet{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, species)
	}

	image, err := p.art.RandomIndex(species)
	if err != nil {
		return models.Pet{}, fmt.Errorf("pick picture: %w", err)
	}

	pet, err := p.adapter.CreatePet(ctx, userID, models.NewPetRequest{
		Name:    name,
		Species: species,
		Image:   image,
		YardID:  yardID,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("name", name).Msg("create pet failed")
		return models.Pet{}, mapAdapterError(err)
	}

	if err = p.adapter.AddPetToYard(ctx, userID, yardID, pet.PetID); err != nil {
		p.logger.Error().Err(err).Str("pet_id", pet.PetID).Str("yard_id", yardID).Msg("attach pet failed, removing pet")
		// the outcome of the rollback is not verified
		if delErr := p.adapter.DeletePet(ctx, userID, pet.PetID); delErr != nil {
			p.logger.Warn().Err(delErr).Str("pet_id", pet.PetID).Msg("rollback delete failed")
		}
		return models.Pet{}, fmt.Errorf("%w: %w", ErrAttachPetFailed, err)
	}

	p.logger.Info().Str("pet_id", pet.PetID).Str("yard_id", yardID).Msg("pet created")
	return pet, nil
}

func (p *clientPetService) Delete(ctx context.Context, userID, petID string) error {
	if err := p.adapter.DeletePet(ctx, userID, petID); err != nil {
		p.logger.Error().Err(err).Str("pet_id", petID).Msg("delete pet failed")
		return mapAdapterError(err)
	}

	p.logger.Info().Str("pet_id", petID).Msg("pet deleted")
	return nil
}

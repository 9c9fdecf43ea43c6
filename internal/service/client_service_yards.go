package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/models"
)

type clientYardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientYardService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientYardService {
	return &clientYardService{adapter: serverAdapter, logger: log.WithComponent("yards")}
}

func (y *clientYardService) List(ctx context.Context, userID string) (models.YardListing, error) {
	user, err := y.adapter.GetUser(ctx, userID)
	if err != nil {
		return models.YardListing{}, mapAdapterError(err)
	}

	owned, err := y.fetchAll(ctx, userID, user.OwnedYards)
	if err != nil {
		return models.YardListing{}, err
	}
	joined, err := y.fetchAll(ctx, userID, user.JoinedYards)
	if err != nil {
		return models.YardListing{}, err
	}

	return models.YardListing{Owned: owned, Joined: joined}, nil
}

func (y *clientYardService) fetchAll(ctx context.Context, userID string, ids []string) ([]models.Yard, error) {
	yards := make([]models.Yard, 0, len(ids))
	for _, id := range ids {
		yard, err := y.adapter.GetYard(ctx, userID, id)
		if err != nil {
			return nil, fmt.Errorf("fetch yard %s: %w", id, mapAdapterError(err))
		}
		yards = append(yards, yard)
	}
	return yards, nil
}

func (y *clientYardService) HasOwned(ctx context.Context, userID string) (bool, error) {
	user, err := y.adapter.GetUser(ctx, userID)
	if err != nil {
		return false, mapAdapterError(err)
	}
	return len(user.OwnedYards) > 0, nil
}

func (y *clientYardService) FindByName(ctx context.Context, userID, name string) (string, bool, error) {
	user, err := y.adapter.GetUser(ctx, userID)
	if err != nil {
		return "", false, mapAdapterError(err)
	}

	for _, id := range user.OwnedYards {
		yard, err := y.adapter.GetYard(ctx, userID, id)
		if err != nil {
			return "", false, fmt.Errorf("fetch yard %s: %w", id, mapAdapterError(err))
		}
		if yard.Name == name {
			return id, true, nil
		}
	}

	y.logger.Debug().Str("name", name).Msg("no owned yard with this name")
	return "", false, nil
}

func (y *clientYardService) CheckNewName(ctx context.Context, userID, name string) error {
	if name == "" {
		return ErrEmptyName
	}

	_, found, err := y.FindByName(ctx, userID, name)
	if err != nil {
		return err
	}
	if found {
		return ErrYardNameTaken
	}
	return nil
}

func (y *clientYardService) Create(ctx context.Context, userID, name string) (models.Yard, error) {
	if name == "" {
		return models.Yard{}, ErrEmptyName
	}

	yard, err := y.adapter.CreateYard(ctx, userID, models.NewYardRequest{Name: name})
	if err != nil {
		y.logger.Error().Err(err).Str("name", name).Msg("create yard failed")
		return models.Yard{}, mapAdapterError(err)
	}

	y.logger.Info().Str("yard_id", yard.YardID).Str("name", name).Msg("yard created")
	return yard, nil
}

func (y *clientYardService) Delete(ctx context.Context, userID, yardID string) (int, error) {
	yard, err := y.adapter.GetYard(ctx, userID, yardID)
	if err != nil {
		return 0, mapAdapterError(err)
	}

	deleted := 0
	for _, petID := range yard.Pets {
		if err = y.adapter.DeletePet(ctx, userID, petID); err != nil {
			y.logger.Error().Err(err).Str("pet_id", petID).Str("yard_id", yardID).Msg("delete pet of yard failed")
			return deleted, fmt.Errorf("delete pet %s: %w", petID, mapAdapterError(err))
		}
		deleted++
	}

	if err = y.adapter.DeleteYard(ctx, userID, yardID); err != nil {
		y.logger.Error().Err(err).Str("yard_id", yardID).Msg("delete yard failed")
		return deleted, mapAdapterError(err)
	}

	y.logger.Info().Str("yard_id", yardID).Int("pets", deleted).Msg("yard deleted")
	return deleted, nil
}

func (y *clientYardService) Feed(ctx context.Context, userID, yardID string) (models.FeedReport, error) {
	yard, err := y.adapter.GetYard(ctx, userID, yardID)
	if err != nil {
		return models.FeedReport{}, mapAdapterError(err)
	}

	report := models.FeedReport{Fed: make([]string, 0, len(yard.Pets)), Total: len(yard.Pets)}
	for _, petID := range yard.Pets {
		pet, err := y.adapter.GetPet(ctx, userID, petID)
		if err != nil {
			return report, fmt.Errorf("fetch pet %s: %w", petID, mapAdapterError(err))
		}

		if err = y.adapter.FeedPet(ctx, userID, petID); err != nil {
			y.logger.Error().Err(err).Str("pet_id", petID).Str("yard_id", yardID).Msg("feed failed")
			return report, fmt.Errorf("feed %s: %w", pet.Name, mapAdapterError(err))
		}
		report.Fed = append(report.Fed, pet.Name)
	}

	y.logger.Info().Str("yard_id", yardID).Int("pets", report.Total).Msg("yard fed")
	return report, nil
}

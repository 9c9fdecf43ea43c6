package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/mock"
	"github.com/MKhiriev/svp-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fixedArt always picks the same picture.
type fixedArt struct {
	index int
	err   error
}

func (f fixedArt) RandomIndex(models.Species) (int, error) { return f.index, f.err }

func newTestPetSvc(t *testing.T, ctrl *gomock.Controller, now time.Time) (*clientPetService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	svc := NewClientPetService(mockAdapter, fixedArt{index: 2}, logger.Nop()).(*clientPetService)
	svc.now = func() time.Time { return now }
	return svc, mockAdapter
}

func TestClientPetService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, mockAdapter := newTestPetSvc(t, ctrl, now)
	ctx := context.Background()

	rex := models.Pet{
		PetID: petA, Name: "Rex", Species: models.SpeciesDog, YardID: yardA,
		LastFed: models.NewUnixTime(now.Add(-30 * time.Hour)),
		LastPet: models.NewUnixTime(now.Add(-time.Hour)),
	}

	mockAdapter.EXPECT().GetUser(ctx, userID).Return(models.User{Pets: []string{petA}}, nil)
	mockAdapter.EXPECT().GetPet(ctx, userID, petA).Return(rex, nil)
	mockAdapter.EXPECT().GetYard(ctx, userID, yardA).Return(models.Yard{Name: "Home"}, nil)

	views, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Rex", views[0].Pet.Name)
	assert.Equal(t, "Home", views[0].YardName)
	assert.Equal(t, models.StomachHungry, views[0].Stomach)
	assert.Equal(t, models.HappinessJoyful, views[0].Happiness)
}

func TestClientPetService_List_PetWithoutYard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().GetUser(ctx, userID).Return(models.User{Pets: []string{petA}}, nil)
	mockAdapter.EXPECT().GetPet(ctx, userID, petA).Return(models.Pet{PetID: petA, Name: "Stray"}, nil)

	views, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].YardName)
}

func TestClientPetService_FindInYard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().GetYard(ctx, userID, yardA).Return(models.Yard{Pets: []string{petA, petB}}, nil).Times(2)
	mockAdapter.EXPECT().GetPet(ctx, userID, petA).Return(models.Pet{PetID: petA, Name: "Rex"}, nil).Times(2)
	mockAdapter.EXPECT().GetPet(ctx, userID, petB).Return(models.Pet{PetID: petB, Name: "Tom"}, nil).Times(2)

	id, found, err := svc.FindInYard(ctx, userID, yardA, "Tom")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, petB, id)

	id, found, err = svc.FindInYard(ctx, userID, yardA, "Felix")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, id)
}

func TestClientPetService_CheckNewName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	assert.ErrorIs(t, svc.CheckNewName(ctx, userID, yardA, ""), ErrEmptyName)

	mockAdapter.EXPECT().GetYard(ctx, userID, yardA).Return(models.Yard{Pets: []string{petA}}, nil).Times(2)
	mockAdapter.EXPECT().GetPet(ctx, userID, petA).Return(models.Pet{Name: "Rex"}, nil).Times(2)

	assert.ErrorIs(t, svc.CheckNewName(ctx, userID, yardA, "Rex"), ErrPetNameTaken)
	assert.NoError(t, svc.CheckNewName(ctx, userID, yardA, "Tom"))
}

func TestClientPetService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	want := models.NewPetRequest{Name: "Rex", Species: models.SpeciesDog, Image: 2, YardID: yardA}
	gomock.InOrder(
		mockAdapter.EXPECT().CreatePet(ctx, userID, want).Return(models.Pet{PetID: petA, Name: "Rex"}, nil),
		mockAdapter.EXPECT().AddPetToYard(ctx, userID, yardA, petA).Return(nil),
	)

	pet, err := svc.Create(ctx, userID, yardA, "Rex", models.SpeciesDog)
	require.NoError(t, err)
	assert.Equal(t, petA, pet.PetID)
}

func TestClientPetService_Create_AttachFailureDeletesPet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	attachErr := adapter.NewStatusError(http.StatusNotFound, "Pet yard not found")
	gomock.InOrder(
		mockAdapter.EXPECT().CreatePet(ctx, userID, gomock.Any()).Return(models.Pet{PetID: petA}, nil),
		mockAdapter.EXPECT().AddPetToYard(ctx, userID, yardA, petA).Return(attachErr),
		mockAdapter.EXPECT().DeletePet(ctx, userID, petA).Return(nil),
	)

	_, err := svc.Create(ctx, userID, yardA, "Rex", models.SpeciesCat)
	assert.ErrorIs(t, err, ErrAttachPetFailed)
	assert.Equal(t, http.StatusNotFound, adapter.StatusCode(err))
}

func TestClientPetService_Create_RollbackFailureIsNotReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().CreatePet(ctx, userID, gomock.Any()).Return(models.Pet{PetID: petA}, nil)
	mockAdapter.EXPECT().AddPetToYard(ctx, userID, yardA, petA).Return(adapter.NewStatusError(http.StatusInternalServerError, ""))
	mockAdapter.EXPECT().DeletePet(ctx, userID, petA).Return(errors.New("connection reset"))

	_, err := svc.Create(ctx, userID, yardA, "Rex", models.SpeciesFish)
	assert.ErrorIs(t, err, ErrAttachPetFailed)
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestClientPetService_Create_CreateFailureNoAttach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().CreatePet(ctx, userID, gomock.Any()).Return(models.Pet{}, adapter.NewStatusError(http.StatusUnauthorized, "Unauthorized"))

	_, err := svc.Create(ctx, userID, yardA, "Rex", models.SpeciesDog)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.NotErrorIs(t, err, ErrAttachPetFailed)
}

func TestClientPetService_Create_LocalChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	_, err := svc.Create(ctx, userID, yardA, "", models.SpeciesDog)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Create(ctx, userID, yardA, "Rex", "dragon")
	assert.ErrorIs(t, err, ErrUnknownSpecies)

	svc.art = fixedArt{err: errors.New("no art")}
	_, err = svc.Create(ctx, userID, yardA, "Rex", models.SpeciesDog)
	assert.Error(t, err)
}

func TestClientPetService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestPetSvc(t, ctrl, time.Now())
	ctx := context.Background()

	mockAdapter.EXPECT().DeletePet(ctx, userID, petA).Return(nil)
	assert.NoError(t, svc.Delete(ctx, userID, petA))

	mockAdapter.EXPECT().DeletePet(ctx, userID, petB).Return(adapter.NewStatusError(http.StatusNotFound, "Pet not found"))
	assert.ErrorIs(t, svc.Delete(ctx, userID, petB), ErrPetNotFound)
}

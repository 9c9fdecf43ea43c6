package service

import (
	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/validators"
)

type ClientServices struct {
	AuthService ClientAuthService
	YardService ClientYardService
	PetService  ClientPetService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, art ArtPicker, testing bool, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, validators.NewAccountValidator(), testing, log),
		YardService: NewClientYardService(serverAdapter, log),
		PetService:  NewClientPetService(serverAdapter, art, log),
	}
}

package service

import (
	"context"

	"github.com/MKhiriev/svp-client/models"
)

// ClientAuthService defines the account operations of the session loop:
// authentication, signup with client-side validation, logout and account
// management.
type ClientAuthService interface {
	// Login authenticates the user and returns the in-memory session. Wrong
	// credentials surface as ErrWrongCredentials with the adapter's status
	// error still in the chain.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// CheckEmail applies the email rule to a single answer. It always passes
	// in testing mode.
	CheckEmail(ctx context.Context, email string) error

	// CheckPassword applies the five-part strength rule to a single answer.
	// The returned error names each failing criterion. It always passes in
	// testing mode.
	CheckPassword(ctx context.Context, password string) error

	// Signup validates the request (unless in testing mode) and creates the
	// account. A taken username surfaces as ErrUsernameTaken.
	Signup(ctx context.Context, req models.SignupRequest) error

	// Logout invalidates the session on the server. The local token is
	// dropped even when the call fails.
	Logout(ctx context.Context, session models.Session) error

	// Profile fetches the user document of the session.
	Profile(ctx context.Context, session models.Session) (models.User, error)

	// DeleteAccount removes the account of the session.
	DeleteAccount(ctx context.Context, session models.Session) error
}

// ClientYardService defines yard operations. Every call re-fetches the user
// document; nothing is cached between calls.
type ClientYardService interface {
	// List returns the owned and joined yards of the user.
	List(ctx context.Context, userID string) (models.YardListing, error)

	// HasOwned reports whether the user owns at least one yard.
	HasOwned(ctx context.Context, userID string) (bool, error)

	// FindByName resolves an owned yard name to its id, fetching each owned
	// yard in turn until one matches. found is false when no yard matches.
	FindByName(ctx context.Context, userID, name string) (yardID string, found bool, err error)

	// CheckNewName rejects an empty name (ErrEmptyName) and a name the user
	// already owns (ErrYardNameTaken).
	CheckNewName(ctx context.Context, userID, name string) error

	// Create creates a yard with the given name.
	Create(ctx context.Context, userID, name string) (models.Yard, error)

	// Delete deletes every pet of the yard and then the yard itself. It
	// stops at the first failure and returns how many pets were removed.
	Delete(ctx context.Context, userID, yardID string) (deletedPets int, err error)

	// Feed feeds the pets of the yard one by one. It stops at the first
	// failed request; the report then lists the pets fed before it.
	Feed(ctx context.Context, userID, yardID string) (models.FeedReport, error)
}

// ClientPetService defines pet operations.
type ClientPetService interface {
	// List fetches every pet of the user together with its yard name and
	// derived status.
	List(ctx context.Context, userID string) ([]models.PetView, error)

	// FindInYard resolves a pet name inside a yard to the pet id, fetching
	// each pet of the yard in turn. found is false when no pet matches.
	FindInYard(ctx context.Context, userID, yardID, name string) (petID string, found bool, err error)

	// CheckNewName rejects an empty name (ErrEmptyName) and a name already
	// used inside the yard (ErrPetNameTaken).
	CheckNewName(ctx context.Context, userID, yardID, name string) error

	// Create creates the pet with a random picture of its species and
	// attaches it to the yard. When attaching fails the new pet is deleted
	// again and ErrAttachPetFailed is returned.
	Create(ctx context.Context, userID, yardID, name string, species models.Species) (models.Pet, error)

	// Delete removes a pet.
	Delete(ctx context.Context, userID, petID string) error
}

// ArtPicker chooses the picture index of a new pet.
type ArtPicker interface {
	RandomIndex(species models.Species) (int, error)
}

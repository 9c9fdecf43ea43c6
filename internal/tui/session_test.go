package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/svp-client/internal/testserver"
	"github.com/MKhiriev/svp-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUser     = "alice"
	testEmail    = "alice@example.com"
	testPassword = "Secret1!"
)

func loginSteps() []string {
	return []string{"1", testUser, testPassword}
}

func TestLoop_LoginSuccessStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		var creds models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "alice" || creds.Password != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"token":"t","uuid":"u"}`))
	}))
	defer srv.Close()

	prompter := script("1", "alice", "pw")
	loop, out := newTestLoop(t, srv.URL, false, prompter)

	require.NoError(t, loop.Run(context.Background()))

	session := loop.Session()
	assert.True(t, session.Authenticated())
	assert.Equal(t, "t", session.Token)
	assert.Equal(t, "u", session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, []string{"Password: "}, prompter.masked)
	assert.Contains(t, out.String(), "Successfully logged in as alice")
}

func TestLoop_LoginRejectedStaysAnonymous(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	srv.AddUser(testUser, testEmail, testPassword)

	loop, out := newTestLoop(t, srv.URL(), false, script("1", testUser, "wrong"))

	require.NoError(t, loop.Run(context.Background()))

	assert.False(t, loop.Session().Authenticated())
	assert.Contains(t, out.String(), "Login failed")
	assert.Contains(t, out.String(), "Request failed with status code 401")
	assert.Contains(t, out.String(), "Wrong username or password")
	assert.NotContains(t, out.String(), "Welcome alice")
}

func TestLoop_SignupRepromptsUntilValid(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	prompter := script(
		"2",
		"not-an-email", "alice@example.com",
		testUser,
		"abc", "Abcdef1!",
	).and("1", testUser, "Abcdef1!")
	loop, out := newTestLoop(t, srv.URL(), false, prompter)

	require.NoError(t, loop.Run(context.Background()))

	output := out.String()
	assert.Equal(t, 1, strings.Count(output, "Invalid email. Please enter a valid email."))
	assert.Contains(t, output, "Password is too weak")
	assert.Contains(t, output, "- at least 8 characters")
	assert.Contains(t, output, "- a digit")
	assert.Contains(t, output, "- an uppercase letter")
	assert.NotContains(t, output, "- a lowercase letter")
	assert.Contains(t, output, "User created")
	// новый пользователь может войти
	assert.True(t, loop.Session().Authenticated())
}

func TestLoop_SignupTestingModeSkipsChecks(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	loop, out := newTestLoop(t, srv.URL(), true, script("2", "x", "bob", "pw", "1", "bob", "pw"))

	require.NoError(t, loop.Run(context.Background()))

	assert.NotContains(t, out.String(), "Invalid email")
	assert.NotContains(t, out.String(), "Password is too weak")
	assert.True(t, loop.Session().Authenticated())
}

func TestLoop_SignupDuplicateUsername(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	srv.AddUser(testUser, testEmail, testPassword)

	loop, out := newTestLoop(t, srv.URL(), true, script("2", testEmail, testUser, "pw"))

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "Request failed with status code 409")
	assert.Contains(t, out.String(), "Username already exists")
}

func TestLoop_UnknownYardIssuesNoMutation(t *testing.T) {
	tests := []struct {
		name    string
		command []string
	}{
		{name: "delete yard", command: []string{"6", "yes"}},
		{name: "delete pet", command: []string{"5", "y"}},
		{name: "create pet", command: []string{"3"}},
		{name: "feed yard", command: []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testserver.New()
			defer srv.Close()
			uid := srv.AddUser(testUser, testEmail, testPassword)
			yid := srv.AddYard(uid, "Home")

			prompter := script(loginSteps()...).and(tt.command...).and("Nowhere", "")
			loop, out := newTestLoop(t, srv.URL(), false, prompter)

			require.NoError(t, loop.Run(context.Background()))

			assert.Contains(t, out.String(), "There is no yard with this name")
			assert.Contains(t, out.String(), "Action Canceled...")
			assert.Equal(t, []testserver.Call{{Method: http.MethodPost, Path: "/auth/login"}}, srv.MutatingCalls())

			_, ok := srv.Yard(yid)
			assert.True(t, ok)
		})
	}
}

func TestLoop_CreatePetAttachFailureDeletesPet(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)
	yid := srv.AddYard(uid, "Home")
	srv.Fail(http.MethodPatch, testserver.RouteYardPet, http.StatusInternalServerError, "attach failed")

	loop, out := newTestLoop(t, srv.URL(), false, script(loginSteps()...).and("3", "Home", "Rex", "dog"))

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "Request failed with status code 500")
	assert.Contains(t, out.String(), "Failed to place pet into yard, pet not created")
	assert.NotContains(t, out.String(), "Created pet")

	calls := srv.MutatingCalls()
	require.Len(t, calls, 4)
	assert.Equal(t, testserver.Call{Method: http.MethodPost, Path: "/users/" + uid + "/pets/new"}, calls[1])
	assert.Equal(t, http.MethodPatch, calls[2].Method)
	assert.True(t, strings.HasPrefix(calls[2].Path, "/users/"+uid+"/pet_yards/"+yid+"/pet/"))

	petID := strings.TrimPrefix(calls[2].Path, "/users/"+uid+"/pet_yards/"+yid+"/pet/")
	assert.Equal(t, testserver.Call{Method: http.MethodDelete, Path: "/users/" + uid + "/pets/" + petID}, calls[3])

	_, exists := srv.Pet(petID)
	assert.False(t, exists)
	user, _ := srv.User(uid)
	assert.Empty(t, user.Pets)
}

func TestLoop_PetAndYardLifecycle(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)

	prompter := script(loginSteps()...).and(
		"3",
		"4", "", "Home",
		"4", "Home", "Garden",
		"3", "Home", "", "Rex", "dragon", "dog",
		"3", "Home", "Rex", "Tom", "CAT",
		"1",
		"2",
		"7", "Home",
		"5", "yes", "Home", "Ghost", "Tom",
		"6", "no",
		"6", "y", "Home",
		"logout",
	)
	loop, out := newTestLoop(t, srv.URL(), false, prompter)

	require.NoError(t, loop.Run(context.Background()))
	assert.Zero(t, prompter.remaining())

	output := out.String()
	assert.Contains(t, output, "You have no pet yards")
	assert.Contains(t, output, "Yards must have a name")
	assert.Contains(t, output, "You already have a yard of this name")
	assert.Contains(t, output, "Created yard Garden")
	assert.Contains(t, output, "Pets must have a name")
	assert.Contains(t, output, "Available Species: dog, cat, fish")
	assert.Contains(t, output, "Must be an available species")
	assert.Contains(t, output, "Created pet Rex in yard Home")
	assert.Contains(t, output, "There is already a pet with this name in this yard")
	assert.Contains(t, output, "Created pet Tom in yard Home")
	assert.Contains(t, output, "Pet: Rex Species: dog Level: 1 Yard: Home")
	assert.Contains(t, output, "Stomach Status: Satiated")
	assert.Contains(t, output, "Happiness Status: Joyful")
	assert.Contains(t, output, "Yard: Home (2 pets)")
	assert.Contains(t, output, "Fed 2 of 2 pets in yard Home")
	assert.Contains(t, output, "No pet with this name in yard Home")
	assert.Contains(t, output, "Successfully deleted pet Tom")
	assert.Contains(t, output, "Action Canceled...")
	assert.Contains(t, output, "Yard successfully deleted (1 pets removed)")
	assert.Contains(t, output, "Logged out alice")

	user, ok := srv.User(uid)
	require.True(t, ok)
	assert.Empty(t, user.Pets)
	require.Len(t, user.OwnedYards, 1)
	garden, _ := srv.Yard(user.OwnedYards[0])
	assert.Equal(t, "Garden", garden.Name)
	assert.False(t, loop.Session().Authenticated())
}

func TestLoop_ViewPetsShowsStatus(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)
	yid := srv.AddYard(uid, "Pond")
	srv.AddPet(uid, yid, "Nemo", models.SpeciesFish, time.Now().Add(-30*time.Hour))

	loop, out := newTestLoop(t, srv.URL(), false, script(loginSteps()...).and("1"))

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "Pet: Nemo Species: fish Level: 1 Yard: Pond")
	assert.Contains(t, out.String(), "Stomach Status: Hungry")
	assert.Contains(t, out.String(), "Happiness Status: Neglected")
}

func TestLoop_InterruptSemantics(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)
	srv.AddYard(uid, "Home")

	prompter := script(loginSteps()...).
		and("4").then(ErrInterrupted). // прерывание внутри действия
		and("2").
		then(ErrInterrupted). // прерывание в меню пользователя
		then(ErrInterrupted) // прерывание в главном меню
	prompter.and("never read")

	loop, out := newTestLoop(t, srv.URL(), false, prompter)

	require.NoError(t, loop.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Action Canceled...")
	assert.Contains(t, output, "Yard: Home (0 pets)")
	assert.Contains(t, output, "Logged out alice")
	assert.Contains(t, output, "Goodbye!")
	assert.Equal(t, 1, prompter.remaining())
	assert.False(t, loop.Session().Authenticated())

	user, _ := srv.User(uid)
	assert.Len(t, user.OwnedYards, 1)
}

func TestLoop_LogoutInvalidatesToken(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)

	loop, out := newTestLoop(t, srv.URL(), false, script(loginSteps()...).and("logout"))

	require.NoError(t, loop.Run(context.Background()))

	assert.Empty(t, loop.Session().Token)
	assert.Contains(t, out.String(), "Logged out alice")

	calls := srv.MutatingCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[1].Method)
	assert.True(t, strings.HasPrefix(calls[1].Path, "/auth/logout/"+uid+"/"))

	token := strings.TrimPrefix(calls[1].Path, "/auth/logout/"+uid+"/")
	assert.False(t, srv.LoggedIn(token))
}

func TestLoop_DeleteAccountEndsSession(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)
	yid := srv.AddYard(uid, "Home")
	srv.AddPet(uid, yid, "Rex", models.SpeciesDog, time.Now())

	prompter := script(loginSteps()...).and("8", "3", "1", "no", "1", "Yes", "2", "1")
	loop, out := newTestLoop(t, srv.URL(), false, prompter)

	require.NoError(t, loop.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Username: alice")
	assert.Contains(t, output, "Email: alice@example.com")
	assert.Contains(t, output, "Pets: 1  Owned yards: 1  Joined yards: 0")
	assert.Contains(t, output, "Action Canceled...")
	assert.Contains(t, output, "Account alice deleted. Goodbye!")
	assert.Equal(t, 2, prompter.remaining())

	_, ok := srv.User(uid)
	assert.False(t, ok)
}

func TestLoop_UnrecognizedCommand(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	loop, out := newTestLoop(t, srv.URL(), false, script("hello", "quit", "1"))

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "I'm sorry, I didn't recognize that command.")
	assert.Contains(t, out.String(), "Secure Virtual Pets")
	assert.Empty(t, srv.Calls())
}

func TestLoop_ServerUnavailable(t *testing.T) {
	srv := testserver.New()
	url := srv.URL()
	srv.Close()

	loop, out := newTestLoop(t, url, false, script("1", testUser, testPassword))

	require.NoError(t, loop.Run(context.Background()))

	assert.Contains(t, out.String(), "No network connection or the server is unavailable")
	assert.False(t, loop.Session().Authenticated())
}

func TestLoop_ContextCanceled(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop, _ := newTestLoop(t, srv.URL(), false, script("1"))

	err := loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoop_FeedYardStopsAtFailedRequest(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := testserver.New()
			defer srv.Close()
			uid := srv.AddUser(testUser, testEmail, testPassword)
			yid := srv.AddYard(uid, "Home")
			srv.AddPet(uid, yid, "Rex", models.SpeciesDog, time.Now())
			srv.AddPet(uid, yid, "Tom", models.SpeciesCat, time.Now())
			srv.Fail(http.MethodPost, testserver.RouteFeedPet, status, "Pet not found")

			loop, out := newTestLoop(t, srv.URL(), false, script(loginSteps()...).and("7", "Home"))

			require.NoError(t, loop.Run(context.Background()))

			output := out.String()
			assert.Contains(t, output, fmt.Sprintf("Request failed with status code %d", status))
			assert.Contains(t, output, "Error with feeding yard")
			assert.NotContains(t, output, "Fed 0 of 2")
			assert.NotContains(t, output, "There is no pet with this name")

			var feeds int
			for _, c := range srv.MutatingCalls() {
				if strings.HasSuffix(c.Path, "/feed") {
					feeds++
				}
			}
			// без повторов и без попыток накормить остальных
			assert.Equal(t, 1, feeds)
		})
	}
}

func TestLoop_FeedYardPartialProgress(t *testing.T) {
	srv := testserver.New()
	defer srv.Close()
	uid := srv.AddUser(testUser, testEmail, testPassword)
	yid := srv.AddYard(uid, "Home")
	srv.AddPet(uid, yid, "Rex", models.SpeciesDog, time.Now())
	tom := srv.AddPet(uid, yid, "Tom", models.SpeciesCat, time.Now())

	// двор всё ещё ссылается на удалённого питомца
	srv.DropPet(tom)
	loop, out := newTestLoop(t, srv.URL(), false, script(loginSteps()...).and("7", "Home"))

	require.NoError(t, loop.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Fed Rex")
	assert.Contains(t, output, "Request failed with status code 404")
	assert.Contains(t, output, "Pet not found")
}

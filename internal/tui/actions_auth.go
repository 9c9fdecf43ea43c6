package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/svp-client/internal/service"
	"github.com/MKhiriev/svp-client/internal/validators"
	"github.com/MKhiriev/svp-client/models"
)

const (
	deleteAccountWarning = "Warning! This will delete your account, including all of your pets and yards, and close the program! " +
		"The account will not be recoverable after you complete this action"
)

func (l *Loop) login(ctx context.Context) error {
	username, err := l.prompter.Prompt(ctx, "Username: ")
	if err != nil {
		return err
	}
	password, err := l.prompter.Password(ctx, "Password: ")
	if err != nil {
		return err
	}

	session, err := l.services.AuthService.Login(ctx, models.Credentials{
		Username: strings.TrimSpace(username),
		Password: password,
	})
	if err != nil {
		fmt.Fprintln(l.out, errorStyle.Render("Login failed"))
		return err
	}

	l.session = session
	l.success("Successfully logged in as %s", session.Username)
	return nil
}

func (l *Loop) signup(ctx context.Context) error {
	email, err := l.askEmail(ctx)
	if err != nil {
		return err
	}

	var username string
	for {
		if username, err = l.prompter.Prompt(ctx, "Username: "); err != nil {
			return err
		}
		if username = strings.TrimSpace(username); username != "" {
			break
		}
		l.warn("Usernames must not be empty")
	}

	password, err := l.askPassword(ctx)
	if err != nil {
		return err
	}

	if err = l.services.AuthService.Signup(ctx, models.SignupRequest{
		Email:    email,
		Username: username,
		Password: password,
	}); err != nil {
		return err
	}

	l.success("User created. You can now log in as %s", username)
	return nil
}

// askEmail repeats the prompt until the address passes the email check.
func (l *Loop) askEmail(ctx context.Context) (string, error) {
	for {
		email, err := l.prompter.Prompt(ctx, "Your Email: ")
		if err != nil {
			return "", err
		}
		email = strings.TrimSpace(email)

		err = l.services.AuthService.CheckEmail(ctx, email)
		if err == nil {
			return email, nil
		}
		if !errors.Is(err, service.ErrInvalidEmail) {
			return "", err
		}
		l.warn("Invalid email. Please enter a valid email.")
	}
}

// askPassword repeats the masked prompt until the password is strong enough,
// naming every rule the last attempt broke.
func (l *Loop) askPassword(ctx context.Context) (string, error) {
	for {
		password, err := l.prompter.Password(ctx, "Password: ")
		if err != nil {
			return "", err
		}

		err = l.services.AuthService.CheckPassword(ctx, password)
		if err == nil {
			return password, nil
		}
		if !errors.Is(err, service.ErrWeakPassword) {
			return "", err
		}

		l.warn("Password is too weak. It must contain:")
		for _, failure := range validators.CheckPassword(password).Failures() {
			fmt.Fprintf(l.out, "  - %s\n", failure)
		}
	}
}

// logout ends the session locally even when the server could not be told.
func (l *Loop) logout(ctx context.Context) {
	if err := l.services.AuthService.Logout(ctx, l.session); err != nil {
		l.logger.Warn().Err(err).Msg("logout request failed")
	}

	fmt.Fprintf(l.out, "Logged out %s\n", l.session.Username)
	l.session = models.Session{}
}

func (l *Loop) manageAccount(ctx context.Context) error {
	printCommands(l.out, accountCommands)

	for {
		answer, err := l.prompter.Prompt(ctx, "> ")
		if err != nil {
			return err
		}

		switch normalizeCommand(answer) {
		case "1":
			err = l.deleteAccount(ctx)
		case "2", "back":
			return nil
		case "3":
			err = l.viewProfile(ctx)
		case "":
			continue
		default:
			l.unrecognized()
			continue
		}

		switch {
		case err == nil:
		case errors.Is(err, errCanceled):
			l.warn("Action Canceled...")
		case errors.Is(err, errAccountDeleted), errors.Is(err, ErrInterrupted), errors.Is(err, io.EOF):
			return err
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			l.logger.Warn().Err(err).Msg("account action failed")
			l.printFailure(err)
		}
	}
}

func (l *Loop) deleteAccount(ctx context.Context) error {
	if err := l.confirm(ctx, deleteAccountWarning); err != nil {
		return err
	}

	if err := l.services.AuthService.DeleteAccount(ctx, l.session); err != nil {
		return err
	}

	l.success("Account %s deleted. Goodbye!", l.session.Username)
	l.session = models.Session{}
	return errAccountDeleted
}

func (l *Loop) viewProfile(ctx context.Context) error {
	user, err := l.services.AuthService.Profile(ctx, l.session)
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "Username: %s\n", user.Username)
	fmt.Fprintf(l.out, "Email: %s\n", user.Email)
	if user.JoinedAt > 0 {
		fmt.Fprintf(l.out, "Member since: %s\n", time.UnixMilli(user.JoinedAt).UTC().Format("2006-01-02"))
	}
	fmt.Fprintf(l.out, "Pets: %d  Owned yards: %d  Joined yards: %d\n",
		len(user.Pets), len(user.OwnedYards), len(user.JoinedYards))
	return nil
}

// confirm prints warning and asks for a yes/no answer. Anything not starting
// with "y" cancels.
func (l *Loop) confirm(ctx context.Context, warning string) error {
	l.warn(warning)
	answer, err := l.prompter.Prompt(ctx, "Proceed? (Yes/No) ")
	if err != nil {
		return err
	}

	answer = normalizeCommand(answer)
	if strings.HasPrefix(answer, "y") {
		return nil
	}
	return errCanceled
}

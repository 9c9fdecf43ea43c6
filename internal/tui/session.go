// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/svp-client/internal/adapter"
	"github.com/MKhiriev/svp-client/internal/logger"
	"github.com/MKhiriev/svp-client/internal/service"
	"github.com/MKhiriev/svp-client/models"
)

// PetArt returns the picture stored for a species at index.
type PetArt interface {
	Picture(species models.Species, index int) (string, bool)
}

type menuState int

const (
	stateNone menuState = iota
	stateAnonymous
	stateAuthenticated
)

// Loop is the interactive session. It is not safe for concurrent use: one
// prompt is open and at most one request is in flight at any time.
type Loop struct {
	services *service.ClientServices
	art      PetArt
	prompter Prompter
	out      io.Writer

	session models.Session
	shown   menuState

	logger *logger.Logger
}

// New returns a session loop that reads answers from prompter and writes
// everything else to out.
func New(services *service.ClientServices, art PetArt, prompter Prompter, out io.Writer, log *logger.Logger) *Loop {
	return &Loop{
		services: services,
		art:      art,
		prompter: prompter,
		out:      out,
		logger:   log.WithComponent("tui"),
	}
}

// Session returns the current session; it is empty while anonymous.
func (l *Loop) Session() models.Session {
	return l.session
}

// Run shows the header and serves menus until the user quits, the input ends,
// the account is deleted or ctx is canceled. Only the last case is returned
// as an error.
func (l *Loop) Run(ctx context.Context) error {
	printHeader(l.out)

	for {
		var (
			quit bool
			err  error
		)
		if l.session.Authenticated() {
			quit, err = l.userStep(ctx)
		} else {
			quit, err = l.anonymousStep(ctx)
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

func (l *Loop) anonymousStep(ctx context.Context) (bool, error) {
	if l.shown != stateAnonymous {
		printCommands(l.out, anonymousCommands)
		l.shown = stateAnonymous
	}

	answer, err := l.prompter.Prompt(ctx, "> ")
	if err != nil {
		return l.promptEnded(ctx, err)
	}

	switch normalizeCommand(answer) {
	case "1", "login":
		return l.runAction(ctx, "login", l.login)
	case "2", "signup":
		return l.runAction(ctx, "signup", l.signup)
	case "quit", "exit":
		fmt.Fprintln(l.out, "Goodbye!")
		return true, nil
	case "help", "?":
		l.shown = stateNone
	case "":
	default:
		l.unrecognized()
	}
	return false, nil
}

func (l *Loop) userStep(ctx context.Context) (bool, error) {
	if l.shown != stateAuthenticated {
		fmt.Fprintf(l.out, "Welcome %s: What would you like to do?\n", l.session.Username)
		printCommands(l.out, userCommands)
		l.shown = stateAuthenticated
	}

	answer, err := l.prompter.Prompt(ctx, "> ")
	if errors.Is(err, ErrInterrupted) {
		l.logout(ctx)
		return false, nil
	}
	if err != nil {
		return l.promptEnded(ctx, err)
	}

	switch normalizeCommand(answer) {
	case "1":
		return l.runAction(ctx, "view pets", l.viewPets)
	case "2":
		return l.runAction(ctx, "view yards", l.viewYards)
	case "3":
		return l.runAction(ctx, "create pet", l.createPet)
	case "4":
		return l.runAction(ctx, "create yard", l.createYard)
	case "5":
		return l.runAction(ctx, "delete pet", l.deletePet)
	case "6":
		return l.runAction(ctx, "delete yard", l.deleteYard)
	case "7":
		return l.runAction(ctx, "feed yard", l.feedYard)
	case "8":
		quit, err := l.runAction(ctx, "manage account", l.manageAccount)
		l.shown = stateNone
		return quit, err
	case "logout":
		l.logout(ctx)
	case "quit", "exit":
		l.logout(ctx)
		fmt.Fprintln(l.out, "Goodbye!")
		return true, nil
	case "help", "?":
		l.shown = stateNone
	case "":
	default:
		l.unrecognized()
	}
	return false, nil
}

// promptEnded handles an error from a menu prompt.
func (l *Loop) promptEnded(ctx context.Context, err error) (bool, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return true, ctxErr
	}
	if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
		fmt.Fprintln(l.out, "Goodbye!")
		return true, nil
	}
	return true, err
}

// runAction executes one menu action and reports its outcome. Failed actions
// are printed and the loop continues.
func (l *Loop) runAction(ctx context.Context, name string, action func(context.Context) error) (bool, error) {
	l.logger.Debug().Str("action", name).Msg("action started")

	err := action(ctx)
	switch {
	case err == nil:
		return false, nil
	case ctx.Err() != nil:
		return true, ctx.Err()
	case errors.Is(err, errAccountDeleted):
		return true, nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(l.out, "Goodbye!")
		return true, nil
	case errors.Is(err, ErrInterrupted), errors.Is(err, errCanceled):
		fmt.Fprintln(l.out, warnStyle.Render("Action Canceled..."))
		return false, nil
	}

	l.logger.Warn().Err(err).Str("action", name).Msg("action failed")
	l.printFailure(err)

	if errors.Is(err, service.ErrNotAuthorized) && l.session.Authenticated() {
		fmt.Fprintln(l.out, warnStyle.Render("Your session has expired, please log in again."))
		l.session = models.Session{}
	}
	return false, nil
}

// printFailure prints the status code of a rejected request, if any, and a
// readable description of err.
func (l *Loop) printFailure(err error) {
	if code := adapter.StatusCode(err); code != 0 {
		fmt.Fprintln(l.out, errorStyle.Render(fmt.Sprintf("Request failed with status code %d", code)))
	}
	fmt.Fprintln(l.out, errorStyle.Render(describeError(err)))
}

func (l *Loop) unrecognized() {
	fmt.Fprintln(l.out, "I'm sorry, I didn't recognize that command.")
}

func (l *Loop) success(format string, args ...any) {
	fmt.Fprintln(l.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

func (l *Loop) warn(msg string) {
	fmt.Fprintln(l.out, warnStyle.Render(msg))
}

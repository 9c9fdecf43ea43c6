package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/svp-client/internal/service"
	"github.com/MKhiriev/svp-client/models"
)

const deleteYardWarning = "Warning! This will permanently delete a yard, including all pets within it. Would you like to proceed?"

// resolveYard asks for the name of an owned yard until one matches. A blank
// answer cancels the action.
func (l *Loop) resolveYard(ctx context.Context, label string) (id, name string, err error) {
	for {
		if name, err = l.prompter.Prompt(ctx, label); err != nil {
			return "", "", err
		}
		if name = strings.TrimSpace(name); name == "" {
			return "", "", errCanceled
		}

		var found bool
		if id, found, err = l.services.YardService.FindByName(ctx, l.session.UserID, name); err != nil {
			return "", "", err
		}
		if found {
			return id, name, nil
		}
		l.warn("There is no yard with this name")
	}
}

func (l *Loop) viewYards(ctx context.Context) error {
	listing, err := l.services.YardService.List(ctx, l.session.UserID)
	if err != nil {
		return err
	}
	if len(listing.Owned) == 0 && len(listing.Joined) == 0 {
		fmt.Fprintln(l.out, "You have no pet yards")
		return nil
	}

	l.printYards("Owned yards", listing.Owned)
	l.printYards("Joined yards", listing.Joined)
	return nil
}

func (l *Loop) printYards(title string, yards []models.Yard) {
	if len(yards) == 0 {
		return
	}
	fmt.Fprintln(l.out, titleStyle.Render(title))
	for _, yard := range yards {
		fmt.Fprintf(l.out, "Yard: %s (%d pets)\n", yard.Name, len(yard.Pets))
	}
}

func (l *Loop) createYard(ctx context.Context) error {
	for {
		name, err := l.prompter.Prompt(ctx, "Yard name: ")
		if err != nil {
			return err
		}
		name = strings.TrimSpace(name)

		err = l.services.YardService.CheckNewName(ctx, l.session.UserID, name)
		switch {
		case err == nil:
			if _, err = l.services.YardService.Create(ctx, l.session.UserID, name); err != nil {
				return err
			}
			l.success("Created yard %s", name)
			return nil
		case errors.Is(err, service.ErrEmptyName):
			l.warn("Yards must have a name")
		case errors.Is(err, service.ErrYardNameTaken):
			l.warn("You already have a yard of this name")
		default:
			return err
		}
	}
}

func (l *Loop) deleteYard(ctx context.Context) error {
	if err := l.confirm(ctx, deleteYardWarning); err != nil {
		return err
	}

	yardID, yardName, err := l.resolveYard(ctx, "Name of yard: ")
	if err != nil {
		return err
	}

	fmt.Fprintf(l.out, "Deleting %s . . .\n", yardName)
	deleted, err := l.services.YardService.Delete(ctx, l.session.UserID, yardID)
	if err != nil {
		fmt.Fprintln(l.out, errorStyle.Render("Error with deleting yard"))
		if deleted > 0 {
			l.warn(fmt.Sprintf("%d pets were deleted before the failure", deleted))
		}
		return err
	}

	l.success("Yard successfully deleted (%d pets removed)", deleted)
	return nil
}

func (l *Loop) feedYard(ctx context.Context) error {
	yardID, yardName, err := l.resolveYard(ctx, "Yard to feed: ")
	if err != nil {
		return err
	}

	report, err := l.services.YardService.Feed(ctx, l.session.UserID, yardID)
	for _, name := range report.Fed {
		fmt.Fprintf(l.out, "Fed %s\n", name)
	}
	if err != nil {
		fmt.Fprintln(l.out, errorStyle.Render("Error with feeding yard"))
		return err
	}
	if report.Total == 0 {
		fmt.Fprintf(l.out, "There are no pets in yard %s\n", yardName)
		return nil
	}

	l.success("Fed %d of %d pets in yard %s", len(report.Fed), report.Total, yardName)
	return nil
}

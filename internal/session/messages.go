package session

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/redact"
	"github.com/phrazzld/tasklist/internal/service"
)

// Menus
var (
	anonymousOptions = []string{"Create User", "Sign In", "Exit"}

	authenticatedOptions = []string{
		"Add Task (Create)",
		"List Tasks (Retrieve)",
		"Modify Task (Update)",
		"Delete Task (Delete)",
		"Sign Out",
	}

	modifyOptions = []string{
		"Update Status (Pending/Completed)",
		"Update Description",
	}
)

const (
	anonymousTitle = "--- To-Do List Application (Sign-in/Sign-up) ---"

	msgWelcome         = "Welcome to the To-Do List App! Let's get organized."
	msgGoodbye         = "Bye bye! Thanks for using the To-Do List App."
	msgInvalidChoice   = "Invalid choice. Try again."
	msgNotFound        = "Task not found or you don't have permission."
	msgEmptyTaskFields = "Task name and description cannot be empty. Task creation cancelled."
	msgInvalidStatus   = "Invalid status. Use 'Pending' or 'Completed'."
	msgInputClosed     = "Input closed. Exiting."
)

func authenticatedTitle(userID string) string {
	return fmt.Sprintf("--- To-Do List Application (Logged in as user %s) ---", userID)
}

// validationMessage returns the user-facing text for a validation error.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyTaskName), errors.Is(err, domain.ErrEmptyTaskDescription):
		return msgEmptyTaskFields
	case errors.Is(err, domain.ErrInvalidTaskStatus):
		return msgInvalidStatus
	case errors.Is(err, domain.ErrEmptyEmail):
		return "Email cannot be empty."
	case errors.Is(err, domain.ErrEmptyPassword):
		return "Password cannot be empty."
	default:
		return "Invalid input: " + err.Error()
	}
}

// failureMessage returns the user-facing text for err raised while doing
// action. Backend errors are redacted.
func failureMessage(action string, err error) string {
	switch service.KindOf(err) {
	case service.KindValidation:
		return validationMessage(err)
	case service.KindNotFoundOrForbidden:
		return msgNotFound
	case service.KindAuth:
		return fmt.Sprintf("Error %s: %s", action, err.Error())
	default:
		return fmt.Sprintf("Error %s: %s", action, redact.Error(err))
	}
}

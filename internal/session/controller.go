package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phrazzld/tasklist/internal/console"
	"github.com/phrazzld/tasklist/internal/domain"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/service"
)

// Controller runs the menu loop for one session.
type Controller struct {
	console *console.Console
	auth    service.AuthService
	tasks   service.TaskService
	logger  *slog.Logger
}

// NewController creates a Controller. If log is nil, slog.Default() is used.
func NewController(
	c *console.Console,
	auth service.AuthService,
	tasks service.TaskService,
	log *slog.Logger,
) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		console: c,
		auth:    auth,
		tasks:   tasks,
		logger:  log.With(slog.String("component", "session")),
	}
}

// Run drives the loop until the user exits, input ends or ctx is cancelled.
// Operation failures are rendered and the loop continues. Run returns an
// error only when reading input fails for another reason.
func (c *Controller) Run(ctx context.Context) error {
	sess := Session{}
	c.console.Info("")
	c.console.Info(msgWelcome)

	for {
		var (
			done bool
			err  error
		)
		switch sess.State() {
		case Anonymous:
			sess, done, err = c.anonymousStep(ctx, sess)
		case Authenticated:
			sess, err = c.authenticatedStep(ctx, sess)
		}

		if err != nil {
			if endOfInput(err) {
				c.logger.Info("session ended",
					slog.String("reason", err.Error()),
					slog.String("state", sess.State().String()))
				c.console.Info("")
				c.console.Info(msgInputClosed)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		if done {
			return nil
		}
	}
}

func endOfInput(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// anonymousStep renders the sign-in menu and handles one choice. done is
// true when the user chose to exit.
func (c *Controller) anonymousStep(ctx context.Context, sess Session) (Session, bool, error) {
	c.console.Menu(anonymousTitle, anonymousOptions)
	choice, err := c.console.Prompt(ctx, "Enter choice")
	if err != nil {
		return sess, false, err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		return sess, false, c.register(ctx)
	case "2":
		next, err := c.signIn(ctx, sess)
		return next, false, err
	case "3":
		c.console.Info(msgGoodbye)
		return sess, true, nil
	default:
		c.console.Warn(msgInvalidChoice)
		return sess, false, nil
	}
}

// authenticatedStep renders the task menu and handles one choice.
func (c *Controller) authenticatedStep(ctx context.Context, sess Session) (Session, error) {
	c.console.Menu(authenticatedTitle(sess.UserID), authenticatedOptions)
	choice, err := c.console.Prompt(ctx, "Enter choice")
	if err != nil {
		return sess, err
	}

	ctx = logger.WithLogger(ctx, c.logger.With(slog.String("user_id", sess.UserID)))

	switch strings.TrimSpace(choice) {
	case "1":
		return sess, c.addTask(ctx, sess)
	case "2":
		return sess, c.listTasks(ctx, sess)
	case "3":
		return sess, c.modifyTask(ctx, sess)
	case "4":
		return sess, c.deleteTask(ctx, sess)
	case "5":
		c.console.Info(fmt.Sprintf("Signing out. See you next time, user %s!", sess.UserID))
		c.logger.Info("user signed out", slog.String("user_id", sess.UserID))
		return Session{}, nil
	default:
		c.console.Warn(msgInvalidChoice)
		return sess, nil
	}
}

// report renders a failed operation. Unexpected errors are logged in full
// before the redacted text reaches the console.
func (c *Controller) report(ctx context.Context, action string, err error) {
	kind := service.KindOf(err)
	msg := failureMessage(action, err)

	switch kind {
	case service.KindValidation:
		c.console.Warn(msg)
	case service.KindBackend:
		logger.FromContextOrDefault(ctx, c.logger).Error("operation failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		c.console.Error(msg)
	default:
		c.console.Error(msg)
	}
}

func (c *Controller) register(ctx context.Context) error {
	email, err := c.console.Prompt(ctx, "Enter email")
	if err != nil {
		return err
	}
	password, err := c.console.PromptPassword(ctx, "Enter password (minimum 6 characters)")
	if err != nil {
		return err
	}

	userID, err := c.auth.Register(ctx, email, password)
	if err != nil {
		if userID != "" {
			c.console.Info(fmt.Sprintf("User created with ID: %s", userID))
		}
		c.report(ctx, "creating user", err)
		return nil
	}

	c.console.Success(fmt.Sprintf("User created successfully with ID: %s", userID))
	c.console.Success("Registration complete! Please sign in now.")
	return nil
}

func (c *Controller) signIn(ctx context.Context, sess Session) (Session, error) {
	email, err := c.console.Prompt(ctx, "Enter email")
	if err != nil {
		return sess, err
	}
	password, err := c.console.PromptPassword(ctx, "Enter password")
	if err != nil {
		return sess, err
	}

	userID, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		c.report(ctx, "signing in", err)
		return sess, nil
	}

	email = strings.TrimSpace(email)
	c.console.Info("")
	c.console.Success(fmt.Sprintf("Welcome to the To-Do List App, %s! Let's manage your tasks.", email))
	return SignedIn(userID, email), nil
}

func (c *Controller) addTask(ctx context.Context, sess Session) error {
	name, err := c.console.Prompt(ctx, "Enter task name")
	if err != nil {
		return err
	}
	description, err := c.console.Prompt(ctx, "Enter task description")
	if err != nil {
		return err
	}

	id, err := c.tasks.Add(ctx, sess.UserID, name, description)
	if err != nil {
		c.report(ctx, "adding task", err)
		return nil
	}

	c.console.Success(fmt.Sprintf("Task '%s' added successfully with ID: %s", name, id))
	return nil
}

func (c *Controller) listTasks(ctx context.Context, sess Session) error {
	tasks, err := c.tasks.List(ctx, sess.UserID)
	if err != nil {
		c.report(ctx, "retrieving tasks", err)
		return nil
	}
	c.console.Tasks(tasks)
	return nil
}

func (c *Controller) modifyTask(ctx context.Context, sess Session) error {
	taskID, err := c.console.Prompt(ctx, "Enter task ID to modify")
	if err != nil {
		return err
	}
	taskID = strings.TrimSpace(taskID)

	// Check ownership before asking what to change.
	if _, err := c.tasks.Get(ctx, sess.UserID, taskID); err != nil {
		c.report(ctx, "modifying task", err)
		return nil
	}

	c.console.Menu("What do you want to change?", modifyOptions)
	choice, err := c.console.Prompt(ctx, "Enter choice (1-2)")
	if err != nil {
		return err
	}

	var (
		field domain.TaskField
		value string
	)
	switch strings.TrimSpace(choice) {
	case "1":
		field = domain.TaskFieldStatus
		value, err = c.console.Prompt(ctx, "Enter new status (Pending/Completed)")
	case "2":
		field = domain.TaskFieldDescription
		value, err = c.console.Prompt(ctx, "Enter new description")
	default:
		c.console.Warn("Invalid choice.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := c.tasks.Modify(ctx, sess.UserID, taskID, field, value); err != nil {
		c.report(ctx, "modifying task", err)
		return nil
	}

	c.console.Success(fmt.Sprintf("Task %s updated successfully.", taskID))
	return nil
}

func (c *Controller) deleteTask(ctx context.Context, sess Session) error {
	taskID, err := c.console.Prompt(ctx, "Enter task ID to delete")
	if err != nil {
		return err
	}
	taskID = strings.TrimSpace(taskID)

	if err := c.tasks.Delete(ctx, sess.UserID, taskID); err != nil {
		c.report(ctx, "deleting task", err)
		return nil
	}

	c.console.Success(fmt.Sprintf("Task %s deleted successfully.", taskID))
	return nil
}

package console

import (
	"fmt"
	"strings"

	"github.com/phrazzld/tasklist/internal/domain"
)

const separatorWidth = 30

// Tasks prints a task listing, or a notice when there are none.
func (c *Console) Tasks(tasks []*domain.Task) {
	c.Title("Your Tasks:")
	if len(tasks) == 0 {
		fmt.Fprintln(c.out, c.styles.Muted.Render("No tasks found for this user. You're all caught up!"))
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(c.out, c.styles.Label.Render(fmt.Sprintf("--- Task ID: %s ---", t.ID)))
		fmt.Fprintf(c.out, "Name: %s\n", t.Name)
		fmt.Fprintf(c.out, "Description: %s\n", t.Description)
		fmt.Fprintf(c.out, "Status: %s\n", c.status(t.Status))
		fmt.Fprintln(c.out, c.styles.Muted.Render(strings.Repeat("-", separatorWidth)))
	}
}

func (c *Console) status(s domain.TaskStatus) string {
	switch s {
	case domain.TaskStatusCompleted:
		return c.styles.Completed.Render(iconSuccess + " " + string(s))
	case domain.TaskStatusPending:
		return c.styles.Pending.Render(iconPending + " " + string(s))
	default:
		return string(s)
	}
}

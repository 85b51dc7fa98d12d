package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const notLoadedMessage = "Course data is not loaded. Please choose option 1 to load data."

// ListCmd implements menu option 2.
type ListCmd struct {
	Planner Planner
}

func (c *ListCmd) Name() string        { return "2" }
func (c *ListCmd) Description() string { return "Print Course List" }
func (c *ListCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	t := newTheme(output)
	listings, err := c.Planner.Courses()
	if errors.Is(err, ErrNotLoaded) {
		fmt.Fprintln(output, t.notice.Render(notLoadedMessage))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, t.heading.Render("List of Courses:"))
	for _, l := range listings {
		fmt.Fprintf(output, "%s  %s\n", l.ID, l.Title)
	}
	return nil
}

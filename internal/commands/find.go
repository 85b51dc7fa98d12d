package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// FindCmd implements menu option 3. The course id comes from the arguments,
// or from the prompt when none were given.
type FindCmd struct {
	Planner Planner
}

func (c *FindCmd) Name() string        { return "3" }
func (c *FindCmd) Description() string { return "Print Course" }

// Prompt asks for a course id only once data is loaded, so the not-loaded
// guidance is shown without a pointless question first.
func (c *FindCmd) Prompt() (string, bool) {
	if !c.Planner.Loaded() {
		return "", false
	}
	return "Enter the course ID: ", true
}

func (c *FindCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	t := newTheme(output)
	id := strings.TrimSpace(strings.Join(args, " "))

	course, found, err := c.Planner.Course(id)
	if errors.Is(err, ErrNotLoaded) {
		fmt.Fprintln(output, t.notice.Render(notLoadedMessage))
		return nil
	}
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(output, t.notice.Render("A course ID is required. Usage: 3 <course id>"))
		return nil
	}
	if !found {
		fmt.Fprintln(output)
		fmt.Fprintf(output, "Course %s not found.\n", id)
		return nil
	}

	fmt.Fprintln(output)
	fmt.Fprintln(output, t.heading.Render("Course Details:"))
	fmt.Fprintf(output, "ID: %s\n", course.ID)
	fmt.Fprintf(output, "Title: %s\n", course.Title)
	fmt.Fprintf(output, "Prerequisites: %s\n", course.PrerequisiteList())
	return nil
}

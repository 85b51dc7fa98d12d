package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/rafabd1/courseplanner/internal/catalog"
)

// LoadCmd implements menu option 1.
type LoadCmd struct {
	Planner Planner
}

func (c *LoadCmd) Name() string        { return "1" }
func (c *LoadCmd) Description() string { return "Load Data Structure" }

// Execute loads the course data file. Load failures are reported to the user
// and leave the session usable; only cancellation is returned as an error.
func (c *LoadCmd) Execute(ctx context.Context, args []string, output io.Writer) error {
	t := newTheme(output)
	count, err := c.Planner.Load(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(output, "File loaded successfully.")
		fmt.Fprintf(output, "Course data loaded successfully. %d courses available.\n", count)
	case errors.Is(err, ErrAlreadyLoaded):
		fmt.Fprintln(output, t.notice.Render("Course data is already loaded."))
	case errors.Is(err, catalog.ErrNotFound):
		fmt.Fprintln(output, t.failure.Render(fmt.Sprintf("Error: The course data file '%s' is unavailable.", c.Planner.Source())))
	case errors.Is(err, catalog.ErrInvalidFormat):
		fmt.Fprintln(output, t.failure.Render(formatErrorMessage(err)))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		fmt.Fprintln(output, t.failure.Render(fmt.Sprintf("Error: Could not load course data: %v", err)))
	}
	return nil
}

// formatErrorMessage names the offending row when the loader reported one.
func formatErrorMessage(err error) string {
	var formatErr *catalog.FormatError
	if errors.As(err, &formatErr) {
		return fmt.Sprintf("Error: Invalid data format in the course data file (%s).", formatErr.Location)
	}
	return "Error: Invalid data format in the course data file."
}

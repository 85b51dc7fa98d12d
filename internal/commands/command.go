package commands

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/rafabd1/courseplanner/internal/catalog"
)

// Command defines the interface for a numbered menu option.
type Command interface {
	Name() string        // Returns the menu number (e.g., "1")
	Description() string // Returns the menu label
	// Executes the command, writing output to the provided writer.
	Execute(ctx context.Context, args []string, output io.Writer) error
}

// Prompter is implemented by commands that ask for an argument when none was
// given on the command line. Prompt reports the question and whether it
// should be asked right now.
type Prompter interface {
	Prompt() (string, bool)
}

// Planner is the course session as seen by the menu commands.
type Planner interface {
	// Loaded reports whether course data has been loaded.
	Loaded() bool
	// Source is the course data file the session loads from.
	Source() string
	// Load reads the course data file and returns the number of courses.
	Load(ctx context.Context) (int, error)
	// Courses lists the loaded courses in file order.
	Courses() ([]catalog.Listing, error)
	// Course looks up a course by id.
	Course(id string) (catalog.Course, bool, error)
}

var (
	// ErrExitRequested is returned by the exit command to end the session.
	ErrExitRequested = errors.New("exit requested")
	// ErrInvalidChoice marks input that is not a known menu number.
	ErrInvalidChoice = errors.New("invalid menu choice")
	// ErrNotLoaded is returned when course data is needed but not loaded yet.
	ErrNotLoaded = errors.New("course data is not loaded")
	// ErrAlreadyLoaded is returned when course data is loaded a second time.
	ErrAlreadyLoaded = errors.New("course data is already loaded")
)

// Defaults returns the standard course planner menu bound to planner.
func Defaults(planner Planner) []Command {
	return []Command{
		&LoadCmd{Planner: planner},
		&ListCmd{Planner: planner},
		&FindCmd{Planner: planner},
		&ExitCmd{},
	}
}

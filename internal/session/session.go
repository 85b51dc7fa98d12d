// Package session runs the course planner menu: it owns the course catalog,
// tracks whether data has been loaded and dispatches menu input to commands.
package session

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/rafabd1/courseplanner/internal/catalog"
	"github.com/rafabd1/courseplanner/internal/commands"
)

// State is the menu session lifecycle state.
type State int

const (
	StateNotLoaded State = iota
	StateLoaded
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNotLoaded:
		return "not_loaded"
	case StateLoaded:
		return "loaded"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const invalidChoiceMessage = "Invalid choice. Please try again."

// Options configures a Session.
type Options struct {
	Source      string         // Course data file
	AllowReload bool           // Re-read Source on a second load instead of refusing it
	Loader      catalog.Loader // Defaults to catalog.NewFileLoader()
	Logger      zerolog.Logger
}

// Session is one run of the course planner. It implements commands.Planner.
// A Session is not safe for concurrent use.
type Session struct {
	id          string
	state       State
	store       *catalog.Catalog
	loader      catalog.Loader
	source      string
	allowReload bool
	registry    *commands.Registry
	logger      zerolog.Logger

	// ask reads the answer to a command prompt. It is only set while Run is
	// reading from an input stream.
	ask func(ctx context.Context, question string) (string, error)
}

var _ commands.Planner = (*Session)(nil)

// New creates a session dispatching to the commands in registry. Commands may
// be registered after the session is created.
func New(registry *commands.Registry, opts Options) *Session {
	loader := opts.Loader
	if loader == nil {
		loader = catalog.NewFileLoader()
	}
	id := uuid.NewString()
	return &Session{
		id:          id,
		state:       StateNotLoaded,
		store:       catalog.New(),
		loader:      loader,
		source:      opts.Source,
		allowReload: opts.AllowReload,
		registry:    registry,
		logger:      opts.Logger.With().Str("session", id).Logger(),
	}
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Loaded reports whether course data has been loaded.
func (s *Session) Loaded() bool { return s.state == StateLoaded }

// Source returns the course data file.
func (s *Session) Source() string { return s.source }

// Load reads the course data file into the catalog. Once loaded, further
// loads are refused with commands.ErrAlreadyLoaded unless reloading was
// enabled. A failed load leaves the catalog and state untouched.
func (s *Session) Load(ctx context.Context) (int, error) {
	if s.state == StateLoaded && !s.allowReload {
		s.logger.Debug().Msg("Load refused, course data already loaded.")
		return 0, commands.ErrAlreadyLoaded
	}

	courses, err := s.loader.Load(ctx, s.source)
	if err != nil {
		s.logger.Warn().Err(err).Str("source", s.source).Msg("Course data load failed.")
		return 0, err
	}

	s.store.Replace(courses)
	s.state = StateLoaded
	s.logger.Info().Str("source", s.source).Int("courses", len(courses)).Msg("Course data loaded.")
	return len(courses), nil
}

// Courses lists the loaded courses in file order.
func (s *Session) Courses() ([]catalog.Listing, error) {
	if s.state != StateLoaded {
		return nil, commands.ErrNotLoaded
	}
	return s.store.List(), nil
}

// Course finds the first loaded course with the given id.
func (s *Session) Course(id string) (catalog.Course, bool, error) {
	if s.state != StateLoaded {
		return catalog.Course{}, false, commands.ErrNotLoaded
	}
	course, found := s.store.Find(id)
	s.logger.Debug().Str("course_id", id).Bool("found", found).Msg("Course lookup.")
	return course, found, nil
}

// WriteMenu prints the menu header and one line per registered command.
func (s *Session) WriteMenu(output io.Writer) {
	fmt.Fprintln(output)
	fmt.Fprintln(output, "Welcome to the Course Planner.")
	for _, cmd := range s.registry.GetAll() {
		fmt.Fprintf(output, "%s. %s\n", cmd.Name(), cmd.Description())
	}
}

// PromptFor reports the question a menu line needs answered before it can
// run, if any.
func (s *Session) PromptFor(line string) (string, bool) {
	if s.state == StateTerminated {
		return "", false
	}
	name, args, err := parseChoice(line)
	if err != nil || len(args) > 0 {
		return "", false
	}
	cmd, ok := s.registry.Get(name)
	if !ok {
		return "", false
	}
	p, ok := cmd.(commands.Prompter)
	if !ok {
		return "", false
	}
	return p.Prompt()
}

// Execute runs one line of menu input and reports whether the session has
// ended. Invalid input is reported to output and is not an error.
func (s *Session) Execute(ctx context.Context, line string, output io.Writer) (bool, error) {
	if s.state == StateTerminated {
		return true, nil
	}

	name, args, err := parseChoice(line)
	if err != nil {
		s.logger.Debug().Str("input", line).Msg("Rejected menu input.")
		fmt.Fprintln(output, invalidChoiceMessage)
		return false, nil
	}
	cmd, ok := s.registry.Get(name)
	if !ok {
		s.logger.Debug().Str("choice", name).Msg("Unknown menu choice.")
		fmt.Fprintln(output, invalidChoiceMessage)
		return false, nil
	}

	if len(args) == 0 && s.ask != nil {
		if question, ok := s.PromptFor(line); ok {
			answer, err := s.ask(ctx, question)
			if err != nil {
				return false, err
			}
			if answer = strings.TrimSpace(answer); answer != "" {
				args = []string{answer}
			}
		}
	}

	s.logger.Debug().Str("choice", name).Strs("args", args).Str("state", s.state.String()).Msg("Executing menu command.")
	err = cmd.Execute(ctx, args, output)
	if errors.Is(err, commands.ErrExitRequested) {
		s.terminate()
		return true, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "menu option %s", name)
	}
	return false, nil
}

func (s *Session) terminate() {
	s.state = StateTerminated
	s.logger.Info().Msg("Session terminated.")
}

// parseChoice splits a menu line into the option number and its arguments.
// Leading zeros and a plus sign are accepted, so "09" selects option 9.
func parseChoice(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, commands.ErrInvalidChoice
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", nil, errors.Wrapf(commands.ErrInvalidChoice, "%q", fields[0])
	}
	return strconv.Itoa(n), fields[1:], nil
}

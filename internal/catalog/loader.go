package catalog

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the course list file does not exist.
	ErrNotFound = errors.New("course data file not found")
	// ErrInvalidFormat is returned when a row has fewer than an id and a title.
	ErrInvalidFormat = errors.New("invalid course data format")
)

const minFields = 2

// utf8BOM is written by some spreadsheet exports at the start of a CSV file.
const utf8BOM = "\ufeff"

// Loader reads a full course list from a source.
type Loader interface {
	Load(ctx context.Context, path string) ([]Course, error)
}

// FormatError reports a row that breaks the course list format. It matches
// ErrInvalidFormat with errors.Is.
type FormatError struct {
	Location string // "line 3" or "sheet Sheet1 row 2"
	Reason   string
}

func (e *FormatError) Error() string {
	return e.Location + ": " + e.Reason + ": " + ErrInvalidFormat.Error()
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// FileLoader loads course lists from disk. Files ending in .xlsx are read
// as workbooks; anything else is treated as comma separated text.
//
// Fields are kept exactly as tokenized. With TrimFields set, surrounding
// whitespace is removed and empty prerequisite fields are dropped.
type FileLoader struct {
	TrimFields bool
}

// NewFileLoader creates a loader that keeps fields as written.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads every course in path. Any malformed row fails the whole load
// and no courses are returned.
func (l *FileLoader) Load(ctx context.Context, path string) ([]Course, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "open course data file %s", path)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return l.readWorkbook(ctx, file)
	default:
		return l.readText(ctx, file)
	}
}

// readText reads one course per line. Lines have no length limit.
func (l *FileLoader) readText(ctx context.Context, r io.Reader) ([]Course, error) {
	var courses []Course
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, errors.Wrap(readErr, "read course data")
		}
		if readErr == io.EOF && line == "" {
			return courses, nil
		}

		line = strings.TrimSuffix(line, "\n")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		fields, err := splitLine(line)
		if err != nil {
			return nil, &FormatError{Location: fmt.Sprintf("line %d", lineNo), Reason: err.Error()}
		}
		course, err := l.courseFromFields(fields)
		if err != nil {
			return nil, &FormatError{Location: fmt.Sprintf("line %d", lineNo), Reason: err.Error()}
		}
		courses = append(courses, course)

		if readErr == io.EOF {
			return courses, nil
		}
	}
}

// splitLine tokenizes a single line. An empty line has zero fields.
func splitLine(line string) ([]string, error) {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, nil
	}
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	fields, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	return fields, err
}

func (l *FileLoader) courseFromFields(fields []string) (Course, error) {
	if len(fields) < minFields {
		return Course{}, errors.Errorf("expected at least %d fields, got %d", minFields, len(fields))
	}
	course := Course{ID: fields[0], Title: fields[1]}
	if !l.TrimFields {
		if len(fields) > minFields {
			course.Prerequisites = append([]string(nil), fields[minFields:]...)
		}
		return course, nil
	}

	course.ID = strings.TrimSpace(course.ID)
	course.Title = strings.TrimSpace(course.Title)
	for _, field := range fields[minFields:] {
		if pre := strings.TrimSpace(field); pre != "" {
			course.Prerequisites = append(course.Prerequisites, pre)
		}
	}
	return course, nil
}

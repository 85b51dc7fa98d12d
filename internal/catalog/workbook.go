package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// readWorkbook reads courses from the first sheet of an .xlsx workbook.
// Column A is the id, B the title and every following cell a prerequisite.
// There is no header row.
func (l *FileLoader) readWorkbook(ctx context.Context, r io.Reader) ([]Course, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func() {
		_ = f.Close()
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.Wrap(ErrInvalidFormat, "workbook does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "read rows from sheet %s", sheetName)
	}

	courses := make([]Course, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		course, err := l.courseFromFields(row)
		if err != nil {
			return nil, &FormatError{Location: fmt.Sprintf("sheet %s row %d", sheetName, i+1), Reason: err.Error()}
		}
		courses = append(courses, course)
	}
	return courses, nil
}

package assignstat

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/assignstat-go/pkg/assignstat/models"
	"github.com/ukaji3/assignstat-go/pkg/assignstat/parser"
	"github.com/xuri/excelize/v2"
)

// Analyze analyses the first sheet of the workbook at path.
func Analyze(path string, opts Options) (*models.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewAnalysisError("", "read", fmt.Errorf("%w: %w", ErrReadFailure, err))
	}
	defer f.Close()

	return AnalyzeReader(f, filepath.Base(path), opts)
}

// AnalyzeReader reads a complete workbook from r and analyses its first sheet.
// bookName is recorded in the report as is.
func AnalyzeReader(r io.Reader, bookName string, opts Options) (*models.Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewAnalysisError("", "read", fmt.Errorf("%w: %w", ErrReadFailure, err))
	}

	ref, err := opts.Reference()
	if err != nil {
		return nil, NewAnalysisError("", "options", fmt.Errorf("%w %q: %w", ErrInvalidTimezone, opts.Timezone, err))
	}

	f, err := parser.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewAnalysisError("", "open", fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}
	defer f.Close()

	report, err := AnalyzeWorkbook(f, ref)
	if err != nil {
		return nil, err
	}
	report.BookName = bookName
	return report, nil
}

// AnalyzeWorkbook analyses the first sheet of an open workbook.
func AnalyzeWorkbook(f *excelize.File, ref Reference) (*models.Report, error) {
	sheetName, err := parser.FirstSheet(f)
	if err != nil {
		return nil, NewAnalysisError("", "open", fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}

	grid, err := parser.LoadGrid(f, sheetName)
	if err != nil {
		return nil, NewAnalysisError(sheetName, "load", fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}

	result, summary, err := AnalyzeGrid(grid, ref)
	if err != nil {
		return nil, NewAnalysisError(sheetName, "aggregate", err)
	}

	usedRange, err := parser.FormatRange(grid.Range)
	if err != nil {
		return nil, NewAnalysisError(sheetName, "load", fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}

	return &models.Report{
		SheetName: sheetName,
		UsedRange: usedRange,
		Result:    result,
		Summary:   summary,
	}, nil
}

// AnalyzeGrid runs column location, aggregation and result building on a
// decoded grid. It is a pure function of its inputs.
func AnalyzeGrid(g *models.Grid, ref Reference) (models.AnalysisResult, string, error) {
	cols := LocateColumns(g)

	tally, err := Aggregate(g, cols, ref)
	if err != nil {
		return models.AnalysisResult{}, "", err
	}

	result, summary := BuildResult(tally, cols, ref)
	return result, summary, nil
}

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var ErrSourceNotFound = errors.New("dataset source not found")

// Source fetches a whole table. Implementations are used by one loader at a time.
type Source interface {
	Name() string
	Fetch(ctx context.Context, table TableName) (*Frame, error)
}

// FileSource reads <dir>/<table>.csv from the local filesystem.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) Name() string {
	return "file"
}

func (s *FileSource) Path(table TableName) string {
	return filepath.Join(s.Dir, string(table)+".csv")
}

func (s *FileSource) Fetch(ctx context.Context, table TableName) (*Frame, error) {
	path := s.Path(table)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(ctx, f)
}

// ReadCSV reads a header row followed by records. Rows the CSV reader rejects
// are skipped and counted in Frame.Skipped.
func ReadCSV(ctx context.Context, r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Frame{}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	frame := &Frame{Columns: header}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				frame.Skipped++
				continue
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}

		frame.Rows = append(frame.Rows, row)
	}

	return frame, nil
}

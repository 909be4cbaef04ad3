package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ewanmcn/wintermeds/internal/common"
	"github.com/ewanmcn/wintermeds/internal/model"
)

var (
	colBoardCode = []string{"hb", "hb_code", "health_board"}
	colBoardName = []string{"hb_name", "hbname", "health_board_name"}
)

// ReadBoards loads the health-board reference table.
func ReadBoards(path string) ([]model.HealthBoard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board reference: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readBoards(filepath.Base(path), f)
}

func readBoards(name string, reader io.Reader) ([]model.HealthBoard, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyFile, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	idx := indexHeaders(header)
	codeIdx, ok := idx.lookup(colBoardCode...)
	if !ok {
		return nil, common.NewSchemaError(name, "hb")
	}
	nameIdx, ok := idx.lookup(colBoardName...)
	if !ok {
		return nil, common.NewSchemaError(name, "hb_name")
	}

	var boards []model.HealthBoard
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		code := field(rec, codeIdx)
		if code == "" {
			continue
		}
		boards = append(boards, model.HealthBoard{
			Code: code,
			Name: field(rec, nameIdx),
		})
	}

	return boards, nil
}

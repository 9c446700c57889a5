package repository

import (
	"context"
	"os"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"

	"github.com/bogun-lab/facildash/pkg/domain/interfaces"
	"github.com/bogun-lab/facildash/pkg/domain/model"
)

// XLSX loads facility records from the first sheet of an Excel
// workbook. Same contract as the CSV source: loaded once, shared
// read-only.
type XLSX struct {
	path    string
	columns model.ColumnMapping

	once    sync.Once
	dataset *model.Dataset
	loadErr error
}

// NewXLSX creates an XLSX data source for the given file path
func NewXLSX(path string, columns model.ColumnMapping) interfaces.DataSource {
	return &XLSX{
		path:    path,
		columns: columns,
	}
}

// Dataset loads and returns the dataset snapshot
func (s *XLSX) Dataset(ctx context.Context) (*model.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.loadErr = s.load(ctx)
	})
	return s.dataset, s.loadErr
}

func (s *XLSX) load(ctx context.Context) (*model.Dataset, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, goerr.Wrap(model.ErrDataUnavailable, "input file not found",
			goerr.V("path", s.path))
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open workbook",
			goerr.V("path", s.path))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, goerr.Wrap(model.ErrDataUnavailable, "workbook has no sheets",
			goerr.V("path", s.path))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read sheet",
			goerr.V("path", s.path), goerr.V("sheet", sheets[0]))
	}
	if len(rows) == 0 {
		return nil, goerr.Wrap(model.ErrDataUnavailable, "sheet is empty",
			goerr.V("path", s.path), goerr.V("sheet", sheets[0]))
	}

	regionIdx, typeIdx, err := resolveColumns(rows[0], s.columns)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid sheet header",
			goerr.V("path", s.path), goerr.V("sheet", sheets[0]))
	}

	var records []model.Record
	dropped := 0
	for _, row := range rows[1:] {
		rec, ok := recordFromRow(row, regionIdx, typeIdx)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	dataset := model.NewDataset(records, dropped)
	logLoaded(ctx, s.path, dataset)
	return dataset, nil
}

package repository

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bogun-lab/facildash/pkg/domain/interfaces"
	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
)

// CSV loads facility records from a comma-separated file. The file is
// read once on first use and the snapshot is reused afterwards.
type CSV struct {
	path    string
	columns model.ColumnMapping

	once    sync.Once
	dataset *model.Dataset
	loadErr error
}

// NewCSV creates a CSV data source for the given file path
func NewCSV(path string, columns model.ColumnMapping) interfaces.DataSource {
	return &CSV{
		path:    path,
		columns: columns,
	}
}

// Dataset loads and returns the dataset snapshot
func (s *CSV) Dataset(ctx context.Context) (*model.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.loadErr = s.load(ctx)
	})
	return s.dataset, s.loadErr
}

func (s *CSV) load(ctx context.Context) (*model.Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(model.ErrDataUnavailable, "input file not found",
				goerr.V("path", s.path))
		}
		return nil, goerr.Wrap(err, "failed to open input file",
			goerr.V("path", s.path))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // source rows are occasionally ragged

	header, err := r.Read()
	if err != nil {
		return nil, goerr.Wrap(model.ErrDataUnavailable, "failed to read header row",
			goerr.V("path", s.path))
	}

	regionIdx, typeIdx, err := resolveColumns(header, s.columns)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid CSV header", goerr.V("path", s.path))
	}

	var records []model.Record
	dropped := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read CSV row",
				goerr.V("path", s.path))
		}

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

// resolveColumns finds the region and facility type column positions in
// a header row. A UTF-8 BOM on the first cell is stripped before
// matching; exported files from spreadsheet tools routinely carry one.
func resolveColumns(header []string, columns model.ColumnMapping) (int, int, error) {
	regionIdx, typeIdx := -1, -1
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		switch strings.TrimSpace(name) {
		case columns.Region:
			regionIdx = i
		case columns.FacilityType:
			typeIdx = i
		}
	}
	if regionIdx < 0 {
		return 0, 0, goerr.Wrap(model.ErrUnknownColumn, "region column missing",
			goerr.V("column", columns.Region), goerr.V("header", header))
	}
	if typeIdx < 0 {
		return 0, 0, goerr.Wrap(model.ErrUnknownColumn, "facility type column missing",
			goerr.V("column", columns.FacilityType), goerr.V("header", header))
	}
	return regionIdx, typeIdx, nil
}

// recordFromRow extracts a record from one data row. Rows too short to
// hold both columns or with an empty value in either are reported as
// malformed and excluded from aggregation.
func recordFromRow(row []string, regionIdx, typeIdx int) (model.Record, bool) {
	if regionIdx >= len(row) || typeIdx >= len(row) {
		return model.Record{}, false
	}
	rec := model.Record{
		Region:       types.Region(strings.TrimSpace(row[regionIdx])),
		FacilityType: types.FacilityType(strings.TrimSpace(row[typeIdx])),
	}
	if !rec.IsValid() {
		return model.Record{}, false
	}
	return rec, true
}

func logLoaded(ctx context.Context, path string, dataset *model.Dataset) {
	logger := ctxlog.From(ctx)
	logger.Info("Dataset loaded",
		"path", path,
		"datasetID", dataset.ID,
		"records", dataset.Size(),
		"droppedRows", dataset.DroppedRows,
	)
}

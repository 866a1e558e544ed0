package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/filestorages"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists")
)

// ReportStore persists finished histogram reports as JSON files, one per run:
//
//	reports/<job>/<runID>.json
//
// Run IDs are ULIDs, so a job's directory lists its runs in start order.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, report *models.HistogramReport) (string, error)
	Get(ctx context.Context, job string, runID string) (*models.HistogramReport, error)
	// List returns the run IDs stored for job, oldest first.
	List(ctx context.Context, job string) ([]string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Put(ctx context.Context, report *models.HistogramReport) (string, error) {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	reader := bytes.NewReader(jsonData)
	key := s.getKey(report.Job, report.RunID)

	result, err := s.fileStorage.Put(ctx, key, reader, filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", ErrReportAlreadyExists
		}
		return "", fmt.Errorf("failed to put report: %w", err)
	}
	return result.FileKey, nil
}

func (s *reportStore) Get(ctx context.Context, job string, runID string) (*models.HistogramReport, error) {
	key := s.getKey(job, runID)
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report models.HistogramReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

func (s *reportStore) List(ctx context.Context, job string) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, path.Join(s.dir, job))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	runIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		name := path.Base(key)
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		runIDs = append(runIDs, strings.TrimSuffix(name, ".json"))
	}
	return runIDs, nil
}

func (s *reportStore) getKey(job string, runID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, job, runID)
}

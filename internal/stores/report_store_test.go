package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"perf-analytics/internal/models"
	"perf-analytics/internal/shared/filestorages"
	"perf-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReport() *models.HistogramReport {
	hist := models.NewHistogram()
	hist.Observe(models.ModeMobile, "fmp", 400)
	hist.Observe(models.ModeDesktop, "fmp", 800)

	return &models.HistogramReport{
		Job:        "fmp",
		RunID:      "01HZX3A7Q2",
		Source:     "xes_fed_bi_perf_afterOL",
		StartedAt:  time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC),
		FinishedAt: time.Date(2025, 12, 28, 18, 4, 0, 0, time.UTC),
		Records:    2,
		Histogram:  hist,
	}
}

func TestReportStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	report := newTestReport()
	expectedKey := "reports/fmp/01HZX3A7Q2.json"
	expectedJSON, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	key, err := store.Put(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, expectedKey, key)
}

func TestReportStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), "reports/fmp/01HZX3A7Q2.json", gomock.Any(), gomock.Any()).
		Return(nil, filestorages.ErrFileAlreadyExists)

	_, err := store.Put(context.Background(), newTestReport())
	assert.ErrorIs(t, err, ErrReportAlreadyExists)
}

func TestReportStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	storageErr := errors.New("disk full")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storageErr)

	_, err := store.Put(context.Background(), newTestReport())
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "failed to put report")
}

func TestReportStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	report := newTestReport()
	data, err := json.Marshal(report)
	require.NoError(t, err)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "reports/fmp/01HZX3A7Q2.json").
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	got, err := store.Get(context.Background(), "fmp", "01HZX3A7Q2")
	require.NoError(t, err)
	assert.Equal(t, report.Job, got.Job)
	assert.Equal(t, report.Records, got.Records)
	assert.True(t, report.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, report.Histogram.ByMode, got.Histogram.ByMode)
}

func TestReportStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "reports/timing/missing.json").
		Return(nil, filestorages.ErrFileNotFound)

	got, err := store.Get(context.Background(), "timing", "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportStore_Get_CorruptFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

	_, err := store.Get(context.Background(), "fmp", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal report")
}

func TestReportStore_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		List(gomock.Any(), "reports/fmp").
		Return([]string{"reports/fmp/01A.json", "reports/fmp/01B.json", "reports/fmp/notes.txt"}, nil)

	runIDs, err := store.List(context.Background(), "fmp")
	require.NoError(t, err)
	assert.Equal(t, []string{"01A", "01B"}, runIDs)
}

func TestReportStore_List_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("permission denied"))

	_, err := store.List(context.Background(), "fmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list reports")
}

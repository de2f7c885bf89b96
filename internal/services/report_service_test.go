package services

import (
	"context"
	"testing"
	"time"

	"transfer-backend/internal/models"
	"transfer-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_GenerateForDate(t *testing.T) {
	repo := new(MockDailyReportStore)
	transfers := new(MockTransferStore)
	svc := NewReportService(repo, transfers)
	ctx := context.Background()

	date := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	day := timeutil.StartOfDay(date)

	repo.On("ExistsForDate", ctx, day).Return(false, nil)
	transfers.On("ListCompletedOn", ctx, day, day.AddDate(0, 0, 1)).Return([]*models.Transfer{
		{ID: 1, ServiceValue: floatPtr(100), ServiceCost: floatPtr(40)},
		{ID: 2, ServiceValue: floatPtr(55), ServiceCost: floatPtr(20)},
		{ID: 3}, // unpriced transfer contributes nothing to the totals
	}, nil)
	repo.On("Insert", ctx, mock.AnythingOfType("*models.DailyReport")).Return(true, nil)

	report, generated, err := svc.GenerateForDate(ctx, date)
	require.NoError(t, err)

	assert.True(t, generated)
	assert.Equal(t, day, report.ReportDate)
	assert.Equal(t, 155.0, report.TotalValue)
	assert.Equal(t, 60.0, report.TotalCost)
	assert.Equal(t, []int{1, 2, 3}, report.TransferIDs)
}

func TestReportService_GenerateIsIdempotent(t *testing.T) {
	repo := new(MockDailyReportStore)
	transfers := new(MockTransferStore)
	svc := NewReportService(repo, transfers)
	ctx := context.Background()

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	day := timeutil.StartOfDay(date)
	existing := &models.DailyReport{ID: 42, ReportDate: day, TotalValue: 155}

	repo.On("ExistsForDate", ctx, day).Return(true, nil)
	repo.On("GetByDate", ctx, day).Return(existing, nil)

	report, generated, err := svc.GenerateForDate(ctx, date)
	require.NoError(t, err)

	assert.False(t, generated)
	assert.Equal(t, 42, report.ID)
	transfers.AssertNotCalled(t, "ListCompletedOn", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestReportService_EmptyDayProducesZeroReport(t *testing.T) {
	repo := new(MockDailyReportStore)
	transfers := new(MockTransferStore)
	svc := NewReportService(repo, transfers)
	ctx := context.Background()

	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	day := timeutil.StartOfDay(date)

	repo.On("ExistsForDate", ctx, day).Return(false, nil)
	transfers.On("ListCompletedOn", ctx, day, day.AddDate(0, 0, 1)).Return([]*models.Transfer{}, nil)
	repo.On("Insert", ctx, mock.AnythingOfType("*models.DailyReport")).Return(true, nil)

	report, generated, err := svc.GenerateForDate(ctx, date)
	require.NoError(t, err)

	assert.True(t, generated)
	assert.Zero(t, report.TotalValue)
	assert.Zero(t, report.TotalCost)
	assert.Empty(t, report.TransferIDs)
}

func TestReportService_LostInsertRaceReturnsExisting(t *testing.T) {
	repo := new(MockDailyReportStore)
	transfers := new(MockTransferStore)
	svc := NewReportService(repo, transfers)
	ctx := context.Background()

	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	day := timeutil.StartOfDay(date)
	winner := &models.DailyReport{ID: 50, ReportDate: day}

	repo.On("ExistsForDate", ctx, day).Return(false, nil)
	transfers.On("ListCompletedOn", ctx, day, day.AddDate(0, 0, 1)).Return([]*models.Transfer{}, nil)
	repo.On("Insert", ctx, mock.AnythingOfType("*models.DailyReport")).Return(false, nil)
	repo.On("GetByDate", ctx, day).Return(winner, nil)

	report, generated, err := svc.GenerateForDate(ctx, date)
	require.NoError(t, err)

	assert.False(t, generated)
	assert.Equal(t, 50, report.ID)
}

func TestReportService_RenderPDFSkipsDeletedTransfers(t *testing.T) {
	repo := new(MockDailyReportStore)
	transfers := new(MockTransferStore)
	svc := NewReportService(repo, transfers)
	ctx := context.Background()

	report := &models.DailyReport{
		ID:          42,
		ReportDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalValue:  155,
		TotalCost:   60,
		TransferIDs: []int{1, 2},
	}
	transfers.On("Get", ctx, 1).Return(&models.Transfer{ID: 1, StartLocation: "Airport"}, nil)
	transfers.On("Get", ctx, 2).Return(nil, assert.AnError)

	data, err := svc.RenderPDF(ctx, report)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// PDF header sanity check
	assert.Equal(t, "%PDF", string(data[:4]))
}

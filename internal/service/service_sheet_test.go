package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/mock"
	"github.com/MKhiriev/go-time-sheet/internal/store"
	"github.com/MKhiriev/go-time-sheet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSheetSvc(t *testing.T, ctrl *gomock.Controller) (SheetService, *mock.MockSheetRepository) {
	t.Helper()
	mockRepo := mock.NewMockSheetRepository(ctrl)
	return NewSheetService(mockRepo, logger.Nop()), mockRepo
}

func TestSheetService_CreateSheet_StampsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSheetSvc(t, ctrl)

	mockRepo.EXPECT().
		CreateSheet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sheet models.Sheet) (models.Sheet, error) {
			// the verified owner id wins over whatever the body carried
			assert.Equal(t, int64(42), sheet.OwnerID)
			assert.Zero(t, sheet.SheetID)
			sheet.SheetID = 7
			return sheet, nil
		})

	created, err := svc.CreateSheet(context.Background(), 42, models.Sheet{
		SheetID:   999,
		OwnerID:   999,
		SheetName: "March 2026",
		Rate:      "25.50",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.SheetID)
}

func TestSheetService_CreateSheet_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSheetSvc(t, ctrl)

	_, err := svc.CreateSheet(context.Background(), 42, models.Sheet{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSheetService_CreateSheet_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSheetSvc(t, ctrl)

	mockRepo.EXPECT().
		CreateSheet(gomock.Any(), gomock.Any()).
		Return(models.Sheet{}, store.ErrSheetNotSaved)

	_, err := svc.CreateSheet(context.Background(), 42, models.Sheet{SheetName: "March 2026"})
	assert.ErrorIs(t, err, store.ErrSheetNotSaved)
}

func TestSheetService_ListSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSheetSvc(t, ctrl)

	want := []models.Sheet{
		{SheetID: 2, OwnerID: 42, SheetName: "April 2026"},
		{SheetID: 1, OwnerID: 42, SheetName: "March 2026"},
	}
	mockRepo.EXPECT().
		ListSheetsByOwner(gomock.Any(), int64(42)).
		Return(want, nil)

	sheets, err := svc.ListSheets(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, sheets)
}

func TestSheetService_ListSheets_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSheetSvc(t, ctrl)

	storeErr := errors.New("connection reset")
	mockRepo.EXPECT().
		ListSheetsByOwner(gomock.Any(), int64(42)).
		Return(nil, storeErr)

	_, err := svc.ListSheets(context.Background(), 42)
	assert.ErrorIs(t, err, storeErr)
}

func TestSheetService_UpdateSheet_StampsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSheetSvc(t, ctrl)

	mockRepo.EXPECT().
		UpdateSheet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sheet models.Sheet) error {
			assert.Equal(t, int64(42), sheet.OwnerID)
			assert.Equal(t, int64(7), sheet.SheetID)
			return nil
		})

	err := svc.UpdateSheet(context.Background(), 42, models.Sheet{
		SheetID:   7,
		OwnerID:   999,
		SheetName: "March 2026 (revised)",
	})
	assert.NoError(t, err)
}

func TestSheetService_UpdateSheet_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSheetSvc(t, ctrl)

	err := svc.UpdateSheet(context.Background(), 42, models.Sheet{SheetID: 7})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSheetService_UpdateSheet_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestSheetSvc(t, ctrl)

	mockRepo.EXPECT().
		UpdateSheet(gomock.Any(), gomock.Any()).
		Return(store.ErrSheetNotFound)

	err := svc.UpdateSheet(context.Background(), 42, models.Sheet{SheetID: 7, SheetName: "x"})
	assert.ErrorIs(t, err, store.ErrSheetNotFound)
}

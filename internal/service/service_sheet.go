package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/store"
	"github.com/MKhiriev/go-time-sheet/models"
)

// sheetService is the concrete implementation of SheetService.
//
// The ownerID argument on every method is the id the authorization layer
// verified from the session token; the service stamps it over whatever the
// request body carried. Totals arrive client-computed and are stored as-is.
type sheetService struct {
	sheetRepository store.SheetRepository
	logger          *logger.Logger
}

// NewSheetService constructs a SheetService wired to the given SheetRepository.
func NewSheetService(sheetRepository store.SheetRepository, logger *logger.Logger) SheetService {
	return &sheetService{
		sheetRepository: sheetRepository,
		logger:          logger,
	}
}

// CreateSheet validates the draft and persists it with ownerID as the owner.
//
// Returns the created sheet (with store-assigned SheetID and timestamps) or:
//   - ErrInvalidDataProvided if SheetName is empty.
//   - A wrapped storage error if the repository call fails.
func (s *sheetService) CreateSheet(ctx context.Context, ownerID int64, sheet models.Sheet) (models.Sheet, error) {
	log := logger.FromContext(ctx)

	if sheet.SheetName == "" {
		log.Error().Int64("owner_id", ownerID).Msg("sheet name is required")
		return models.Sheet{}, ErrInvalidDataProvided
	}

	sheet.SheetID = 0
	sheet.OwnerID = ownerID

	createdSheet, err := s.sheetRepository.CreateSheet(ctx, sheet)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("sheet creation ended with error")
		return models.Sheet{}, fmt.Errorf("sheet creation ended with error: %w", err)
	}

	return createdSheet, nil
}

// ListSheets returns every sheet owned by ownerID, most recently updated
// first, then most recently created.
func (s *sheetService) ListSheets(ctx context.Context, ownerID int64) ([]models.Sheet, error) {
	log := logger.FromContext(ctx)

	sheets, err := s.sheetRepository.ListSheetsByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("sheet listing ended with error")
		return nil, fmt.Errorf("sheet listing ended with error: %w", err)
	}

	return sheets, nil
}

// UpdateSheet validates the patch and replaces the mutable fields of the
// sheet identified by sheet.SheetID AND ownerID.
//
// Returns:
//   - ErrInvalidDataProvided if SheetName is empty.
//   - store.ErrSheetNotFound (wrapped) when the id+owner predicate matches
//     nothing — absent sheets and other owners' sheets are indistinguishable.
func (s *sheetService) UpdateSheet(ctx context.Context, ownerID int64, sheet models.Sheet) error {
	log := logger.FromContext(ctx)

	if sheet.SheetName == "" {
		log.Error().Int64("owner_id", ownerID).Int64("sheet_id", sheet.SheetID).Msg("sheet name is required")
		return ErrInvalidDataProvided
	}

	sheet.OwnerID = ownerID

	if err := s.sheetRepository.UpdateSheet(ctx, sheet); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Int64("sheet_id", sheet.SheetID).Msg("sheet update ended with error")
		return fmt.Errorf("sheet update ended with error: %w", err)
	}

	return nil
}

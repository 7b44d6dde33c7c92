package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/models"
)

// sheetRepository is the SQL-backed implementation of [SheetRepository].
//
// Entries are stored as a JSON-encoded array in a single column; rate and
// total_cost stay decimal strings all the way down. Every predicate that
// touches an existing sheet combines sheet_id with user_id — ownership is
// enforced by the query filter, not by a separate permission check.
type sheetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSheetRepository constructs a [SheetRepository] backed by the provided
// database connection and logger.
func NewSheetRepository(db *DB, logger *logger.Logger) SheetRepository {
	logger.Debug().Msg("creating sheet repository")
	return &sheetRepository{
		db:     db,
		logger: logger,
	}
}

// encodeEntries marshals the entry list, normalizing a nil slice to the empty
// JSON array so that the stored column is always a valid array.
func encodeEntries(entries []models.MinuteEntry) ([]byte, error) {
	if entries == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(entries)
}

// CreateSheet persists a new sheet owned by sheet.OwnerID and returns it with
// the store-assigned SheetID and timestamps populated.
//
// Totals are stored exactly as provided by the caller; the repository does
// not recompute them from the entries.
func (r *sheetRepository) CreateSheet(ctx context.Context, sheet models.Sheet) (models.Sheet, error) {
	log := logger.FromContext(ctx)

	entriesJSON, err := encodeEntries(sheet.Entries)
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.CreateSheet").Msg("error encoding entries")
		return models.Sheet{}, fmt.Errorf("error encoding sheet entries: %w", err)
	}

	now := time.Now().UTC()
	query, args, err := r.db.Builder().
		Insert(sheet.TableName()).
		Columns("user_id", "sheet_name", "description", "rate", "entries", "total_minutes", "total_cost", "created_at", "updated_at").
		Values(sheet.OwnerID, sheet.SheetName, sheet.Description, sheet.Rate, string(entriesJSON), sheet.TotalMinutes, sheet.TotalCost, now, now).
		Suffix("RETURNING sheet_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.CreateSheet").Msg("error building insert query")
		return models.Sheet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&sheet.SheetID); err != nil {
		log.Err(err).Str("func", "*sheetRepository.CreateSheet").Msg("error scanning created sheet id")
		return models.Sheet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	sheet.CreatedAt = now
	sheet.UpdatedAt = now

	return sheet, nil
}

// ListSheetsByOwner returns every sheet owned by ownerID, most recently
// updated first, then most recently created. Owners without sheets get an
// empty slice, not an error.
func (r *sheetRepository) ListSheetsByOwner(ctx context.Context, ownerID int64) ([]models.Sheet, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select("sheet_id", "user_id", "sheet_name", "description", "rate", "entries", "total_minutes", "total_cost", "created_at", "updated_at").
		From(models.Sheet{}.TableName()).
		Where("user_id = ?", ownerID).
		OrderBy("updated_at DESC", "created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.ListSheetsByOwner").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.ListSheetsByOwner").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sheets := make([]models.Sheet, 0)
	for rows.Next() {
		var sheet models.Sheet
		var entriesJSON []byte

		err := rows.Scan(
			&sheet.SheetID,
			&sheet.OwnerID,
			&sheet.SheetName,
			&sheet.Description,
			&sheet.Rate,
			&entriesJSON,
			&sheet.TotalMinutes,
			&sheet.TotalCost,
			&sheet.CreatedAt,
			&sheet.UpdatedAt,
		)
		if err != nil {
			log.Err(err).Str("func", "*sheetRepository.ListSheetsByOwner").Msg("error scanning sheet row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(entriesJSON) > 0 {
			if err := json.Unmarshal(entriesJSON, &sheet.Entries); err != nil {
				log.Err(err).Str("func", "*sheetRepository.ListSheetsByOwner").Msg("error decoding entries")
				return nil, fmt.Errorf("error decoding sheet entries: %w", err)
			}
		}

		sheets = append(sheets, sheet)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*sheetRepository.ListSheetsByOwner").Msg("error iterating sheet rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sheets, nil
}

// UpdateSheet replaces the mutable fields of the sheet matching both
// sheet.SheetID and sheet.OwnerID and refreshes updated_at.
//
// The WHERE clause combining id and owner is the sole authorization check:
// a caller can never touch another owner's sheet because the filter simply
// matches nothing, which surfaces as [ErrSheetNotFound].
func (r *sheetRepository) UpdateSheet(ctx context.Context, sheet models.Sheet) error {
	log := logger.FromContext(ctx)

	entriesJSON, err := encodeEntries(sheet.Entries)
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.UpdateSheet").Msg("error encoding entries")
		return fmt.Errorf("error encoding sheet entries: %w", err)
	}

	query, args, err := r.db.Builder().
		Update(sheet.TableName()).
		Set("sheet_name", sheet.SheetName).
		Set("description", sheet.Description).
		Set("rate", sheet.Rate).
		Set("entries", string(entriesJSON)).
		Set("total_minutes", sheet.TotalMinutes).
		Set("total_cost", sheet.TotalCost).
		Set("updated_at", time.Now().UTC()).
		Where("sheet_id = ? AND user_id = ?", sheet.SheetID, sheet.OwnerID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.UpdateSheet").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.UpdateSheet").Msg("error executing update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sheetRepository.UpdateSheet").Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrSheetNotFound
	}

	return nil
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-time-sheet/internal/logger"
	"github.com/MKhiriev/go-time-sheet/internal/utils"
	"github.com/MKhiriev/go-time-sheet/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var sheet models.Sheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	createdSheet, err := h.services.SheetService.CreateSheet(ctx, userID, sheet)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("sheet_id", createdSheet.SheetID).Int64("owner_id", userID).Msg("sheet created")

	utils.WriteJSON(w, models.CreateSheetResponse{
		Message: "sheet created successfully",
		SheetID: createdSheet.SheetID,
	}, http.StatusCreated)
}

func (h *Handler) listSheets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	sheets, err := h.services.SheetService.ListSheets(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ListSheetsResponse{Sheets: sheets}, http.StatusOK)
}

func (h *Handler) updateSheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id found in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	// A non-numeric id cannot name an existing sheet, so it surfaces the same
	// way an unknown id does.
	sheetID, err := strconv.ParseInt(chi.URLParam(r, "sheetID"), 10, 64)
	if err != nil {
		log.Err(err).Str("sheet_id", chi.URLParam(r, "sheetID")).Msg("non-numeric sheet id")
		utils.WriteJSON(w, models.MessageResponse{Message: "sheet not found"}, http.StatusNotFound)
		return
	}

	var sheet models.Sheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	// the path parameter wins over whatever id the body carried
	sheet.SheetID = sheetID

	if err := h.services.SheetService.UpdateSheet(ctx, userID, sheet); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("sheet_id", sheetID).Int64("owner_id", userID).Msg("sheet updated")

	utils.WriteJSON(w, models.MessageResponse{Message: "sheet updated successfully"}, http.StatusOK)
}

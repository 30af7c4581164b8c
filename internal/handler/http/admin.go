package http

import (
	"net/http"

	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/internal/utils"
	"github.com/dkordic/noteboard/models"
)

func (h *Handler) adminListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.adminListNotes").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.AdminListAll(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.adminListNotes").Msg("admin note listing failed")
		writeError(w, err)
		return
	}

	if notes == nil {
		notes = []models.NoteWithOwner{}
	}
	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) adminDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.adminDeleteNote").Msg("no user id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.adminDeleteNote").Msg("invalid note id in url")
		http.Error(w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.AdminDelete(ctx, userID, noteID); err != nil {
		log.Err(err).Str("func", "*Handler.adminDeleteNote").Msg("admin note deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

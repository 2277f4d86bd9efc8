package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

const (
	msgSquadIDsRequired = "League ID and Team ID are required"
	msgTeamNotInLeague  = "Team not found in league"
	msgSquadFetchFailed = "Failed to fetch squad data"
)

func (h *Handler) GetDraftSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftSquad")
	defer span.End()

	var req squadRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgSquadIDsRequired})
		return
	}

	annotateSpan(span, req.TeamID.Int64(), req.LeagueID.Int64(), true)

	info, err := h.squadService.GetDraftSquad(ctx, req.LeagueID.Int64(), req.TeamID.Int64())
	if err != nil {
		h.writeSquadError(ctx, w, req, err)
		return
	}

	writeSuccess(ctx, w, squadInfoToDTO(info))
}

func (h *Handler) GetDraftPitch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftPitch")
	defer span.End()

	var req squadRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgSquadIDsRequired})
		return
	}

	annotateSpan(span, req.TeamID.Int64(), req.LeagueID.Int64(), true)

	pitch, err := h.squadService.GetDraftPitch(ctx, req.LeagueID.Int64(), req.TeamID.Int64())
	if err != nil {
		h.writeSquadError(ctx, w, req, err)
		return
	}

	writeSuccess(ctx, w, draftPitchToDTO(pitch))
}

func (h *Handler) writeSquadError(ctx context.Context, w http.ResponseWriter, req squadRequest, err error) {
	kind := usecase.KindOf(err)
	switch kind {
	case usecase.KindInvalidInput:
		writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgSquadIDsRequired})
	case usecase.KindNotFound:
		h.logger.WarnContext(ctx, "team not found in league", "league_id", req.LeagueID.Int64(), "team_id", req.TeamID.Int64())
		writeError(ctx, w, http.StatusNotFound, errorResponse{Error: msgTeamNotInLeague})
	default:
		h.logger.ErrorContext(ctx, "get draft squad failed",
			"league_id", req.LeagueID.Int64(),
			"team_id", req.TeamID.Int64(),
			"kind", kind,
			"error", err,
		)
		writeError(ctx, w, http.StatusInternalServerError, errorResponse{Error: msgSquadFetchFailed, Details: err.Error()})
	}
}

package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

const (
	msgLeagueIDRequired    = "League ID is required."
	msgLeagueNotFound      = "League not found. Please check the League ID."
	msgDraftLeagueNotFound = "Draft League not found. Please check the League ID."
	msgLeagueFetchFailed   = "Unable to fetch league data. Please check the League ID."
)

func (h *Handler) GetLeagueStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueStandings")
	defer span.End()

	var req leagueRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgLeagueIDRequired})
		return
	}

	annotateSpan(span, 0, req.LeagueID.Int64(), req.IsDraft)

	standings, err := h.leagueService.GetStandings(ctx, req.LeagueID.Int64(), req.IsDraft)
	if err != nil {
		kind := usecase.KindOf(err)
		body := errorResponse{Error: msgLeagueFetchFailed}
		switch kind {
		case usecase.KindInvalidInput:
			body.Error = msgLeagueIDRequired
		case usecase.KindNotFound:
			body.Error = msgLeagueNotFound
			if req.IsDraft {
				body.Error = msgDraftLeagueNotFound
			}
			h.logger.WarnContext(ctx, "league not found", "league_id", req.LeagueID.Int64(), "is_draft", req.IsDraft)
		default:
			h.logger.ErrorContext(ctx, "get league standings failed", "league_id", req.LeagueID.Int64(), "is_draft", req.IsDraft, "kind", kind, "error", err)
		}
		writeError(ctx, w, statusForKind(kind), body)
		return
	}

	writeSuccess(ctx, w, leagueStandingsToDTO(standings))
}

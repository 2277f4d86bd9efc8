package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

const (
	msgTeamIDRequired    = "Team ID is required."
	msgDraftRequiresAuth = "Draft FPL requires authentication. Please sign in at https://draft.premierleague.com first and use your league ID instead of team ID."
	msgTeamNotFound      = "Team not found. Please check the Team ID."
	msgTeamFetchFailed   = "Unable to fetch team data. Please check the Team ID."
)

func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSummary")
	defer span.End()

	var req teamRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgTeamIDRequired})
		return
	}

	annotateSpan(span, req.TeamID.Int64(), 0, req.IsDraft)

	summary, err := h.teamService.GetSummary(ctx, req.TeamID.Int64(), req.IsDraft)
	if err != nil {
		kind := usecase.KindOf(err)
		body := errorResponse{Error: msgTeamFetchFailed}
		switch kind {
		case usecase.KindInvalidInput:
			body.Error = msgTeamIDRequired
		case usecase.KindAuthRequired:
			body = errorResponse{Error: msgDraftRequiresAuth, RequiresAuth: true}
		case usecase.KindNotFound:
			body.Error = msgTeamNotFound
		default:
			h.logger.ErrorContext(ctx, "get team summary failed", "team_id", req.TeamID.Int64(), "kind", kind, "error", err)
		}
		writeError(ctx, w, statusForKind(kind), body)
		return
	}

	writeSuccess(ctx, w, teamSummaryToDTO(summary))
}

package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

const (
	msgProbeLeagueIDRequired = "League ID is required"
	msgProbeFailed           = "Failed to test draft API endpoints"
)

func (h *Handler) ProbeDraftEndpoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProbeDraftEndpoints")
	defer span.End()

	var req draftProbeRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgProbeLeagueIDRequired})
		return
	}

	annotateSpan(span, 0, req.LeagueID.Int64(), true)

	report, err := h.draftProbeService.Probe(ctx, req.LeagueID.Int64())
	if err != nil {
		if usecase.KindOf(err) == usecase.KindInvalidInput {
			writeError(ctx, w, http.StatusBadRequest, errorResponse{Error: msgProbeLeagueIDRequired})
			return
		}
		h.logger.ErrorContext(ctx, "probe draft endpoints failed", "league_id", req.LeagueID.Int64(), "error", err)
		writeError(ctx, w, http.StatusInternalServerError, errorResponse{Error: msgProbeFailed, Details: err.Error()})
		return
	}

	writeSuccess(ctx, w, probeReportToDTO(report))
}

package httpapi

import (
	"context"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error        string `json:"error"`
	RequiresAuth bool   `json:"requiresAuth,omitempty"`
	Details      string `json:"details,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, data)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, body errorResponse) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	writeJSON(ctx, w, status, body)
}

// statusForKind maps an error kind to its HTTP status.
func statusForKind(kind usecase.Kind) int {
	switch kind {
	case usecase.KindInvalidInput:
		return http.StatusBadRequest
	case usecase.KindAuthRequired:
		return http.StatusUnauthorized
	case usecase.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

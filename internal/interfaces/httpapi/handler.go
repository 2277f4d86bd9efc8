package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

// maxRequestBodyBytes bounds inbound JSON payloads.
const maxRequestBodyBytes = 1 << 20

type Handler struct {
	teamService       *usecase.TeamService
	leagueService     *usecase.LeagueService
	squadService      *usecase.SquadService
	draftProbeService *usecase.DraftProbeService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	leagueService *usecase.LeagueService,
	squadService *usecase.SquadService,
	draftProbeService *usecase.DraftProbeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		leagueService:     leagueService,
		squadService:      squadService,
		draftProbeService: draftProbeService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, healthDTO{Status: "ok"})
}

// decodeRequest reads a JSON body into dst and validates it.
// An empty body decodes to the zero request.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, req any) error {
	ctx, span := startSpan(ctx, "httpapi.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

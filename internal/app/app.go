package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-viewer/external/fpl"
	"github.com/riskibarqy/fpl-viewer/internal/config"
	"github.com/riskibarqy/fpl-viewer/internal/infrastructure/provider/memory"
	"github.com/riskibarqy/fpl-viewer/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/fpl-viewer/internal/platform/id"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	provider, err := newFPLProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	teamSvc := usecase.NewTeamService(provider)
	leagueSvc := usecase.NewLeagueService(provider, cfg.FPLHistoryWorkers, logger)
	squadSvc := usecase.NewSquadService(provider, logger)
	draftProbeSvc := usecase.NewDraftProbeService(provider, logger)

	handler := httpapi.NewHandler(teamSvc, leagueSvc, squadSvc, draftProbeSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, idgen.NewUUIDGenerator())

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func newFPLProvider(cfg config.Config, logger *logging.Logger) (usecase.FPLProvider, error) {
	switch cfg.FPLProvider {
	case config.ProviderMemory:
		logger.Warn("serving seeded fpl data", "provider", cfg.FPLProvider)
		return memory.NewProvider(memory.SeedData()), nil
	case "", config.ProviderHTTP:
		client, err := fpl.NewClient(fpl.ClientConfig{
			ClassicBaseURL: cfg.FPLClassicBaseURL,
			DraftBaseURL:   cfg.FPLDraftBaseURL,
			Timeout:        cfg.FPLTimeout,
			UserAgent:      cfg.FPLUserAgent,
			Transport:      cfg.FPLTransport,
			MaxBodyBytes:   cfg.FPLMaxBodyBytes,
			Logger:         logger,
		})
		if err != nil {
			return nil, fmt.Errorf("build fpl client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported fpl provider %q", cfg.FPLProvider)
	}
}

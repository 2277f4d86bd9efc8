package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fpl-viewer/external/fpl"
	"github.com/riskibarqy/fpl-viewer/internal/config"
	"github.com/riskibarqy/fpl-viewer/internal/infrastructure/provider/memory"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		FPLProvider:        config.ProviderMemory,
		FPLHistoryWorkers:  2,
	}
}

func TestNewFPLProvider(t *testing.T) {
	logger := logging.NewNop()

	cfg := testConfig()
	provider, err := newFPLProvider(cfg, logger)
	if err != nil {
		t.Fatalf("memory provider: %v", err)
	}
	if _, ok := provider.(*memory.Provider); !ok {
		t.Fatalf("expected memory provider, got %T", provider)
	}

	cfg.FPLProvider = config.ProviderHTTP
	cfg.FPLTransport = config.TransportFastHTTP
	provider, err = newFPLProvider(cfg, logger)
	if err != nil {
		t.Fatalf("http provider: %v", err)
	}
	if _, ok := provider.(*fpl.Client); !ok {
		t.Fatalf("expected fpl client, got %T", provider)
	}

	cfg.FPLTransport = "carrier-pigeon"
	if _, err := newFPLProvider(cfg, logger); err == nil {
		t.Fatalf("expected error for unknown transport")
	}

	cfg.FPLProvider = "sqlite"
	if _, err := newFPLProvider(cfg, logger); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestNewHTTPServer_ServesSeededSquad(t *testing.T) {
	srv, err := NewHTTPServer(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/draft/squad", strings.NewReader(`{"leagueId":1001,"teamId":501}`))
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"teamName":"Alpha XI"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

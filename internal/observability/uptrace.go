package observability

import (
	"context"
	"net/url"

	"github.com/riskibarqy/fpl-viewer/internal/config"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace.
// The returned shutdown flushes pending spans.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.UptraceEnabled || cfg.UptraceDSN == "" {
		logger.Info("uptrace disabled", "enabled", cfg.UptraceEnabled, "dsn_set", cfg.UptraceDSN != "")
		return func(context.Context) error { return nil }, nil
	}

	attrs := resourceAttributes(cfg)
	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(attrs...),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"resource_attributes", len(attrs),
	)

	return uptrace.Shutdown, nil
}

// resourceAttributes describes which FPL upstream the process talks to.
func resourceAttributes(cfg config.Config) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 5)
	if cfg.FPLProvider != "" {
		attrs = append(attrs, attribute.String("fpl.provider", cfg.FPLProvider))
	}
	if cfg.FPLProvider == config.ProviderMemory {
		return attrs
	}
	if cfg.FPLTransport != "" {
		attrs = append(attrs, attribute.String("fpl.transport", cfg.FPLTransport))
	}
	if host := hostOf(cfg.FPLClassicBaseURL); host != "" {
		attrs = append(attrs, attribute.String("fpl.classic_host", host))
	}
	if host := hostOf(cfg.FPLDraftBaseURL); host != "" {
		attrs = append(attrs, attribute.String("fpl.draft_host", host))
	}
	if cfg.FPLHistoryWorkers > 0 {
		attrs = append(attrs, attribute.Int("fpl.history_workers", cfg.FPLHistoryWorkers))
	}
	return attrs
}

func hostOf(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.Host
}

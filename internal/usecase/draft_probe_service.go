package usecase

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// ProbeResult is one upstream response captured by a draft probe.
type ProbeResult struct {
	Endpoint string
	Status   int
	Data     []byte
}

type ProbeReport struct {
	Results []ProbeResult
}

// DraftProbeService checks that the draft endpoints used for a league respond.
type DraftProbeService struct {
	provider FPLProvider
	logger   *logging.Logger
}

func NewDraftProbeService(provider FPLProvider, logger *logging.Logger) *DraftProbeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftProbeService{provider: provider, logger: logger}
}

// Probe fetches league details and bootstrap, then the first entry's squad when the league has entries.
// The squad call is optional and its failure is only logged.
func (s *DraftProbeService) Probe(ctx context.Context, leagueID int64) (ProbeReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftProbeService.Probe", attribute.Int64("fpl.league_id", leagueID))
	defer span.End()

	if leagueID <= 0 {
		return ProbeReport{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	var league, bootstrap ExternalRawPayload
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchDraftRaw(ctx, CallLeagueDetails, fmt.Sprintf("/league/%d/details", leagueID))
		league = out
		return err
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchDraftRaw(ctx, CallBootstrap, "/bootstrap-static")
		bootstrap = out
		return err
	})
	if err := p.Wait(); err != nil {
		return ProbeReport{}, crerr.Wrapf(err, "probe draft league=%d", leagueID)
	}

	report := ProbeReport{Results: []ProbeResult{toProbeResult(league), toProbeResult(bootstrap)}}

	var details ExternalDraftLeague
	if err := sonic.Unmarshal(league.Body, &details); err != nil {
		return ProbeReport{}, crerr.Mark(crerr.Wrapf(err, "decode league details league=%d", leagueID), ErrIntegrity)
	}
	if len(details.LeagueEntries) == 0 {
		return report, nil
	}

	entryID := details.LeagueEntries[0].EntryID
	squadPayload, err := s.provider.FetchDraftRaw(ctx, CallEntrySquad, fmt.Sprintf("/entry/%d/squad", entryID))
	if err != nil {
		s.logger.WarnContext(ctx, "probe draft entry squad failed", "league_id", leagueID, "entry_id", entryID, "error", err)
		return report, nil
	}
	report.Results = append(report.Results, toProbeResult(squadPayload))

	return report, nil
}

func toProbeResult(payload ExternalRawPayload) ProbeResult {
	return ProbeResult{Endpoint: payload.URL, Status: payload.StatusCode, Data: payload.Body}
}

package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-viewer/internal/domain/entry"
	"github.com/riskibarqy/fpl-viewer/internal/domain/standing"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

type TeamService struct {
	provider FPLProvider
}

func NewTeamService(provider FPLProvider) *TeamService {
	return &TeamService{provider: provider}
}

// GetSummary merges a classic team's profile with its season history.
// Draft teams need an authenticated session upstream and are rejected without any request.
func (s *TeamService) GetSummary(ctx context.Context, teamID int64, isDraft bool) (entry.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetSummary",
		attribute.Int64("fpl.team_id", teamID),
		attribute.Bool("fpl.draft", isDraft),
	)
	defer span.End()

	if teamID <= 0 {
		return entry.Summary{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if isDraft {
		return entry.Summary{}, fmt.Errorf("%w: draft team %d", ErrAuthRequired, teamID)
	}

	var (
		profile ExternalClassicEntry
		history ExternalClassicHistory
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchClassicEntry(ctx, teamID)
		profile = out
		return err
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchClassicEntryHistory(ctx, teamID)
		history = out
		return err
	})
	if err := p.Wait(); err != nil {
		wrapped := crerr.Wrapf(err, "load team=%d", teamID)
		if IsUpstreamNotFound(err) {
			return entry.Summary{}, crerr.Mark(wrapped, ErrNotFound)
		}
		return entry.Summary{}, wrapped
	}

	summary := entry.Summary{
		TeamName:   profile.Name,
		Points:     entry.FirstNonZero(profile.SummaryOverallPoints, profile.OverallPoints),
		PlayerName: standing.PlayerName(profile.PlayerFirstName, profile.PlayerLastName),
		History:    make([]entry.HistoryRound, 0, len(history.Current)),
	}
	if rank := entry.FirstNonZero(profile.SummaryOverallRank, profile.OverallRank); rank != 0 {
		summary.Rank = &rank
	}
	for _, r := range history.Current {
		summary.History = append(summary.History, entry.HistoryRound{
			Event:              r.Event,
			Points:             r.Points,
			TotalPoints:        r.TotalPoints,
			Rank:               r.Rank,
			RankSort:           r.RankSort,
			OverallRank:        r.OverallRank,
			Bank:               r.Bank,
			Value:              r.Value,
			EventTransfers:     r.EventTransfers,
			EventTransfersCost: r.EventTransfersCost,
			PointsOnBench:      r.PointsOnBench,
		})
	}

	return summary, nil
}

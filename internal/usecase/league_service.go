package usecase

import (
	"context"
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fpl-viewer/internal/domain/standing"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const defaultHistoryWorkers = 8

type LeagueService struct {
	provider       FPLProvider
	historyWorkers int
	logger         *logging.Logger
}

// NewLeagueService bounds the draft history fan-out to historyWorkers concurrent fetches.
func NewLeagueService(provider FPLProvider, historyWorkers int, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	if historyWorkers <= 0 {
		historyWorkers = defaultHistoryWorkers
	}

	return &LeagueService{
		provider:       provider,
		historyWorkers: historyWorkers,
		logger:         logger,
	}
}

func (s *LeagueService) GetStandings(ctx context.Context, leagueID int64, isDraft bool) (standing.LeagueStandings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetStandings",
		attribute.Int64("fpl.league_id", leagueID),
		attribute.Bool("fpl.draft", isDraft),
	)
	defer span.End()

	if leagueID <= 0 {
		return standing.LeagueStandings{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if isDraft {
		return s.draftStandings(ctx, leagueID)
	}
	return s.classicStandings(ctx, leagueID)
}

func (s *LeagueService) classicStandings(ctx context.Context, leagueID int64) (standing.LeagueStandings, error) {
	payload, err := s.provider.FetchClassicStandings(ctx, leagueID)
	if err != nil {
		return standing.LeagueStandings{}, leagueFetchError(err, leagueID)
	}

	rows := make([]standing.Standing, 0, len(payload.Standings.Results))
	for _, row := range payload.Standings.Results {
		item := standing.Standing{
			Rank:       row.Rank,
			EntryName:  row.EntryName,
			PlayerName: row.PlayerName,
			Total:      row.Total,
		}
		if row.EventTotal != 0 {
			item.LastGameweek = &standing.LastGameweek{Event: payload.CurrentEvent, Points: row.EventTotal}
		}
		rows = append(rows, item)
	}

	return standing.LeagueStandings{
		LeagueName:      payload.League.Name,
		LeagueType:      standing.LeagueTypeClassic,
		Standings:       rows,
		CurrentGameweek: payload.CurrentEvent,
	}, nil
}

func (s *LeagueService) draftStandings(ctx context.Context, leagueID int64) (standing.LeagueStandings, error) {
	details, err := s.provider.FetchDraftLeagueDetails(ctx, leagueID)
	if err != nil {
		return standing.LeagueStandings{}, leagueFetchError(err, leagueID)
	}

	histories, err := s.fetchHistories(ctx, details.LeagueEntries)
	if err != nil {
		return standing.LeagueStandings{}, crerr.Wrapf(err, "load draft histories league=%d", leagueID)
	}

	entries := make([]standing.DraftEntry, 0, len(details.LeagueEntries))
	for i, e := range details.LeagueEntries {
		entries = append(entries, standing.DraftEntry{
			EntryName:  e.EntryName,
			PlayerName: standing.PlayerName(e.PlayerFirstName, e.PlayerLastName),
			Record: standing.Record{
				Played: e.MatchesPlayed,
				Won:    e.MatchesWon,
				Drawn:  e.MatchesDrawn,
				Lost:   e.MatchesLost,
			},
			History: histories[i],
		})
	}

	return standing.LeagueStandings{
		LeagueName:      details.League.Name,
		LeagueType:      standing.LeagueTypeDraft,
		Standings:       standing.FromDraftHistory(entries),
		CurrentGameweek: details.League.CurrentEvent,
	}, nil
}

// fetchHistories loads every entry's history on a bounded pool. A failed fetch leaves that
// entry's history empty; only cancellation of ctx fails the batch.
func (s *LeagueService) fetchHistories(ctx context.Context, entries []ExternalDraftLeagueEntry) ([][]standing.RoundScore, error) {
	out := make([][]standing.RoundScore, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	workers := min(s.historyWorkers, len(entries))
	p, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create history worker pool: %w", err)
	}
	defer p.Release()

	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Add(1)
		if err := p.Submit(func() {
			defer wg.Done()
			out[i] = s.fetchHistory(ctx, e.EntryID)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit history fetch entry=%d: %w", e.EntryID, err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LeagueService) fetchHistory(ctx context.Context, entryID int64) []standing.RoundScore {
	if entryID <= 0 {
		s.logger.WarnContext(ctx, "draft league entry has no entry id, counting empty history")
		return nil
	}

	payload, err := s.provider.FetchDraftEntryHistory(ctx, entryID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch draft entry history failed, counting empty history",
			"entry_id", entryID,
			"error", err,
		)
		return nil
	}

	rounds := make([]standing.RoundScore, 0, len(payload.History))
	for _, r := range payload.History {
		rounds = append(rounds, standing.RoundScore{Event: r.Event, Points: r.Points})
	}
	return rounds
}

func leagueFetchError(err error, leagueID int64) error {
	wrapped := crerr.Wrapf(err, "load league=%d", leagueID)
	if IsUpstreamNotFound(err) {
		return crerr.Mark(wrapped, ErrNotFound)
	}
	return wrapped
}

package usecase

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-viewer/internal/domain/formation"
	"github.com/riskibarqy/fpl-viewer/internal/domain/player"
	"github.com/riskibarqy/fpl-viewer/internal/domain/squad"
	"github.com/riskibarqy/fpl-viewer/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

// defaultRound is used when the entry profile carries no current event.
const defaultRound = 1

// DraftPitch is a squad laid out for pitch rendering.
type DraftPitch struct {
	Manager  string
	TeamName string
	Pitch    formation.Pitch
	Bench    []squad.Player
}

type SquadService struct {
	provider FPLProvider
	logger   *logging.Logger
}

func NewSquadService(provider FPLProvider, logger *logging.Logger) *SquadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SquadService{
		provider: provider,
		logger:   logger,
	}
}

// GetDraftSquad loads the picks of teamID for its current round and splits them into starters and bench.
func (s *SquadService) GetDraftSquad(ctx context.Context, leagueID, teamID int64) (squad.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadService.GetDraftSquad",
		attribute.Int64("fpl.league_id", leagueID),
		attribute.Int64("fpl.team_id", teamID),
	)
	defer span.End()

	if leagueID <= 0 || teamID <= 0 {
		return squad.Info{}, fmt.Errorf("%w: league id and team id are required", ErrInvalidInput)
	}

	var (
		league    ExternalDraftLeague
		bootstrap ExternalDraftBootstrap
		public    ExternalDraftEntryPublic
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchDraftLeagueDetails(ctx, leagueID)
		league = out
		return err
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchDraftBootstrap(ctx)
		bootstrap = out
		return err
	})
	p.Go(func(ctx context.Context) error {
		out, err := s.provider.FetchDraftEntryPublic(ctx, teamID)
		public = out
		return err
	})
	if err := p.Wait(); err != nil {
		return squad.Info{}, crerr.Wrapf(err, "load draft squad league=%d team=%d", leagueID, teamID)
	}

	round := public.Entry.CurrentEvent
	if round <= 0 {
		round = defaultRound
	}

	event, err := s.provider.FetchDraftEntryEvent(ctx, teamID, round)
	if err != nil {
		return squad.Info{}, crerr.Wrapf(err, "load draft picks team=%d round=%d", teamID, round)
	}

	member, ok := findLeagueEntry(league.LeagueEntries, teamID)
	if !ok {
		return squad.Info{}, fmt.Errorf("%w: team %d is not in league %d", ErrNotFound, teamID, leagueID)
	}

	players, err := joinPicks(event.Picks, bootstrap)
	if err != nil {
		return squad.Info{}, crerr.Wrapf(err, "assemble draft squad team=%d round=%d", teamID, round)
	}

	starting, bench := squad.Partition(players)
	s.logger.DebugContext(ctx, "draft squad assembled",
		"league_id", leagueID,
		"team_id", teamID,
		"round", round,
		"starting", len(starting),
		"bench", len(bench),
	)

	return squad.Info{
		Manager:  member.PlayerFirstName + " " + member.PlayerLastName,
		TeamName: member.EntryName,
		Starting: starting,
		Bench:    bench,
	}, nil
}

// GetDraftPitch arranges the starting eleven of a draft squad on the pitch.
func (s *SquadService) GetDraftPitch(ctx context.Context, leagueID, teamID int64) (DraftPitch, error) {
	info, err := s.GetDraftSquad(ctx, leagueID, teamID)
	if err != nil {
		return DraftPitch{}, err
	}

	return DraftPitch{
		Manager:  info.Manager,
		TeamName: info.TeamName,
		Pitch:    formation.Arrange(info.Starting),
		Bench:    info.Bench,
	}, nil
}

func findLeagueEntry(entries []ExternalDraftLeagueEntry, entryID int64) (ExternalDraftLeagueEntry, bool) {
	for _, e := range entries {
		if e.EntryID == entryID {
			return e, true
		}
	}
	return ExternalDraftLeagueEntry{}, false
}

func joinPicks(picks []ExternalDraftPick, bootstrap ExternalDraftBootstrap) ([]squad.Player, error) {
	records := make(map[int64]player.Record, len(bootstrap.Elements))
	for _, el := range bootstrap.Elements {
		records[el.ID] = player.Record{
			ID:              el.ID,
			ElementType:     el.ElementType,
			Status:          el.Status,
			ChanceNextRound: el.ChanceNextRound,
			ChanceThisRound: el.ChanceThisRound,
			FirstName:       el.FirstName,
			SecondName:      el.SecondName,
			WebName:         el.WebName,
			ClubID:          el.Team,
			TotalPoints:     el.TotalPoints,
			Form:            el.Form,
		}
	}
	clubs := make(map[int64]player.Club, len(bootstrap.Teams))
	for _, club := range bootstrap.Teams {
		clubs[club.ID] = player.Club{ID: club.ID, ShortName: club.ShortName}
	}

	out := make([]squad.Player, 0, len(picks))
	for _, pick := range picks {
		record, ok := records[pick.Element]
		if !ok {
			return nil, crerr.Mark(crerr.Newf("pick slot=%d element=%d has no bootstrap record", pick.Position, pick.Element), ErrIntegrity)
		}
		club, ok := clubs[record.ClubID]
		if !ok {
			return nil, crerr.Mark(crerr.Newf("element=%d references unknown club=%d", record.ID, record.ClubID), ErrIntegrity)
		}

		item, err := squad.NewPlayer(squad.Pick{
			Element:       pick.Element,
			Slot:          pick.Position,
			IsCaptain:     pick.IsCaptain,
			IsViceCaptain: pick.IsViceCaptain,
			Multiplier:    pick.Multiplier,
		}, record, club)
		if err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "element=%d", record.ID), ErrIntegrity)
		}
		out = append(out, item)
	}

	return out, nil
}

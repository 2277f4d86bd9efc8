package httpapi

import (
	"encoding/json"

	"github.com/riskibarqy/fpl-viewer/internal/domain/entry"
	"github.com/riskibarqy/fpl-viewer/internal/domain/formation"
	"github.com/riskibarqy/fpl-viewer/internal/domain/squad"
	"github.com/riskibarqy/fpl-viewer/internal/domain/standing"
	"github.com/riskibarqy/fpl-viewer/internal/usecase"
)

type healthDTO struct {
	Status string `json:"status"`
}

type teamSummaryDTO struct {
	TeamName   string            `json:"teamName"`
	Points     int               `json:"points"`
	PlayerName string            `json:"playerName"`
	Rank       *int              `json:"rank,omitempty"`
	History    []historyRoundDTO `json:"history"`
}

type historyRoundDTO struct {
	Event              int  `json:"event"`
	Points             int  `json:"points"`
	TotalPoints        int  `json:"total_points"`
	Rank               *int `json:"rank"`
	RankSort           *int `json:"rank_sort"`
	OverallRank        *int `json:"overall_rank"`
	Bank               int  `json:"bank"`
	Value              int  `json:"value"`
	EventTransfers     int  `json:"event_transfers"`
	EventTransfersCost int  `json:"event_transfers_cost"`
	PointsOnBench      int  `json:"points_on_bench"`
}

type leagueStandingsDTO struct {
	LeagueName      string        `json:"leagueName"`
	LeagueType      string        `json:"leagueType"`
	Standings       []standingDTO `json:"standings"`
	CurrentGameweek int           `json:"currentGameweek"`
}

type standingDTO struct {
	Rank          int              `json:"rank"`
	EntryName     string           `json:"entry_name"`
	PlayerName    string           `json:"player_name"`
	Total         int              `json:"total"`
	LastGameweek  *lastGameweekDTO `json:"last_gameweek"`
	MatchesPlayed *int             `json:"matches_played,omitempty"`
	MatchesWon    *int             `json:"matches_won,omitempty"`
	MatchesDrawn  *int             `json:"matches_drawn,omitempty"`
	MatchesLost   *int             `json:"matches_lost,omitempty"`
}

type lastGameweekDTO struct {
	Event  int `json:"event"`
	Points int `json:"points"`
}

type squadPlayerDTO struct {
	ID            int64  `json:"id"`
	WebName       string `json:"webName"`
	Position      string `json:"position"`
	TeamShortName string `json:"teamShortName"`
	Status        string `json:"status"`
	StatusInfo    string `json:"statusInfo,omitempty"`
	Form          string `json:"form"`
	TotalPoints   int    `json:"totalPoints"`
	SquadPosition int    `json:"squadPosition"`
	IsCaptain     bool   `json:"isCaptain"`
	IsViceCaptain bool   `json:"isViceCaptain"`
}

type squadPlayersDTO struct {
	Starting []squadPlayerDTO `json:"starting"`
	Bench    []squadPlayerDTO `json:"bench"`
}

type squadInfoDTO struct {
	Manager  string          `json:"manager"`
	TeamName string          `json:"teamName"`
	Players  squadPlayersDTO `json:"players"`
}

type pitchMarkerDTO struct {
	Player squadPlayerDTO `json:"player"`
	X      int            `json:"x"`
	Y      int            `json:"y"`
}

type draftPitchDTO struct {
	Manager   string           `json:"manager"`
	TeamName  string           `json:"teamName"`
	Formation string           `json:"formation"`
	Markers   []pitchMarkerDTO `json:"markers"`
	Unplaced  []squadPlayerDTO `json:"unplaced"`
	Bench     []squadPlayerDTO `json:"bench"`
}

type probeResultDTO struct {
	Endpoint string          `json:"endpoint"`
	Status   int             `json:"status"`
	Data     json.RawMessage `json:"data"`
}

type probeReportDTO struct {
	Message string           `json:"message"`
	Results []probeResultDTO `json:"results"`
}

func teamSummaryToDTO(summary entry.Summary) teamSummaryDTO {
	history := make([]historyRoundDTO, 0, len(summary.History))
	for _, round := range summary.History {
		history = append(history, historyRoundDTO{
			Event:              round.Event,
			Points:             round.Points,
			TotalPoints:        round.TotalPoints,
			Rank:               round.Rank,
			RankSort:           round.RankSort,
			OverallRank:        round.OverallRank,
			Bank:               round.Bank,
			Value:              round.Value,
			EventTransfers:     round.EventTransfers,
			EventTransfersCost: round.EventTransfersCost,
			PointsOnBench:      round.PointsOnBench,
		})
	}

	return teamSummaryDTO{
		TeamName:   summary.TeamName,
		Points:     summary.Points,
		PlayerName: summary.PlayerName,
		Rank:       summary.Rank,
		History:    history,
	}
}

func leagueStandingsToDTO(item standing.LeagueStandings) leagueStandingsDTO {
	rows := make([]standingDTO, 0, len(item.Standings))
	for _, s := range item.Standings {
		row := standingDTO{
			Rank:       s.Rank,
			EntryName:  s.EntryName,
			PlayerName: s.PlayerName,
			Total:      s.Total,
		}
		if s.LastGameweek != nil {
			row.LastGameweek = &lastGameweekDTO{Event: s.LastGameweek.Event, Points: s.LastGameweek.Points}
		}
		if s.Record != nil {
			record := *s.Record
			row.MatchesPlayed = &record.Played
			row.MatchesWon = &record.Won
			row.MatchesDrawn = &record.Drawn
			row.MatchesLost = &record.Lost
		}
		rows = append(rows, row)
	}

	return leagueStandingsDTO{
		LeagueName:      item.LeagueName,
		LeagueType:      string(item.LeagueType),
		Standings:       rows,
		CurrentGameweek: item.CurrentGameweek,
	}
}

func squadPlayerToDTO(p squad.Player) squadPlayerDTO {
	return squadPlayerDTO{
		ID:            p.ID,
		WebName:       p.WebName,
		Position:      string(p.Position),
		TeamShortName: p.ClubShortName,
		Status:        string(p.Status),
		StatusInfo:    p.StatusInfo,
		Form:          p.Form,
		TotalPoints:   p.TotalPoints,
		SquadPosition: p.Slot,
		IsCaptain:     p.IsCaptain,
		IsViceCaptain: p.IsViceCaptain,
	}
}

func squadPlayersToDTO(players []squad.Player) []squadPlayerDTO {
	out := make([]squadPlayerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, squadPlayerToDTO(p))
	}
	return out
}

func squadInfoToDTO(info squad.Info) squadInfoDTO {
	return squadInfoDTO{
		Manager:  info.Manager,
		TeamName: info.TeamName,
		Players: squadPlayersDTO{
			Starting: squadPlayersToDTO(info.Starting),
			Bench:    squadPlayersToDTO(info.Bench),
		},
	}
}

func draftPitchToDTO(item usecase.DraftPitch) draftPitchDTO {
	markers := make([]pitchMarkerDTO, 0, len(item.Pitch.Markers))
	for _, m := range item.Pitch.Markers {
		markers = append(markers, markerToDTO(m))
	}

	return draftPitchDTO{
		Manager:   item.Manager,
		TeamName:  item.TeamName,
		Formation: string(item.Pitch.Formation),
		Markers:   markers,
		Unplaced:  squadPlayersToDTO(item.Pitch.Unplaced),
		Bench:     squadPlayersToDTO(item.Bench),
	}
}

func markerToDTO(m formation.Marker) pitchMarkerDTO {
	return pitchMarkerDTO{
		Player: squadPlayerToDTO(m.Player),
		X:      m.At.X,
		Y:      m.At.Y,
	}
}

func probeReportToDTO(report usecase.ProbeReport) probeReportDTO {
	results := make([]probeResultDTO, 0, len(report.Results))
	for _, r := range report.Results {
		data := json.RawMessage(r.Data)
		if len(data) == 0 {
			data = json.RawMessage("null")
		}
		results = append(results, probeResultDTO{
			Endpoint: r.Endpoint,
			Status:   r.Status,
			Data:     data,
		})
	}

	return probeReportDTO{
		Message: "API endpoints tested successfully",
		Results: results,
	}
}

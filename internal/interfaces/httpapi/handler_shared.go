package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/domain/topscorers"
	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSONBody decodes a bounded request body. An empty body leaves dst untouched
// when allowEmpty is set.
func decodeJSONBody(r *http.Request, dst any, allowEmpty bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if allowEmpty {
				return nil
			}
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathPositiveInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

// queryInt reads an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be non-negative integer", usecase.ErrInvalidInput, name)
	}
	return v, nil
}

type leagueDTO struct {
	ID      int    `json:"id"`
	Key     string `json:"key"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Emblem  string `json:"emblem,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season"`
	Major   bool   `json:"major"`
}

type leagueInfoDTO struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type,omitempty"`
	Logo          string `json:"logo,omitempty"`
	Country       string `json:"country"`
	CountryCode   string `json:"country_code,omitempty"`
	Flag          string `json:"flag,omitempty"`
	Seasons       []int  `json:"seasons,omitempty"`
	CurrentSeason int    `json:"current_season,omitempty"`
}

type leagueRefDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Season  int    `json:"season,omitempty"`
	Round   string `json:"round,omitempty"`
}

type teamRefDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type teamDTO struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	LeagueID int      `json:"league_id,omitempty"`
	Country  string   `json:"country,omitempty"`
	Venue    string   `json:"venue,omitempty"`
	Logo     string   `json:"logo,omitempty"`
	Founded  int      `json:"founded,omitempty"`
}

type standingRowDTO struct {
	Position       int        `json:"position"`
	Team           teamRefDTO `json:"team"`
	Points         int        `json:"points"`
	Played         int        `json:"played"`
	Won            int        `json:"won"`
	Drawn          int        `json:"drawn"`
	Lost           int        `json:"lost"`
	GoalsFor       int        `json:"goals_for"`
	GoalsAgainst   int        `json:"goals_against"`
	GoalDifference int        `json:"goal_difference"`
	Form           string     `json:"form"`
	Description    string     `json:"description,omitempty"`
}

type fixtureStatusDTO struct {
	Short   string `json:"short"`
	Long    string `json:"long,omitempty"`
	Elapsed *int   `json:"elapsed"`
}

type fixtureGoalsDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type fixtureTeamsDTO struct {
	Home teamRefDTO `json:"home"`
	Away teamRefDTO `json:"away"`
}

type fixtureDTO struct {
	ID     int              `json:"id"`
	Date   string           `json:"date"`
	Status fixtureStatusDTO `json:"status"`
	Venue  string           `json:"venue,omitempty"`
	League leagueRefDTO     `json:"league"`
	Teams  fixtureTeamsDTO  `json:"teams"`
	Goals  fixtureGoalsDTO  `json:"goals"`
}

type teamStatisticsDTO struct {
	Team          teamRefDTO   `json:"team"`
	League        leagueRefDTO `json:"league"`
	Form          string       `json:"form"`
	Played        *int         `json:"played"`
	Wins          *int         `json:"wins"`
	Draws         *int         `json:"draws"`
	Losses        *int         `json:"losses"`
	GoalsFor      *int         `json:"goals_for"`
	GoalsAgainst  *int         `json:"goals_against"`
	CleanSheets   *int         `json:"clean_sheets"`
	FailedToScore *int         `json:"failed_to_score"`
	YellowCards   *int         `json:"yellow_cards"`
	RedCards      *int         `json:"red_cards"`
}

type playerRefDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

type scorerDTO struct {
	Rank    int          `json:"rank"`
	Player  playerRefDTO `json:"player"`
	Team    teamRefDTO   `json:"team"`
	Goals   int          `json:"goals"`
	Assists *int         `json:"assists"`
	Games   *int         `json:"games"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:      v.ID,
		Key:     v.Key,
		Name:    v.Name,
		Country: v.Country,
		Emblem:  v.Emblem,
		Flag:    v.Flag,
		Season:  v.Season,
		Major:   v.Major,
	}
}

func leagueInfoToDTO(v league.Info) leagueInfoDTO {
	return leagueInfoDTO{
		ID:            v.ID,
		Name:          v.Name,
		Type:          v.Type,
		Logo:          v.Logo,
		Country:       v.Country,
		CountryCode:   v.CountryCode,
		Flag:          v.Flag,
		Seasons:       v.Seasons,
		CurrentSeason: v.CurrentSeason,
	}
}

func leagueRefToDTO(v league.Ref) leagueRefDTO {
	return leagueRefDTO{
		ID:      v.ID,
		Name:    v.Name,
		Country: v.Country,
		Logo:    v.Logo,
		Season:  v.Season,
		Round:   v.Round,
	}
}

func teamRefToDTO(v team.Ref) teamRefDTO {
	return teamRefDTO{ID: v.ID, Name: v.Name, Logo: v.Logo}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:       v.ID,
		Name:     v.Name,
		Aliases:  v.Aliases,
		LeagueID: v.LeagueID,
		Country:  v.Country,
		Venue:    v.Venue,
		Logo:     v.Logo,
		Founded:  v.Founded,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamToDTO(t))
	}
	return out
}

func standingRowsToDTO(rows []leaguestanding.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			Position:       row.Rank,
			Team:           teamRefToDTO(row.Team),
			Points:         row.Points,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDiff,
			Form:           row.Form,
			Description:    row.Description,
		})
	}
	return out
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, f := range items {
		date := ""
		if !f.KickoffAt.IsZero() {
			date = f.KickoffAt.Format(time.RFC3339)
		}
		out = append(out, fixtureDTO{
			ID:   f.ID,
			Date: date,
			Status: fixtureStatusDTO{
				Short:   f.Status.Short,
				Long:    f.Status.Long,
				Elapsed: f.Status.Elapsed,
			},
			Venue:  f.Venue,
			League: leagueRefToDTO(f.League),
			Teams: fixtureTeamsDTO{
				Home: teamRefToDTO(f.Home),
				Away: teamRefToDTO(f.Away),
			},
			Goals: fixtureGoalsDTO{Home: f.HomeGoals, Away: f.AwayGoals},
		})
	}
	return out
}

func teamStatisticsToDTO(v teamstats.Statistics) teamStatisticsDTO {
	return teamStatisticsDTO{
		Team:          teamRefToDTO(v.Team),
		League:        leagueRefToDTO(v.League),
		Form:          v.Form,
		Played:        v.Played,
		Wins:          v.Wins,
		Draws:         v.Draws,
		Losses:        v.Losses,
		GoalsFor:      v.GoalsFor,
		GoalsAgainst:  v.GoalsAgainst,
		CleanSheets:   v.CleanSheets,
		FailedToScore: v.FailedToScore,
		YellowCards:   v.YellowCards,
		RedCards:      v.RedCards,
	}
}

func scorersToDTO(items []topscorers.Scorer) []scorerDTO {
	out := make([]scorerDTO, 0, len(items))
	for _, s := range items {
		player := playerRefDTO{ID: s.PlayerID, Name: s.PlayerName, Nationality: s.Nationality, Photo: s.Photo}
		out = append(out, scorerDTO{
			Rank:    s.Rank,
			Player:  player,
			Team:    teamRefDTO{ID: s.TeamID, Name: s.TeamName},
			Goals:   s.Goals,
			Assists: s.Assists,
			Games:   s.Appearances,
		})
	}
	return out
}

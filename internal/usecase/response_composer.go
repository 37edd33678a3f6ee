package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

type ComposerConfig struct {
	Season            int
	DefaultLeagueID   int
	StandingsLimit    int
	ScorersLimit      int
	LiveLimit         int
	RecentMatches     int
	NextMatches       int
	HeadToHeadMatches int
	DecimalPlaces     int
	Zones             league.StandingZones
	Location          *time.Location
}

func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		Season:            2024,
		DefaultLeagueID:   94,
		StandingsLimit:    10,
		ScorersLimit:      10,
		LiveLimit:         15,
		RecentMatches:     5,
		NextMatches:       5,
		HeadToHeadMatches: 5,
		DecimalPlaces:     1,
		Zones:             league.DefaultStandingZones(),
		Location:          time.UTC,
	}
}

func normalizeComposerConfig(cfg ComposerConfig) ComposerConfig {
	defaults := DefaultComposerConfig()
	if cfg.Season <= 0 {
		cfg.Season = defaults.Season
	}
	if cfg.DefaultLeagueID <= 0 {
		cfg.DefaultLeagueID = defaults.DefaultLeagueID
	}
	if cfg.StandingsLimit <= 0 {
		cfg.StandingsLimit = defaults.StandingsLimit
	}
	if cfg.ScorersLimit <= 0 {
		cfg.ScorersLimit = defaults.ScorersLimit
	}
	if cfg.LiveLimit <= 0 {
		cfg.LiveLimit = defaults.LiveLimit
	}
	if cfg.RecentMatches <= 0 {
		cfg.RecentMatches = defaults.RecentMatches
	}
	if cfg.NextMatches <= 0 {
		cfg.NextMatches = defaults.NextMatches
	}
	if cfg.HeadToHeadMatches <= 0 {
		cfg.HeadToHeadMatches = defaults.HeadToHeadMatches
	}
	if cfg.DecimalPlaces < 0 || cfg.DecimalPlaces > 2 {
		cfg.DecimalPlaces = defaults.DecimalPlaces
	}
	if cfg.Zones.ContinentalA <= 0 && cfg.Zones.ContinentalB <= 0 && cfg.Zones.Relegation <= 0 {
		cfg.Zones = defaults.Zones
	}
	if cfg.Location == nil {
		cfg.Location = defaults.Location
	}
	return cfg
}

// Entities is what the resolver found in one question.
type Entities struct {
	Question   string
	League     league.League
	HasLeague  bool
	Team       team.Team
	HasTeam    bool
	LeagueHint int
}

// ResponseComposer renders chat replies for a classified question. Every branch
// converts data source failures into a reply; nothing here returns an error.
type ResponseComposer struct {
	data     FootballDataSource
	resolver *EntityResolver
	cfg      ComposerConfig
	logger   *logging.Logger
}

func NewResponseComposer(data FootballDataSource, resolver *EntityResolver, cfg ComposerConfig, logger *logging.Logger) *ResponseComposer {
	if logger == nil {
		logger = logging.Default()
	}
	return &ResponseComposer{
		data:     data,
		resolver: resolver,
		cfg:      normalizeComposerConfig(cfg),
		logger:   logger,
	}
}

func (c *ResponseComposer) Compose(ctx context.Context, intent Intent, e Entities) string {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResponseComposer.Compose")
	defer span.End()

	switch intent {
	case IntentStandings:
		return c.composeStandings(ctx, e)
	case IntentTeamStats:
		return c.composeTeamStats(ctx, e)
	case IntentRecentMatches:
		return c.composeRecentMatches(ctx, e)
	case IntentNextMatches:
		return c.composeNextMatches(ctx, e)
	case IntentHeadToHead:
		return c.composeHeadToHead(ctx, e)
	case IntentLiveMatches:
		return c.composeLiveMatches(ctx, e)
	case IntentTopScorers:
		return c.composeTopScorers(ctx, e)
	case IntentLeagueInfo:
		return c.composeLeagueInfo(ctx, e)
	default:
		return c.composeGeneral(ctx, e)
	}
}

func (c *ResponseComposer) composeGeneral(ctx context.Context, e Entities) string {
	switch {
	case e.HasTeam:
		return c.composeTeamStats(ctx, e)
	case e.HasLeague:
		return c.composeStandings(ctx, e)
	default:
		return welcomeMessage
	}
}

// leagueFor picks the league for a league-scoped answer: an explicit league wins over
// the team's league, then the request hint, then the configured default.
func (c *ResponseComposer) leagueFor(e Entities) league.League {
	if e.HasLeague {
		return e.League
	}
	if e.HasTeam && e.Team.LeagueID > 0 {
		if l, ok := c.lookupLeague(e.Team.LeagueID); ok {
			return l
		}
	}
	if e.LeagueHint > 0 {
		if l, ok := c.lookupLeague(e.LeagueHint); ok {
			return l
		}
		return league.League{ID: e.LeagueHint, Name: fmt.Sprintf("Liga %d", e.LeagueHint), Season: c.cfg.Season}
	}
	if l, ok := c.lookupLeague(c.cfg.DefaultLeagueID); ok {
		return l
	}
	return league.League{ID: c.cfg.DefaultLeagueID, Name: fmt.Sprintf("Liga %d", c.cfg.DefaultLeagueID), Season: c.cfg.Season}
}

// teamLeagueFor picks the league for team statistics: the team's own league first.
func (c *ResponseComposer) teamLeagueFor(e Entities) league.League {
	if e.HasTeam && e.Team.LeagueID > 0 {
		if l, ok := c.lookupLeague(e.Team.LeagueID); ok {
			return l
		}
	}
	return c.leagueFor(Entities{League: e.League, HasLeague: e.HasLeague, LeagueHint: e.LeagueHint})
}

func (c *ResponseComposer) lookupLeague(id int) (league.League, bool) {
	if c.resolver == nil {
		return league.League{}, false
	}
	return c.resolver.LeagueByID(id)
}

func (c *ResponseComposer) zonesFor(l league.League) league.StandingZones {
	if l.Zones != nil {
		return *l.Zones
	}
	return c.cfg.Zones
}

// failure turns a data source error into the reply for one branch.
func (c *ResponseComposer) failure(ctx context.Context, what string, err error) string {
	switch {
	case errors.Is(err, ErrBudgetExceeded):
		return budgetExceededMessage
	case errors.Is(err, ErrNoData), errors.Is(err, ErrMalformedPayload):
		c.logger.DebugContext(ctx, "no data for chat answer", "what", what, "error", err)
		return fmt.Sprintf("😕 Não consegui obter %s neste momento. Os dados podem ainda não estar disponíveis, tenta mais tarde.", what)
	default:
		c.logger.WarnContext(ctx, "chat answer fetch failed", "what", what, "error", err)
		return fmt.Sprintf("😕 Não consegui obter %s neste momento. Tenta novamente daqui a pouco.", what)
	}
}

func (c *ResponseComposer) percent(part, total int) string {
	if total <= 0 {
		return strconv.FormatFloat(0, 'f', c.cfg.DecimalPlaces, 64) + "%"
	}
	return strconv.FormatFloat(float64(part)/float64(total)*100, 'f', c.cfg.DecimalPlaces, 64) + "%"
}

func (c *ResponseComposer) average(part, total int) string {
	if total <= 0 {
		return strconv.FormatFloat(0, 'f', c.cfg.DecimalPlaces, 64)
	}
	return strconv.FormatFloat(float64(part)/float64(total), 'f', c.cfg.DecimalPlaces, 64)
}

func render(fn func(buf *bytebufferpool.ByteBuffer)) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	fn(buf)
	return buf.String()
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

const (
	budgetExceededMessage = "⏳ Atingimos o limite diário de pedidos à API de futebol. Tenta novamente amanhã, as respostas já guardadas em cache continuam disponíveis."

	welcomeMessage = "👋 Olá! Sou o assistente de futebol. Pergunta-me, por exemplo:\n" +
		"• \"classificação da premier league\"\n" +
		"• \"como está o benfica\"\n" +
		"• \"últimos jogos do porto\"\n" +
		"• \"benfica vs porto\"\n" +
		"Escreve **ajuda** para ver tudo o que sei fazer."
)

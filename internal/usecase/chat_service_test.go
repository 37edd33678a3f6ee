package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/football-chatbot/internal/mocks/usecase"
	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

type fakeCacheManager struct {
	removed int
	stats   cache.Stats
	cleared int
}

func (f *fakeCacheManager) Clear(context.Context) (int, error) {
	f.cleared++
	return f.removed, nil
}

func (f *fakeCacheManager) Stats() cache.Stats {
	return f.stats
}

type fakeMonitor struct {
	status DataSourceStatus
}

func (f fakeMonitor) Status() DataSourceStatus {
	return f.status
}

type recordingQuestions struct {
	mu     sync.Mutex
	labels []string
}

func (r *recordingQuestions) ObserveQuestion(intent string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.labels = append(r.labels, intent)
}

type chatFixture struct {
	service  *ChatService
	data     *usecasemock.FootballDataSource
	cache    *fakeCacheManager
	recorder *recordingQuestions
}

func newChatFixture(t *testing.T) chatFixture {
	t.Helper()
	return newChatFixtureWithConfig(t, DefaultComposerConfig())
}

func newChatFixtureWithConfig(t *testing.T, cfg ComposerConfig) chatFixture {
	t.Helper()

	data := usecasemock.NewFootballDataSource(t)
	leagues := memory.SeedLeagues(2024)
	resolver := NewEntityResolver(leagues, memory.SeedLeagueAliases(), memory.SeedTeams(), data, logging.NewNop())
	composer := NewResponseComposer(data, resolver, cfg, logging.NewNop())
	cacheManager := &fakeCacheManager{removed: 7, stats: cache.Stats{Total: 3, Active: 2, Expired: 1}}
	recorder := &recordingQuestions{}
	monitor := fakeMonitor{status: DataSourceStatus{RequestsMade: 12, RequestLimit: 100, Remaining: 88, State: "healthy"}}

	service := NewChatService(
		NewIntentClassifier(),
		resolver,
		composer,
		memory.NewLeagueRepository(leagues),
		cacheManager,
		monitor,
		recorder,
		logging.NewNop(),
	)
	return chatFixture{service: service, data: data, cache: cacheManager, recorder: recorder}
}

func intPtr(v int) *int {
	return &v
}

func finishedFixture(id int, kickoff time.Time, home, away team.Ref, homeGoals, awayGoals int) fixture.Fixture {
	return fixture.Fixture{
		ID:        id,
		KickoffAt: kickoff,
		Status:    fixture.Status{Short: fixture.StatusFullTime},
		Home:      home,
		Away:      away,
		HomeGoals: intPtr(homeGoals),
		AwayGoals: intPtr(awayGoals),
	}
}

func TestChatService_Standings(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	rows := make([]leaguestanding.Row, 0, 20)
	for i := 1; i <= 20; i++ {
		rows = append(rows, leaguestanding.Row{
			Rank:   i,
			Team:   team.Ref{ID: 1000 + i, Name: fmt.Sprintf("Team %d", i)},
			Points: 60 - i,
			Played: 30,
		})
	}
	f.data.
		On("Standings", mock.Anything, memory.LeagueIDPremierLeague, 2024).
		Return(leaguestanding.Table{League: league.Ref{ID: memory.LeagueIDPremierLeague, Name: "Premier League"}, Rows: rows}, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "classificação da premier league"})
	if reply.Intent != IntentStandings {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentStandings)
	}
	first := strings.Index(reply.Response, "🥇 Team 1 -")
	second := strings.Index(reply.Response, "🥈 Team 2 -")
	if first < 0 || second < 0 || first > second {
		t.Fatalf("expected rank 1 before rank 2, got:\n%s", reply.Response)
	}
	if strings.Contains(reply.Response, "Team 11 -") {
		t.Fatalf("expected table to stop at the display limit, got:\n%s", reply.Response)
	}
	if !strings.Contains(reply.Response, "... e mais 10 equipas.") {
		t.Fatalf("expected truncation note, got:\n%s", reply.Response)
	}
	if reply.RequestsUsed != 12 {
		t.Fatalf("unexpected requests used: got=%d want=12", reply.RequestsUsed)
	}
	if reply.Timestamp.IsZero() {
		t.Fatalf("expected reply timestamp")
	}
}

func TestChatService_StandingsHighlightsTeamOutsideWindow(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	rows := make([]leaguestanding.Row, 0, 18)
	for i := 1; i <= 18; i++ {
		ref := team.Ref{ID: 2000 + i, Name: fmt.Sprintf("Club %d", i)}
		if i == 17 {
			ref = team.Ref{ID: 227, Name: "SC Braga"}
		}
		rows = append(rows, leaguestanding.Row{Rank: i, Team: ref, Points: 50 - i, Played: 30})
	}
	f.data.
		On("Standings", mock.Anything, memory.LeagueIDPrimeiraLiga, 2024).
		Return(leaguestanding.Table{Rows: rows}, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "braga na tabela"})
	if reply.Intent != IntentStandings {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentStandings)
	}
	if !strings.Contains(reply.Response, "🔴 Zona de despromoção") {
		t.Fatalf("expected relegation tag, got:\n%s", reply.Response)
	}
	if !strings.Contains(reply.Response, "17. **SC Braga**") {
		t.Fatalf("expected highlighted row in last slot, got:\n%s", reply.Response)
	}
	if strings.Contains(reply.Response, "Club 10 -") {
		t.Fatalf("expected rank 10 to be replaced by the highlighted team, got:\n%s", reply.Response)
	}
}

func TestChatService_TeamStatsWithZeroPlayed(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	f.data.
		On("TeamStatistics", mock.Anything, 211, memory.LeagueIDPrimeiraLiga, 2024).
		Return(teamstats.Statistics{
			Team:         team.Ref{ID: 211, Name: "Benfica"},
			Played:       intPtr(0),
			Wins:         intPtr(0),
			Draws:        intPtr(0),
			Losses:       intPtr(0),
			GoalsFor:     intPtr(0),
			GoalsAgainst: intPtr(0),
		}, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "como está o benfica"})
	if reply.Intent != IntentTeamStats {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentTeamStats)
	}
	if !strings.Contains(reply.Response, "Vitórias: 0 (0.0%)") {
		t.Fatalf("expected zero percentage, got:\n%s", reply.Response)
	}
	if !strings.Contains(reply.Response, "Golos marcados: 0 (0.0 por jogo)") {
		t.Fatalf("expected zero average, got:\n%s", reply.Response)
	}
	if strings.Contains(reply.Response, "Cartões") {
		t.Fatalf("expected cards line to be omitted, got:\n%s", reply.Response)
	}
}

func TestChatService_TeamStatsPercentages(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	f.data.
		On("TeamStatistics", mock.Anything, 212, memory.LeagueIDPrimeiraLiga, 2024).
		Return(teamstats.Statistics{
			Team:         team.Ref{ID: 212, Name: "FC Porto"},
			Form:         "WWDLWWW",
			Played:       intPtr(3),
			Wins:         intPtr(2),
			Draws:        intPtr(1),
			Losses:       intPtr(0),
			GoalsFor:     intPtr(7),
			GoalsAgainst: intPtr(2),
			YellowCards:  intPtr(5),
		}, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "estatísticas do porto"})
	for _, want := range []string{"Vitórias: 2 (66.7%)", "Empates: 1 (33.3%)", "(2.3 por jogo)", "5 amarelos", "Forma recente: DLWWW"} {
		if !strings.Contains(reply.Response, want) {
			t.Fatalf("expected %q in reply, got:\n%s", want, reply.Response)
		}
	}
}

func TestChatService_HeadToHeadTally(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	benfica := team.Ref{ID: 211, Name: "Benfica"}
	porto := team.Ref{ID: 212, Name: "FC Porto"}
	base := time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC)
	fixtures := []fixture.Fixture{
		finishedFixture(1, base, benfica, porto, 2, 1),
		finishedFixture(2, base.AddDate(0, 2, 0), porto, benfica, 1, 1),
		finishedFixture(3, base.AddDate(0, 5, 0), porto, benfica, 2, 0),
		{ID: 4, KickoffAt: base.AddDate(1, 0, 0), Status: fixture.Status{Short: fixture.StatusNotStarted}, Home: benfica, Away: porto},
	}
	f.data.
		On("HeadToHead", mock.Anything, 211, 212, 10).
		Return(fixtures, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "benfica vs porto"})
	if reply.Intent != IntentHeadToHead {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentHeadToHead)
	}
	if !strings.Contains(reply.Response, "últimos 3 confrontos") {
		t.Fatalf("expected three finished matches, got:\n%s", reply.Response)
	}
	if !strings.Contains(reply.Response, "Benfica 1 · FC Porto 1 · Empates 1") {
		t.Fatalf("unexpected tally, got:\n%s", reply.Response)
	}
	latest := strings.Index(reply.Response, "2024-08-01")
	oldest := strings.Index(reply.Response, "2024-03-01")
	if latest < 0 || oldest < 0 || latest > oldest {
		t.Fatalf("expected newest match first, got:\n%s", reply.Response)
	}
}

func TestChatService_HeadToHeadNeedsTwoTeams(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	reply := f.service.Answer(context.Background(), ChatInput{Question: "histórico do benfica"})
	if reply.Intent != IntentHeadToHead {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentHeadToHead)
	}
	if reply.Response != headToHeadHelpMessage {
		t.Fatalf("unexpected reply: got=%q", reply.Response)
	}
}

func TestChatService_FetchFailures(t *testing.T) {
	t.Parallel()

	t.Run("timeout gives could not fetch reply", func(t *testing.T) {
		t.Parallel()

		f := newChatFixture(t)
		f.data.
			On("TeamStatistics", mock.Anything, 211, memory.LeagueIDPrimeiraLiga, 2024).
			Return(teamstats.Statistics{}, fmt.Errorf("%w: context deadline exceeded", ErrDependencyUnavailable)).
			Once()

		reply := f.service.Answer(context.Background(), ChatInput{Question: "como está o benfica"})
		if !strings.Contains(reply.Response, "Não consegui obter as estatísticas do Benfica") {
			t.Fatalf("unexpected reply: got=%q", reply.Response)
		}
	})

	t.Run("budget exceeded", func(t *testing.T) {
		t.Parallel()

		f := newChatFixture(t)
		f.data.
			On("TopScorers", mock.Anything, memory.LeagueIDLaLiga, 2024).
			Return(nil, ErrBudgetExceeded).
			Once()

		reply := f.service.Answer(context.Background(), ChatInput{Question: "melhores marcadores da la liga"})
		if reply.Response != budgetExceededMessage {
			t.Fatalf("unexpected reply: got=%q", reply.Response)
		}
	})

	t.Run("incomplete statistics payload", func(t *testing.T) {
		t.Parallel()

		f := newChatFixture(t)
		f.data.
			On("TeamStatistics", mock.Anything, 228, memory.LeagueIDPrimeiraLiga, 2024).
			Return(teamstats.Statistics{Played: intPtr(10)}, nil).
			Once()

		reply := f.service.Answer(context.Background(), ChatInput{Question: "estatísticas do sporting"})
		if !strings.Contains(reply.Response, "Não consegui obter as estatísticas do Sporting CP") {
			t.Fatalf("unexpected reply: got=%q", reply.Response)
		}
	})
}

func TestChatService_Commands(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	ctx := context.Background()

	reply := f.service.Answer(ctx, ChatInput{Question: "listar ligas"})
	if reply.Command != CommandListLeagues || !strings.Contains(reply.Response, "Premier League") {
		t.Fatalf("unexpected list leagues reply: command=%q response=%q", reply.Command, reply.Response)
	}

	reply = f.service.Answer(ctx, ChatInput{Question: "limpar cache"})
	if !strings.Contains(reply.Response, "7 entradas removidas") || f.cache.cleared != 1 {
		t.Fatalf("unexpected cache clear reply: got=%q cleared=%d", reply.Response, f.cache.cleared)
	}

	reply = f.service.Answer(ctx, ChatInput{Question: "estado da cache"})
	if !strings.Contains(reply.Response, "Ativas: 2") {
		t.Fatalf("unexpected cache stats reply: got=%q", reply.Response)
	}

	reply = f.service.Answer(ctx, ChatInput{Question: "estatísticas do bot"})
	if !strings.Contains(reply.Response, "12/100") {
		t.Fatalf("unexpected bot stats reply: got=%q", reply.Response)
	}

	reply = f.service.Answer(ctx, ChatInput{Question: "ajuda"})
	if reply.Response != helpMessage {
		t.Fatalf("unexpected help reply: got=%q", reply.Response)
	}

	f.recorder.mu.Lock()
	defer f.recorder.mu.Unlock()
	if len(f.recorder.labels) != 5 || f.recorder.labels[0] != "command_list_leagues" {
		t.Fatalf("unexpected recorded labels: %v", f.recorder.labels)
	}
}

func TestChatService_EmptyAndGeneral(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	ctx := context.Background()

	if reply := f.service.Answer(ctx, ChatInput{Question: "   "}); reply.Response != emptyQuestionReply {
		t.Fatalf("unexpected empty reply: got=%q", reply.Response)
	}
	if reply := f.service.Answer(ctx, ChatInput{Question: "olá"}); reply.Response != welcomeMessage || reply.Intent != IntentGeneral {
		t.Fatalf("unexpected general reply: intent=%s response=%q", reply.Intent, reply.Response)
	}
}

func TestChatService_RecoversFromPanics(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	f.data.
		On("LiveFixtures", mock.Anything, 0).
		Run(func(mock.Arguments) { panic("boom") }).
		Return(nil, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "jogos ao vivo"})
	if reply.Response != genericErrorMessage {
		t.Fatalf("unexpected reply after panic: got=%q", reply.Response)
	}
	if reply.Timestamp.IsZero() {
		t.Fatalf("expected timestamp after panic")
	}
}

func TestChatService_LiveMatchesTruncated(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	live := make([]fixture.Fixture, 0, 17)
	for i := 0; i < 17; i++ {
		live = append(live, fixture.Fixture{
			ID:        i + 1,
			Status:    fixture.Status{Short: fixture.StatusSecondHalf, Elapsed: intPtr(60 + i)},
			Home:      team.Ref{ID: 3000 + i, Name: fmt.Sprintf("Home %d", i)},
			Away:      team.Ref{ID: 4000 + i, Name: fmt.Sprintf("Away %d", i)},
			HomeGoals: intPtr(1),
			AwayGoals: intPtr(0),
		})
	}
	f.data.
		On("LiveFixtures", mock.Anything, 0).
		Return(live, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "jogos ao vivo"})
	if !strings.Contains(reply.Response, "60' Home 0 1-0 Away 0") {
		t.Fatalf("expected elapsed minute line, got:\n%s", reply.Response)
	}
	if !strings.Contains(reply.Response, "... e mais 2 jogos.") {
		t.Fatalf("expected truncation note, got:\n%s", reply.Response)
	}
}

func TestChatService_LiveMatchesNoneInProgress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		question string
		leagueID int
		result   []fixture.Fixture
		err      error
		want     string
	}{
		{
			name:     "upstream reports no data",
			question: "jogos ao vivo",
			err:      fmt.Errorf("fetch live fixtures: %w", ErrNoData),
			want:     "📺 Não há jogos a decorrer neste momento (todas as ligas).",
		},
		{
			name:     "empty list for a league",
			question: "jogos ao vivo da premier league",
			leagueID: memory.LeagueIDPremierLeague,
			result:   []fixture.Fixture{},
			want:     "📺 Não há jogos a decorrer neste momento (Premier League).",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newChatFixture(t)
			f.data.
				On("LiveFixtures", mock.Anything, tc.leagueID).
				Return(tc.result, tc.err).
				Once()

			reply := f.service.Answer(context.Background(), ChatInput{Question: tc.question})
			if reply.Intent != IntentLiveMatches {
				t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentLiveMatches)
			}
			if reply.Response != tc.want {
				t.Fatalf("unexpected reply: got=%q want=%q", reply.Response, tc.want)
			}
		})
	}
}

func TestChatService_RecentMatches(t *testing.T) {
	t.Parallel()

	benfica := team.Ref{ID: 211, Name: "Benfica"}
	porto := team.Ref{ID: 212, Name: "FC Porto"}
	arouca := team.Ref{ID: 240, Name: "Arouca"}
	famalicao := team.Ref{ID: 242, Name: "Famalicão"}
	rioAve := team.Ref{ID: 226, Name: "Rio Ave"}
	arsenal := team.Ref{ID: 42, Name: "Arsenal"}
	chelsea := team.Ref{ID: 49, Name: "Chelsea"}
	base := time.Date(2024, time.March, 2, 20, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		question string
		setup    func(data *usecasemock.FootballDataSource)
		ordered  []string
		absent   []string
	}{
		{
			name:     "team glyphs follow the team side",
			question: "últimos jogos do benfica",
			setup: func(data *usecasemock.FootballDataSource) {
				data.
					On("RecentFixtures", mock.Anything, 211, 5).
					Return([]fixture.Fixture{
						finishedFixture(1, base, benfica, arouca, 2, 0),
						finishedFixture(2, base.AddDate(0, 0, 7), porto, benfica, 1, 0),
						finishedFixture(3, base.AddDate(0, 0, -7), famalicao, benfica, 1, 3),
						finishedFixture(4, base.AddDate(0, 0, -14), rioAve, benfica, 1, 1),
						{ID: 5, KickoffAt: base.AddDate(0, 0, 14), Status: fixture.Status{Short: fixture.StatusNotStarted}, Home: benfica, Away: porto},
					}, nil).
					Once()
			},
			ordered: []string{
				"📅 **Últimos jogos - Benfica**",
				"❌ 2024-03-09: FC Porto 1-0 Benfica",
				"✅ 2024-03-02: Benfica 2-0 Arouca",
				"✅ 2024-02-24: Famalicão 1-3 Benfica",
				"⚪ 2024-02-17: Rio Ave 1-1 Benfica",
			},
			absent: []string{"2024-03-16", "20:00"},
		},
		{
			name:     "league only uses the league feed",
			question: "últimos jogos da premier league",
			setup: func(data *usecasemock.FootballDataSource) {
				data.
					On("LeagueRecentFixtures", mock.Anything, memory.LeagueIDPremierLeague, 2024, 5).
					Return([]fixture.Fixture{finishedFixture(9, base, arsenal, chelsea, 3, 1)}, nil).
					Once()
			},
			ordered: []string{
				"📅 **Últimos jogos - Premier League**",
				"⚽ 2024-03-02: Arsenal 3-1 Chelsea",
			},
			absent: []string{"✅", "❌"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newChatFixture(t)
			tc.setup(f.data)

			reply := f.service.Answer(context.Background(), ChatInput{Question: tc.question})
			if reply.Intent != IntentRecentMatches {
				t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentRecentMatches)
			}
			assertInOrder(t, reply.Response, tc.ordered...)
			for _, unwanted := range tc.absent {
				if strings.Contains(reply.Response, unwanted) {
					t.Fatalf("unexpected %q in reply:\n%s", unwanted, reply.Response)
				}
			}
		})
	}
}

func TestChatService_NextMatchesUseDisplayZone(t *testing.T) {
	t.Parallel()

	cfg := DefaultComposerConfig()
	cfg.Location = time.FixedZone("WEST", 3600)
	f := newChatFixtureWithConfig(t, cfg)

	porto := team.Ref{ID: 212, Name: "FC Porto"}
	gil := team.Ref{ID: 217, Name: "Gil Vicente"}
	sporting := team.Ref{ID: 228, Name: "Sporting CP"}
	primeira := league.Ref{ID: memory.LeagueIDPrimeiraLiga, Name: "Primeira Liga"}
	f.data.
		On("NextFixtures", mock.Anything, 212, 5).
		Return([]fixture.Fixture{
			{ID: 1, KickoffAt: time.Date(2024, time.August, 17, 19, 30, 0, 0, time.UTC), Status: fixture.Status{Short: fixture.StatusNotStarted}, Home: porto, Away: gil, League: primeira},
			{ID: 2, KickoffAt: time.Date(2024, time.August, 24, 18, 0, 0, 0, time.UTC), Status: fixture.Status{Short: fixture.StatusNotStarted}, Home: sporting, Away: porto, League: primeira},
		}, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "próximos jogos do porto"})
	if reply.Intent != IntentNextMatches {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentNextMatches)
	}
	assertInOrder(t, reply.Response,
		"🗓️ **Próximos jogos - FC Porto**",
		"• 2024-08-17 20:30: vs Gil Vicente (🏠 Casa) · Primeira Liga",
		"• 2024-08-24 19:00: vs Sporting CP (✈️ Fora) · Primeira Liga",
	)
}

func TestChatService_LeagueInfoCountsEachMatchOnce(t *testing.T) {
	t.Parallel()

	f := newChatFixture(t)
	row := func(rank, id int, name string, points, goalsFor int) leaguestanding.Row {
		return leaguestanding.Row{Rank: rank, Team: team.Ref{ID: id, Name: name}, Points: points, Played: 3, GoalsFor: goalsFor}
	}
	f.data.
		On("Standings", mock.Anything, memory.LeagueIDPremierLeague, 2024).
		Return(leaguestanding.Table{Rows: []leaguestanding.Row{
			row(1, 42, "Arsenal", 9, 5),
			row(2, 50, "Manchester City", 6, 4),
			row(3, 40, "Liverpool", 3, 3),
			row(4, 49, "Chelsea", 0, 2),
		}}, nil).
		Once()

	reply := f.service.Answer(context.Background(), ChatInput{Question: "média de golos da premier league"})
	if reply.Intent != IntentLeagueInfo {
		t.Fatalf("unexpected intent: got=%s want=%s", reply.Intent, IntentLeagueInfo)
	}
	for _, want := range []string{
		"🏟️ **Premier League**",
		"👥 Equipas: 4",
		"🏆 Líder: Arsenal (9 pts)",
		"🎮 Jogos disputados: 6",
		"⚽ Golos: 14 (2.3 por jogo)",
	} {
		if !strings.Contains(reply.Response, want) {
			t.Fatalf("expected %q in reply, got:\n%s", want, reply.Response)
		}
	}
}

func assertInOrder(t *testing.T, text string, parts ...string) {
	t.Helper()

	offset := 0
	for _, part := range parts {
		idx := strings.Index(text[offset:], part)
		if idx < 0 {
			t.Fatalf("expected %q after offset %d, got:\n%s", part, offset, text)
		}
		offset += idx + len(part)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/football-chatbot/internal/mocks/usecase"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

func newSeedResolver(searcher TeamSearcher) *EntityResolver {
	return NewEntityResolver(
		memory.SeedLeagues(2024),
		memory.SeedLeagueAliases(),
		memory.SeedTeams(),
		searcher,
		logging.NewNop(),
	)
}

func TestEntityResolver_ResolveLeague(t *testing.T) {
	t.Parallel()

	resolver := newSeedResolver(nil)
	cases := []struct {
		text   string
		wantID int
		wantOK bool
	}{
		{text: "classificação da premier league", wantID: memory.LeagueIDPremierLeague, wantOK: true},
		{text: "tabela da Liga Portugal 2", wantID: memory.LeagueIDLigaPortugal2, wantOK: true},
		{text: "melhores marcadores da LaLiga", wantID: memory.LeagueIDLaLiga, wantOK: true},
		{text: "informações sobre a liga bundesliga", wantID: memory.LeagueIDBundesliga, wantOK: true},
		{text: "como está o benfica", wantOK: false},
		{text: "", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := resolver.ResolveLeague(tc.text)
		if ok != tc.wantOK {
			t.Fatalf("unexpected resolve result for %q: got=%v want=%v", tc.text, ok, tc.wantOK)
		}
		if ok && got.ID != tc.wantID {
			t.Fatalf("unexpected league for %q: got=%d want=%d", tc.text, got.ID, tc.wantID)
		}
	}
}

func TestEntityResolver_ResolveTeamFromRegistry(t *testing.T) {
	t.Parallel()

	resolver := newSeedResolver(nil)
	cases := []struct {
		text   string
		wantID int
	}{
		{text: "como está o benfica", wantID: 211},
		{text: "estatísticas do porto", wantID: 212},
		{text: "Estatísticas do Sporting CP esta época", wantID: 228},
		{text: "últimos jogos do Vitória Guimarães", wantID: 230},
		{text: "how is man city", wantID: 50},
		{text: "bayern", wantID: 157},
	}

	for _, tc := range cases {
		got, ok := resolver.ResolveTeam(context.Background(), tc.text, 0)
		if !ok {
			t.Fatalf("expected team for %q", tc.text)
		}
		if got.ID != tc.wantID {
			t.Fatalf("unexpected team for %q: got=%d want=%d", tc.text, got.ID, tc.wantID)
		}
		if got.Dynamic {
			t.Fatalf("registry team must not be dynamic: %q", tc.text)
		}
	}
}

func TestEntityResolver_ResolveTeamPrefersScopedLeague(t *testing.T) {
	t.Parallel()

	teams := []team.Team{
		{ID: 1, Name: "Newcastle United", Aliases: []string{"united"}, LeagueID: 39},
		{ID: 2, Name: "DC United", Aliases: []string{"united"}, LeagueID: 253},
	}
	leagues := []league.League{
		{ID: 39, Key: "premier league", Name: "Premier League"},
		{ID: 253, Key: "mls", Name: "Major League Soccer"},
	}
	resolver := NewEntityResolver(leagues, nil, teams, nil, logging.NewNop())

	got, ok := resolver.ResolveTeam(context.Background(), "como está o united", 253)
	if !ok || got.ID != 2 {
		t.Fatalf("unexpected scoped team: got=%d ok=%v want=2", got.ID, ok)
	}

	got, ok = resolver.ResolveTeam(context.Background(), "como está o united", 0)
	if !ok || got.ID != 1 {
		t.Fatalf("unexpected unscoped team: got=%d ok=%v want=1", got.ID, ok)
	}
}

func TestEntityResolver_ResolveTeamFallsBackToSearch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	searcher := usecasemock.NewFootballDataSource(t)
	searcher.
		On("SearchTeams", mock.Anything, "boavista").
		Return([]team.Team{{ID: 222, Name: "Boavista"}}, nil).
		Once()

	resolver := newSeedResolver(searcher)
	got, ok := resolver.ResolveTeam(ctx, "como está o boavista", 0)
	if !ok {
		t.Fatalf("expected boavista to resolve through search")
	}
	if got.ID != 222 {
		t.Fatalf("unexpected team id: got=%d want=222", got.ID)
	}
	if !got.Dynamic {
		t.Fatalf("searched team must be marked dynamic")
	}
}

func TestEntityResolver_ResolveTeamSearchMiss(t *testing.T) {
	t.Parallel()

	searcher := usecasemock.NewFootballDataSource(t)
	searcher.
		On("SearchTeams", mock.Anything, "xyzzy").
		Return(nil, ErrNoData).
		Once()

	resolver := newSeedResolver(searcher)
	if got, ok := resolver.ResolveTeam(context.Background(), "como está o xyzzy", 0); ok {
		t.Fatalf("expected no team, got=%d", got.ID)
	}
}

func TestEntityResolver_ResolveTeamSkipsSearchForLeagueNames(t *testing.T) {
	t.Parallel()

	// No expectations: any SearchTeams call fails the test.
	searcher := usecasemock.NewFootballDataSource(t)
	resolver := newSeedResolver(searcher)

	if _, ok := resolver.ResolveTeam(context.Background(), "classificação da premier league", 0); ok {
		t.Fatalf("expected no team for a league-only question")
	}
}

func TestExtractTeamCandidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		words string
		want  string
	}{
		{words: "estatisticas do sporting cp", want: "sporting cp"},
		{words: "como esta o benfica", want: "benfica"},
		{words: "benfica vs porto", want: "benfica"},
		{words: "porto vs braga", want: "braga"},
		{words: "porto na tabela", want: "porto"},
		{words: "ola tudo bem", want: ""},
	}

	for _, tc := range cases {
		got := ExtractTeamCandidate(tc.words)
		if got != tc.want {
			t.Fatalf("unexpected candidate for %q: got=%q want=%q", tc.words, got, tc.want)
		}
	}
}

func TestEntityResolver_ResolveTeamPair(t *testing.T) {
	t.Parallel()

	resolver := newSeedResolver(nil)
	ctx := context.Background()

	first, second, err := resolver.ResolveTeamPair(ctx, "Benfica vs Porto", 0)
	if err != nil {
		t.Fatalf("expected a team pair: %v", err)
	}
	if first.ID != 211 || second.ID != 212 {
		t.Fatalf("unexpected pair: got=%d,%d want=211,212", first.ID, second.ID)
	}

	first, second, err = resolver.ResolveTeamPair(ctx, "histórico entre sporting e sc braga", 0)
	if err != nil || first.ID != 228 || second.ID != 227 {
		t.Fatalf("unexpected pair: got=%d,%d err=%v want=228,227", first.ID, second.ID, err)
	}

	for _, question := range []string{"benfica vs benfica", "benfica", ""} {
		if _, _, err := resolver.ResolveTeamPair(ctx, question, 0); !errors.Is(err, ErrEntityNotResolved) {
			t.Fatalf("expected ErrEntityNotResolved for %q, got=%v", question, err)
		}
	}
}

func TestEntityResolver_ResolveTeamPairSearchesUnknownSide(t *testing.T) {
	t.Parallel()

	searcher := usecasemock.NewFootballDataSource(t)
	searcher.
		On("SearchTeams", mock.Anything, "alverca").
		Return([]team.Team{{ID: 4710, Name: "Alverca"}}, nil).
		Once()

	resolver := newSeedResolver(searcher)
	first, second, err := resolver.ResolveTeamPair(context.Background(), "benfica vs alverca", 0)
	if err != nil {
		t.Fatalf("expected a team pair: %v", err)
	}
	if first.ID != 211 || second.ID != 4710 {
		t.Fatalf("unexpected pair: got=%d,%d want=211,4710", first.ID, second.ID)
	}
	if !second.Dynamic {
		t.Fatalf("searched team must be marked dynamic")
	}
}

func TestEntityResolver_ResolveTeamPairSkipsSearchForShortOrLeagueSides(t *testing.T) {
	t.Parallel()

	// No expectations: any SearchTeams call fails the test.
	searcher := usecasemock.NewFootballDataSource(t)
	resolver := newSeedResolver(searcher)

	for _, question := range []string{"benfica vs ab", "benfica vs premier league"} {
		if _, _, err := resolver.ResolveTeamPair(context.Background(), question, 0); !errors.Is(err, ErrEntityNotResolved) {
			t.Fatalf("expected ErrEntityNotResolved for %q, got=%v", question, err)
		}
	}
}

package usecase

import "testing"

func TestIntentClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewIntentClassifier()
	cases := []struct {
		name     string
		question string
		want     Intent
	}{
		{name: "standings", question: "Classificação da Premier League", want: IntentStandings},
		{name: "team stats", question: "como está o benfica", want: IntentTeamStats},
		{name: "recent matches", question: "últimos jogos do sporting", want: IntentRecentMatches},
		{name: "next matches", question: "próximos jogos do braga", want: IntentNextMatches},
		{name: "head to head", question: "benfica vs porto", want: IntentHeadToHead},
		{name: "live", question: "jogos ao vivo", want: IntentLiveMatches},
		{name: "top scorers", question: "melhores marcadores da la liga", want: IntentTopScorers},
		{name: "league info", question: "informações sobre a liga bundesliga", want: IntentLeagueInfo},
		{name: "nothing matched", question: "olá tudo bem", want: IntentGeneral},
		{name: "empty", question: "   ", want: IntentGeneral},
		{name: "higher count wins", question: "últimos jogos e resultados do benfica", want: IntentRecentMatches},
		{name: "tie goes to live over head to head", question: "jogo ao vivo benfica vs porto", want: IntentLiveMatches},
		{name: "tie goes to standings over team stats", question: "estatísticas e classificação do porto", want: IntentStandings},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := classifier.Classify(tc.question)
			if got != tc.want {
				t.Fatalf("unexpected intent for %q: got=%s want=%s", tc.question, got, tc.want)
			}
		})
	}
}

func TestIntentClassifier_ScoresCoverEveryIntent(t *testing.T) {
	t.Parallel()

	scores := NewIntentClassifier().Scores("últimos jogos e resultados do benfica")
	if len(scores) != len(intentRules) {
		t.Fatalf("unexpected score count: got=%d want=%d", len(scores), len(intentRules))
	}
	if scores[IntentRecentMatches] != 2 {
		t.Fatalf("unexpected recent score: got=%d want=2", scores[IntentRecentMatches])
	}
	if scores[IntentStandings] != 0 {
		t.Fatalf("unexpected standings score: got=%d want=0", scores[IntentStandings])
	}
}

func TestIntentClassifier_Command(t *testing.T) {
	t.Parallel()

	classifier := NewIntentClassifier()
	cases := []struct {
		question string
		want     Command
	}{
		{question: "ajuda", want: CommandHelp},
		{question: "Help", want: CommandHelp},
		{question: "limpar cache", want: CommandCacheClear},
		{question: "estado da cache", want: CommandCacheStats},
		{question: "Estatísticas do bot", want: CommandBotStats},
		{question: "quais são as ligas disponíveis?", want: CommandListLeagues},
		{question: "que ligas tens?", want: CommandListLeagues},
		{question: "/ligas", want: CommandListLeagues},
		{question: "/cache clear", want: CommandCacheClear},
		{question: "/cache", want: CommandCacheStats},
		{question: "/start", want: CommandHelp},
		{question: "classificação da premier league", want: CommandNone},
		{question: "em que ligas joga o benfica", want: CommandNone},
		{question: "who helped arsenal win", want: CommandNone},
		{question: "", want: CommandNone},
	}

	for _, tc := range cases {
		got := classifier.Command(tc.question)
		if got != tc.want {
			t.Fatalf("unexpected command for %q: got=%q want=%q", tc.question, got, tc.want)
		}
	}
}

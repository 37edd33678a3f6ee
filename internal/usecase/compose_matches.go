package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
)

const (
	matchesNotResolvedMessage = "🤔 Diz-me de que equipa ou liga queres os jogos, por exemplo \"últimos jogos do porto\" ou \"próximos jogos da premier league\"."
	headToHeadHelpMessage     = "🤔 Para ver o histórico preciso de duas equipas. Experimenta, por exemplo, \"benfica vs porto\"."
	dateLayout                = "2006-01-02"
	dateTimeLayout            = "2006-01-02 15:04"
)

func outcomeGlyph(o fixture.Outcome) string {
	switch o {
	case fixture.OutcomeWin:
		return "✅"
	case fixture.OutcomeLoss:
		return "❌"
	default:
		return "⚪"
	}
}

func score(f fixture.Fixture) string {
	if f.HomeGoals == nil || f.AwayGoals == nil {
		return "-"
	}
	return fmt.Sprintf("%d-%d", *f.HomeGoals, *f.AwayGoals)
}

func finishedOnly(fixtures []fixture.Fixture) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.IsFinished() {
			out = append(out, f)
		}
	}
	return out
}

func (c *ResponseComposer) composeRecentMatches(ctx context.Context, e Entities) string {
	var (
		fixtures []fixture.Fixture
		err      error
		subject  string
	)
	switch {
	case e.HasTeam:
		subject = e.Team.Name
		fixtures, err = c.data.RecentFixtures(ctx, e.Team.ID, c.cfg.RecentMatches)
	case e.HasLeague:
		subject = e.League.Name
		fixtures, err = c.data.LeagueRecentFixtures(ctx, e.League.ID, c.cfg.Season, c.cfg.RecentMatches)
	default:
		return matchesNotResolvedMessage
	}
	if err != nil {
		return c.failure(ctx, "os últimos jogos do "+subject, err)
	}

	finished := finishedOnly(fixtures)
	if len(finished) == 0 {
		return fmt.Sprintf("ℹ️ Não encontrei jogos terminados recentes para %s.", subject)
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].KickoffAt.After(finished[j].KickoffAt)
	})

	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "📅 **Últimos jogos - %s**\n\n", subject)
		for _, f := range finished {
			glyph := "⚽"
			if e.HasTeam {
				glyph = outcomeGlyph(f.OutcomeFor(e.Team.ID))
			}
			fmt.Fprintf(buf, "%s %s: %s %s %s\n",
				glyph, f.KickoffAt.In(c.cfg.Location).Format(dateLayout), f.Home.Name, score(f), f.Away.Name)
		}
	})
}

func (c *ResponseComposer) composeNextMatches(ctx context.Context, e Entities) string {
	var (
		fixtures []fixture.Fixture
		err      error
		subject  string
	)
	switch {
	case e.HasTeam:
		subject = e.Team.Name
		fixtures, err = c.data.NextFixtures(ctx, e.Team.ID, c.cfg.NextMatches)
	case e.HasLeague:
		subject = e.League.Name
		fixtures, err = c.data.LeagueNextFixtures(ctx, e.League.ID, c.cfg.Season, c.cfg.NextMatches)
	default:
		return matchesNotResolvedMessage
	}
	if err != nil {
		return c.failure(ctx, "os próximos jogos do "+subject, err)
	}
	if len(fixtures) == 0 {
		return c.failure(ctx, "os próximos jogos do "+subject, ErrNoData)
	}

	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "🗓️ **Próximos jogos - %s**\n\n", subject)
		for _, f := range fixtures {
			when := f.KickoffAt.In(c.cfg.Location).Format(dateTimeLayout)
			if !e.HasTeam {
				fmt.Fprintf(buf, "• %s: %s vs %s", when, f.Home.Name, f.Away.Name)
			} else {
				opponent, home := f.Opponent(e.Team.ID)
				venue := "✈️ Fora"
				if home {
					venue = "🏠 Casa"
				}
				fmt.Fprintf(buf, "• %s: vs %s (%s)", when, opponent.Name, venue)
			}
			if f.League.Name != "" {
				fmt.Fprintf(buf, " · %s", f.League.Name)
			}
			buf.WriteString("\n")
		}
	})
}

// HeadToHeadTally counts results from the first team's point of view.
type HeadToHeadTally struct {
	FirstWins  int
	SecondWins int
	Draws      int
}

func (t HeadToHeadTally) Total() int {
	return t.FirstWins + t.SecondWins + t.Draws
}

func (c *ResponseComposer) composeHeadToHead(ctx context.Context, e Entities) string {
	if c.resolver == nil {
		return headToHeadHelpMessage
	}
	first, second, err := c.resolver.ResolveTeamPair(ctx, e.Question, e.LeagueHint)
	if errors.Is(err, ErrEntityNotResolved) {
		c.logger.DebugContext(ctx, "head to head pair not resolved", "error", err)
		return headToHeadHelpMessage
	}

	fixtures, err := c.data.HeadToHead(ctx, first.ID, second.ID, c.cfg.HeadToHeadMatches*2)
	if err != nil {
		return c.failure(ctx, fmt.Sprintf("o histórico %s vs %s", first.Name, second.Name), err)
	}

	finished := finishedOnly(fixtures)
	if len(finished) == 0 {
		return fmt.Sprintf("ℹ️ Não encontrei jogos terminados entre %s e %s.", first.Name, second.Name)
	}
	sort.SliceStable(finished, func(i, j int) bool {
		return finished[i].KickoffAt.After(finished[j].KickoffAt)
	})
	if len(finished) > c.cfg.HeadToHeadMatches {
		finished = finished[:c.cfg.HeadToHeadMatches]
	}

	var tally HeadToHeadTally
	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "⚔️ **%s vs %s - últimos %d confrontos**\n\n", first.Name, second.Name, len(finished))
		for _, f := range finished {
			outcome := f.OutcomeFor(first.ID)
			switch outcome {
			case fixture.OutcomeWin:
				tally.FirstWins++
			case fixture.OutcomeLoss:
				tally.SecondWins++
			default:
				tally.Draws++
			}
			fmt.Fprintf(buf, "%s %s: %s %s %s\n",
				outcomeGlyph(outcome), f.KickoffAt.In(c.cfg.Location).Format(dateLayout), f.Home.Name, score(f), f.Away.Name)
		}
		fmt.Fprintf(buf, "\n📊 **Balanço:** %s %d · %s %d · Empates %d\n", first.Name, tally.FirstWins, second.Name, tally.SecondWins, tally.Draws)
	})
}

func (c *ResponseComposer) composeLiveMatches(ctx context.Context, e Entities) string {
	leagueID := 0
	subject := "todas as ligas"
	if e.HasLeague {
		leagueID = e.League.ID
		subject = e.League.Name
	}

	// Upstream answers an empty list when nothing is being played.
	fixtures, err := c.data.LiveFixtures(ctx, leagueID)
	if err != nil && !errors.Is(err, ErrNoData) {
		return c.failure(ctx, "os jogos ao vivo", err)
	}
	if len(fixtures) == 0 {
		return fmt.Sprintf("📺 Não há jogos a decorrer neste momento (%s).", subject)
	}

	shown := fixtures
	if len(shown) > c.cfg.LiveLimit {
		shown = shown[:c.cfg.LiveLimit]
	}
	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "🔴 **Jogos ao vivo - %s**\n\n", subject)
		for _, f := range shown {
			minute := f.Status.Short
			if f.Status.Elapsed != nil {
				minute = fmt.Sprintf("%d'", *f.Status.Elapsed)
			}
			fmt.Fprintf(buf, "• %s %s %s %s", minute, f.Home.Name, score(f), f.Away.Name)
			if f.League.Name != "" {
				fmt.Fprintf(buf, " (%s)", f.League.Name)
			}
			buf.WriteString("\n")
		}
		if hidden := len(fixtures) - len(shown); hidden > 0 {
			fmt.Fprintf(buf, "\n... e mais %d jogos.", hidden)
		}
	})
}

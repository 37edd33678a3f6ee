package usecase

import (
	"context"
	"fmt"

	"github.com/valyala/bytebufferpool"
)

const teamNotResolvedMessage = "🤔 Não percebi de que equipa estás a falar. Experimenta, por exemplo, \"como está o benfica\" ou \"estatísticas do porto\"."

func (c *ResponseComposer) composeTeamStats(ctx context.Context, e Entities) string {
	if !e.HasTeam {
		return teamNotResolvedMessage
	}

	l := c.teamLeagueFor(e)
	stats, err := c.data.TeamStatistics(ctx, e.Team.ID, l.ID, c.cfg.Season)
	if err != nil {
		return c.failure(ctx, "as estatísticas do "+e.Team.Name, err)
	}
	if !stats.Complete() {
		return c.failure(ctx, "as estatísticas do "+e.Team.Name, ErrMalformedPayload)
	}

	teamName := e.Team.Name
	if stats.Team.Name != "" {
		teamName = stats.Team.Name
	}
	leagueName := l.Name
	if stats.League.Name != "" {
		leagueName = stats.League.Name
	}

	played := *stats.Played
	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "📊 **%s - %s %d**\n\n", teamName, leagueName, c.cfg.Season)
		fmt.Fprintf(buf, "🎮 Jogos: %d\n", played)
		fmt.Fprintf(buf, "✅ Vitórias: %d (%s)\n", *stats.Wins, c.percent(*stats.Wins, played))
		fmt.Fprintf(buf, "⚪ Empates: %d (%s)\n", *stats.Draws, c.percent(*stats.Draws, played))
		fmt.Fprintf(buf, "❌ Derrotas: %d (%s)\n", *stats.Losses, c.percent(*stats.Losses, played))
		fmt.Fprintf(buf, "⚽ Golos marcados: %d (%s por jogo)\n", *stats.GoalsFor, c.average(*stats.GoalsFor, played))
		fmt.Fprintf(buf, "🥅 Golos sofridos: %d (%s por jogo)\n", *stats.GoalsAgainst, c.average(*stats.GoalsAgainst, played))
		if stats.CleanSheets != nil {
			fmt.Fprintf(buf, "🧤 Jogos sem sofrer: %d\n", *stats.CleanSheets)
		}
		if stats.FailedToScore != nil {
			fmt.Fprintf(buf, "🚫 Jogos sem marcar: %d\n", *stats.FailedToScore)
		}
		if stats.HasCards() {
			buf.WriteString("🟨 Cartões:")
			if stats.YellowCards != nil {
				fmt.Fprintf(buf, " %d amarelos", *stats.YellowCards)
			}
			if stats.RedCards != nil {
				if stats.YellowCards != nil {
					buf.WriteString(",")
				}
				fmt.Fprintf(buf, " %d vermelhos", *stats.RedCards)
			}
			buf.WriteString("\n")
		}
		if form := lastRunes(stats.Form, 5); form != "" {
			fmt.Fprintf(buf, "📈 Forma recente: %s\n", form)
		}
	})
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

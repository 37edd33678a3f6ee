package usecase

import (
	"context"
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
)

func (c *ResponseComposer) composeTopScorers(ctx context.Context, e Entities) string {
	l := c.leagueFor(e)
	scorers, err := c.data.TopScorers(ctx, l.ID, c.cfg.Season)
	if err != nil {
		return c.failure(ctx, "os melhores marcadores da "+l.Name, err)
	}
	if len(scorers) == 0 {
		return c.failure(ctx, "os melhores marcadores da "+l.Name, ErrNoData)
	}
	if len(scorers) > c.cfg.ScorersLimit {
		scorers = scorers[:c.cfg.ScorersLimit]
	}

	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "⚽ **Melhores marcadores - %s (%d)**\n\n", l.Name, c.cfg.Season)
		for i, s := range scorers {
			rank := s.Rank
			if rank <= 0 {
				rank = i + 1
			}
			fmt.Fprintf(buf, "%s %s (%s) - %d golos", medal(rank), s.PlayerName, s.TeamName, s.Goals)
			if s.Assists != nil {
				fmt.Fprintf(buf, ", %d assistências", *s.Assists)
			}
			buf.WriteString("\n")
		}
	})
}

// composeLeagueInfo averages goals as total goals over total matches, where each
// match is counted once from the standings' played columns.
func (c *ResponseComposer) composeLeagueInfo(ctx context.Context, e Entities) string {
	l := c.leagueFor(e)
	table, err := c.data.Standings(ctx, l.ID, c.cfg.Season)
	if err != nil {
		return c.failure(ctx, "as informações da "+l.Name, err)
	}
	if len(table.Rows) == 0 {
		return c.failure(ctx, "as informações da "+l.Name, ErrNoData)
	}

	goals, matches := table.Totals()
	leader := table.Rows[0]
	return render(func(buf *bytebufferpool.ByteBuffer) {
		fmt.Fprintf(buf, "🏟️ **%s**\n\n", l.Name)
		if l.Country != "" {
			fmt.Fprintf(buf, "🌍 País: %s\n", l.Country)
		}
		fmt.Fprintf(buf, "📅 Época: %d\n", c.cfg.Season)
		fmt.Fprintf(buf, "👥 Equipas: %d\n", len(table.Rows))
		fmt.Fprintf(buf, "🏆 Líder: %s (%d pts)\n", leader.Team.Name, leader.Points)
		fmt.Fprintf(buf, "🎮 Jogos disputados: %d\n", matches)
		fmt.Fprintf(buf, "⚽ Golos: %d (%s por jogo)\n", goals, c.average(goals, matches))
	})
}

// ComposeLeagueList renders the static registry without touching the data source.
func ComposeLeagueList(leagues []league.League) string {
	return render(func(buf *bytebufferpool.ByteBuffer) {
		buf.WriteString("🏆 **Ligas disponíveis**\n\n")
		for _, l := range leagues {
			fmt.Fprintf(buf, "• %s (%s) - id %d\n", l.Name, l.Country, l.ID)
		}
		buf.WriteString("\nPergunta, por exemplo, \"classificação da la liga\".")
	})
}

package usecase

import (
	"context"
	"fmt"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
)

type standingZone int

const (
	zoneNeutral standingZone = iota
	zoneLeader
	zoneContinentalA
	zoneContinentalB
	zoneRelegation
)

func classifyPosition(rank, size int, zones league.StandingZones) standingZone {
	switch {
	case rank == 1:
		return zoneLeader
	case rank <= zones.ContinentalA:
		return zoneContinentalA
	case rank <= zones.ContinentalB:
		return zoneContinentalB
	case zones.Relegation > 0 && rank > size-zones.Relegation:
		return zoneRelegation
	default:
		return zoneNeutral
	}
}

func (z standingZone) tag() string {
	switch z {
	case zoneLeader:
		return "🏆 Líder"
	case zoneContinentalA:
		return "🔵 Zona Champions"
	case zoneContinentalB:
		return "🟡 Zona Europa"
	case zoneRelegation:
		return "🔴 Zona de despromoção"
	default:
		return "⚪ Meio da tabela"
	}
}

func (z standingZone) glyph() string {
	switch z {
	case zoneContinentalA:
		return "🔵"
	case zoneContinentalB:
		return "🟡"
	case zoneRelegation:
		return "🔴"
	default:
		return "⚪"
	}
}

func (c *ResponseComposer) composeStandings(ctx context.Context, e Entities) string {
	l := c.leagueFor(e)
	table, err := c.data.Standings(ctx, l.ID, c.cfg.Season)
	if err != nil {
		return c.failure(ctx, "a classificação da "+l.Name, err)
	}
	if len(table.Rows) == 0 {
		return c.failure(ctx, "a classificação da "+l.Name, ErrNoData)
	}

	name := l.Name
	if table.League.Name != "" {
		name = table.League.Name
	}
	zones := c.zonesFor(l)

	teamIdx := -1
	var teamRow leaguestanding.Row
	if e.HasTeam {
		teamRow, teamIdx, _ = table.FindTeam(e.Team.ID)
	}

	return render(func(buf *bytebufferpool.ByteBuffer) {
		if e.HasTeam {
			if teamIdx < 0 {
				fmt.Fprintf(buf, "ℹ️ O %s não aparece na classificação da %s.\n\n", e.Team.Name, name)
			} else {
				c.writeTeamStanding(buf, teamRow, len(table.Rows), zones, name)
				buf.WriteString("\n")
			}
		}

		fmt.Fprintf(buf, "🏆 **Classificação - %s (%d)**\n\n", name, c.cfg.Season)
		for _, row := range standingsWindow(table.Rows, c.cfg.StandingsLimit, teamIdx) {
			c.writeStandingLine(buf, row, len(table.Rows), zones, e.HasTeam && row.Team.ID == e.Team.ID)
		}
		if hidden := len(table.Rows) - c.cfg.StandingsLimit; hidden > 0 {
			fmt.Fprintf(buf, "\n... e mais %d equipas.", hidden)
		}
	})
}

// standingsWindow returns the first limit rows. A highlighted row past the window
// takes the last displayed slot.
func standingsWindow(rows []leaguestanding.Row, limit, highlight int) []leaguestanding.Row {
	if limit <= 0 || limit >= len(rows) {
		return rows
	}
	window := append([]leaguestanding.Row(nil), rows[:limit]...)
	if highlight >= limit && highlight < len(rows) {
		window[limit-1] = rows[highlight]
	}
	return window
}

func (c *ResponseComposer) writeTeamStanding(buf *bytebufferpool.ByteBuffer, row leaguestanding.Row, size int, zones league.StandingZones, leagueName string) {
	fmt.Fprintf(buf, "📊 **%s na %s**\n", row.Team.Name, leagueName)
	buf.WriteString(classifyPosition(row.Rank, size, zones).tag())
	buf.WriteString("\n")
	fmt.Fprintf(buf, "📍 Posição: %dº com %d pontos\n", row.Rank, row.Points)
	fmt.Fprintf(buf, "🎮 Jogos: %d (%dV %dE %dD)\n", row.Played, row.Won, row.Drawn, row.Lost)
	fmt.Fprintf(buf, "⚽ Golos: %d marcados, %d sofridos (%+d)\n", row.GoalsFor, row.GoalsAgainst, row.GoalsFor-row.GoalsAgainst)
	if row.Form != "" {
		fmt.Fprintf(buf, "📈 Forma: %s\n", row.Form)
	}
}

func (c *ResponseComposer) writeStandingLine(buf *bytebufferpool.ByteBuffer, row leaguestanding.Row, size int, zones league.StandingZones, highlight bool) {
	name := row.Team.Name
	if highlight {
		name = "**" + name + "**"
	}
	if row.Rank >= 1 && row.Rank <= 3 {
		fmt.Fprintf(buf, "%s %s - %d pts (%dJ, %+d)\n", medal(row.Rank), name, row.Points, row.Played, row.GoalsFor-row.GoalsAgainst)
		return
	}
	fmt.Fprintf(buf, "%s %d. %s - %d pts (%dJ, %+d)\n", classifyPosition(row.Rank, size, zones).glyph(), row.Rank, name, row.Points, row.Played, row.GoalsFor-row.GoalsAgainst)
}

package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-chatbot/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teams         []team.Team
	teamsByLeague map[int][]team.Team
	byID          map[int]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	r := &TeamRepository{
		teamsByLeague: make(map[int][]team.Team),
		byID:          make(map[int]team.Team, len(teams)),
	}
	for _, item := range teams {
		if _, dup := r.byID[item.ID]; dup {
			continue
		}
		r.teams = append(r.teams, item)
		r.byID[item.ID] = item
		r.teamsByLeague[item.LeagueID] = append(r.teamsByLeague[item.LeagueID], item)
	}

	return r
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID int) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByLeague[leagueID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

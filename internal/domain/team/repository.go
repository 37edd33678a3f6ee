package team

import "context"

// Repository exposes the static popular-teams registry.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	ListByLeague(ctx context.Context, leagueID int) ([]Team, error)
	GetByID(ctx context.Context, teamID int) (Team, bool, error)
}

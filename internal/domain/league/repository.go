package league

import "context"

// Repository exposes the static league registry.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int) (League, bool, error)
}

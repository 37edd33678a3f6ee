package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"
	warmStatusSkipped = "skipped"

	warmResourceStandings  = "standings"
	warmResourceTopScorers = "topscorers"

	defaultWarmWorkers = 2
	maxWarmWorkers     = 4
)

type CacheWarmInput struct {
	LeagueIDs  []int
	Resources  []string
	MaxWorkers int
}

type CacheWarmResult struct {
	TaskCount    int                  `json:"task_count"`
	SuccessCount int                  `json:"success_count"`
	FailedCount  int                  `json:"failed_count"`
	SkippedCount int                  `json:"skipped_count"`
	WorkerCount  int                  `json:"worker_count"`
	Tasks        []CacheWarmTaskResult `json:"tasks"`
}

type CacheWarmTaskResult struct {
	LeagueID   int    `json:"league_id"`
	Resource   string `json:"resource"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// CacheWarmService prefetches league-level resources into the response cache. Each
// fetch still goes through the client throttle and budget, so the pool only hides
// latency; it never raises the upstream call rate.
type CacheWarmService struct {
	data       FootballDataSource
	leagueRepo league.Repository
	season     int
	logger     *logging.Logger
}

func NewCacheWarmService(data FootballDataSource, leagueRepo league.Repository, season int, logger *logging.Logger) *CacheWarmService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CacheWarmService{
		data:       data,
		leagueRepo: leagueRepo,
		season:     season,
		logger:     logger,
	}
}

func (s *CacheWarmService) Warm(ctx context.Context, input CacheWarmInput) (CacheWarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CacheWarmService.Warm")
	defer span.End()

	leagueIDs, err := s.targetLeagues(ctx, input.LeagueIDs)
	if err != nil {
		return CacheWarmResult{}, err
	}
	resources, err := normalizeWarmResources(input.Resources)
	if err != nil {
		return CacheWarmResult{}, err
	}

	type warmTask struct {
		leagueID int
		resource string
	}
	tasks := make([]warmTask, 0, len(leagueIDs)*len(resources))
	for _, id := range leagueIDs {
		for _, r := range resources {
			tasks = append(tasks, warmTask{leagueID: id, resource: r})
		}
	}

	workerCount := normalizeWarmWorkerCount(input.MaxWorkers, len(tasks))
	result := CacheWarmResult{TaskCount: len(tasks), WorkerCount: workerCount}
	if len(tasks) == 0 {
		return result, nil
	}

	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32
	results := make(chan CacheWarmTaskResult, len(tasks))

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return CacheWarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := CacheWarmTaskResult{LeagueID: task.leagueID, Resource: task.resource}
			row.Status, row.Message = s.runTask(ctx, task.leagueID, task.resource)
			row.DurationMs = time.Since(start).Milliseconds()

			switch row.Status {
			case warmStatusSuccess:
				successCount.Add(1)
			case warmStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return CacheWarmResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)
	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].LeagueID != result.Tasks[j].LeagueID {
			return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
		}
		return result.Tasks[i].Resource < result.Tasks[j].Resource
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())
	s.logger.InfoContext(ctx, "cache warm finished",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)
	return result, nil
}

// runTask skips rather than fails when upstream has nothing or the budget is gone.
func (s *CacheWarmService) runTask(ctx context.Context, leagueID int, resource string) (string, string) {
	var err error
	switch resource {
	case warmResourceStandings:
		_, err = s.data.Standings(ctx, leagueID, s.season)
	case warmResourceTopScorers:
		_, err = s.data.TopScorers(ctx, leagueID, s.season)
	default:
		return warmStatusFailed, "unsupported resource"
	}

	switch {
	case err == nil:
		return warmStatusSuccess, ""
	case errors.Is(err, ErrNoData), errors.Is(err, ErrBudgetExceeded):
		return warmStatusSkipped, err.Error()
	default:
		return warmStatusFailed, err.Error()
	}
}

func (s *CacheWarmService) targetLeagues(ctx context.Context, requested []int) ([]int, error) {
	if len(requested) > 0 {
		seen := make(map[int]bool, len(requested))
		out := make([]int, 0, len(requested))
		for _, id := range requested {
			if id <= 0 {
				return nil, fmt.Errorf("%w: league id must be > 0", ErrInvalidInput)
			}
			if _, ok, err := s.leagueRepo.GetByID(ctx, id); err != nil {
				return nil, fmt.Errorf("get league: %w", err)
			} else if !ok {
				return nil, fmt.Errorf("%w: league=%d", ErrNotFound, id)
			}
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
		return out, nil
	}

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	out := make([]int, 0, len(leagues))
	for _, l := range leagues {
		if l.Major {
			out = append(out, l.ID)
		}
	}
	return out, nil
}

func normalizeWarmResources(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return []string{warmResourceStandings}, nil
	}
	seen := make(map[string]bool, len(requested))
	out := make([]string, 0, len(requested))
	for _, r := range requested {
		switch r {
		case warmResourceStandings, warmResourceTopScorers:
		default:
			return nil, fmt.Errorf("%w: unsupported resource %q", ErrInvalidInput, r)
		}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out, nil
}

func normalizeWarmWorkerCount(requested, tasks int) int {
	workers := requested
	if workers <= 0 {
		workers = defaultWarmWorkers
	}
	if workers > maxWarmWorkers {
		workers = maxWarmWorkers
	}
	if tasks > 0 && workers > tasks {
		workers = tasks
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

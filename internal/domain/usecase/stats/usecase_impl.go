package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const (
	longestRunningLimit   = 3
	recentCompletedLimit  = 10
	fastestCompletedLimit = 3
)

type period struct {
	name string
	days int
}

var periods = []period{
	{name: "Past Day", days: 1},
	{name: "Past 7 Days", days: 7},
	{name: "Past 30 Days", days: 30},
}

type statsUseCase struct {
	gateway    db.TodoStatsGateway
	statsCache cache.StatsCache
	now        func() time.Time
}

func NewStatsUseCase(gateway db.TodoStatsGateway, statsCache cache.StatsCache) UseCase {
	return &statsUseCase{
		gateway:    gateway,
		statsCache: statsCache,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *statsUseCase) Summary(ctx context.Context, session *entity.Session) (*model.StatsResponse, error) {
	if session == nil {
		return emptyStats(), nil
	}

	cached, found, err := uc.statsCache.Get(ctx, session.UserID)
	if err != nil {
		log.Warn(msg.GetMessage("stats.error.cache-failed", session.UserID, err))
	}
	if found {
		return cached, nil
	}

	stats, err := uc.compute(ctx, session.UserID)
	if err != nil {
		log.Error(msg.GetMessage("stats.error.load-failed", session.UserID, err))
		return nil, err
	}

	if err := uc.statsCache.Set(ctx, session.UserID, *stats); err != nil {
		log.Warn(msg.GetMessage("stats.error.cache-failed", session.UserID, err))
	}
	return stats, nil
}

func (uc *statsUseCase) compute(ctx context.Context, userID string) (*model.StatsResponse, error) {
	stats := emptyStats()
	now := uc.now()

	for _, p := range periods {
		statuses, err := uc.gateway.FindStatusesCreatedSince(ctx, userID, now.AddDate(0, 0, -p.days))
		if err != nil {
			return nil, err
		}
		stats.Periods = append(stats.Periods, countStatuses(p, statuses))
	}

	open, err := uc.gateway.FindOldestOpen(ctx, userID, longestRunningLimit)
	if err != nil {
		return nil, err
	}
	for _, todo := range open {
		stats.LongestRunning = append(stats.LongestRunning, model.LongestRunningTodo{
			ID:         todo.ID,
			Title:      todo.Title,
			Days:       int(math.Ceil(elapsed(todo).Hours() / 24)),
			StatusName: todo.Status.String(),
		})
	}

	completed, err := uc.gateway.FindRecentlyCompleted(ctx, userID, recentCompletedLimit)
	if err != nil {
		return nil, err
	}
	for _, todo := range completed {
		stats.FastestCompleted = append(stats.FastestCompleted, model.FastestCompletedTodo{
			ID:    todo.ID,
			Title: todo.Title,
			Hours: math.Round(elapsed(todo).Hours()*10) / 10,
		})
	}
	sort.SliceStable(stats.FastestCompleted, func(i, j int) bool {
		return stats.FastestCompleted[i].Hours < stats.FastestCompleted[j].Hours
	})
	if len(stats.FastestCompleted) > fastestCompletedLimit {
		stats.FastestCompleted = stats.FastestCompleted[:fastestCompletedLimit]
	}

	return stats, nil
}

func countStatuses(p period, statuses []entity.Status) model.PeriodStats {
	result := model.PeriodStats{Period: p.name, Days: p.days, Created: len(statuses)}
	for _, status := range statuses {
		switch status {
		case entity.StatusInProgress:
			result.InProgress++
		case entity.StatusCompleted:
			result.Completed++
		}
	}
	return result
}

// elapsed is the absolute time between creation and the last update.
func elapsed(todo entity.Todo) time.Duration {
	diff := todo.UpdatedAt.Sub(todo.CreatedAt)
	if diff < 0 {
		return -diff
	}
	return diff
}

func emptyStats() *model.StatsResponse {
	return &model.StatsResponse{
		Periods:          make([]model.PeriodStats, 0, len(periods)),
		LongestRunning:   make([]model.LongestRunningTodo, 0),
		FastestCompleted: make([]model.FastestCompletedTodo, 0),
	}
}

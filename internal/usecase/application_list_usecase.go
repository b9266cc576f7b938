package usecase

import (
	"context"
	"log"

	"job-khojo/internal/infrastructure/cache"
	"job-khojo/internal/repository"
)

type ApplicationListParams struct {
	Limit  int
	Offset int
}

type ApplicationListUsecase interface {
	List(ctx context.Context, p ApplicationListParams) ([]repository.ApplicationRow, error)
}

type ApplicationList struct {
	apps   repository.ApplicationQueryRepository
	cache  *cache.Redis
	logger *log.Logger
}

func NewApplicationListUsecase(
	apps repository.ApplicationQueryRepository,
	cacheClient *cache.Redis,
	logger *log.Logger,
) *ApplicationList {
	if logger == nil {
		logger = log.Default()
	}
	return &ApplicationList{apps: apps, cache: cacheClient, logger: logger}
}

// List reads through the cache. Limit is clamped to [1,200] (default 50);
// a negative offset is treated as zero.
func (u *ApplicationList) List(ctx context.Context, p ApplicationListParams) ([]repository.ApplicationRow, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	key := cache.ApplicationsListKey(limit, offset)
	var cached []repository.ApplicationRow
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rows, err := u.apps.List(ctx, repository.ApplicationListFilter{Limit: limit, Offset: offset})
	if err != nil {
		return nil, dependencyErr("list applications", err)
	}

	if err := u.cache.SetJSON(ctx, key, rows, 0); err != nil {
		u.logger.Printf("[Applications] cache store failed: %v", err)
	}
	return rows, nil
}

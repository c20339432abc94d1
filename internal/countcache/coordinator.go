package countcache

import (
	"context"
	"time"

	"AdminBrowseAPI/internal/logger"
)

// Store — внешний key/value кэш для счётчиков; запись атомарна по ключу.
type Store interface {
	Get(ctx context.Context, entity string) (int64, bool, error)
	Put(ctx context.Context, entity string, count int64, ttl time.Duration) error
}

// Coordinator решает, когда COUNT можно отдать из кэша, а когда считать
// заново. Кэшируется только полный невыбранный набор ресурса, и только
// когда он достаточно большой, чтобы COUNT(*) был дорогим.
type Coordinator struct {
	Store     Store
	Threshold int64         // минимальный count, попадающий в кэш
	TTL       time.Duration // время жизни записи
}

func New(store Store, threshold int64, ttl time.Duration) *Coordinator {
	return &Coordinator{Store: store, Threshold: threshold, TTL: ttl}
}

// TotalCount возвращает полное количество строк набора. eligible передаёт
// вызывающая сторона: только ничем не суженная выборка кэшируема. Сбои
// кэша считаются промахом и запрос не валят.
func (c *Coordinator) TotalCount(ctx context.Context, entity string, eligible bool, compute func(context.Context) (int64, error)) (int64, error) {
	if !eligible {
		return compute(ctx)
	}

	if cached, ok, err := c.Store.Get(ctx, entity); err != nil {
		logger.Warn("count_cache_get_failed", map[string]any{
			"entity": entity,
			"error":  err.Error(),
		})
	} else if ok {
		return cached, nil
	}

	count, err := compute(ctx)
	if err != nil {
		return 0, err
	}

	if count > c.Threshold {
		if err := c.Store.Put(ctx, entity, count, c.TTL); err != nil {
			logger.Warn("count_cache_put_failed", map[string]any{
				"entity": entity,
				"error":  err.Error(),
			})
		}
	}
	return count, nil
}

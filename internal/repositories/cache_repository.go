package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface — хранилище сессий и кеша с TTL. Движок диалога
// не знает, что за ним стоит: карта в памяти или Redis.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key ...string) error
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCacheMiss возвращается при отсутствии или истечении ключа.
var ErrCacheMiss = errors.New("ключ не найден в кеше")

// MemoryCacheRepository - реализация кеша в памяти процесса. Используется
// как сессионное хранилище по умолчанию: прерванный диалог после рестарта
// просто теряется, это допустимое поведение.
type MemoryCacheRepository struct {
	mu    sync.Mutex
	items map[string]memoryCacheItem
}

type memoryCacheItem struct {
	value     string
	expiresAt time.Time
}

func NewMemoryCacheRepository() CacheRepositoryInterface {
	return &MemoryCacheRepository{items: make(map[string]memoryCacheItem)}
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	item := memoryCacheItem{value: fmt.Sprintf("%v", value)}
	if expiration > 0 {
		item.expiresAt = time.Now().Add(expiration)
	}
	r.mu.Lock()
	r.items[key] = item
	r.mu.Unlock()
	return nil
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		delete(r.items, key)
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (r *MemoryCacheRepository) Del(_ context.Context, keys ...string) error {
	r.mu.Lock()
	for _, key := range keys {
		delete(r.items, key)
	}
	r.mu.Unlock()
	return nil
}

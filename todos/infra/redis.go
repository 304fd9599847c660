package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"todo-service/todos/domain"

	"github.com/redis/go-redis/v9"
)

// RedisRepository guarda todos num único hash: campo = ID, valor = JSON.
//
// HSet já é upsert por campo, e HLen dá a contagem sem trazer os valores.
type RedisRepository struct {
	rdb *redis.Client
	key string
}

type RedisOption func(*RedisRepository)

func WithKey(key string) RedisOption {
	return func(r *RedisRepository) {
		if k := strings.TrimSpace(key); k != "" {
			r.key = k
		}
	}
}

func NewRedisRepository(rdb *redis.Client, opts ...RedisOption) *RedisRepository {
	r := &RedisRepository{
		rdb: rdb,
		key: "todos",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// redisTodo é a forma serializada no hash.
type redisTodo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Save implementa domain.Repository.
func (r *RedisRepository) Save(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	payload, err := json.Marshal(redisTodo{ID: todo.ID.String(), Title: todo.Title})
	if err != nil {
		return domain.Todo{}, err
	}
	if err := r.rdb.HSet(ctx, r.key, todo.ID.String(), payload).Err(); err != nil {
		return domain.Todo{}, fmt.Errorf("redis save: %w", err)
	}
	return todo, nil
}

func (r *RedisRepository) CountAll(ctx context.Context) (int, error) {
	n, err := r.rdb.HLen(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis count: %w", err)
	}
	return int(n), nil
}

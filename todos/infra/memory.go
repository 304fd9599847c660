package infra

import (
	"context"
	"sync"

	"todo-service/todos/domain"

	"github.com/google/uuid"
)

// MemoryRepository guarda todos num map por ID.
//
// Vida útil = vida do processo; nada sobrevive ao restart. O mutex existe
// porque o servidor HTTP atende handlers concorrentes.
type MemoryRepository struct {
	mu    sync.Mutex
	todos map[uuid.UUID]domain.Todo
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{todos: make(map[uuid.UUID]domain.Todo)}
}

// Save implementa domain.Repository: substitui qualquer entrada com o mesmo ID.
func (r *MemoryRepository) Save(_ context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos[todo.ID] = todo
	return todo, nil
}

func (r *MemoryRepository) CountAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.todos), nil
}

package application

import (
	"context"

	"todo-service/todos/domain"

	"github.com/google/uuid"
)

// TodoDTO é a projeção somente-leitura que cruza a fronteira do serviço.
type TodoDTO struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// Service orquestra política, construção da entidade e persistência.
//
// Ele não sabe nada sobre HTTP (payloads/status), apenas devolve o DTO ou um
// erro de aplicação.
type Service struct {
	Repo   domain.Repository
	Policy domain.Policy
}

// CreateTodo cria um todo a partir do título.
//
// A ordem importa: a regra de limite roda ANTES da construção da entidade.
// Um título inválido contra um repositório cheio reporta violação de limite,
// não de validação. Toda falha é terminal para a chamada (sem retry); erros
// do repositório sobem como vieram.
func (s Service) CreateTodo(ctx context.Context, title string) (TodoDTO, error) {
	count, err := s.Repo.CountAll(ctx)
	if err != nil {
		return TodoDTO{}, err
	}
	if err := s.Policy.EnforceLimit(count); err != nil {
		return TodoDTO{}, &BusinessRuleViolation{Err: err}
	}

	todo, err := domain.NewTodo(title)
	if err != nil {
		return TodoDTO{}, &ValidationError{Err: err}
	}

	saved, err := s.Repo.Save(ctx, todo)
	if err != nil {
		return TodoDTO{}, err
	}
	return TodoDTO{ID: saved.ID, Title: saved.Title}, nil
}

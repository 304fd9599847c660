package uow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Entity é a entidade genérica persistida pelo unit of work.
// O ID é atribuído pelo repositório no Add, nunca pelo chamador.
type Entity struct {
	Attr1 string `json:"attr1"`
	ID    string `json:"id"`
}

// ErrNotFound indica busca por um ID que a sessão não conhece.
var ErrNotFound = errors.New("entity not found")

// Repo é o contrato do repositório genérico preso à sessão do unit of work.
type Repo interface {
	// Add atribui um ID novo, guarda na sessão e retorna o ID.
	Add(e Entity) string

	// Get falha com ErrNotFound para IDs desconhecidos.
	Get(id string) (Entity, error)
}

// sessionRepo opera direto sobre o map da sessão. Toda entidade guardada tem
// ID não vazio igual à sua chave no map.
type sessionRepo struct {
	session map[string]Entity
}

func (r *sessionRepo) Add(e Entity) string {
	id := uuid.New().String()
	e.ID = id
	r.session[id] = e
	return id
}

func (r *sessionRepo) Get(id string) (Entity, error) {
	e, ok := r.session[id]
	if !ok {
		return Entity{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, nil
}

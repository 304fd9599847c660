package domain

import "errors"

// DefaultMaxTodos é o limite padrão de todos por repositório.
const DefaultMaxTodos = 10

// ErrLimitReached é o erro da política quando o limite já foi atingido.
var ErrLimitReached = errors.New("cannot create more todos, limit reached")

// Policy é um avaliador de regra sem estado: quantos todos um repositório
// pode guardar. Separada da orquestração de propósito.
type Policy struct {
	Max int
}

// DefaultPolicy retorna a política com o limite padrão.
func DefaultPolicy() Policy { return Policy{Max: DefaultMaxTodos} }

// EnforceLimit falha com ErrLimitReached quando count já está no limite.
// Função pura do argumento; não consulta nada.
func (p Policy) EnforceLimit(count int) error {
	max := p.Max
	if max <= 0 {
		max = DefaultMaxTodos
	}
	if count >= max {
		return ErrLimitReached
	}
	return nil
}

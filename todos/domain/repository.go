package domain

import "context"

// Repository é a abstração de persistência do Todo.
//
// Implementações podem guardar em memória, Redis, etc. A seleção acontece na
// construção (injeção via parâmetro), nunca por inspeção de tipo em runtime.
type Repository interface {
	// Save é um upsert idempotente por ID (substituição, não mutação).
	Save(ctx context.Context, todo Todo) (Todo, error)

	// CountAll retorna quantas entidades o repositório guarda agora.
	CountAll(ctx context.Context) (int, error)
}

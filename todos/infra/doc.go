// Package infra contém implementações concretas do contrato
// domain.Repository.
//
// Exemplos:
//   - MemoryRepository: map em memória, para testes e desenvolvimento
//   - RedisRepository: hash no Redis, para rodar com mais de uma instância
package infra

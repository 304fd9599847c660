// Package application contém o caso de uso de criação de todo.
//
// Ele depende apenas do pacote domain e não conhece net/http. É aqui que
// erros de domínio viram erros de aplicação (ValidationError,
// BusinessRuleViolation) — o contrato consumido pelos adapters.
package application

// Package todos fornece o adapter HTTP (net/http) do serviço de todos.
//
// Visão geral (camadas):
//
//   - domain: entidade, política e contrato de persistência (sem net/http)
//   - application: caso de uso CreateTodo + erros de aplicação, sem net/http
//   - infra: implementações concretas do repositório (memória, Redis)
//   - todos (este pacote): handler HTTP + tradução de erros para status/corpo
//
// Fluxo:
//
//  1. Decodifica o payload e extrai o título
//  2. Chama a camada application
//  3. ValidationError/BusinessRuleViolation viram 400 {"detail": msg}
//  4. Sucesso vira 201 {"id": ..., "title": ...}
//
// Qualquer outro erro é falha de servidor (500); o adapter é o único ponto
// que traduz erro de aplicação para status de transporte.
package todos

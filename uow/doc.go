// Package uow implementa um unit of work com um documento JSON como backing
// store.
//
// Ciclo de vida:
//
//  1. Open carrega a sessão do arquivo (arquivo ausente == estado vazio)
//  2. Repo.Add/Get trabalham só na sessão em memória
//  3. Commit sobrescreve o documento inteiro com a sessão
//  4. Close sempre faz rollback (recarrega do disco) — o idiom é
//     `defer u.Close()` logo após o Open
//
// Commit é a única forma de tornar mudanças duráveis: adicionar uma entidade
// e sair do escopo sem commitar é um no-op do ponto de vista da próxima
// abertura. Reabrir o mesmo caminho cria uma sessão nova a partir do disco;
// não há cache entre instâncias.
package uow

package main

// Demonstração do ciclo do unit of work sobre um arquivo JSON:
// abre, adiciona, commita, reabre e lê de volta.

import (
	"log"
	"os"

	"todo-service/uow"
)

func main() {
	path := "/tmp/db.json"
	if v := os.Getenv("UOW_FILE"); v != "" {
		path = v
	}

	u, err := uow.Open(path)
	if err != nil {
		log.Fatalf("open error: %v", err)
	}
	defer func() { _ = u.Close() }()

	id := u.Repo.Add(uow.Entity{Attr1: "xaxa"})
	if err := u.Commit(); err != nil {
		log.Fatalf("commit error: %v", err)
	}
	log.Printf("committed entity %s to %s", id, path)

	// uma instância nova enxerga só o que foi commitado
	u2, err := uow.Open(path)
	if err != nil {
		log.Fatalf("reopen error: %v", err)
	}
	defer func() { _ = u2.Close() }()

	e, err := u2.Repo.Get(id)
	if err != nil {
		log.Fatalf("get error: %v", err)
	}
	log.Printf("reloaded entity %s attr1=%q", e.ID, e.Attr1)
}

package uow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrClosed indica operação sobre um unit of work já fechado.
var ErrClosed = errors.New("unit of work is closed")

// documentSchema descreve o formato em disco: um objeto mapeando ID para
// {"attr1": string, "id": string}. Qualquer documento estruturalmente
// diferente falha no load e o erro sobe.
const documentSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"properties": {
			"attr1": {"type": "string"},
			"id": {"type": "string"}
		},
		"required": ["attr1"]
	}
}`

var compiledSchema = jsonschema.MustCompileString("uow-document.json", documentSchema)

// FileUoW é o unit of work preso a um arquivo.
//
// Estados: aberto (via Open) -> ativo -> fechado (via Close). Não há
// disciplina multi-processo além do lock consultivo ao lado do arquivo;
// assume-se um único dono do caminho por vez.
type FileUoW struct {
	path    string
	lock    *flock.Flock
	session map[string]Entity
	closed  bool

	// Repo fica preso à sessão durante o escopo.
	Repo Repo
}

// Open inicia um unit of work sobre path.
//
// Arquivo ausente é tolerado (estado inicial vazio); qualquer outra falha de
// I/O ou de formato sobe e nenhum FileUoW é devolvido.
func Open(path string) (*FileUoW, error) {
	u := &FileUoW{
		path:    path,
		lock:    flock.New(path + ".lock"),
		session: make(map[string]Entity),
	}
	if err := u.load(); err != nil {
		return nil, err
	}
	u.Repo = &sessionRepo{session: u.session}
	return u, nil
}

// Commit sobrescreve o documento inteiro com a sessão atual.
//
// A escrita é sobrescrita direta, não atômica: um crash no meio pode truncar
// o arquivo. Limitação documentada do formato, não algo que o uow resolve.
func (u *FileUoW) Commit() error {
	if u.closed {
		return ErrClosed
	}

	doc := make(map[string]Entity, len(u.session))
	for id, e := range u.session {
		doc[id] = e
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	unlock, err := u.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.WriteFile(u.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", u.path, err)
	}
	return nil
}

// Rollback descarta mudanças não commitadas recarregando a sessão do disco.
func (u *FileUoW) Rollback() error {
	if u.closed {
		return ErrClosed
	}
	return u.load()
}

// Close faz rollback e fecha, não importa como o escopo terminou.
// Idempotente; chamadas seguintes retornam nil.
func (u *FileUoW) Close() error {
	if u.closed {
		return nil
	}
	err := u.load()
	u.closed = true
	return err
}

func (u *FileUoW) load() error {
	unlock, err := u.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	data, err := os.ReadFile(u.path)
	if errors.Is(err, fs.ErrNotExist) {
		clear(u.session)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", u.path, err)
	}

	// valida a estrutura antes de decodificar nos tipos
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", u.path, err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return fmt.Errorf("document %s: %w", u.path, err)
	}

	var doc map[string]Entity
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode %s: %w", u.path, err)
	}

	clear(u.session)
	for id, e := range doc {
		// a chave do documento é autoritativa para o ID
		e.ID = id
		u.session[id] = e
	}
	return nil
}

func (u *FileUoW) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := u.lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", u.lock.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire lock on %s", u.lock.Path())
	}
	return func() { _ = u.lock.Unlock() }, nil
}

package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLen é o tamanho máximo do título, em caracteres (runes, não bytes).
const MaxTitleLen = 256

// InvalidTodoError indica que a construção do Todo violou uma invariante.
//
// Reason é a mensagem de domínio, estável: adapters repassam o texto como
// detail sem reformatar.
type InvalidTodoError struct {
	Reason string
}

func (e *InvalidTodoError) Error() string { return e.Reason }

// Todo é a entidade de domínio: um registro identificado com um título.
//
// Instâncias só nascem via NewTodo e sempre satisfazem as invariantes do
// título. Depois de criada, a entidade não é mutada no lugar: atualização é
// substituição via repositório.
type Todo struct {
	ID    uuid.UUID
	Title string
}

// NewTodo constrói um Todo com um ID novo (único por chamada).
//
// Falha com *InvalidTodoError quando o título é vazio/só espaços ou passa de
// MaxTitleLen caracteres. O título é guardado como veio, sem trim.
func NewTodo(title string) (Todo, error) {
	if strings.TrimSpace(title) == "" {
		return Todo{}, &InvalidTodoError{Reason: "title cannot be empty"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return Todo{}, &InvalidTodoError{Reason: fmt.Sprintf("title cannot exceed %d characters", MaxTitleLen)}
	}
	return Todo{ID: uuid.New(), Title: title}, nil
}

package todos

import (
	"encoding/json"
	"errors"
	"net/http"

	"todo-service/todos/application"
)

type createRequest struct {
	// ponteiro para distinguir "title" ausente de "title" vazio
	Title *string `json:"title"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHandler devolve o handler de POST /todos.
//
// Payload sem a chave "title" é 400, como qualquer falha de validação.
func NewHandler(svc application.Service) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/todos", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON body"})
			return
		}
		if req.Title == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "title is required"})
			return
		}

		dto, err := svc.CreateTodo(r.Context(), *req.Title)
		if err != nil {
			var ve *application.ValidationError
			var brv *application.BusinessRuleViolation
			switch {
			case errors.As(err, &ve):
				writeJSON(w, http.StatusBadRequest, errorResponse{Detail: ve.Error()})
			case errors.As(err, &brv):
				writeJSON(w, http.StatusBadRequest, errorResponse{Detail: brv.Error()})
			default:
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, dto)
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package main

// Cliente de teste manual: envia títulos até estourar o limite do serviço
// e depois alguns payloads inválidos, imprimindo status e corpo de cada um.

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func main() {
	base := "http://localhost:8080"
	if len(os.Args) > 1 {
		base = os.Args[1]
	}

	for i := 0; i < 12; i++ {
		post(base, fmt.Sprintf(`{"title":"Todo %d"}`, i))
	}

	// validação: vazio, sem a chave e JSON quebrado
	post(base, `{"title":""}`)
	post(base, `{}`)
	post(base, `{"title":`)
}

func post(base, body string) {
	resp, err := http.Post(base+"/todos", "application/json", strings.NewReader(body))
	if err != nil {
		fmt.Printf("erro: %s\n", err)
		return
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	fmt.Printf("POST %-28s -> %d %s\n", body, resp.StatusCode, bytes.TrimSpace(b))
}

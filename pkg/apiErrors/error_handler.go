// Package apiErrors centraliza a tradução de erros da aplicação para respostas HTTP
package apiErrors

import (
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/merchant-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error é um erro operacional declarado, com status HTTP e mensagem próprios.
// Erros desse tipo são esperados e a mensagem é devolvida ao cliente como está.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Response é o corpo padrão de erro da API
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// WriteError classifica err e escreve a resposta HTTP correspondente:
// erro operacional declarado → seu status e mensagem; erro de requisição ao
// banco → 400 genérico; banco indisponível → 503; resto → 500 com o erro
// original apenas nos logs, nunca na resposta.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		writeResponse(w, apiErr.Status, Response{Success: false, Message: apiErr.Message})
		return
	}

	if isConnectionError(err) {
		writeResponse(w, http.StatusServiceUnavailable, Response{
			Success: false,
			Message: "Database unavailable — could not connect",
		})
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		writeResponse(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Database request error",
			Error:   pqErr.Message,
		})
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao atender requisição")
	writeResponse(w, http.StatusInternalServerError, Response{
		Success: false,
		Message: "Internal server error",
	})
}

// WriteNotFoundRoute escreve o 404 estruturado do catch-all de rotas
func WriteNotFoundRoute(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, http.StatusNotFound, Response{
		Success: false,
		Message: "Route " + r.Method + " " + r.URL.Path + " not found",
	})
}

func writeResponse(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta de erro")
	}
}

// isConnectionError identifica falhas de conectividade ou inicialização do banco
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Classe 08 = connection exception; 57P = desligamento do servidor; 53300 = too_many_connections
		code := string(pqErr.Code)
		return strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57P") || code == "53300"
	}

	return false
}

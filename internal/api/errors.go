package api

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorClass int

const (
	ErrorClassPermanent ErrorClass = iota
	ErrorClassTransient
	ErrorClassCredential
)

func ClassifyStatus(status int) ErrorClass {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrorClassCredential
	case status == http.StatusRequestTimeout || status == http.StatusTooManyRequests:
		return ErrorClassTransient
	case status >= 500:
		return ErrorClassTransient
	default:
		return ErrorClassPermanent
	}
}

// IsTransient reports whether a user-initiated retry could succeed. Retries
// are never automatic; this only drives the "tentar novamente" affordance.
func IsTransient(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return ClassifyStatus(apiErr.Status) == ErrorClassTransient
	}
	return err != nil && !errors.Is(err, ErrCredencialInvalida)
}

var (
	ErrCredencialInvalida   = errors.New("credencial inválida ou expirada")
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrPedidoNaoEncontrado  = errors.New("pedido não encontrado")
)

const genericMessage = "falha ao comunicar com o servidor"

// Error carries the collaborator's status and message. The server message is
// surfaced to the user when present, with a generic fallback otherwise.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrNoteTooShort  = errors.New("la nota requiere al menos 10 caracteres")
	ErrInvalidStatus = errors.New("status de lead inválido")
	ErrUnauthorized  = errors.New("no autorizado")
)

// TransportError falla de red o HTTP contra un backend. Se distingue de
// ErrNotFound: un 404 del backend se traduce a ErrNotFound, cualquier otro
// fallo de transporte conserva aquí el status subyacente (0 si nunca hubo
// respuesta).
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transporte: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transporte: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError construye un TransportError con el status asociado.
func NewTransportError(statusCode int, err error) *TransportError {
	return &TransportError{StatusCode: statusCode, Err: err}
}

// IsTransport indica si err es (o envuelve) un fallo de transporte.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
